package exchange

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/DridgerVE/openbidder/adapters"
	"github.com/DridgerVE/openbidder/config"
	"github.com/DridgerVE/openbidder/openrtb_ext"
)

// BuildAdapters constructs every configured, enabled bidder. Construction problems
// are collected per bidder; a broken bidder never prevents the others from building.
func BuildAdapters(cfgs map[string]config.Adapter, server config.Server) (map[openrtb_ext.BidderName]adapters.Bidder, []error) {
	return buildBidders(cfgs, newAdapterBuilders(), server)
}

func buildBidders(cfgs map[string]config.Adapter, builders map[openrtb_ext.BidderName]adapters.Builder, server config.Server) (map[openrtb_ext.BidderName]adapters.Bidder, []error) {
	bidders := make(map[openrtb_ext.BidderName]adapters.Bidder)
	var errs []error

	for bidder, cfg := range cfgs {
		bidderName, bidderNameFound := openrtb_ext.NormalizeBidderName(bidder)
		if !bidderNameFound {
			errs = append(errs, fmt.Errorf("%v: unknown bidder", bidder))
			continue
		}

		builder, builderFound := builders[bidderName]
		if !builderFound {
			errs = append(errs, fmt.Errorf("%v: builder not registered", bidder))
			continue
		}

		if cfg.Disabled {
			glog.Infof("bidder %s is disabled, no adapter built", bidderName)
			continue
		}

		bidderInstance, builderErr := builder(bidderName, cfg, server)
		if builderErr != nil {
			errs = append(errs, fmt.Errorf("%v: %v", bidder, builderErr))
			continue
		}
		bidders[bidderName] = bidderInstance
	}
	return bidders, errs
}

// GetActiveBidders returns a map of all enabled bidder names.
func GetActiveBidders(cfgs map[string]config.Adapter) map[string]openrtb_ext.BidderName {
	activeBidders := make(map[string]openrtb_ext.BidderName)

	for name, cfg := range cfgs {
		if !cfg.Disabled {
			activeBidders[name] = openrtb_ext.BidderName(name)
		}
	}

	return activeBidders
}
