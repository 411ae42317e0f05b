package exchange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DridgerVE/openbidder/adapters"
	"github.com/DridgerVE/openbidder/config"
	"github.com/DridgerVE/openbidder/openrtb_ext"
)

func TestBuildAdapters(t *testing.T) {
	cfgs := map[string]config.Adapter{
		"brightroll": {Endpoint: "http://east-bid.ybp.yahoo.com/bid/appnexuspbs?publisher={{.PublisherID}}"},
		"consumable": {Endpoint: "https://e.serverbid.com/api/v2"},
	}

	bidders, errs := BuildAdapters(cfgs, config.Server{})

	assert.Empty(t, errs)
	assert.Len(t, bidders, 2)
	assert.Contains(t, bidders, openrtb_ext.BidderBrightroll)
	assert.Contains(t, bidders, openrtb_ext.BidderConsumable)
}

func TestBuildAdaptersNormalizesCase(t *testing.T) {
	cfgs := map[string]config.Adapter{
		"Consumable": {Endpoint: "https://e.serverbid.com/api/v2"},
	}

	bidders, errs := BuildAdapters(cfgs, config.Server{})

	assert.Empty(t, errs)
	assert.Contains(t, bidders, openrtb_ext.BidderConsumable)
}

func TestBuildAdaptersUnknownBidder(t *testing.T) {
	cfgs := map[string]config.Adapter{
		"unknownbidder": {Endpoint: "https://example.com"},
	}

	bidders, errs := BuildAdapters(cfgs, config.Server{})

	assert.Empty(t, bidders)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "unknownbidder: unknown bidder")
}

func TestBuildAdaptersSkipsDisabled(t *testing.T) {
	cfgs := map[string]config.Adapter{
		"brightroll": {Disabled: true},
		"consumable": {Endpoint: "https://e.serverbid.com/api/v2"},
	}

	bidders, errs := BuildAdapters(cfgs, config.Server{})

	assert.Empty(t, errs)
	assert.Len(t, bidders, 1)
	assert.NotContains(t, bidders, openrtb_ext.BidderBrightroll)
}

func TestBuildBiddersBuilderNotRegistered(t *testing.T) {
	cfgs := map[string]config.Adapter{
		"brightroll": {Endpoint: "https://example.com"},
	}

	bidders, errs := buildBidders(cfgs, map[openrtb_ext.BidderName]adapters.Builder{}, config.Server{})

	assert.Empty(t, bidders)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "brightroll: builder not registered")
}

func TestBuildBiddersCollectsBuilderErrors(t *testing.T) {
	failing := func(name openrtb_ext.BidderName, cfg config.Adapter, server config.Server) (adapters.Bidder, error) {
		return nil, errors.New("anyError")
	}
	cfgs := map[string]config.Adapter{
		"brightroll": {Endpoint: "https://example.com"},
	}
	builders := map[openrtb_ext.BidderName]adapters.Builder{
		openrtb_ext.BidderBrightroll: failing,
	}

	bidders, errs := buildBidders(cfgs, builders, config.Server{})

	assert.Empty(t, bidders)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "brightroll: anyError")
}

func TestGetActiveBidders(t *testing.T) {
	cfgs := map[string]config.Adapter{
		"brightroll": {Disabled: true},
		"consumable": {Endpoint: "https://e.serverbid.com/api/v2"},
	}

	active := GetActiveBidders(cfgs)

	assert.Equal(t, map[string]openrtb_ext.BidderName{"consumable": "consumable"}, active)
}
