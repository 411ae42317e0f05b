package exchange

import (
	"github.com/DridgerVE/openbidder/adapters"
	"github.com/DridgerVE/openbidder/adapters/brightroll"
	"github.com/DridgerVE/openbidder/adapters/consumable"
	"github.com/DridgerVE/openbidder/openrtb_ext"
)

func newAdapterBuilders() map[openrtb_ext.BidderName]adapters.Builder {
	return map[openrtb_ext.BidderName]adapters.Builder{
		openrtb_ext.BidderBrightroll: brightroll.Builder,
		openrtb_ext.BidderConsumable: consumable.Builder,
	}
}

// CoreAdapterBuilders returns the compile-time registry of bidder builders. The map
// is freshly allocated per call so callers may add aliases without racing.
func CoreAdapterBuilders() map[openrtb_ext.BidderName]adapters.Builder {
	return newAdapterBuilders()
}
