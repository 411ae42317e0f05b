package openrtb_ext

import (
	"strings"
)

// BidderName refers to a core bidder id or an alias id.
type BidderName string

func (name BidderName) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(name) + `"`), nil
}

func (name *BidderName) String() string {
	if name == nil {
		return ""
	}
	return string(*name)
}

// Names of the core bidders. These names *must* match the bidder code used by the
// embedding auction server. The adapter set is open: adding a bidder means adding a
// name here, an imp ext struct, an adapter package, and a registry entry.
const (
	BidderBrightroll BidderName = "brightroll"
	BidderConsumable BidderName = "consumable"
)

func coreBidderNames() []BidderName {
	return []BidderName{
		BidderBrightroll,
		BidderConsumable,
	}
}

// CoreBidderNames returns a slice of all core bidders.
func CoreBidderNames() []BidderName {
	return coreBidderNames()
}

var coreBidderNameLookup = func() map[string]BidderName {
	lookup := make(map[string]BidderName, len(coreBidderNames()))
	for _, name := range coreBidderNames() {
		bidderNameLower := strings.ToLower(string(name))
		lookup[bidderNameLower] = name
	}
	return lookup
}()

// NormalizeBidderName returns the canonical core bidder name for a case-insensitive
// match, and false when the name is unknown.
func NormalizeBidderName(name string) (BidderName, bool) {
	nameLower := strings.ToLower(name)
	bidderName, exists := coreBidderNameLookup[nameLower]
	return bidderName, exists
}
