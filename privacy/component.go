package privacy

import (
	"strings"
)

const (
	ComponentTypeBidder    = "bidder"
	ComponentTypeAnalytics = "analytics"
	ComponentTypeRTD       = "rtd"
	ComponentTypeGeneral   = "general"
)

// Component identifies the subsystem an activity call applies to, usually a bidder.
type Component struct {
	Type string
	Name string
}

func (c Component) MatchesName(v string) bool {
	return strings.EqualFold(c.Name, v)
}

func (c Component) MatchesType(v string) bool {
	return strings.EqualFold(c.Type, v)
}
