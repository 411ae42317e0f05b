package privacy

import (
	"strings"
)

// GeoCode is one matchable location. An empty Region means any region within the
// country.
type GeoCode struct {
	Country string
	Region  string
}

// GeoRule restricts a component rule to calls whose GPP sections matched (decided by
// the policy resolver at construction time) and, when geo data is present on the
// call, to the configured geo codes. Calls without geo data pass the geo condition:
// a missing lookup never blocks on its own.
type GeoRule struct {
	componentRule ConditionRule
	sidsMatched   bool
	geoCodes      []GeoCode
	result        ActivityResult
}

// NewGeoRule builds an immutable geo rule with a fixed outcome. An empty geoCodes
// slice leaves the rule unrestricted by location.
func NewGeoRule(allowed bool, componentNames []string, componentTypes []string, sidsMatched bool, geoCodes []GeoCode) GeoRule {
	return GeoRule{
		componentRule: NewConditionRule(allowed, componentNames, componentTypes),
		sidsMatched:   sidsMatched,
		geoCodes:      geoCodes,
		result:        resultFromAllowed(allowed),
	}
}

func (r GeoRule) Evaluate(request ActivityRequest) ActivityResult {
	if !r.sidsMatched {
		return ActivityAbstain
	}

	if !r.matchesOneOfGeoCodes(request) {
		return ActivityAbstain
	}

	if r.componentRule.Evaluate(request) == ActivityAbstain {
		return ActivityAbstain
	}

	return r.result
}

func (r GeoRule) matchesOneOfGeoCodes(request ActivityRequest) bool {
	if len(r.geoCodes) == 0 {
		return true
	}

	if request.Geo == nil {
		return true
	}

	for _, geoCode := range r.geoCodes {
		if matchesGeoCode(geoCode, *request.Geo) {
			return true
		}
	}
	return false
}

func matchesGeoCode(geoCode GeoCode, geo Geo) bool {
	if !strings.EqualFold(geoCode.Country, geo.Country) {
		return false
	}
	return geoCode.Region == "" || strings.EqualFold(geoCode.Region, geo.Region)
}
