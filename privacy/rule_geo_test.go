package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoRuleEvaluate(t *testing.T) {
	bidderA := Component{Type: ComponentTypeBidder, Name: "bidderA"}

	testCases := []struct {
		name        string
		sidsMatched bool
		geoCodes    []GeoCode
		request     ActivityRequest
		result      ActivityResult
	}{
		{
			name:        "sids_not_matched_never_matches",
			sidsMatched: false,
			geoCodes:    []GeoCode{{Country: "US"}},
			request:     NewRequestWithGeo(bidderA, &Geo{Country: "US"}),
			result:      ActivityAbstain,
		},
		{
			name:        "no_geo_codes_is_unrestricted",
			sidsMatched: true,
			request:     NewRequestWithGeo(bidderA, &Geo{Country: "CA"}),
			result:      ActivityDeny,
		},
		{
			name:        "missing_geo_payload_passes_geo_condition",
			sidsMatched: true,
			geoCodes:    []GeoCode{{Country: "US"}},
			request:     NewRequestFromComponent(bidderA),
			result:      ActivityDeny,
		},
		{
			name:        "country_matched_case_insensitive_any_region",
			sidsMatched: true,
			geoCodes:    []GeoCode{{Country: "US"}},
			request:     NewRequestWithGeo(bidderA, &Geo{Country: "us", Region: "NY"}),
			result:      ActivityDeny,
		},
		{
			name:        "country_not_matched",
			sidsMatched: true,
			geoCodes:    []GeoCode{{Country: "US"}},
			request:     NewRequestWithGeo(bidderA, &Geo{Country: "CA"}),
			result:      ActivityAbstain,
		},
		{
			name:        "region_matched_case_insensitive",
			sidsMatched: true,
			geoCodes:    []GeoCode{{Country: "US", Region: "ny"}},
			request:     NewRequestWithGeo(bidderA, &Geo{Country: "US", Region: "NY"}),
			result:      ActivityDeny,
		},
		{
			name:        "region_not_matched",
			sidsMatched: true,
			geoCodes:    []GeoCode{{Country: "US", Region: "CA"}},
			request:     NewRequestWithGeo(bidderA, &Geo{Country: "US", Region: "NY"}),
			result:      ActivityAbstain,
		},
		{
			name:        "second_geo_code_matched",
			sidsMatched: true,
			geoCodes:    []GeoCode{{Country: "CA"}, {Country: "US", Region: "NY"}},
			request:     NewRequestWithGeo(bidderA, &Geo{Country: "US", Region: "ny"}),
			result:      ActivityDeny,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			rule := NewGeoRule(false, nil, nil, test.sidsMatched, test.geoCodes)
			assert.Equal(t, test.result, rule.Evaluate(test.request))
		})
	}
}

func TestGeoRuleComponentCondition(t *testing.T) {
	rule := NewGeoRule(true, []string{"bidderA"}, []string{ComponentTypeBidder}, true, []GeoCode{{Country: "US"}})

	matched := NewRequestWithGeo(Component{Type: ComponentTypeBidder, Name: "bidderA"}, &Geo{Country: "us"})
	assert.Equal(t, ActivityAllow, rule.Evaluate(matched))

	otherBidder := NewRequestWithGeo(Component{Type: ComponentTypeBidder, Name: "bidderB"}, &Geo{Country: "us"})
	assert.Equal(t, ActivityAbstain, rule.Evaluate(otherBidder))
}
