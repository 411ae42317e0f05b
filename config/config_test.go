package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAdapters(t *testing.T) {
	testCases := []struct {
		name     string
		adapters map[string]Adapter
		wantErr  string
	}{
		{
			name: "valid_endpoint",
			adapters: map[string]Adapter{
				"brightroll": {Endpoint: "http://east-bid.ybp.yahoo.com/bid/appnexuspbs?publisher={{.PublisherID}}"},
			},
		},
		{
			name: "disabled_adapter_not_validated",
			adapters: map[string]Adapter{
				"brightroll": {Disabled: true},
			},
		},
		{
			name: "missing_endpoint",
			adapters: map[string]Adapter{
				"brightroll": {},
			},
			wantErr: "there's no default endpoint available for brightroll. Calls to this bidder will fail. Please set adapter endpoint in app config",
		},
		{
			name: "malformed_template",
			adapters: map[string]Adapter{
				"brightroll": {Endpoint: "http://example.com/{{PublisherID}}"},
			},
			wantErr: "invalid endpoint template",
		},
		{
			name: "unresolvable_macro",
			adapters: map[string]Adapter{
				"brightroll": {Endpoint: "http://example.com/{{.NotAMacro}}"},
			},
			wantErr: "unable to resolve endpoint",
		},
		{
			name: "not_a_url",
			adapters: map[string]Adapter{
				"brightroll": {Endpoint: "not-a-url"},
			},
			wantErr: "is not a valid URL",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateAdapters(test.adapters)
			if test.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, test.wantErr)
			}
		})
	}
}

func TestValidateAdaptersAggregatesErrors(t *testing.T) {
	err := ValidateAdapters(map[string]Adapter{
		"brightroll": {},
		"consumable": {Endpoint: "not-a-url"},
	})

	assert.Error(t, err)
	assert.ErrorContains(t, err, "brightroll")
	assert.ErrorContains(t, err, "consumable")
}
