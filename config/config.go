package config

import (
	"fmt"
	"text/template"

	validator "github.com/asaskevich/govalidator"

	"github.com/DridgerVE/openbidder/errortypes"
	"github.com/DridgerVE/openbidder/macros"
)

// Adapter holds the construction-time inputs for one bidder adapter. Instances are
// built once by the embedding application and treated as read-only afterwards.
type Adapter struct {
	// Endpoint is the base URL for the bidder's auction endpoint. The value is
	// interpreted as a Go text/template; adapters resolve macros such as
	// {{.PublisherID}} per request. Required unless the adapter is disabled.
	Endpoint string `mapstructure:"endpoint"`

	Disabled bool `mapstructure:"disabled"`

	// ExtraAdapterInfo carries bidder-specific configuration as a JSON document,
	// e.g. per-publisher floor overrides for brightroll.
	ExtraAdapterInfo string `mapstructure:"extra_info"`
}

// Server holds the host-level values some bidders want echoed in their requests.
type Server struct {
	ExternalUrl string
	GvlID       int
	DataCenter  string
}

// ValidateAdapters checks every enabled adapter for a usable endpoint and returns one
// aggregate error describing everything wrong, or nil.
func ValidateAdapters(adapters map[string]Adapter) error {
	var errs []error
	for name, adapter := range adapters {
		if adapter.Disabled {
			continue
		}
		errs = validateAdapterEndpoint(adapter.Endpoint, name, errs)
	}

	if len(errs) > 0 {
		agg := errortypes.NewAggregateErrors("validation errors", errs)
		return &agg
	}
	return nil
}

// dummy values for resolving endpoint templates during validation
var testEndpointTemplateParams = macros.EndpointTemplateParams{
	Host:        "anyHost",
	PublisherID: "anyPublisherID",
	ZoneID:      "anyZoneID",
	SourceId:    "anySourceID",
	AccountID:   "anyAccountID",
	AdUnit:      "anyAdUnit",
}

func validateAdapterEndpoint(endpoint string, adapterName string, errs []error) []error {
	if endpoint == "" {
		return append(errs, fmt.Errorf("there's no default endpoint available for %s. Calls to this bidder will fail. "+
			"Please set adapter endpoint in app config", adapterName))
	}

	endpointTemplate, err := template.New("endpointTemplate").Parse(endpoint)
	if err != nil {
		return append(errs, fmt.Errorf("invalid endpoint template: %s for adapter: %s. %v", endpoint, adapterName, err))
	}

	resolvedEndpoint, err := macros.ResolveMacros(endpointTemplate, testEndpointTemplateParams)
	if err != nil {
		return append(errs, fmt.Errorf("unable to resolve endpoint: %s for adapter: %s. %v", endpoint, adapterName, err))
	}

	if !validator.IsRequestURL(resolvedEndpoint) {
		errs = append(errs, fmt.Errorf("the endpoint: %s for %s is not a valid URL", resolvedEndpoint, adapterName))
	}
	return errs
}
