package privacy

// Geo is the decoded geolocation view attached to an activity call. Region may be
// empty when only the country is known.
type Geo struct {
	Country string
	Region  string
}

// ActivityRequest is the payload evaluated against activity rules: the component the
// call targets plus, when available, the observed geolocation. A nil Geo means the
// geo lookup was unavailable; geo-restricted rules must not block on that alone.
type ActivityRequest struct {
	Component Component
	Geo       *Geo
}

// NewRequestFromComponent builds a payload without geo information.
func NewRequestFromComponent(component Component) ActivityRequest {
	return ActivityRequest{Component: component}
}

// NewRequestWithGeo builds a geo-bearing payload.
func NewRequestWithGeo(component Component, geo *Geo) ActivityRequest {
	return ActivityRequest{Component: component, Geo: geo}
}
