package adapters

import (
	"encoding/json"
	"net/http"

	"github.com/prebid/openrtb/v20/openrtb2"

	"github.com/DridgerVE/openbidder/config"
	"github.com/DridgerVE/openbidder/openrtb_ext"
)

// Bidder describes how to connect to an external demand server.
// Implementations must be stateless after construction: the server core makes the
// actual HTTP calls and invokes these two methods concurrently across auctions.
type Bidder interface {
	// MakeRequests makes the HTTP requests which should be made to fetch bids.
	//
	// Bidder implementations can assume that the incoming BidRequest has passed the
	// upstream validation stage. They must not mutate it.
	//
	// The errors should contain a list of errors which explain why this bidder's bids will be
	// "subpar" in some way. For example: the request contained ad types which this bidder doesn't support.
	//
	// If the error is caused by bad user input, return an errortypes.BadInput.
	MakeRequests(request *openrtb2.BidRequest, reqInfo *ExtraRequestInfo) ([]*RequestData, []error)

	// MakeBids unpacks the server's response into Bids.
	//
	// The bids can be nil (for no bids), but should not contain nil elements.
	//
	// The errors should contain a list of errors which explain why this bidder's bids will be
	// "subpar" in some way. For example: the server response didn't have the expected format.
	//
	// If the error was caused by bad user input, return an errortypes.BadInput.
	// If the error was caused by a bad server response, return an errortypes.BadServerResponse
	MakeBids(internalRequest *openrtb2.BidRequest, externalRequest *RequestData, response *ResponseData) (*BidderResponse, []error)
}

// Builder constructs an instance of a bidder adapter from its name and the
// configuration fixed for the lifetime of the process.
type Builder func(openrtb_ext.BidderName, config.Adapter, config.Server) (Bidder, error)

// ExtraRequestInfo contains per-call values the orchestrator passes through to
// adapters, beyond the bid request itself.
type ExtraRequestInfo struct {
	GlobalPrivacyControlHeader string
}

// RequestData packages together the fields needed to make an http.Request.
type RequestData struct {
	Method  string
	Uri     string
	Body    []byte
	Headers http.Header
	ImpIDs  []string
}

// ResponseData packages together information from the server's http.Response.
type ResponseData struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// TypedBid packages the openrtb2.Bid with the media type resolved for it.
//
// TypedBid.BidType will become "response.seatbid[i].bid.ext.prebid.type" in the final response.
type TypedBid struct {
	Bid     *openrtb2.Bid
	BidType openrtb_ext.BidType
}

// BidderResponse wraps the server's response with the list of bids and the currency used by the bidder.
//
// Currency declaration is not mandatory, "USD" is assumed when absent.
type BidderResponse struct {
	Currency string
	Bids     []*TypedBid
}

// NewBidderResponseWithBidsCapacity create a new BidderResponse initialising the bids array capacity and the default currency
func NewBidderResponseWithBidsCapacity(bidsCapacity int) *BidderResponse {
	return &BidderResponse{
		Currency: "USD",
		Bids:     make([]*TypedBid, 0, bidsCapacity),
	}
}

// NewBidderResponse create a new BidderResponse initialising the bids array and the default currency
func NewBidderResponse() *BidderResponse {
	return NewBidderResponseWithBidsCapacity(0)
}

// ExtImpBidder can be used by Bidders to unmarshal any request.imp[i].ext.
type ExtImpBidder struct {
	Prebid *openrtb_ext.ExtImpPrebid `json:"prebid"`

	// Bidder contains the bidder-specific extension. Each bidder should unmarshal this
	// using their own ExtImp{Bidder} struct.
	//
	// For example, the Brightroll Bidder should unmarshal this with an openrtb_ext.ExtImpBrightroll struct.
	Bidder json.RawMessage `json:"bidder"`
}
