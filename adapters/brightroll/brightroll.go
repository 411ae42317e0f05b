package brightroll

import (
	"fmt"
	"net/http"
	"strconv"
	"text/template"

	"github.com/prebid/openrtb/v20/openrtb2"

	"github.com/DridgerVE/openbidder/adapters"
	"github.com/DridgerVE/openbidder/config"
	"github.com/DridgerVE/openbidder/errortypes"
	"github.com/DridgerVE/openbidder/macros"
	"github.com/DridgerVE/openbidder/openrtb_ext"
	"github.com/DridgerVE/openbidder/util/jsonutil"
	"github.com/DridgerVE/openbidder/util/ptrutil"
)

type adapter struct {
	epTemplate      *template.Template
	publisherFloors map[string]*float64
	allowedAccounts map[string]struct{}
}

// ExtraInfo is the shape of config.Adapter.ExtraAdapterInfo for this bidder:
// per-publisher bid floor overrides and the accounts allowed to bypass the
// request-level blocked advertiser/category lists.
type ExtraInfo struct {
	PublisherFloors map[string]*float64 `json:"publisherFloors"`
	Accounts        []string            `json:"accounts"`
}

// Builder builds a new instance of the Brightroll adapter for the given bidder with the given config.
func Builder(bidderName openrtb_ext.BidderName, cfg config.Adapter, server config.Server) (adapters.Bidder, error) {
	epTemplate, err := template.New("endpointTemplate").Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("unable to parse endpoint url template: %v", err)
	}

	var extraInfo ExtraInfo
	if cfg.ExtraAdapterInfo != "" {
		if err := jsonutil.Unmarshal([]byte(cfg.ExtraAdapterInfo), &extraInfo); err != nil {
			return nil, fmt.Errorf("invalid extra info: %v", err)
		}
	}

	allowedAccounts := make(map[string]struct{}, len(extraInfo.Accounts))
	for _, account := range extraInfo.Accounts {
		allowedAccounts[account] = struct{}{}
	}

	bidder := &adapter{
		epTemplate:      epTemplate,
		publisherFloors: extraInfo.PublisherFloors,
		allowedAccounts: allowedAccounts,
	}
	return bidder, nil
}

func (a *adapter) MakeRequests(request *openrtb2.BidRequest, reqInfo *adapters.ExtraRequestInfo) ([]*adapters.RequestData, []error) {
	if len(request.Imp) == 0 {
		return nil, []error{&errortypes.BadInput{
			Message: "No impression in the bid request",
		}}
	}

	var errs []error
	validImps := make([]openrtb2.Imp, 0, len(request.Imp))
	publisher := ""

	for _, imp := range request.Imp {
		impPublisher, err := extractPublisher(imp)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		// Brightroll supports only banner and video impressions
		if imp.Banner == nil && imp.Video == nil {
			errs = append(errs, &errortypes.BadInput{
				Message: fmt.Sprintf("Brightroll only supports banner and video imps. Ignoring imp id=%s", imp.ID),
			})
			continue
		}

		if floor, ok := a.publisherFloors[impPublisher]; ok && floor != nil {
			imp.BidFloor = *floor
		}

		if imp.Banner != nil {
			banner := *imp.Banner
			if banner.W == nil && banner.H == nil && len(banner.Format) > 0 {
				banner.W = ptrutil.ToPtr(banner.Format[0].W)
				banner.H = ptrutil.ToPtr(banner.Format[0].H)
			}
			imp.Banner = &banner
		}

		if publisher == "" {
			publisher = impPublisher
		}
		validImps = append(validImps, imp)
	}

	if len(validImps) == 0 {
		return nil, errs
	}

	requestCopy := *request
	requestCopy.Imp = validImps
	requestCopy.AT = 1 // first-price auction

	if _, allowed := a.allowedAccounts[publisher]; allowed {
		requestCopy.BAdv = nil
		requestCopy.BCat = nil
	}

	endpoint, err := macros.ResolveMacros(a.epTemplate, macros.EndpointTemplateParams{PublisherID: publisher})
	if err != nil {
		return nil, append(errs, err)
	}

	reqJSON, err := jsonutil.Marshal(&requestCopy)
	if err != nil {
		return nil, append(errs, err)
	}

	headers := http.Header{}
	headers.Add("Content-Type", "application/json;charset=utf-8")
	headers.Add("Accept", "application/json")
	headers.Add("x-openrtb-version", "2.5")

	if request.Device != nil {
		addHeaderIfNonEmpty(headers, "User-Agent", request.Device.UA)
		addHeaderIfNonEmpty(headers, "X-Forwarded-For", request.Device.IP)
		addHeaderIfNonEmpty(headers, "Accept-Language", request.Device.Language)
		if request.Device.DNT != nil {
			headers.Add("DNT", strconv.Itoa(int(*request.Device.DNT)))
		}
	}

	return []*adapters.RequestData{{
		Method:  "POST",
		Uri:     endpoint,
		Body:    reqJSON,
		Headers: headers,
		ImpIDs:  impIDs(validImps),
	}}, errs
}

func (a *adapter) MakeBids(internalRequest *openrtb2.BidRequest, externalRequest *adapters.RequestData, response *adapters.ResponseData) (*adapters.BidderResponse, []error) {
	if response.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if response.StatusCode != http.StatusOK {
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("Unexpected status code: %d. Run with request.debug = 1 for more info", response.StatusCode),
		}}
	}

	var bidResp openrtb2.BidResponse
	if err := jsonutil.Unmarshal(response.Body, &bidResp); err != nil {
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("Failed to decode: %s", err),
		}}
	}

	if len(bidResp.SeatBid) == 0 {
		return nil, nil
	}

	// Brightroll is only ever expected to answer from a single seat. Bids in any
	// subsequent seats are ignored.
	sb := bidResp.SeatBid[0]

	bidResponse := adapters.NewBidderResponseWithBidsCapacity(len(sb.Bid))
	if bidResp.Cur != "" {
		bidResponse.Currency = bidResp.Cur
	}
	for i := range sb.Bid {
		bid := sb.Bid[i]
		bidResponse.Bids = append(bidResponse.Bids, &adapters.TypedBid{
			Bid:     &bid,
			BidType: getMediaTypeForImp(bid.ImpID, internalRequest.Imp),
		})
	}
	return bidResponse, nil
}

func extractPublisher(imp openrtb2.Imp) (string, error) {
	var bidderExt adapters.ExtImpBidder
	if err := jsonutil.Unmarshal(imp.Ext, &bidderExt); err != nil {
		return "", &errortypes.BadInput{
			Message: "ext.bidder not provided",
		}
	}

	var brightrollExt openrtb_ext.ExtImpBrightroll
	if err := jsonutil.Unmarshal(bidderExt.Bidder, &brightrollExt); err != nil {
		return "", &errortypes.BadInput{
			Message: "ext.bidder.publisher not provided",
		}
	}

	if brightrollExt.Publisher == "" {
		return "", &errortypes.BadInput{
			Message: "publisher is empty",
		}
	}
	return brightrollExt.Publisher, nil
}

// addHeaderIfNonEmpty adds a header field to the request header
func addHeaderIfNonEmpty(headers http.Header, headerName string, headerValue string) {
	if len(headerValue) > 0 {
		headers.Add(headerName, headerValue)
	}
}

// getMediaTypeForImp figures out which media type this bid is for.
func getMediaTypeForImp(impID string, imps []openrtb2.Imp) openrtb_ext.BidType {
	mediaType := openrtb_ext.BidTypeBanner // default type
	for _, imp := range imps {
		if imp.ID == impID {
			if imp.Video != nil {
				mediaType = openrtb_ext.BidTypeVideo
			}
			return mediaType
		}
	}
	return mediaType
}

func impIDs(imps []openrtb2.Imp) []string {
	ids := make([]string, len(imps))
	for i := range imps {
		ids[i] = imps[i].ID
	}
	return ids
}
