package consumable

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/prebid/openrtb/v20/openrtb2"

	"github.com/DridgerVE/openbidder/adapters"
	"github.com/DridgerVE/openbidder/config"
	"github.com/DridgerVE/openbidder/errortypes"
	"github.com/DridgerVE/openbidder/openrtb_ext"
	"github.com/DridgerVE/openbidder/util/jsonutil"
)

type adapter struct {
	clock    instant
	endpoint string
}

type bidRequest struct {
	Placements         []placement `json:"placements"`
	Time               int64       `json:"time"`
	NetworkId          int         `json:"networkId,omitempty"`
	SiteId             int         `json:"siteId"`
	UnitId             int         `json:"unitId"`
	UnitName           string      `json:"unitName,omitempty"`
	IncludePricingData bool        `json:"includePricingData"`
	User               user        `json:"user,omitempty"`
	Referrer           string      `json:"referrer,omitempty"`
	Ip                 string      `json:"ip,omitempty"`
	Url                string      `json:"url,omitempty"`
	EnableBotFiltering bool        `json:"enableBotFiltering,omitempty"`
	Parallel           bool        `json:"parallel"`
	GDPR               *bidGdpr    `json:"gdpr,omitempty"`
	Coppa              bool        `json:"coppa,omitempty"`
}

type placement struct {
	DivName   string `json:"divName"`
	NetworkId int    `json:"networkId,omitempty"`
	SiteId    int    `json:"siteId"`
	UnitId    int    `json:"unitId"`
	UnitName  string `json:"unitName,omitempty"`
	AdTypes   []int  `json:"adTypes"`
}

type user struct {
	Key string `json:"key,omitempty"`
}

type bidGdpr struct {
	Applies *bool  `json:"applies,omitempty"`
	Consent string `json:"consent,omitempty"`
}

type bidResponse struct {
	Decisions map[string]decision `json:"decisions"` // map by impression id
}

type decision struct {
	Pricing    *pricing   `json:"pricing"`
	AdID       int64      `json:"adId"`
	BidderName string     `json:"bidderName,omitempty"`
	CreativeID string     `json:"creativeId,omitempty"`
	Contents   []contents `json:"contents"`
	Width      uint64     `json:"width,omitempty"`
	Height     uint64     `json:"height,omitempty"`
	Adomain    []string   `json:"adomain,omitempty"`
}

type contents struct {
	Body string `json:"body"`
}

type pricing struct {
	ClearPrice *float64 `json:"clearPrice"`
}

func (a *adapter) MakeRequests(request *openrtb2.BidRequest, reqInfo *adapters.ExtraRequestInfo) ([]*adapters.RequestData, []error) {
	var errs []error

	headers := http.Header{
		"Content-Type": {"application/json"},
		"Accept":       {"application/json"},
	}

	if request.Device != nil {
		if request.Device.UA != "" {
			headers.Set("User-Agent", request.Device.UA)
		}

		if request.Device.IP != "" {
			headers.Set("Forwarded", "for="+request.Device.IP)
			headers.Set("X-Forwarded-For", request.Device.IP)
		}
	}

	// Set azk cookie to one we got via sync
	if request.User != nil {
		userID := strings.TrimSpace(request.User.BuyerUID)
		if len(userID) > 0 {
			headers.Add("Cookie", fmt.Sprintf("%s=%s", "azk", userID))
		}
	}

	if request.Site != nil && request.Site.Page != "" {
		headers.Set("Referer", request.Site.Page)

		pageUrl, err := url.Parse(request.Site.Page)
		if err != nil {
			errs = append(errs, err)
		} else {
			origin := url.URL{
				Scheme: pageUrl.Scheme,
				Opaque: pageUrl.Opaque,
				Host:   pageUrl.Host,
			}
			headers.Set("Origin", origin.String())
		}
	}

	body := bidRequest{
		Placements:         make([]placement, 0, len(request.Imp)),
		Time:               a.clock.Now().Unix(),
		IncludePricingData: true,
		EnableBotFiltering: true,
		Parallel:           true,
	}

	if request.Site != nil {
		body.Referrer = request.Site.Ref // Effectively the previous page to the page where the ad will be shown
		body.Url = request.Site.Page     // where the impression will be made
	}

	gdpr := bidGdpr{}

	if request.Regs != nil && len(request.Regs.Ext) > 0 {
		if gdprValue, err := jsonparser.GetInt(request.Regs.Ext, "gdpr"); err == nil {
			applies := gdprValue != 0
			gdpr.Applies = &applies
			body.GDPR = &gdpr
		}
	}

	if request.User != nil && len(request.User.Ext) > 0 {
		if consent, err := jsonparser.GetString(request.User.Ext, "consent"); err == nil {
			gdpr.Consent = consent
			body.GDPR = &gdpr
		}
	}

	body.Coppa = request.Regs != nil && request.Regs.COPPA > 0

	impIDs := make([]string, 0, len(request.Imp))
	for _, impression := range request.Imp {
		if impression.Banner == nil {
			errs = append(errs, &errortypes.BadInput{
				Message: fmt.Sprintf("Consumable only supports banner imps. Ignoring imp id=%s", impression.ID),
			})
			continue
		}

		consumableExt, err := extractExtension(impression)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		// These get set on the first one in observed working requests
		if len(body.Placements) == 0 {
			body.NetworkId = consumableExt.NetworkId
			body.SiteId = consumableExt.SiteId
			body.UnitId = consumableExt.UnitId
			body.UnitName = consumableExt.UnitName
		}

		body.Placements = append(body.Placements, placement{
			DivName:   impression.ID,
			NetworkId: consumableExt.NetworkId,
			SiteId:    consumableExt.SiteId,
			UnitId:    consumableExt.UnitId,
			UnitName:  consumableExt.UnitName,
			AdTypes:   getSizeCodes(impression.Banner.Format),
		})
		impIDs = append(impIDs, impression.ID)
	}

	if len(body.Placements) == 0 {
		return nil, errs
	}

	bodyBytes, err := jsonutil.Marshal(body)
	if err != nil {
		return nil, append(errs, err)
	}

	requests := []*adapters.RequestData{
		{
			Method:  "POST",
			Uri:     a.endpoint,
			Body:    bodyBytes,
			Headers: headers,
			ImpIDs:  impIDs,
		},
	}

	return requests, errs
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

	var serverResponse bidResponse // response from Consumable
	if err := jsonutil.Unmarshal(response.Body, &serverResponse); err != nil {
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("error while decoding response, err: %s", err),
		}}
	}

	bidderResponse := adapters.NewBidderResponse()

	for impID, decision := range serverResponse.Decisions {
		if decision.Pricing == nil || decision.Pricing.ClearPrice == nil {
			continue
		}

		bid := openrtb2.Bid{}
		bid.ID = internalRequest.ID
		bid.ImpID = impID
		bid.Price = *decision.Pricing.ClearPrice
		bid.AdM = retrieveAd(decision)
		bid.W = int64(decision.Width)
		bid.H = int64(decision.Height)
		bid.CrID = strconv.FormatInt(decision.AdID, 10)
		bid.Exp = 30 // TODO: Check this is intention of TTL
		bid.ADomain = decision.Adomain

		bidderResponse.Bids = append(bidderResponse.Bids, &adapters.TypedBid{
			Bid: &bid,
			// Consumable units are always HTML, never VAST.
			// That means these are always "banners" from this server's point of view.
			BidType: openrtb_ext.BidTypeBanner,
		})
	}
	return bidderResponse, nil
}

func extractExtension(impression openrtb2.Imp) (*openrtb_ext.ExtImpConsumable, error) {
	var bidderExt adapters.ExtImpBidder
	if err := jsonutil.Unmarshal(impression.Ext, &bidderExt); err != nil {
		return nil, &errortypes.BadInput{
			Message: err.Error(),
		}
	}

	var consumableExt openrtb_ext.ExtImpConsumable
	if err := jsonutil.Unmarshal(bidderExt.Bidder, &consumableExt); err != nil {
		return nil, &errortypes.BadInput{
			Message: err.Error(),
		}
	}

	return &consumableExt, nil
}

func retrieveAd(decision decision) string {
	if len(decision.Contents) > 0 {
		return decision.Contents[0].Body
	}
	return ""
}

// Builder builds a new instance of the Consumable adapter for the given bidder with the given config.
func Builder(bidderName openrtb_ext.BidderName, cfg config.Adapter, server config.Server) (adapters.Bidder, error) {
	bidder := &adapter{
		clock:    realInstant{},
		endpoint: cfg.Endpoint,
	}
	return bidder, nil
}
