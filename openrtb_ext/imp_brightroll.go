package openrtb_ext

// ExtImpBrightroll defines the contract for bidrequest.imp[i].ext.bidder
type ExtImpBrightroll struct {
	Publisher string `json:"publisher"`
}
