package openrtb_ext

// ExtImpPrebid defines the contract for bidrequest.imp[i].ext.prebid
type ExtImpPrebid struct {
	StoredRequest *ExtStoredRequest `json:"storedrequest,omitempty"`

	// IsRewardedInventory is a signal intended for video bids.
	IsRewardedInventory *int8 `json:"is_rewarded_inventory,omitempty"`
}

// ExtStoredRequest defines the contract for bidrequest.imp[i].ext.prebid.storedrequest
type ExtStoredRequest struct {
	ID string `json:"id"`
}
