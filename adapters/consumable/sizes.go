package consumable

import (
	"strconv"

	"github.com/prebid/openrtb/v20/openrtb2"
)

// Consumable's ad server identifies creative sizes by numeric ad-type codes rather
// than width/height pairs.
var sizeCodes = map[string]int{
	"120x90":  2,
	"468x60":  3,
	"728x90":  4,
	"300x250": 5,
	"160x600": 6,
	"120x600": 7,
	"300x100": 8,
	"180x150": 9,
	"336x280": 16,
	"240x400": 17,
	"234x60":  18,
	"88x31":   19,
	"120x60":  20,
	"120x240": 21,
	"125x125": 22,
	"220x250": 23,
	"250x250": 24,
	"250x90":  25,
	"0x0":     26,
	"200x90":  27,
	"300x50":  28,
	"320x50":  29,
	"320x480": 30,
	"185x185": 31,
	"620x45":  32,
	"300x125": 33,
	"800x250": 34,
	"970x90":  77,
	"970x250": 123,
	"300x600": 43,
}

func getSizeCodes(formats []openrtb2.Format) []int {
	codes := make([]int, 0, len(formats))
	for _, format := range formats {
		key := strconv.FormatInt(format.W, 10) + "x" + strconv.FormatInt(format.H, 10)
		if code, ok := sizeCodes[key]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}
