package ocr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnavailable indicates this binary was built without Tesseract support.
var ErrUnavailable = errors.New("ocr support not built in (requires cgo and linux)")

// scalePattern matches a length with a metric unit, e.g. "100 m", "50
// METERS" or "0.5 km". The separator group distinguishes decimals from
// thousands separators.
var scalePattern = regexp.MustCompile(`(?i)\b(\d+)(?:([.,])(\d+))?\s*(km|kilometers?|kilometres?|m|meters?|metres?)\b`)

// ParseScaleLength scans recognized text for a printed scale length and
// returns it in meters.
//
// The first length expression wins. A comma followed by exactly three
// digits is treated as a thousands separator ("1,500 m" is 1500), anything
// else as a decimal mark ("3,5 m" is 3.5). Returns false when no length
// with a metric unit appears in the text.
func ParseScaleLength(text string) (float64, bool) {
	m := scalePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	whole, sep, frac, unit := m[1], m[2], m[3], m[4]

	var num string
	switch {
	case sep == "":
		num = whole
	case sep == "," && len(frac) == 3:
		num = whole + frac
	default:
		num = whole + "." + frac
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	if strings.HasPrefix(strings.ToLower(unit), "k") {
		value *= 1000
	}
	return value, true
}
