package browse

import (
	"regexp"
	"strconv"
	"strings"
)

// UnknownPrice is the value assigned to price text with no recognisable
// amount, so such records sort after every priced record.
const UnknownPrice = 999.0

var priceRe = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)`)

// PriceValue extracts a sortable number from free-form price text.
// "Free" anywhere (any case) is 0, otherwise the first decimal number,
// optionally preceded by "$", otherwise UnknownPrice.
func PriceValue(price string) float64 {
	if strings.Contains(strings.ToLower(price), "free") {
		return 0
	}
	m := priceRe.FindStringSubmatch(price)
	if len(m) < 2 {
		return UnknownPrice
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return UnknownPrice
	}
	return v
}

// PriceKnown reports whether price text yields a parsed amount.
func PriceKnown(price string) bool {
	return strings.Contains(strings.ToLower(price), "free") || priceRe.MatchString(price)
}
