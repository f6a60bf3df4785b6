package utils

import (
	"strconv"
	"strings"
)

// Hungarian exports write "1 234,50", "699", "1.75" with NBSP/NNBSP group
// separators and a decimal comma.
var sepReplacer = strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "", ",", ".")

// ParseFloatHU parses a Hungarian-formatted number. Strict on purpose: after
// separator cleanup the whole string must parse, so "1.75l" or
// "Coca Cola 1.75" do not qualify. Cell kind detection relies on this; a
// lenient parse would misclassify name columns as numeric.
func ParseFloatHU(s string) (float64, bool) {
	s = sepReplacer.Replace(strings.TrimSpace(s))
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
