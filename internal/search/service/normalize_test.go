package service

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"   ":               "",
		"Bruttó ár":         "brutto ar",
		"Márka":             "marka",
		"Termék név":        "termek nev",
		"  Coca Cola 1.75l": "coca cola 1.75l",
		"ÁÉÍÓÖŐÚÜŰ":         "aeiooouuu",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Bruttó ár", "ÁRFIGYELŐ", "  mixed Case  ", "Händler-Straße", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeOutputClean(t *testing.T) {
	for _, in := range []string{"Bruttó ÁR", "Müsli", "Túró Rudi"} {
		out := Normalize(in)
		for _, r := range out {
			assert.False(t, unicode.IsUpper(r), "uppercase %q in %q", r, out)
			assert.False(t, unicode.Is(unicode.Mn, r), "combining mark in %q", out)
		}
	}
}
