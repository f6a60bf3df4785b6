package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD, drop combining marks, recompose. "Bruttó ár" -> "Brutto ar".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a cell or query value for matching: accents
// stripped, lowercased, trimmed. Idempotent, never fails; on a transform
// error the input passes through unstripped.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}
