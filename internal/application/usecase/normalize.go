package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// searchNormalizer decompõe (NFD), remove marcas de acento e recompõe.
var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeSearch normaliza um termo para busca: minúsculas e sem acento,
// para que "Decoração" case com "decoracao".
func normalizeSearch(s string) string {
	out, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
