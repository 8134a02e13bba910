// Package textutil provides the text canonicalization primitives shared by
// the classifier, catalog and link pipelines. All comparisons in the portal
// go through Normalize so that "Híbrido", "HIBRIDO " and "hibrido" are the
// same token.
package textutil

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize trims, lowercases, strips diacritics and collapses internal
// whitespace to single spaces. It is total (empty in, empty out) and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	s, _, _ = transform.String(stripMarks, s)
	return collapseSpaces(s)
}

// Slugify derives a stable identifier from a canonical display name:
// normalized, non-word runes removed, spaces folded to underscores.
// "Tecnologia em Logística" -> "tecnologia_em_logistica".
func Slugify(s string) string {
	s = Normalize(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte(' ')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// non-ASCII word runes survive the same way \w does in the data feed
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}

// ptBR collates course and unit names the way the portal displays them.
// collate.Collator is not safe for concurrent use, so guard with the
// package-level helper below instead of exporting the collator.
var (
	ptBR   = collate.New(language.BrazilianPortuguese)
	collMu sync.Mutex
)

// Compare is a locale-aware comparison for pt-BR display strings.
// Returns -1, 0 or 1 like strings.Compare.
func Compare(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return ptBR.CompareString(a, b)
}

// Less reports whether a sorts before b under pt-BR collation.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}
