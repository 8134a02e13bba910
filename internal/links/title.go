package links

import (
	"regexp"
	"strings"
)

// TitleParts is the outcome of splitting a sheet-derived link title of the
// form "<code> <TYPE> - <UNIT> <MODALITY> - <term>".
type TitleParts struct {
	Code         string
	UnitName     string
	ProcessTitle string
}

// modalitySuffixes strip the trailing modality fragment from the
// "unit + modality" segment. Longest, most specific pattern first so
// "100% EAD" wins over "EAD" and "SEMIPRESENCIAL FLEX" over both
// "SEMIPRESENCIAL" and "FLEX".
var modalitySuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+100%\s*EAD$`),
	regexp.MustCompile(`(?i)\s+SEMIPRESENCIAL\s+FLEX$`),
	regexp.MustCompile(`(?i)\s+SEMIPRESENCIAL$`),
	regexp.MustCompile(`(?i)\s+H[ÍI]BRIDO$`),
	regexp.MustCompile(`(?i)\s+PRESENCIAL$`),
	regexp.MustCompile(`(?i)\s+EAD$`),
	regexp.MustCompile(`(?i)\s+FLEX$`),
}

var nonDigits = regexp.MustCompile(`\D`)

// fallbackUnitName labels titles whose unit segment could not be located.
const fallbackUnitName = "OUTROS"

// SplitTitle extracts the numeric process code, the unit name fragment and
// the remaining process title from a free-text link title. Unit extraction
// strips known modality suffixes from the second " - " segment; titles
// with no usable segment fall into the OUTROS bucket.
func SplitTitle(fullTitle string) TitleParts {
	raw := strings.TrimSpace(fullTitle)

	code := ""
	if fields := strings.Fields(raw); len(fields) > 0 {
		code = nonDigits.ReplaceAllString(fields[0], "")
	}
	withoutCode := raw
	if code != "" {
		withoutCode = strings.TrimSpace(strings.TrimPrefix(raw, code))
	}

	var parts []string
	for _, p := range strings.Split(withoutCode, " - ") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	unitName := ""
	if len(parts) > 1 {
		unitName = parts[1]
	}
	if unitName == "" && len(parts) > 2 {
		unitName = parts[2]
	}
	for _, rgx := range modalitySuffixes {
		unitName = strings.TrimSpace(rgx.ReplaceAllString(unitName, ""))
	}
	if unitName == "" {
		unitName = fallbackUnitName
	}

	return TitleParts{
		Code:         code,
		UnitName:     unitName,
		ProcessTitle: withoutCode,
	}
}
