// Package links normalizes raw admission-link records into one flat,
// deduplicated, deterministically ordered list. Two raw shapes are
// accepted: the structured per-unit blocks embedded in the binary, and the
// flat sheet-derived JSON document with free-text titles. Each shape has
// its own adapter; everything downstream sees only Record.
package links

import (
	"net/url"
	"strings"

	"github.com/fametro/portal-ingresso/internal/taxonomy"
	"github.com/fametro/portal-ingresso/internal/textutil"
)

// WizardFragment is the canonical deep-link fragment of the enrollment
// wizard. Normalized URLs always end with it.
const WizardFragment = "#/es/inscricoeswizard/dados-basicos"

// Record is one normalized admission link.
type Record struct {
	UnitKey       taxonomy.Unit     `json:"unit_key"`
	UnitName      string            `json:"unit_name"`
	Code          string            `json:"code"`
	ProcessTitle  string            `json:"process_title"`
	ModalityKey   taxonomy.Modality `json:"modality_key"`
	ModalityLabel string            `json:"modality_label"`
	TypeKey       taxonomy.LinkType `json:"type_key"`
	TypeLabel     string            `json:"type_label"`

	// URL is the wizard-normalized outbound link, empty when the raw href
	// was missing or unsafe. Records without a URL are kept and rendered
	// inert, never dropped.
	URL    string `json:"url,omitempty"`
	RawURL string `json:"raw_url"`

	// DataWarning flags records whose resolved unit name does not appear
	// in their own process title. Kept for manual QA.
	DataWarning bool `json:"data_warning,omitempty"`

	// UnitResolved is false when the unit fell back to a literal key.
	UnitResolved bool `json:"-"`

	searchable string
}

// dedupeKey is the record identity for deduplication.
func (r Record) dedupeKey() string {
	return strings.Join([]string{string(r.UnitKey), r.Code, string(r.TypeKey), r.URL}, "|")
}

// Matches reports whether the normalized query occurs in the record's
// searchable text (unit, title, code and raw URL).
func (r Record) Matches(normalizedQuery string) bool {
	return normalizedQuery == "" || strings.Contains(r.searchable, normalizedQuery)
}

// NormalizeWizardURL parses href and forces the canonical wizard fragment
// onto origin+path+query. Anything that is not absolute http/https yields
// "" (no valid URL).
func NormalizeWizardURL(href string) string {
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	if parsed.Host == "" {
		return ""
	}
	parsed.Fragment = ""
	return parsed.String() + WizardFragment
}

func buildSearchable(parts ...string) string {
	return textutil.Normalize(strings.Join(parts, " "))
}

// unitDisplayName resolves the display name for a unit resolution. Known
// units use the campus title; fallback units surface the raw name
// uppercased so the bad data stays visible.
func unitDisplayName(res taxonomy.UnitResolution, rawName string) string {
	if res.Resolved {
		return res.Key.Title()
	}
	if rawName == "" {
		return strings.ToUpper(string(res.Key))
	}
	return strings.ToUpper(strings.TrimSpace(rawName))
}

// titleMentionsUnit checks that the resolved unit name (or one of its
// aliases) appears in the process title after normalization.
func titleMentionsUnit(processTitle, unitName string) bool {
	title := textutil.Normalize(processTitle)
	unit := textutil.Normalize(unitName)
	if strings.Contains(title, unit) {
		return true
	}
	for _, alias := range unitTitleAliases(unit) {
		if strings.Contains(title, alias) {
			return true
		}
	}
	return false
}

// unitTitleAliases lists alternate spellings a title may use for a unit.
// The Compensa campus is advertised as "Oeste".
func unitTitleAliases(normalizedUnit string) []string {
	switch normalizedUnit {
	case "compensa", "oeste compensa", "oeste — compensa":
		return []string{"oeste", "compensa"}
	default:
		return nil
	}
}
