package taxonomy

import (
	"strings"

	"github.com/fametro/portal-ingresso/internal/textutil"
)

// modalityRule maps a normalized substring to a modality. Rules are
// evaluated top to bottom and the first match wins, so precedence is
// explicit: a label carrying both "semi" and "flex" classifies as flex,
// and "ead"/"online" outrank a bare "presencial" substring.
type modalityRule struct {
	token string
	key   Modality
}

var modalityRules = []modalityRule{
	{"flex", ModalityFlex},
	{"semi", ModalitySemipresencial},
	{"ead", ModalityEAD},
	{"online", ModalityEAD},
	{"hibrid", ModalityHibrido},
	{"presencial", ModalityPresencial},
}

// ClassifyModality maps a free-text modality label to its canonical key.
// Labels matching no rule classify as ModalityOutro so that "no match"
// stays distinguishable from an explicit "presencial".
func ClassifyModality(freeText string) Modality {
	t := textutil.Normalize(freeText)
	for _, r := range modalityRules {
		if strings.Contains(t, r.token) {
			return r.key
		}
	}
	return ModalityOutro
}

// ClassifyLinkType maps a free-text link label to its canonical type.
func ClassifyLinkType(freeText string) LinkType {
	t := textutil.Normalize(freeText)
	switch {
	case strings.Contains(t, "vestib"):
		return TypeVestibular
	case strings.Contains(t, "matric"):
		return TypeMatricula
	default:
		return TypeOutro
	}
}

// unitAliases maps normalized marketing-facing names to backing keys.
// "Oeste" is the front label for the Compensa campus.
var unitAliases = map[string]Unit{
	"oeste":          UnitCompensa,
	"oeste compensa": UnitCompensa,
	"compensa":       UnitCompensa,
	"sede":           UnitSede,
	"leste":          UnitLeste,
	"sul":            UnitSul,
	"norte":          UnitNorte,
}

// UnitResolution reports how a free-text unit name resolved. Resolved is
// false when the input matched no known campus and Key holds the literal
// normalized text as a fallback bucket; callers surface those for QA
// instead of silently regrouping them.
type UnitResolution struct {
	Key      Unit
	Resolved bool
}

// ClassifyUnit normalizes a free-text unit name, folds dash variants, and
// resolves it through the alias table.
func ClassifyUnit(freeText string) UnitResolution {
	key := textutil.Normalize(dashFold.Replace(freeText))
	if u, ok := unitAliases[key]; ok {
		return UnitResolution{Key: u, Resolved: true}
	}
	return UnitResolution{Key: Unit(key), Resolved: false}
}

// dashFold turns em/en dashes and hyphens into spaces before normalization
// so "OESTE — COMPENSA" and "oeste-compensa" land on the same alias key.
var dashFold = strings.NewReplacer("—", " ", "–", " ", "-", " ")
