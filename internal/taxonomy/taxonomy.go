// Package taxonomy defines the closed sets of canonical keys the portal
// uses internally in place of free-text labels: study modality, admission
// link type, class shift and campus unit. It also provides the classifiers
// that map raw labels onto those keys.
package taxonomy

import "strings"

// Modality is the canonical study modality key.
type Modality string

const (
	ModalityPresencial     Modality = "presencial"
	ModalityHibrido        Modality = "hibrido"
	ModalitySemipresencial Modality = "semipresencial"
	ModalityFlex           Modality = "flex"
	ModalityEAD            Modality = "ead"
	ModalityOutro          Modality = "outro"
)

// modalityOrder is the display ordering for link listings, matching the
// published page: EAD blocks first, plain presencial last.
var modalityOrder = map[Modality]int{
	ModalityEAD:            0,
	ModalitySemipresencial: 1,
	ModalityFlex:           2,
	ModalityHibrido:        3,
	ModalityPresencial:     4,
	ModalityOutro:          5,
}

// modalityLabels are the human-facing labels.
var modalityLabels = map[Modality]string{
	ModalityEAD:            "100% EAD",
	ModalitySemipresencial: "Semipresencial",
	ModalityFlex:           "Flex",
	ModalityHibrido:        "Híbrido",
	ModalityPresencial:     "Presencial",
	ModalityOutro:          "Outro",
}

// Rank returns the modality's position in the display order.
// Unknown modalities sort last.
func (m Modality) Rank() int {
	if r, ok := modalityOrder[m]; ok {
		return r
	}
	return 9
}

// Label returns the display label for the modality.
func (m Modality) Label() string {
	if l, ok := modalityLabels[m]; ok {
		return l
	}
	return modalityLabels[ModalityOutro]
}

// Valid reports whether m is one of the closed modality keys.
func (m Modality) Valid() bool {
	_, ok := modalityOrder[m]
	return ok
}

// CourseModalities are the modality tabs of the course search dialog, in
// tab order. The flex link block has no separate course listing: flex
// offerings surface as the Flex shift inside semipresencial.
var CourseModalities = []Modality{
	ModalityPresencial,
	ModalityHibrido,
	ModalitySemipresencial,
	ModalityEAD,
}

// LinkType is the canonical admission link type.
type LinkType string

const (
	TypeVestibular LinkType = "vestibular"
	TypeMatricula  LinkType = "matricula"
	TypeOutro      LinkType = "outro"
)

var typeOrder = map[LinkType]int{
	TypeVestibular: 0,
	TypeMatricula:  1,
	TypeOutro:      2,
}

var typeLabels = map[LinkType]string{
	TypeVestibular: "Vestibular",
	TypeMatricula:  "Matrícula",
	TypeOutro:      "Outro",
}

// Rank returns the link type's position in the display order.
func (t LinkType) Rank() int {
	if r, ok := typeOrder[t]; ok {
		return r
	}
	return 9
}

// Label returns the display label for the link type.
func (t LinkType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return typeLabels[TypeOutro]
}

// Shift is a class shift (turno). For non-presencial tracks it doubles as
// the delivery mode (Flex, Online).
type Shift string

const (
	ShiftMatutino   Shift = "Matutino"
	ShiftVespertino Shift = "Vespertino"
	ShiftNoturno    Shift = "Noturno"
	ShiftFlex       Shift = "Flex"
	ShiftOnline     Shift = "Online"
)

var shiftRank = map[Shift]int{
	ShiftMatutino:   1,
	ShiftVespertino: 2,
	ShiftNoturno:    3,
	ShiftFlex:       4,
	ShiftOnline:     5,
}

// Rank returns the shift's fixed sort rank (1..5). Unknown shifts sort last.
func (s Shift) Rank() int {
	if r, ok := shiftRank[s]; ok {
		return r
	}
	return 99
}

// ForcedShifts returns the shift set a modality imposes on its offerings,
// or nil when the source data decides. Semipresencial is always
// Noturno+Flex; EAD is always Online.
func ForcedShifts(m Modality) []Shift {
	switch m {
	case ModalitySemipresencial:
		return []Shift{ShiftNoturno, ShiftFlex}
	case ModalityEAD:
		return []Shift{ShiftOnline}
	default:
		return nil
	}
}

// UsesShiftFilter reports whether the modality exposes shift chips in the
// course search. Semipresencial and EAD have fixed shift sets and never do.
func UsesShiftFilter(m Modality) bool {
	return m != ModalitySemipresencial && m != ModalityEAD
}

// Unit identifies a campus. Keys are the backing (courses) keys; marketing
// aliases resolve through the alias table in classify.go.
type Unit string

const (
	UnitSede     Unit = "sede"
	UnitLeste    Unit = "leste"
	UnitSul      Unit = "sul"
	UnitNorte    Unit = "norte"
	UnitCompensa Unit = "compensa"
)

// UnitInfo carries the presentation attributes of a campus.
type UnitInfo struct {
	Key   Unit
	Title string
	Theme string
}

// Units lists the known campuses in display order.
var Units = []UnitInfo{
	{Key: UnitSede, Title: "SEDE", Theme: "sede"},
	{Key: UnitLeste, Title: "LESTE", Theme: "leste"},
	{Key: UnitSul, Title: "SUL", Theme: "sul"},
	{Key: UnitNorte, Title: "NORTE", Theme: "norte"},
	{Key: UnitCompensa, Title: "OESTE — COMPENSA", Theme: "oeste"},
}

var unitTitles = func() map[Unit]string {
	m := make(map[Unit]string, len(Units))
	for _, u := range Units {
		m[u.Key] = u.Title
	}
	return m
}()

// Title returns the campus display title. Unknown units fall back to the
// uppercased key so data-quality problems stay visible instead of blank.
func (u Unit) Title() string {
	if t, ok := unitTitles[u]; ok {
		return t
	}
	return strings.ToUpper(string(u))
}

// Known reports whether u is one of the fixed campus keys.
func (u Unit) Known() bool {
	_, ok := unitTitles[u]
	return ok
}
