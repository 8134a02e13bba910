package links

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fametro/portal-ingresso/internal/sliceutil"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
	"github.com/fametro/portal-ingresso/internal/textutil"
)

// RawLink is one link inside a structured per-unit block.
type RawLink struct {
	Code     string `json:"code"`
	Type     string `json:"type"`
	Modality string `json:"modality"`
	Href     string `json:"href"`
}

// Block groups the links of one modality inside a structured unit.
type Block struct {
	Title string    `json:"title"`
	Links []RawLink `json:"links"`
}

/// StructuredUnit is the embedded raw shape: one campus with its link
// blocks keyed by modality.
type StructuredUnit struct {
	Key        string           `json:"key"`
	Title      string           `json:"title"`
	Theme      string           `json:"theme"`
	CoursesKey string           `json:"coursesKey"`
	Blocks     map[string]Block `json:"blocks"`
}

// SheetEntry is one row of the sheet-derived JSON document.
type SheetEntry struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	URL    string            `json:"url"`
	Params map[string]string `json:"params"`
}

// Sheet is one tab of the sheet-derived JSON document.
type Sheet struct {
	Name    string       `json:"name"`
	Entries []SheetEntry `json:"entries"`
}

// SheetDocument is the richer raw shape fetched from the configured JSON
// path. Entries whose type is not "link" are ignored.
type SheetDocument struct {
	Sheets []Sheet `json:"sheets"`
}

// FromStructured adapts the embedded per-unit blocks into Records.
// The block key participates in modality classification so entries whose
// own label is vague ("Semi Flex") still land on the right key.
func FromStructured(units []StructuredUnit) []Record {
	out := make([]Record, 0, len(units)*10)
	for _, unit := range units {
		rawKey := unit.CoursesKey
		if rawKey == "" {
			rawKey = unit.Key
		}
		if rawKey == "" {
			rawKey = unit.Title
		}
		res := taxonomy.ClassifyUnit(rawKey)
		unitName := unitDisplayName(res, unit.Title)

		// iterate blocks in key order so "first occurrence" is stable
		blockKeys := make([]string, 0, len(unit.Blocks))
		for k := range unit.Blocks {
			blockKeys = append(blockKeys, k)
		}
		sort.Strings(blockKeys)

		for _, blockKey := range blockKeys {
			block := unit.Blocks[blockKey]
			for _, item := range block.Links {
				typeKey := taxonomy.ClassifyLinkType(item.Type)
				modalityKey := taxonomy.ClassifyModality(item.Modality + " " + blockKey)
				typeLabel := typeKey.Label()
				modalityLabel := modalityKey.Label()

				title := item.Type
				if strings.TrimSpace(title) == "" {
					title = typeLabel
				}
				processTitle := fmt.Sprintf("%s - %s %s - 2026/1",
					strings.ToUpper(title), unitName, strings.ToUpper(modalityLabel))

				out = append(out, Record{
					UnitKey:       res.Key,
					UnitName:      unitName,
					Code:          strings.TrimSpace(item.Code),
					ProcessTitle:  processTitle,
					ModalityKey:   modalityKey,
					ModalityLabel: modalityLabel,
					TypeKey:       typeKey,
					TypeLabel:     typeLabel,
					URL:           NormalizeWizardURL(item.Href),
					RawURL:        item.Href,
					DataWarning:   !titleMentionsUnit(processTitle, unitName),
					UnitResolved:  res.Resolved,
					searchable:    buildSearchable(unitName, processTitle, item.Code, item.Href),
				})
			}
		}
	}
	return out
}

// FromSheets adapts the sheet-derived JSON document into Records. Unit and
// modality come out of the free-text title; the explicit "ps" param backs
// up a missing leading code.
func FromSheets(doc *SheetDocument) []Record {
	if doc == nil {
		return nil
	}
	out := make([]Record, 0, 64)
	for _, sheet := range doc.Sheets {
		for _, entry := range sheet.Entries {
			if entry.Type != "link" {
				continue
			}

			split := SplitTitle(entry.Title)
			res := taxonomy.ClassifyUnit(split.UnitName)
			unitName := unitDisplayName(res, split.UnitName)

			modalityKey := taxonomy.ClassifyModality(entry.Title)
			typeKey := taxonomy.ClassifyLinkType(entry.Title)

			code := split.Code
			if code == "" {
				code = strings.TrimSpace(entry.Params["ps"])
			}

			out = append(out, Record{
				UnitKey:       res.Key,
				UnitName:      unitName,
				Code:          code,
				ProcessTitle:  split.ProcessTitle,
				ModalityKey:   modalityKey,
				ModalityLabel: modalityKey.Label(),
				TypeKey:       typeKey,
				TypeLabel:     typeKey.Label(),
				URL:           NormalizeWizardURL(entry.URL),
				RawURL:        entry.URL,
				DataWarning:   !titleMentionsUnit(split.ProcessTitle, unitName),
				UnitResolved:  res.Resolved,
				searchable:    buildSearchable(unitName, split.ProcessTitle, sheet.Name, entry.URL),
			})
		}
	}
	return out
}

// DedupeAndSort collapses records sharing the (unit, code, type, url)
// identity, keeping the first occurrence in raw input order, then sorts by
// unit display name, modality rank, type rank and code. The result is
// stable across runs for identical input.
func DedupeAndSort(records []Record) []Record {
	unique := sliceutil.Deduplicate(records, Record.dedupeKey)

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if c := textutil.Compare(a.UnitName, b.UnitName); c != 0 {
			return c < 0
		}
		if a.ModalityKey.Rank() != b.ModalityKey.Rank() {
			return a.ModalityKey.Rank() < b.ModalityKey.Rank()
		}
		if a.TypeKey.Rank() != b.TypeKey.Rank() {
			return a.TypeKey.Rank() < b.TypeKey.Rank()
		}
		return textutil.Compare(a.Code, b.Code) < 0
	})
	return unique
}
