package links

import (
	"sort"
	"strings"

	"github.com/fametro/portal-ingresso/internal/taxonomy"
)

// Report aggregates the record-level data-quality counters surfaced on the
// QA panel and exported as metrics.
type Report struct {
	Total           int `json:"total"`
	InvalidURLs     int `json:"invalid_urls"`
	EmptyCodes      int `json:"empty_codes"`
	Warnings        int `json:"warnings"`
	UnresolvedUnits int `json:"unresolved_units"`
}

// BuildReport computes the QA counters over a normalized record list.
// A URL counts as invalid when it is missing or does not end with the
// canonical wizard fragment.
func BuildReport(records []Record) Report {
	r := Report{Total: len(records)}
	for _, rec := range records {
		if rec.URL == "" || !strings.HasSuffix(rec.URL, WizardFragment) {
			r.InvalidURLs++
		}
		if rec.Code == "" {
			r.EmptyCodes++
		}
		if rec.DataWarning {
			r.Warnings++
		}
		if !rec.UnitResolved {
			r.UnresolvedUnits++
		}
	}
	return r
}

// BlockStatus describes the completeness of one (unit, modality) block.
// A block is conventionally one vestibular plus one matrícula link.
type BlockStatus string

const (
	BlockEmpty      BlockStatus = "empty"      // nothing to render
	BlockIncomplete BlockStatus = "incomplete" // exactly 1 link, flagged for QA
	BlockComplete   BlockStatus = "complete"
)

// BlockSummary is the render plan for one (unit, modality) block: its
// completeness status and the links to display (at most two, vestibular
// first when present).
type BlockSummary struct {
	UnitKey     taxonomy.Unit     `json:"unit_key"`
	ModalityKey taxonomy.Modality `json:"modality_key"`
	Status      BlockStatus       `json:"status"`
	Links       []Record          `json:"links"`
}

// SummarizeBlocks groups records into (unit, modality) blocks and computes
// each block's completeness. Blocks with two or more links expose only the
// first two after type/code ordering, which puts vestibular ahead of
// matrícula whenever one is present.
func SummarizeBlocks(records []Record) []BlockSummary {
	type blockKey struct {
		unit     taxonomy.Unit
		modality taxonomy.Modality
	}

	grouped := make(map[blockKey][]Record)
	order := make([]blockKey, 0, 16)
	for _, rec := range records {
		k := blockKey{unit: rec.UnitKey, modality: rec.ModalityKey}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], rec)
	}

	out := make([]BlockSummary, 0, len(order))
	for _, k := range order {
		items := grouped[k]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].TypeKey.Rank() != items[j].TypeKey.Rank() {
				return items[i].TypeKey.Rank() < items[j].TypeKey.Rank()
			}
			return items[i].Code < items[j].Code
		})

		status := BlockComplete
		switch len(items) {
		case 0:
			status = BlockEmpty
		case 1:
			status = BlockIncomplete
		}
		if len(items) > 2 {
			items = items[:2]
		}

		out = append(out, BlockSummary{
			UnitKey:     k.unit,
			ModalityKey: k.modality,
			Status:      status,
			Links:       items,
		})
	}
	return out
}
