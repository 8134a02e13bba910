package query

import (
	"github.com/fametro/portal-ingresso/internal/links"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
	"github.com/fametro/portal-ingresso/internal/textutil"
)

// LinkFilter selects admission links. Zero-valued fields do not filter.
type LinkFilter struct {
	Unit     taxonomy.Unit
	Modality taxonomy.Modality
	Type     taxonomy.LinkType
	Query    string
}

// FilterLinks applies f to an already normalized, sorted record list.
// Order is preserved, so grouped rendering stays in the canonical
// unit, modality, type, code order.
func FilterLinks(records []links.Record, f LinkFilter) []links.Record {
	normalized := textutil.Normalize(f.Query)

	out := make([]links.Record, 0, len(records))
	for _, rec := range records {
		if f.Unit != "" && rec.UnitKey != f.Unit {
			continue
		}
		if f.Modality != "" && rec.ModalityKey != f.Modality {
			continue
		}
		if f.Type != "" && rec.TypeKey != f.Type {
			continue
		}
		if !rec.Matches(normalized) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// LinkGroup is one campus section of the grouped link listing with its
// per-modality block summaries.
type LinkGroup struct {
	UnitKey  taxonomy.Unit        `json:"unit_key"`
	UnitName string               `json:"unit_name"`
	Blocks   []links.BlockSummary `json:"blocks"`
}

// GroupLinks splits a filtered record list into per-unit groups of block
// summaries. Records must already be in canonical order; groups come out
// in that same order.
func GroupLinks(records []links.Record) []LinkGroup {
	var out []LinkGroup
	byUnit := make(map[taxonomy.Unit]int)

	for _, rec := range records {
		if _, ok := byUnit[rec.UnitKey]; !ok {
			byUnit[rec.UnitKey] = len(out)
			out = append(out, LinkGroup{UnitKey: rec.UnitKey, UnitName: rec.UnitName})
		}
	}
	perUnit := make(map[taxonomy.Unit][]links.Record, len(out))
	for _, rec := range records {
		perUnit[rec.UnitKey] = append(perUnit[rec.UnitKey], rec)
	}
	for unit, idx := range byUnit {
		out[idx].Blocks = links.SummarizeBlocks(perUnit[unit])
	}
	return out
}
