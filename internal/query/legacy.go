package query

import (
	"github.com/fametro/portal-ingresso/internal/catalog"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
)

// LegacyRow is one line of the flat unit/modality course listing kept for
// consumers of the pre-catalog shape: one row per (course, shift).
type LegacyRow struct {
	Name  string         `json:"nome"`
	Shift taxonomy.Shift `json:"turno"`
}

// LegacyView flattens the offers tree back into the old
// unit -> modality -> rows shape. Row order follows the bucket order
// (course name, then shift rank), so the view is deterministic.
func LegacyView(res *catalog.Result) map[taxonomy.Unit]map[taxonomy.Modality][]LegacyRow {
	out := make(map[taxonomy.Unit]map[taxonomy.Modality][]LegacyRow, len(res.Offers))
	for unit, modalities := range res.Offers {
		unitRows := make(map[taxonomy.Modality][]LegacyRow, len(modalities))
		out[unit] = unitRows
		for modality, bucket := range modalities {
			rows := make([]LegacyRow, 0, len(bucket))
			for _, off := range bucket {
				name := res.Catalog[off.CourseID].Name
				for _, shift := range off.Shifts {
					rows = append(rows, LegacyRow{Name: name, Shift: shift})
				}
			}
			unitRows[modality] = rows
		}
	}
	return out
}
