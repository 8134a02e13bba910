package catalog

import (
	"sort"

	"github.com/fametro/portal-ingresso/internal/taxonomy"
	"github.com/fametro/portal-ingresso/internal/textutil"
)

// Course is one catalog entry. Two raw name variants that canonicalize to
// the same display name share one Course.
type Course struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Degree string `json:"degree"`
}

// Offering references a Course inside one (unit, modality) bucket with its
// deduplicated, rank-sorted shift set. Shift sets are never empty after
// normalization.
type Offering struct {
	CourseID string           `json:"course_id"`
	Shifts   []taxonomy.Shift `json:"shifts"`
}

// Source is one raw offering item: a course name and an optional explicit
// shift. Modalities with forced shift sets ignore Shift entirely.
type Source struct {
	Name  string
	Shift taxonomy.Shift
}

// RawOffers is the raw offerings feed: unit -> modality -> source items.
type RawOffers map[taxonomy.Unit]map[taxonomy.Modality][]Source

// Result is the built catalog plus the offering tree. Both are rebuilt
// from scratch on every load; nothing mutates them afterwards.
type Result struct {
	Catalog map[string]Course
	Offers  map[taxonomy.Unit]map[taxonomy.Modality][]Offering

	// Skipped counts malformed source items (missing name) dropped during
	// the build. Data-quality signal, not an error.
	Skipped int
}

// Build consumes the raw offerings feed and produces the catalog and the
// nested offers structure. First occurrence wins for course metadata;
// shifts accumulate as a set union; each bucket is sorted alphabetically
// by canonical course name under pt-BR collation.
func Build(raw RawOffers) *Result {
	res := &Result{
		Catalog: make(map[string]Course),
		Offers:  make(map[taxonomy.Unit]map[taxonomy.Modality][]Offering, len(raw)),
	}

	// shift accumulation keyed by course id within each bucket
	type bucket map[string]map[taxonomy.Shift]struct{}

	for unit, modalities := range raw {
		unitOffers := make(map[taxonomy.Modality][]Offering, len(modalities))
		res.Offers[unit] = unitOffers

		for modality, items := range modalities {
			acc := make(bucket)
			forced := taxonomy.ForcedShifts(modality)

			for _, item := range items {
				name := CanonicalName(item.Name)
				if name == "" {
					res.Skipped++
					continue
				}
				id := ensureCourse(res.Catalog, name)

				shifts := forced
				if shifts == nil {
					if item.Shift != "" {
						shifts = []taxonomy.Shift{item.Shift}
					} else {
						shifts = []taxonomy.Shift{taxonomy.ShiftNoturno}
					}
				}

				set, ok := acc[id]
				if !ok {
					set = make(map[taxonomy.Shift]struct{}, len(shifts))
					acc[id] = set
				}
				for _, s := range shifts {
					set[s] = struct{}{}
				}
			}

			unitOffers[modality] = flatten(res.Catalog, acc)
		}
	}

	return res
}

func ensureCourse(catalog map[string]Course, canonicalName string) string {
	id := DeriveID(canonicalName)
	if _, ok := catalog[id]; !ok {
		catalog[id] = Course{
			ID:     id,
			Name:   canonicalName,
			Degree: DegreeOf(canonicalName),
		}
	}
	return id
}

func flatten(catalog map[string]Course, acc map[string]map[taxonomy.Shift]struct{}) []Offering {
	out := make([]Offering, 0, len(acc))
	for id, set := range acc {
		shifts := make([]taxonomy.Shift, 0, len(set))
		for s := range set {
			shifts = append(shifts, s)
		}
		sort.Slice(shifts, func(i, j int) bool { return shifts[i].Rank() < shifts[j].Rank() })
		out = append(out, Offering{CourseID: id, Shifts: shifts})
	}
	sort.Slice(out, func(i, j int) bool {
		return textutil.Less(catalog[out[i].CourseID].Name, catalog[out[j].CourseID].Name)
	})
	return out
}
