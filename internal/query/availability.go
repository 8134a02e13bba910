package query

import (
	"sort"
	"strings"

	"github.com/fametro/portal-ingresso/internal/catalog"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
	"github.com/fametro/portal-ingresso/internal/textutil"
)

// DefaultAvailabilityLimit caps availability results when the caller does
// not supply a limit.
const DefaultAvailabilityLimit = 20

// Availability maps course id -> unit -> set of modalities offering it.
// Built once from the catalog result and read-only afterwards.
type Availability map[string]map[taxonomy.Unit]map[taxonomy.Modality]struct{}

// BuildAvailability derives the availability index in one pass over all
// (unit, modality, offering) triples.
func BuildAvailability(res *catalog.Result) Availability {
	avail := make(Availability, len(res.Catalog))
	for unit, modalities := range res.Offers {
		for modality, bucket := range modalities {
			for _, off := range bucket {
				units, ok := avail[off.CourseID]
				if !ok {
					units = make(map[taxonomy.Unit]map[taxonomy.Modality]struct{}, 4)
					avail[off.CourseID] = units
				}
				mods, ok := units[unit]
				if !ok {
					mods = make(map[taxonomy.Modality]struct{}, 4)
					units[unit] = mods
				}
				mods[modality] = struct{}{}
			}
		}
	}
	return avail
}

// UnitAvailability lists the modalities one campus offers for a course,
// sorted by modality rank.
type UnitAvailability struct {
	Unit       taxonomy.Unit       `json:"unit"`
	Title      string              `json:"title"`
	Modalities []taxonomy.Modality `json:"modalities"`
}

// CourseAvailability pairs a catalog course with where it is offered.
// Units follow the fixed campus display order.
type CourseAvailability struct {
	Course catalog.Course     `json:"course"`
	Units  []UnitAvailability `json:"units"`
}

// FindCourses matches query as a substring of the normalized course name
// and returns each hit's availability, ordered by course name under pt-BR
// collation and capped at limit (DefaultAvailabilityLimit when <= 0).
func FindCourses(res *catalog.Result, avail Availability, query string, limit int) []CourseAvailability {
	if limit <= 0 {
		limit = DefaultAvailabilityLimit
	}
	normalized := textutil.Normalize(query)

	matched := make([]catalog.Course, 0, 32)
	for id, course := range res.Catalog {
		if _, ok := avail[id]; !ok {
			continue
		}
		if normalized != "" && !strings.Contains(textutil.Normalize(course.Name), normalized) {
			continue
		}
		matched = append(matched, course)
	}
	sort.Slice(matched, func(i, j int) bool {
		return textutil.Less(matched[i].Name, matched[j].Name)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]CourseAvailability, 0, len(matched))
	for _, course := range matched {
		out = append(out, CourseAvailability{
			Course: course,
			Units:  unitsFor(avail[course.ID]),
		})
	}
	return out
}

// unitsFor flattens one course's unit map following the fixed campus
// display order, modalities sorted by rank within each unit.
func unitsFor(byUnit map[taxonomy.Unit]map[taxonomy.Modality]struct{}) []UnitAvailability {
	out := make([]UnitAvailability, 0, len(byUnit))
	for _, info := range taxonomy.Units {
		mods, ok := byUnit[info.Key]
		if !ok {
			continue
		}
		list := make([]taxonomy.Modality, 0, len(mods))
		for m := range mods {
			list = append(list, m)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Rank() < list[j].Rank() })
		out = append(out, UnitAvailability{
			Unit:       info.Key,
			Title:      info.Title,
			Modalities: list,
		})
	}
	return out
}
