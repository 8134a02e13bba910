// Package query answers the interactive filter and search operations over
// the built catalog and link list. Everything here is pure over its inputs:
// an Engine holds one mutable filter state and recomputes its view from the
// read-only catalog result on every call, so re-invoking on each keystroke
// is always safe and idempotent.
package query

import (
	"sort"
	"strings"

	"github.com/fametro/portal-ingresso/internal/catalog"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
	"github.com/fametro/portal-ingresso/internal/textutil"
)

// ShiftAll is the shift-filter sentinel that passes every course.
const ShiftAll = "all"

// GroupedCourse is one course row in a (unit, modality) view: catalog
// metadata plus the merged, rank-sorted shift set.
type GroupedCourse struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Degree string           `json:"degree"`
	Shifts []taxonomy.Shift `json:"shifts"`
}

// ResultKind distinguishes the three terminal states of a course query.
type ResultKind string

const (
	// KindOK means the filter produced at least one visible course.
	KindOK ResultKind = "ok"
	// KindNotOffered means the unit has no offerings at all for the
	// selected modality. Distinct from a filter that matched nothing.
	KindNotOffered ResultKind = "not_offered"
	// KindNoMatch means the modality has offerings but the current
	// query/shift filter excluded every one of them.
	KindNoMatch ResultKind = "no_match"
)

// scratchUnit keys the throwaway bucket GroupByName builds through the
// catalog pipeline. Never leaks into results.
const scratchUnit taxonomy.Unit = "_scratch"

// GroupByName collapses raw source items sharing a canonical course name
// into one GroupedCourse whose shift set is the union of all contributing
// shifts, with the modality's forced-shift override applied. Output is
// sorted by course name under pt-BR collation.
func GroupByName(items []catalog.Source, modality taxonomy.Modality) []GroupedCourse {
	built := catalog.Build(catalog.RawOffers{
		scratchUnit: {modality: items},
	})
	return coursesFromBucket(built.Catalog, built.Offers[scratchUnit][modality])
}

func coursesFromBucket(cat map[string]catalog.Course, bucket []catalog.Offering) []GroupedCourse {
	out := make([]GroupedCourse, 0, len(bucket))
	for _, off := range bucket {
		c := cat[off.CourseID]
		out = append(out, GroupedCourse{
			ID:     c.ID,
			Name:   c.Name,
			Degree: c.Degree,
			Shifts: off.Shifts,
		})
	}
	return out
}

// FilterCourses applies the free-text query (substring over the normalized
// course name) and the shift filter to an already-grouped course list. The
// shift filter is ignored entirely for modalities that never expose shift
// chips. Order is preserved.
func FilterCourses(groups []GroupedCourse, normalizedQuery string, shift string, modality taxonomy.Modality) []GroupedCourse {
	useShift := taxonomy.UsesShiftFilter(modality) && shift != "" && shift != ShiftAll

	out := make([]GroupedCourse, 0, len(groups))
	for _, g := range groups {
		if normalizedQuery != "" && !strings.Contains(textutil.Normalize(g.Name), normalizedQuery) {
			continue
		}
		if useShift && !hasShift(g.Shifts, taxonomy.Shift(shift)) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func hasShift(shifts []taxonomy.Shift, want taxonomy.Shift) bool {
	for _, s := range shifts {
		if s == want {
			return true
		}
	}
	return false
}

// AvailableShifts returns the shift chips for a grouped course list: the
// rank-sorted union of every shift present, or nothing at all for
// modalities whose shift set is forced.
func AvailableShifts(groups []GroupedCourse, modality taxonomy.Modality) []taxonomy.Shift {
	if !taxonomy.UsesShiftFilter(modality) {
		return nil
	}
	set := make(map[taxonomy.Shift]struct{}, 5)
	for _, g := range groups {
		for _, s := range g.Shifts {
			set[s] = struct{}{}
		}
	}
	out := make([]taxonomy.Shift, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank() < out[j].Rank() })
	return out
}

// Engine is one filter-state snapshot over a built catalog result. The
// caller owns the state transitions; every read recomputes from the
// read-only result, so no view is ever stale.
type Engine struct {
	res *catalog.Result

	unit     taxonomy.Unit
	modality taxonomy.Modality
	query    string // normalized
	shift    string
}

// New builds an engine over res positioned at unit with the first course
// modality selected and no filters.
func New(res *catalog.Result, unit taxonomy.Unit) *Engine {
	return &Engine{
		res:      res,
		unit:     unit,
		modality: taxonomy.CourseModalities[0],
		shift:    ShiftAll,
	}
}

// SetUnit switches the campus and clears the query and shift filter.
func (e *Engine) SetUnit(unit taxonomy.Unit) {
	e.unit = unit
	e.query = ""
	e.shift = ShiftAll
}

// SetModality switches the modality tab and resets the shift filter,
// since chips are per-modality.
func (e *Engine) SetModality(m taxonomy.Modality) {
	e.modality = m
	e.shift = ShiftAll
}

// SetQuery replaces the free-text query. Normalization happens here once
// so every visible-courses call compares pre-normalized text.
func (e *Engine) SetQuery(text string) {
	e.query = textutil.Normalize(text)
}

// SetShiftFilter selects a shift chip, or ShiftAll to clear it.
func (e *Engine) SetShiftFilter(shift string) {
	if shift == "" {
		shift = ShiftAll
	}
	e.shift = shift
}

// Modality returns the active modality tab.
func (e *Engine) Modality() taxonomy.Modality { return e.modality }

func (e *Engine) bucket() []GroupedCourse {
	units, ok := e.res.Offers[e.unit]
	if !ok {
		return nil
	}
	return coursesFromBucket(e.res.Catalog, units[e.modality])
}

// VisibleCourses returns the filtered course list for the current state.
func (e *Engine) VisibleCourses() []GroupedCourse {
	return FilterCourses(e.bucket(), e.query, e.shift, e.modality)
}

// ResultCount returns the number of visible courses.
func (e *Engine) ResultCount() int {
	return len(e.VisibleCourses())
}

// AvailableShiftChips returns the shift chips for the current
// (unit, modality), computed over the unfiltered course list.
func (e *Engine) AvailableShiftChips() []taxonomy.Shift {
	return AvailableShifts(e.bucket(), e.modality)
}

// Kind reports the terminal state of the current view: whether the
// modality is offered at all, and if so whether the filter matched.
func (e *Engine) Kind() ResultKind {
	bucket := e.bucket()
	if len(bucket) == 0 {
		return KindNotOffered
	}
	if len(FilterCourses(bucket, e.query, e.shift, e.modality)) == 0 {
		return KindNoMatch
	}
	return KindOK
}
