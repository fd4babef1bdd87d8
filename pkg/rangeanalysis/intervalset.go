package rangeanalysis

import (
	"sort"
	"strings"
)

// Set is an ordered, disjoint union of Ranges: the value a variable may
// hold at some point in the analysis. A zero-value Set represents the
// empty set of values, not the universe.
type Set struct {
	ranges []Range
}

// Empty returns the set containing no values.
func Empty() Set { return Set{} }

// FromRange lifts a single Range into a one-member Set.
func FromRange(r Range) Set {
	return Set{ranges: []Range{r}}
}

// FromScalar lifts a single value into a one-point Set.
func FromScalar(v Scalar) Set {
	return FromRange(Point(v))
}

// NewSetValue builds a one-member Set from explicit endpoint values.
func NewSetValue(loVal Scalar, loInclusive bool, hiVal Scalar, hiInclusive bool) Set {
	return FromRange(NewRange(loVal, loInclusive, hiVal, hiInclusive))
}

// UniverseSet spans every extended-integer value.
func UniverseSet() Set {
	return FromRange(Universe())
}

func sortRanges(ranges []Range) []Range {
	sort.Slice(ranges, func(i, j int) bool {
		a, b := ranges[i], ranges[j]
		if c := a.Lo.Compare(b.Lo); c != 0 {
			return c < 0
		}
		return a.Hi.Compare(b.Hi) < 0
	})
	return ranges
}

func fromRanges(ranges []Range) Set {
	return Set{ranges: sortRanges(ranges)}
}

// IsEmpty reports whether the set contains no values.
func (s Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Min returns the set's lowest endpoint, if any.
func (s Set) Min() (Lower, bool) {
	if len(s.ranges) == 0 {
		return Lower{}, false
	}
	return s.ranges[0].Lo, true
}

// Max returns the set's highest endpoint, if any.
func (s Set) Max() (Upper, bool) {
	if len(s.ranges) == 0 {
		return Upper{}, false
	}
	return s.ranges[len(s.ranges)-1].Hi, true
}

// Hull returns the smallest single Range spanning every member of s. It
// does not imply s is contiguous; it is used wherever the system (plain
// value-expression evaluation, most notably) needs a single range and
// accepts the loss of precision.
func (s Set) Hull() (Range, bool) {
	lo, ok := s.Min()
	if !ok {
		return Range{}, false
	}
	hi, _ := s.Max()
	return Range{Lo: lo, Hi: hi}, true
}

// Equal reports whether two sets contain exactly the same ranges.
func (s Set) Equal(o Set) bool {
	if len(s.ranges) != len(o.ranges) {
		return false
	}
	for i := range s.ranges {
		if !s.ranges[i].Equal(o.ranges[i]) {
			return false
		}
	}
	return true
}

// Ranges returns the set's members in ascending order. The caller must not
// mutate the returned slice.
func (s Set) Ranges() []Range {
	return s.ranges
}

func (s Set) String() string {
	if len(s.ranges) == 0 {
		return "(0, 0)"
	}
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, " U ")
}

// Union merges s with o, combining any ranges that touch or overlap. This
// is a lockstep merge over the two ascending range sequences: a "working"
// candidate range absorbs whichever side it currently overlaps until both
// sequences are exhausted.
func (s Set) Union(o Set) Set {
	oRanges := o.ranges
	oi := 0
	next := func() (Range, bool) {
		if oi < len(oRanges) {
			r := oRanges[oi]
			oi++
			return r, true
		}
		return Range{}, false
	}

	var working *Range
	var out []Range
	insert := func(r Range) { out = append(out, r) }

	for _, rr := range s.ranges {
		if working == nil {
			if w, ok := next(); ok {
				wc := w
				working = &wc
			}
		}
		for {
			if working == nil {
				insert(rr)
				break
			}
			w := *working
			working = nil
			switch {
			case rr.Hi.Value.Equal(w.Lo.Value) && (rr.Hi.Inclusive || w.Lo.Inclusive):
				merged := Range{Lo: rr.Lo, Hi: w.Hi}
				working = &merged
			case rr.Lo.Value.Equal(w.Hi.Value) && (rr.Lo.Inclusive || w.Hi.Inclusive):
				merged := Range{Lo: w.Lo, Hi: rr.Hi}
				working = &merged
			case rr.Lo.Compare(w.Lo) <= 0 && rr.Hi.CompareLower(w.Lo) >= 0:
				var merged Range
				if rr.Hi.Compare(w.Hi) > 0 {
					merged = Range{Lo: rr.Lo, Hi: rr.Hi}
				} else {
					merged = Range{Lo: rr.Lo, Hi: w.Hi}
				}
				working = &merged
			case w.Lo.Compare(rr.Lo) <= 0 && w.Hi.CompareLower(rr.Lo) >= 0:
				var merged Range
				if w.Hi.Compare(rr.Hi) > 0 {
					merged = Range{Lo: w.Lo, Hi: w.Hi}
				} else {
					merged = Range{Lo: w.Lo, Hi: rr.Hi}
				}
				working = &merged
			case rr.Hi.CompareLower(w.Lo) < 0:
				insert(rr)
				working = &w
			default:
				insert(w)
				if nw, ok := next(); ok {
					wc := nw
					working = &wc
				}
				continue
			}
			break
		}
	}

	if working != nil {
		r := *working
		if w, ok := next(); ok {
			switch {
			case r.Hi.Value.Equal(w.Lo.Value) && (r.Hi.Inclusive || w.Lo.Inclusive):
				insert(Range{Lo: r.Lo, Hi: w.Hi})
			case r.Lo.Compare(w.Lo) <= 0 && r.Hi.CompareLower(w.Lo) >= 0:
				if r.Hi.Compare(w.Hi) > 0 {
					insert(r)
				} else {
					insert(Range{Lo: r.Lo, Hi: w.Hi})
				}
			default:
				insert(r)
				insert(w)
			}
		} else {
			insert(r)
		}
	}
	for ; oi < len(oRanges); oi++ {
		insert(oRanges[oi])
	}

	// The lockstep pass compares each range only with the working range, so
	// a final sweep over the sorted output merges whatever still touches.
	var merged []Range
	for _, r := range sortRanges(out) {
		if n := len(merged); n > 0 && (r.Lo.Value.Less(merged[n-1].Hi.Value) ||
			(r.Lo.Value.Equal(merged[n-1].Hi.Value) && (r.Lo.Inclusive || merged[n-1].Hi.Inclusive))) {
			if r.Hi.Compare(merged[n-1].Hi) > 0 {
				merged[n-1].Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return Set{ranges: merged}
}

// UnionValue unions s with the single range described by the given
// endpoints.
func (s Set) UnionValue(loVal Scalar, loInclusive bool, hiVal Scalar, hiInclusive bool) Set {
	return s.Union(NewSetValue(loVal, loInclusive, hiVal, hiInclusive))
}

// Intersect narrows s to the values also present in o, via the same
// lockstep merge shape as Union but keeping only overlaps.
func (s Set) Intersect(o Set) Set {
	return s.intersectImpl(o.ranges)
}

// IntersectRange narrows s to the values also present in r.
func (s Set) IntersectRange(r Range) Set {
	return s.intersectImpl([]Range{r})
}

// IntersectValue narrows s to the values also present in the given range.
func (s Set) IntersectValue(loVal Scalar, loInclusive bool, hiVal Scalar, hiInclusive bool) Set {
	return s.IntersectRange(NewRange(loVal, loInclusive, hiVal, hiInclusive))
}

func (s Set) intersectImpl(oRanges []Range) Set {
	oi := 0
	next := func() (Range, bool) {
		if oi < len(oRanges) {
			r := oRanges[oi]
			oi++
			return r, true
		}
		return Range{}, false
	}

	var working *Range
	var out []Range
	insert := func(r Range) { out = append(out, r) }

	for _, rr := range s.ranges {
		if working == nil {
			if w, ok := next(); ok {
				wc := w
				working = &wc
			}
		}
		for {
			if working == nil {
				break
			}
			w := *working
			working = nil
			switch {
			case rr.Lo.Compare(w.Lo) <= 0 && rr.Hi.CompareLower(w.Lo) >= 0:
				if rr.Hi.Compare(w.Hi) > 0 {
					insert(w)
					if nw, ok := next(); ok {
						wc := nw
						working = &wc
					}
					continue
				}
				insert(Range{Lo: w.Lo, Hi: rr.Hi})
				working = &w
			case w.Lo.Compare(rr.Lo) <= 0 && w.Hi.CompareLower(rr.Lo) >= 0:
				if w.Hi.Compare(rr.Hi) > 0 {
					insert(rr)
					working = &w
				} else {
					insert(Range{Lo: rr.Lo, Hi: w.Hi})
					if nw, ok := next(); ok {
						wc := nw
						working = &wc
					}
					continue
				}
			case rr.Hi.CompareLower(w.Lo) < 0:
				working = &w
			default:
				if nw, ok := next(); ok {
					wc := nw
					working = &wc
				}
				continue
			}
			break
		}
	}

	return fromRanges(out)
}

// Inverse returns the complement of s across the whole extended-integer
// lattice: the gaps before the first range, between consecutive ranges,
// and after the last one.
func (s Set) Inverse() Set {
	lastEnd := Upper{Value: NegInf, Inclusive: false}
	var out []Range
	insertGap := func(lo Lower, hi Upper) {
		if lo.CompareUpper(hi) <= 0 {
			out = append(out, Range{Lo: lo, Hi: hi})
		}
	}
	for _, r := range s.ranges {
		insertGap(
			Lower{Value: lastEnd.Value, Inclusive: lastEnd.flip()},
			Upper{Value: r.Lo.Value, Inclusive: r.Lo.flip()},
		)
		lastEnd = r.Hi
	}
	insertGap(
		Lower{Value: lastEnd.Value, Inclusive: lastEnd.flip()},
		Upper{Value: PosInf, Inclusive: true},
	)
	return fromRanges(out)
}
