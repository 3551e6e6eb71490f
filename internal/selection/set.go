package selection

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/ayoisaiah/avail/internal/timeutil"
)

// Set is a collection of time slots, unique at minute resolution.
// The zero value is ready to use.
type Set struct {
	m map[int64]time.Time
}

// NewSet returns a set holding times.
func NewSet(times ...time.Time) Set {
	var s Set

	for _, t := range times {
		s.Add(t)
	}

	return s
}

// Add inserts t. Adding a time already present keeps the original value.
func (s *Set) Add(t time.Time) {
	if s.m == nil {
		s.m = make(map[int64]time.Time)
	}

	key := timeutil.MinuteKey(t)
	if _, ok := s.m[key]; !ok {
		s.m[key] = t
	}
}

// Remove deletes t if present.
func (s *Set) Remove(t time.Time) {
	delete(s.m, timeutil.MinuteKey(t))
}

// Contains reports whether t is in the set.
func (s Set) Contains(t time.Time) bool {
	_, ok := s.m[timeutil.MinuteKey(t)]
	return ok
}

// Len returns the number of slots in the set.
func (s Set) Len() int {
	return len(s.m)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	return Set{m: maps.Clone(s.m)}
}

// Times returns the slots in chronological order.
func (s Set) Times() []time.Time {
	out := slices.Collect(maps.Values(s.m))

	slices.SortFunc(out, func(a, b time.Time) int {
		return cmp.Compare(a.UnixNano(), b.UnixNano())
	})

	return out
}

// Equal reports whether s and other hold the same slots.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}

	for k := range s.m {
		if _, ok := other.m[k]; !ok {
			return false
		}
	}

	return true
}

// Union returns a new set with the slots of s and region.
func (s Set) Union(region []time.Time) Set {
	out := s.Clone()

	for _, t := range region {
		out.Add(t)
	}

	return out
}

// Difference returns a new set with the slots of s that are not in region.
func (s Set) Difference(region []time.Time) Set {
	out := s.Clone()

	for _, t := range region {
		out.Remove(t)
	}

	return out
}

// Merge applies a resolved region to base according to mode. base is left
// untouched.
func Merge(base Set, region []time.Time, mode Mode) (Set, error) {
	switch mode {
	case ModeAdd:
		return base.Union(region), nil
	case ModeRemove:
		return base.Difference(region), nil
	default:
		return Set{}, errUnknownMode.Fmt(int(mode))
	}
}
