package stat

import (
	"fmt"
	"math"
)

// MaxCritRatePercent caps critical rate on application.
const MaxCritRatePercent = 100.0

// Delta is a signed change to a single stat.
type Delta struct {
	ID    ID
	Value float64
}

// Modifier is a named, ordered list of stat deltas.
//
// Invariant: a Modifier is not mutated after construction.
type Modifier struct {
	Name    string
	Effects []Delta
}

// Set maps every stat in the closed set to a value. The zero Set has every
// stat at 0.
//
// Set is a value type: assignment copies it, and no method mutates the receiver.
type Set struct {
	values [Count]float64
}

// NewSet builds a Set from values; stats absent from values are 0.
//
// Precondition: every key of values must be a valid ID.
func NewSet(values map[ID]float64) Set {
	var s Set
	for id, v := range values {
		if !id.Valid() {
			panic(fmt.Errorf("stat.NewSet: precondition violated: %w: %d", ErrMissingStat, int(id)))
		}
		s.values[id] = v
	}
	return s
}

// Get returns the value of id.
//
// Precondition: id.Valid(). An invalid id is a programming error and panics
// with an error wrapping ErrMissingStat.
func (s Set) Get(id ID) float64 {
	if !id.Valid() {
		panic(fmt.Errorf("stat.Set.Get: %w: %d", ErrMissingStat, int(id)))
	}
	return s.values[id]
}

// With returns a copy of s with id set to v.
//
// Precondition: id.Valid().
func (s Set) With(id ID, v float64) Set {
	if !id.Valid() {
		panic(fmt.Errorf("stat.Set.With: %w: %d", ErrMissingStat, int(id)))
	}
	s.values[id] = v
	return s
}

// Apply returns a new Set with every delta of mod applied in order.
//
// Crit rate stats add and are capped at MaxCritRatePercent. Ignore-guard stats
// compound through CombineIgnorePercents. Every other stat adds.
func (s Set) Apply(mod Modifier) Set {
	for _, d := range mod.Effects {
		s = s.applyDelta(d)
	}
	return s
}

// ApplyAll folds every modifier into s, in order.
func (s Set) ApplyAll(mods ...Modifier) Set {
	for _, m := range mods {
		s = s.Apply(m)
	}
	return s
}

func (s Set) applyDelta(d Delta) Set {
	cur := s.Get(d.ID)
	switch d.ID {
	case CritRatePercent, ExtraCritRatePercent:
		s.values[d.ID] = math.Min(cur+d.Value, MaxCritRatePercent)
	case IgnoreGuardPercent, ExtraIgnoreGuardPercent:
		s.values[d.ID] = CombineIgnorePercents(cur, d.Value)
	default:
		s.values[d.ID] = cur + d.Value
	}
	return s
}

// CombineIgnorePercents compounds independent "ignore X%" values the way
// independent chances to pass a defense layer compound:
// (1 - Π(1 - p/100)) * 100.
//
// Postcondition: Returns 0 for no input and p for a single input p.
func CombineIgnorePercents(percents ...float64) float64 {
	if len(percents) == 0 {
		return 0
	}
	if len(percents) == 1 {
		return percents[0]
	}
	remaining := 1.0
	for _, p := range percents {
		remaining *= 1 - p/100
	}
	return (1 - remaining) * 100
}
