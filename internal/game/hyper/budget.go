package hyper

import (
	"errors"
	"fmt"
)

// Levels between which hyper stat points are tracked.
const (
	MinCharacterLevel = 140
	MaxCharacterLevel = 275
)

var (
	// ErrOutOfRange is returned for a character level or category level
	// outside its supported bounds.
	ErrOutOfRange = errors.New("hyper: out of range")
	// ErrBudgetUnderflow is returned when committed levels cost more points
	// than the character level provides.
	ErrBudgetUnderflow = errors.New("hyper: budget underflow")
)

// PointsAtLevel returns the hyper stat points a character has earned by level.
// Each level l from MinCharacterLevel through level grants floor(l/10) - 11.
//
// Postcondition: Returns the point total, or an error wrapping ErrOutOfRange
// when level is outside [MinCharacterLevel, MaxCharacterLevel].
func PointsAtLevel(level int) (int, error) {
	if level < MinCharacterLevel || level > MaxCharacterLevel {
		return 0, fmt.Errorf("%w: character level %d not in [%d, %d]", ErrOutOfRange, level, MinCharacterLevel, MaxCharacterLevel)
	}
	total := 0
	for l := MinCharacterLevel; l <= level; l++ {
		total += l/10 - 11
	}
	return total, nil
}

// BudgetRemaining returns the points left at level after paying for the
// category levels in used, priced by CostPerLevel.
//
// Postcondition: Returns a non-negative budget, an error wrapping
// ErrOutOfRange for an invalid level, or an error wrapping ErrBudgetUnderflow.
func BudgetRemaining(level int, used []int) (int, error) {
	points, err := PointsAtLevel(level)
	if err != nil {
		return 0, err
	}
	cost := CostPerLevel()
	spent := 0
	for _, k := range used {
		if k < 0 || k > len(cost) {
			return 0, fmt.Errorf("%w: category level %d not in [0, %d]", ErrOutOfRange, k, len(cost))
		}
		spent += CumulativeCost(cost, k)
	}
	if spent > points {
		return 0, fmt.Errorf("%w: %d points committed, %d available at level %d", ErrBudgetUnderflow, spent, points, level)
	}
	return points - spent, nil
}
