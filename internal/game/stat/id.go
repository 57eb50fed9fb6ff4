// Package stat defines the closed set of character stats, the StatSet value
// type, and the modifiers that transform it.
//
// Members whose names end in Percent are measured in units of %:
// DmgPercent = 50 means +50% damage.
package stat

import (
	"errors"
	"fmt"
)

// ErrMissingStat is reported when a stat identifier or name falls outside the
// closed set.
var ErrMissingStat = errors.New("stat: missing stat")

// ID identifies one stat in the closed set.
type ID int

const (
	MainStat ID = iota
	MainStatPercent
	// MainStatPercentExempt is main stat that MainStatPercent does not scale.
	MainStatPercentExempt
	SubStat
	SubStatPercent
	SubStatPercentExempt
	Atk
	AtkPercent
	DmgPercent
	BossDmgPercent
	FinalDmgPercent
	IgnoreGuardPercent
	IgnoreElementalResistPercent
	CritRatePercent
	CritDmgPercent
	WeaponConstant
	ClassConstant
	MasteryPercent

	// Extra stats are tracked separately so they combine with their base
	// counterpart inside the damage formula rather than on application.
	ExtraDmgPercent
	ExtraBossDmgPercent
	ExtraFinalDmgPercent
	ExtraIgnoreGuardPercent
	ExtraCritRatePercent
	ExtraCritDmgPercent

	// Count is the number of stats in the closed set.
	Count
)

var names = [Count]string{
	MainStat:                     "main_stat",
	MainStatPercent:              "main_stat_percent",
	MainStatPercentExempt:        "main_stat_percent_exempt",
	SubStat:                      "sub_stat",
	SubStatPercent:               "sub_stat_percent",
	SubStatPercentExempt:         "sub_stat_percent_exempt",
	Atk:                          "atk",
	AtkPercent:                   "atk_percent",
	DmgPercent:                   "dmg_percent",
	BossDmgPercent:               "boss_dmg_percent",
	FinalDmgPercent:              "final_dmg_percent",
	IgnoreGuardPercent:           "ignore_guard_percent",
	IgnoreElementalResistPercent: "ignore_elemental_resist_percent",
	CritRatePercent:              "crit_rate_percent",
	CritDmgPercent:               "crit_dmg_percent",
	WeaponConstant:               "weapon_constant",
	ClassConstant:                "class_constant",
	MasteryPercent:               "mastery_percent",
	ExtraDmgPercent:              "extra_dmg_percent",
	ExtraBossDmgPercent:          "extra_boss_dmg_percent",
	ExtraFinalDmgPercent:         "extra_final_dmg_percent",
	ExtraIgnoreGuardPercent:      "extra_ignore_guard_percent",
	ExtraCritRatePercent:         "extra_crit_rate_percent",
	ExtraCritDmgPercent:          "extra_crit_dmg_percent",
}

// Valid reports whether id belongs to the closed set.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// String returns the snake_case name of id.
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("<stat %d>", int(id))
	}
	return names[id]
}

// ParseID resolves a snake_case stat name.
//
// Postcondition: Returns a valid ID, or an error wrapping ErrMissingStat.
func ParseID(name string) (ID, error) {
	for i, n := range names {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMissingStat, name)
}

// All returns every ID in declaration order.
func All() []ID {
	out := make([]ID, Count)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}
