// Package damage evaluates the stat-window attack and expected boss line
// damage of a stat.Set.
//
// Intermediate floors mirror the integer truncation of the game client and
// are applied exactly where the game applies them. Multiplications run in a
// fixed order; callers comparing results must not assume a reordered product
// is bit-identical.
package damage

import (
	"math"

	"github.com/cory-johannsen/specsim/internal/game/stat"
)

// Critical hits deal this multiple on top of CritDmgPercent.
const baseCritMultiplier = 1.35

// Boss describes the defensive side of a boss encounter.
type Boss struct {
	// GuardPercent is the boss defense rate, e.g. 300 for 300%.
	GuardPercent float64
	// ElementalResistPercent is the boss elemental resistance.
	ElementalResistPercent float64
}

// finals returns the floored final main stat, sub stat and attack.
// The float64 conversions keep the products from being fused into FMA
// instructions on architectures that have them.
func finals(s stat.Set) (mainFinal, subFinal, atkFinal float64) {
	mainFinal = math.Floor(float64(s.Get(stat.MainStat)*(1+s.Get(stat.MainStatPercent)/100)) + s.Get(stat.MainStatPercentExempt))
	subFinal = math.Floor(float64(s.Get(stat.SubStat)*(1+s.Get(stat.SubStatPercent)/100)) + s.Get(stat.SubStatPercentExempt))
	atkFinal = math.Floor(s.Get(stat.Atk) * (1 + s.Get(stat.AtkPercent)/100))
	return mainFinal, subFinal, atkFinal
}

// DisplayAttack returns the stat-window attack of s, floored.
//
// Postcondition: Returns a whole number.
func DisplayAttack(s stat.Set) float64 {
	mainFinal, subFinal, atkFinal := finals(s)

	atk := (float64(mainFinal*4) + subFinal) * 0.01
	atk *= atkFinal
	atk = atk * s.Get(stat.WeaponConstant) * s.Get(stat.ClassConstant)
	atk *= 1 + s.Get(stat.DmgPercent)/100
	atk *= 1 + s.Get(stat.FinalDmgPercent)/100

	return math.Floor(atk)
}

// BossLineDamage returns the expected damage of one line against boss, with
// critical hits averaged by crit rate. The result is not floored.
func BossLineDamage(s stat.Set, boss Boss) float64 {
	mainFinal, subFinal, atkFinal := finals(s)

	dmgPercent := s.Get(stat.DmgPercent) + s.Get(stat.BossDmgPercent) +
		s.Get(stat.ExtraDmgPercent) + s.Get(stat.ExtraBossDmgPercent)
	ignoreGuard := stat.CombineIgnorePercents(s.Get(stat.IgnoreGuardPercent), s.Get(stat.ExtraIgnoreGuardPercent))

	// The rate is capped here independently of the cap applied to each stat.
	critRate := s.Get(stat.CritRatePercent) + s.Get(stat.ExtraCritRatePercent)
	if critRate > stat.MaxCritRatePercent {
		critRate = stat.MaxCritRatePercent
	}
	critRate /= 100
	critDmg := (s.Get(stat.CritDmgPercent) + s.Get(stat.ExtraCritDmgPercent)) / 100

	dmg := (float64(mainFinal*4) + subFinal) * 0.01 * atkFinal * s.Get(stat.WeaponConstant) * s.Get(stat.ClassConstant)
	dmg *= 1 + dmgPercent/100
	dmg *= (1 + s.Get(stat.FinalDmgPercent)/100) * (1 + s.Get(stat.ExtraFinalDmgPercent)/100)
	dmg *= 1 - (boss.GuardPercent/100)*(1-ignoreGuard/100)
	dmg *= critRate*(baseCritMultiplier+critDmg) + (1 - critRate)
	dmg *= (1 + s.Get(stat.MasteryPercent)/100) / 2
	dmg *= 1 - (boss.ElementalResistPercent/100)*(1-s.Get(stat.IgnoreElementalResistPercent)/100)

	return dmg
}
