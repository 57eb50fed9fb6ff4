package stat

// Reference returns the canonical stat sheet used for golden-value
// regression. Values come from cells X121:Y141 of Spec Simulator 0.9.4
// (familiar bonuses included). MasteryPercent is the fourth-job default of 95.
func Reference() Set {
	return NewSet(map[ID]float64{
		MainStat:                     4395,
		MainStatPercent:              331,
		MainStatPercentExempt:        13870,
		SubStat:                      2014,
		SubStatPercent:               103,
		SubStatPercentExempt:         530,
		Atk:                          1972,
		AtkPercent:                   97,
		DmgPercent:                   87,
		BossDmgPercent:               275,
		FinalDmgPercent:              30,
		IgnoreGuardPercent:           78.73660272,
		IgnoreElementalResistPercent: 5,
		CritRatePercent:              70,
		CritDmgPercent:               65,
		WeaponConstant:               1.2,
		ClassConstant:                1.0,
		MasteryPercent:               95,
		ExtraDmgPercent:              42.2,
		ExtraBossDmgPercent:          0,
		ExtraFinalDmgPercent:         55.94,
		ExtraIgnoreGuardPercent:      48.0208,
		ExtraCritRatePercent:         0,
		ExtraCritDmgPercent:          0,
	})
}
