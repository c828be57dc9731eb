package sensei

// Account level constants
const (
	// MaxLevel is the account level cap; the EXP table has no cost at or past it
	MaxLevel = 90

	// MinLevel is substituted for unreadable level input
	MinLevel = 1
)

// Base AP capacity formula: 20 + 4*level up to level 20, then 100 + 2*(level-20)
const (
	capacityBreakLevel   = 20
	capacityLowBase      = 20
	capacityLowPerLevel  = 4
	capacityHighBase     = 100
	capacityHighPerLevel = 2
)

// Boost multiplier bands (upper bound inclusive)
const (
	boostBandNewcomer = 20
	boostBandEarly    = 40
	boostBandMid      = 50

	BoostNewcomer = 2.0
	BoostEarly    = 1.5
	BoostMid      = 1.25
	BoostNone     = 1.0
)

// Daily AP bonuses per income source
const (
	APDailyTask   = 150
	APClubLogin   = 10
	APWeeklyTask  = 50
	APLoginBonus  = 55
	APFreeShop    = 10
	APTwoWeekPack = 150

	APPerPvPRefresh  = 90
	APPerPyroRefresh = 120
)

// Expert Permit income
const (
	EPDailyTask     = 120
	EPWeeklyTask    = 300
	EPConversionCap = 12000
	DaysPerWeek     = 7
)

// Hoarding strategy
const (
	weekdayCount = 5
	weekendCount = 2

	// EventRateMultiplier is the double-rate factor assumed for weekend events
	EventRateMultiplier = 2.0
)

// DefaultDoubleExpIntervalWeeks is how often a double-EXP event is assumed to run
const DefaultDoubleExpIntervalWeeks = 2
