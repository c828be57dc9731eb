package sensei

import "github.com/osse101/SchalePlanner_Go/internal/utils"

// ParseLevel reads a level typed by the user. Non-numeric, zero or negative
// input becomes MinLevel.
func ParseLevel(s string) int {
	return utils.ClampMin(utils.IntOrDefault(s, MinLevel), MinLevel)
}

// BaseCapacity returns the natural AP capacity of an account level.
// Levels below 1 are treated as level 1.
func BaseCapacity(level int) int {
	level = utils.ClampMin(level, MinLevel)
	if level <= capacityBreakLevel {
		return capacityLowBase + capacityLowPerLevel*level
	}
	return capacityHighBase + capacityHighPerLevel*(level-capacityBreakLevel)
}

// BoostMultiplier returns the catch-up EXP multiplier for a level.
func BoostMultiplier(level int) float64 {
	switch {
	case level <= boostBandNewcomer:
		return BoostNewcomer
	case level <= boostBandEarly:
		return BoostEarly
	case level <= boostBandMid:
		return BoostMid
	default:
		return BoostNone
	}
}
