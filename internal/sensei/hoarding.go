package sensei

import (
	"math"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
)

// HoardingWeeklyExp estimates weekly EXP when club, login and weekly-task AP
// is saved up all week and spent during a weekend double-rate event.
// Non-hoardable AP is spent daily: at the normal rate on the five weekdays and
// at the event rate on the two weekend days.
//
// The event rate is assumed to stack on the hoarded AP the same way it does on
// weekend AP, i.e. hoarded AP earns EventRateMultiplier times the boosted rate.
func HoardingWeeklyExp(cfg domain.EconomyConfig, dailyIncome int, boostMultiplier float64) int {
	hoardable := 0
	if cfg.ClubLogin {
		hoardable += APClubLogin
	}
	if cfg.LoginBonus {
		hoardable += APLoginBonus
	}
	if cfg.WeeklyTask {
		hoardable += APWeeklyTask
	}
	nonHoardable := dailyIncome - hoardable

	weekdayExp := float64(nonHoardable) * weekdayCount * boostMultiplier
	weekendExp := float64(nonHoardable) * weekendCount * boostMultiplier * EventRateMultiplier
	hoardedExp := float64(hoardable) * DaysPerWeek * boostMultiplier * EventRateMultiplier

	return int(math.Floor(weekdayExp + weekendExp + hoardedExp))
}
