package sensei

import "github.com/osse101/SchalePlanner_Go/internal/domain"

// WeeklyPermitIncome returns the weekly Expert Permit income. Task income is
// always earned; AP conversion only starts once the account is at MaxLevel
// and is capped at EPConversionCap, with the excess reported as wasted.
func WeeklyPermitIncome(level int, cfg domain.EconomyConfig, dailyIncome int) domain.ExpertPermitIncome {
	isMaxed := level >= MaxLevel

	dailyTaskEP := 0
	if cfg.DailyTask {
		dailyTaskEP = EPDailyTask
	}
	weeklyTaskEP := 0
	if cfg.WeeklyTask {
		weeklyTaskEP = EPWeeklyTask
	}
	taskIncome := dailyTaskEP*DaysPerWeek + weeklyTaskEP

	weeklyAP := dailyIncome * DaysPerWeek
	potential := min(weeklyAP, EPConversionCap)

	conversion, wasted := 0, 0
	if isMaxed {
		conversion = potential
		if weeklyAP > EPConversionCap {
			wasted = weeklyAP - EPConversionCap
		}
	}

	return domain.ExpertPermitIncome{
		TotalWeekly: taskIncome + conversion,
		TaskOnly:    taskIncome,
		APOnly:      conversion,
		APPotential: potential,
		IsMaxed:     isMaxed,
		WastedAP:    wasted,
	}
}
