// Package sensei models account (Sensei) progression: AP income, the
// day-by-day climb to a target level and weekly Expert Permit income.
package sensei

import (
	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/leveling"
)

// Service defines the account progression calculations
type Service interface {
	RequiredExp(level int) int
	DailyIncome(cfg domain.EconomyConfig, level int) int
	DaysToTarget(currentLevel int, progress domain.Progress, targetLevel, startDailyIncome int) domain.TargetEstimate
	Plan(req domain.SenseiPlanRequest) domain.SenseiPlan
}

type service struct {
	expTable               *leveling.Table
	cafeAP                 *leveling.BonusTable
	doubleExpIntervalWeeks int
}

// NewService creates a new account progression service over the account EXP
// table and the cafe rank AP table.
func NewService(expTable *leveling.Table, cafeAP *leveling.BonusTable, doubleExpIntervalWeeks int) Service {
	if doubleExpIntervalWeeks <= 0 {
		doubleExpIntervalWeeks = DefaultDoubleExpIntervalWeeks
	}
	return &service{
		expTable:               expTable,
		cafeAP:                 cafeAP,
		doubleExpIntervalWeeks: doubleExpIntervalWeeks,
	}
}

// RequiredExp returns the EXP needed to leave level, 0 at MaxLevel.
func (s *service) RequiredExp(level int) int {
	return s.expTable.RequiredExp(level)
}

// Plan runs every account estimate for one request.
func (s *service) Plan(req domain.SenseiPlanRequest) domain.SenseiPlan {
	daily := s.DailyIncome(req.Economy, req.Level)
	multiplier := BoostMultiplier(req.Level)

	return domain.SenseiPlan{
		Level:                  req.Level,
		TargetLevel:            req.TargetLevel,
		BaseCapacity:           BaseCapacity(req.Level),
		BoostMultiplier:        multiplier,
		DailyIncome:            daily,
		Target:                 s.DaysToTarget(req.Level, req.Progress, req.TargetLevel, daily),
		ExpertPermit:           WeeklyPermitIncome(req.Level, req.Economy, daily),
		HoardingWeeklyExp:      HoardingWeeklyExp(req.Economy, daily, multiplier),
		DoubleExpIntervalWeeks: s.doubleExpIntervalWeeks,
	}
}
