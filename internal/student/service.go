// Package student estimates character leveling costs and the activity
// reports needed to cover them.
package student

import (
	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/leveling"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// Service defines student leveling calculations over a student EXP table
type Service interface {
	TotalExpNeeded(currentLevel, targetLevel, currentExp int) int
	TotalCreditNeeded(currentLevel, targetLevel, currentExp int) int
	NextLevelExp(level int) int
	PlanExpNeeded(plan domain.StudentPlan, senseiLevel int) int
	Estimate(expNeeded int, maxTier domain.ReportTier) domain.StudentEstimate
	RosterEstimate(plans []domain.StudentPlan, senseiLevel int, maxTier domain.ReportTier) domain.StudentEstimate
}

type service struct {
	expTable *leveling.Table
}

// NewService creates a new student service
func NewService(expTable *leveling.Table) Service {
	return &service{expTable: expTable}
}

// TotalExpNeeded sums the table from currentLevel to targetLevel-1 and
// subtracts EXP already earned, never going below zero.
func (s *service) TotalExpNeeded(currentLevel, targetLevel, currentExp int) int {
	if currentLevel >= targetLevel {
		return 0
	}
	return utils.ClampMin(s.expTable.Sum(currentLevel, targetLevel)-currentExp, 0)
}

// TotalCreditNeeded is the credit cost of TotalExpNeeded.
func (s *service) TotalCreditNeeded(currentLevel, targetLevel, currentExp int) int {
	return utils.SaturatingMul(s.TotalExpNeeded(currentLevel, targetLevel, currentExp), CreditsPerExp)
}

// NextLevelExp returns the EXP to go from level to level+1, 0 at MaxLevel.
func (s *service) NextLevelExp(level int) int {
	if level >= MaxLevel {
		return 0
	}
	return s.expTable.RequiredExp(level)
}

// PlanExpNeeded is the EXP for a whole roster group. Students cannot level
// past the account level, so the target is capped at senseiLevel.
func (s *service) PlanExpNeeded(plan domain.StudentPlan, senseiLevel int) int {
	target := min(plan.TargetLevel, senseiLevel)
	return utils.SaturatingMul(s.TotalExpNeeded(plan.CurrentLevel, target, plan.CurrentExp), effectiveCount(plan.Count))
}

// Estimate builds the full cost breakdown for expNeeded. Totals saturate at
// math.MaxInt instead of wrapping.
func (s *service) Estimate(expNeeded int, maxTier domain.ReportTier) domain.StudentEstimate {
	expNeeded = utils.ClampMin(expNeeded, 0)
	alloc := OptimalAllocation(expNeeded, maxTier)

	return domain.StudentEstimate{
		ExpNeeded:     expNeeded,
		CreditsNeeded: utils.SaturatingMul(expNeeded, CreditsPerExp),
		Reports:       alloc,
		ReportsExp:    ExpFromReports(alloc),
		Display:       FormatExp(expNeeded),
	}
}

// RosterEstimate totals every group of the roster and estimates the result.
func (s *service) RosterEstimate(plans []domain.StudentPlan, senseiLevel int, maxTier domain.ReportTier) domain.StudentEstimate {
	total := 0
	for _, plan := range plans {
		total = utils.SaturatingAdd(total, s.PlanExpNeeded(plan, senseiLevel))
	}
	return s.Estimate(total, maxTier)
}
