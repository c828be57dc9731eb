package sensei

import (
	"math"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// DaysToTarget simulates leveling from currentLevel to targetLevel one level
// at a time. Daily AP grows with the base capacity of each level while the
// other income sources stay fixed, and the boost multiplier of each level
// applies to that level only. Fractional days are summed and rounded up once.
func (s *service) DaysToTarget(currentLevel int, progress domain.Progress, targetLevel, startDailyIncome int) domain.TargetEstimate {
	if currentLevel >= targetLevel || startDailyIncome <= 0 {
		return domain.TargetEstimate{}
	}

	initialCapacity := BaseCapacity(currentLevel)

	totalExp := 0
	totalDays := 0.0
	for lv := currentLevel; lv < targetLevel; lv++ {
		expForLevel := s.expTable.RequiredExp(lv)
		if lv == currentLevel {
			expForLevel = utils.ClampMin(expForLevel-progress.Against(expForLevel), 0)
		}
		totalExp += expForLevel

		dailyAP := startDailyIncome + (BaseCapacity(lv) - initialCapacity)
		dailyGain := float64(dailyAP) * BoostMultiplier(lv)
		totalDays += float64(expForLevel) / dailyGain
	}

	return domain.TargetEstimate{
		ExpNeeded: totalExp,
		Days:      int(math.Ceil(totalDays)),
	}
}
