package sensei

import (
	"math"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
)

// DailyIncome returns the total daily AP of an account under the given
// economy. It is the sum of base capacity, every enabled bonus, the manual
// amount, the cafe rank AP and refresh purchases.
func (s *service) DailyIncome(cfg domain.EconomyConfig, level int) int {
	ap := float64(BaseCapacity(level))

	if cfg.DailyTask {
		ap += APDailyTask
	}
	if cfg.ClubLogin {
		ap += APClubLogin
	}
	if cfg.WeeklyTask {
		ap += APWeeklyTask
	}
	if cfg.LoginBonus {
		ap += APLoginBonus
	}
	if cfg.FreeShop {
		ap += APFreeShop
	}
	if cfg.TwoWeekPack {
		ap += APTwoWeekPack
	}

	ap += float64(cfg.CustomAP.Int())
	ap += float64(s.cafeAP.Bonus(cfg.CafeRank))

	ap += float64(cfg.PvPRefreshes * APPerPvPRefresh)
	ap += float64(cfg.PyroRefreshes * APPerPyroRefresh)

	return int(math.Floor(ap))
}
