package student

import (
	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// OptimalAllocation splits expNeeded into activity reports, largest first.
// Only tiers at or below maxTier are used, except Novice which is always
// available and rounded up so the allocation never falls short.
func OptimalAllocation(expNeeded int, maxTier domain.ReportTier) domain.ReportAllocation {
	var alloc domain.ReportAllocation
	if expNeeded <= 0 {
		return alloc
	}

	remaining := expNeeded
	for _, tier := range domain.ReportTiers {
		if tier == domain.ReportNovice {
			alloc = alloc.With(tier, utils.CeilDiv(remaining, tier.Exp()))
			break
		}
		if tier < maxTier {
			continue
		}
		alloc = alloc.With(tier, remaining/tier.Exp())
		remaining %= tier.Exp()
	}

	return alloc
}

// ExpFromReports returns the EXP granted by an allocation, saturating at
// math.MaxInt.
func ExpFromReports(alloc domain.ReportAllocation) int {
	total := 0
	for _, tier := range domain.ReportTiers {
		total = utils.SaturatingAdd(total, utils.SaturatingMul(alloc.Count(tier), tier.Exp()))
	}
	return total
}
