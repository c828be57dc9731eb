// Package relationship simulates relationship (bond) rank progression and
// ranks the gifts a student reacts to.
package relationship

import (
	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/leveling"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// Service defines relationship rank calculations
type Service interface {
	ExpNeeded(currentRank, targetRank, alreadyEarned int) int
	RankAfterExp(startRank, addedExp int) domain.RankResult
}

type service struct {
	expTable *leveling.Table
}

// NewService creates a new relationship service over the rank EXP table
func NewService(expTable *leveling.Table) Service {
	return &service{expTable: expTable}
}

// ExpNeeded sums the table from currentRank to targetRank-1, minus EXP
// already earned. Ranks missing from the table contribute nothing.
func (s *service) ExpNeeded(currentRank, targetRank, alreadyEarned int) int {
	if currentRank >= targetRank {
		return 0
	}
	return utils.ClampMin(s.expTable.Sum(currentRank, targetRank)-alreadyEarned, 0)
}

// RankAfterExp spends addedExp rank by rank until MaxRank, the first rank
// missing from the table, or a rank that costs more than what is left.
//
// Unlike ExpNeeded, a missing rank halts the climb instead of being free.
func (s *service) RankAfterExp(startRank, addedExp int) domain.RankResult {
	rank := startRank
	remaining := addedExp

	for rank < MaxRank {
		cost, ok := s.expTable.Entry(rank)
		if !ok || remaining < cost {
			break
		}
		remaining -= cost
		rank++
	}

	return domain.RankResult{FinalRank: rank, LeftoverExp: remaining}
}
