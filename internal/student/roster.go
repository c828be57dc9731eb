package student

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// GroupName labels the roster group at index: "A".."Z", then "AA", "AB" and
// so on. Negative indexes are treated as 0.
func GroupName(index int) string {
	index = utils.ClampMin(index, 0)

	var name []byte
	for n := index + 1; n > 0; n = (n - 1) / groupAlphabetSize {
		name = append([]byte{groupAlphabet[(n-1)%groupAlphabetSize]}, name...)
	}
	return string(name)
}

// AdjustCount returns a copy of plan with count moved by delta, never below
// MinCount. An unset count starts from MinCount.
func AdjustCount(plan domain.StudentPlan, delta int) domain.StudentPlan {
	plan.Count = utils.ClampMin(effectiveCount(plan.Count)+delta, MinCount)
	return plan
}

// FormatExp renders n with thousands separators, e.g. 1,234,567.
func FormatExp(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

func effectiveCount(count int) int {
	if count < MinCount {
		return MinCount
	}
	return count
}
