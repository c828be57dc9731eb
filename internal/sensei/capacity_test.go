package sensei

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseCapacity(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{name: "level 1", level: 1, want: 24},
		{name: "level 10", level: 10, want: 60},
		{name: "level 20 boundary", level: 20, want: 100},
		{name: "level 21", level: 21, want: 102},
		{name: "level 90", level: 90, want: 240},
		{name: "zero treated as level 1", level: 0, want: 24},
		{name: "negative treated as level 1", level: -7, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseCapacity(tt.level))
		})
	}
}

func TestBaseCapacity_ContinuousAtBreak(t *testing.T) {
	low := capacityLowBase + capacityLowPerLevel*capacityBreakLevel

	assert.Equal(t, capacityHighBase, low)
	assert.Equal(t, BaseCapacity(capacityBreakLevel)+capacityHighPerLevel, BaseCapacity(capacityBreakLevel+1))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, 35, ParseLevel("35"))
	assert.Equal(t, 1, ParseLevel("abc"))
	assert.Equal(t, 1, ParseLevel(""))
	assert.Equal(t, 1, ParseLevel("0"))
	assert.Equal(t, 1, ParseLevel("-4"))
	assert.Equal(t, 12, ParseLevel("12.9"))
}

func TestBoostMultiplier(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 2.0},
		{20, 2.0},
		{21, 1.5},
		{40, 1.5},
		{41, 1.25},
		{50, 1.25},
		{51, 1.0},
		{90, 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BoostMultiplier(tt.level), "level %d", tt.level)
	}
}

func TestBoostMultiplier_NonIncreasing(t *testing.T) {
	prev := BoostMultiplier(1)
	for lv := 2; lv <= 100; lv++ {
		cur := BoostMultiplier(lv)
		assert.LessOrEqual(t, cur, prev, "multiplier rose at level %d", lv)
		prev = cur
	}
}
