// Package leveling wraps the sparse level -> EXP tables shared by every
// progression simulator.
package leveling

import "sort"

// Table maps a level to the experience required to advance to the next one.
// Levels at or beyond MaxLevel cost nothing. A Table is immutable once built
// and safe for concurrent reads.
type Table struct {
	name     string
	maxLevel int
	entries  map[int]int
}

// NewTable copies entries into a new Table. Entries at or beyond maxLevel are
// kept but never returned by RequiredExp.
func NewTable(name string, maxLevel int, entries map[int]int) *Table {
	copied := make(map[int]int, len(entries))
	for lv, exp := range entries {
		copied[lv] = exp
	}
	return &Table{name: name, maxLevel: maxLevel, entries: copied}
}

// Name identifies the table in logs and errors.
func (t *Table) Name() string {
	return t.name
}

// MaxLevel is the first level with no further cost.
func (t *Table) MaxLevel() int {
	return t.maxLevel
}

// RequiredExp returns the EXP needed to go from level to level+1.
// It returns 0 at or beyond the maximum level and for levels missing from
// the table; callers treat 0 as "no further cost".
func (t *Table) RequiredExp(level int) int {
	if level >= t.maxLevel {
		return 0
	}
	return t.entries[level]
}

// Entry reports the raw table value for level and whether it exists below
// the maximum level.
func (t *Table) Entry(level int) (int, bool) {
	if level >= t.maxLevel {
		return 0, false
	}
	exp, ok := t.entries[level]
	return exp, ok
}

// Sum adds RequiredExp for every level in [from, to).
func (t *Table) Sum(from, to int) int {
	total := 0
	for lv := from; lv < to; lv++ {
		total += t.RequiredExp(lv)
	}
	return total
}

// Missing lists the levels in [1, MaxLevel) that have no entry.
func (t *Table) Missing() []int {
	var gaps []int
	for lv := 1; lv < t.maxLevel; lv++ {
		if _, ok := t.entries[lv]; !ok {
			gaps = append(gaps, lv)
		}
	}
	return gaps
}

// Levels returns the defined levels in ascending order.
func (t *Table) Levels() []int {
	levels := make([]int, 0, len(t.entries))
	for lv := range t.entries {
		levels = append(levels, lv)
	}
	sort.Ints(levels)
	return levels
}

// BonusTable maps a rank key to a flat bonus. Unknown ranks give 0.
type BonusTable struct {
	entries map[string]int
}

// NewBonusTable copies entries into a new BonusTable.
func NewBonusTable(entries map[string]int) *BonusTable {
	copied := make(map[string]int, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &BonusTable{entries: copied}
}

// Bonus returns the bonus for rank, or 0 when the rank is unknown.
func (b *BonusTable) Bonus(rank string) int {
	if b == nil {
		return 0
	}
	return b.entries[rank]
}

// Len returns the number of ranks.
func (b *BonusTable) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
