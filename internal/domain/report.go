package domain

import "strings"

// ReportTier is an activity report denomination, ordered from the most
// valuable (Superior) to the least (Novice).
type ReportTier int

const (
	ReportSuperior ReportTier = iota
	ReportAdvanced
	ReportNormal
	ReportNovice
)

// Report EXP values
const (
	ReportExpSuperior = 10000
	ReportExpAdvanced = 2000
	ReportExpNormal   = 500
	ReportExpNovice   = 50
)

// ReportTiers lists every tier from highest to lowest value.
var ReportTiers = []ReportTier{ReportSuperior, ReportAdvanced, ReportNormal, ReportNovice}

var reportTierNames = map[ReportTier]string{
	ReportSuperior: "superior",
	ReportAdvanced: "advanced",
	ReportNormal:   "normal",
	ReportNovice:   "novice",
}

// ParseReportTier maps a tier name to its tier. An empty name means Superior.
// Unknown names return Novice so that only the lowest tier is used.
func ParseReportTier(name string) ReportTier {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ReportSuperior
	}
	for tier, n := range reportTierNames {
		if n == name {
			return tier
		}
	}
	return ReportNovice
}

func (t ReportTier) String() string {
	if n, ok := reportTierNames[t]; ok {
		return n
	}
	return "unknown"
}

// Exp returns the EXP granted by one report of this tier.
func (t ReportTier) Exp() int {
	switch t {
	case ReportSuperior:
		return ReportExpSuperior
	case ReportAdvanced:
		return ReportExpAdvanced
	case ReportNormal:
		return ReportExpNormal
	case ReportNovice:
		return ReportExpNovice
	default:
		return 0
	}
}

// ReportAllocation is a count of reports per tier.
type ReportAllocation struct {
	Superior int `json:"superior"`
	Advanced int `json:"advanced"`
	Normal   int `json:"normal"`
	Novice   int `json:"novice"`
}

// Count returns the number of reports of the given tier.
func (a ReportAllocation) Count(t ReportTier) int {
	switch t {
	case ReportSuperior:
		return a.Superior
	case ReportAdvanced:
		return a.Advanced
	case ReportNormal:
		return a.Normal
	case ReportNovice:
		return a.Novice
	default:
		return 0
	}
}

// With returns a copy with the count of tier t replaced.
func (a ReportAllocation) With(t ReportTier, count int) ReportAllocation {
	switch t {
	case ReportSuperior:
		a.Superior = count
	case ReportAdvanced:
		a.Advanced = count
	case ReportNormal:
		a.Normal = count
	case ReportNovice:
		a.Novice = count
	}
	return a
}
