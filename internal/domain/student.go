package domain

// StudentPlan is one roster entry: a group of identical students to level.
type StudentPlan struct {
	Name         string `json:"name"`
	CurrentLevel int    `json:"current_level" validate:"min=1,max=90"`
	TargetLevel  int    `json:"target_level" validate:"min=1,max=90"`
	CurrentExp   int    `json:"current_exp" validate:"min=0,max=1000000000"`
	Count        int    `json:"count" validate:"max=999"`
}

// StudentEstimate is the leveling cost of a set of students.
type StudentEstimate struct {
	ExpNeeded     int              `json:"exp_needed"`
	CreditsNeeded int              `json:"credits_needed"`
	Reports       ReportAllocation `json:"reports"`
	ReportsExp    int              `json:"reports_exp"`
	Display       string           `json:"display"`
}
