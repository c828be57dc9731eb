package domain

// TargetEstimate is the cost of reaching a target account level.
type TargetEstimate struct {
	ExpNeeded int `json:"exp_needed"`
	Days      int `json:"days"`
}

// ExpertPermitIncome is the weekly Expert Permit breakdown.
type ExpertPermitIncome struct {
	TotalWeekly int  `json:"total_weekly"`
	TaskOnly    int  `json:"task_only"`
	APOnly      int  `json:"ap_only"`
	APPotential int  `json:"ap_potential"`
	IsMaxed     bool `json:"is_maxed"`
	WastedAP    int  `json:"wasted_ap"`
}

// SenseiPlanRequest is the input of a full account plan.
type SenseiPlanRequest struct {
	Level       int           `json:"level" validate:"min=1,max=90"`
	Progress    Progress      `json:"current_exp"`
	TargetLevel int           `json:"target_level" validate:"min=1,max=90"`
	Economy     EconomyConfig `json:"economy"`
}

// SenseiPlan bundles every account-level estimate for one request.
type SenseiPlan struct {
	Level                  int                `json:"level"`
	TargetLevel            int                `json:"target_level"`
	BaseCapacity           int                `json:"base_capacity"`
	BoostMultiplier        float64            `json:"boost_multiplier"`
	DailyIncome            int                `json:"daily_income"`
	Target                 TargetEstimate     `json:"target"`
	ExpertPermit           ExpertPermitIncome `json:"expert_permit"`
	HoardingWeeklyExp      int                `json:"hoarding_weekly_exp"`
	DoubleExpIntervalWeeks int                `json:"double_exp_interval_weeks"`
}
