package handler

import (
	"net/http"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
	"github.com/osse101/SchalePlanner_Go/internal/student"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// StudentReportsRequest asks for the report mix covering an EXP amount
type StudentReportsRequest struct {
	ExpNeeded int    `json:"exp_needed" validate:"min=0,max=1000000000"`
	MaxTier   string `json:"max_tier" validate:"report_tier"`
}

// StudentCostRequest asks for the total cost of leveling a roster
type StudentCostRequest struct {
	SenseiLevel int                  `json:"sensei_level" validate:"min=1,max=90"`
	MaxTier     string               `json:"max_tier" validate:"report_tier"`
	Students    []domain.StudentPlan `json:"students" validate:"required,min=1,max=200,dive"`
}

// StudentGroupCost is the cost of one roster group
type StudentGroupCost struct {
	Group         string `json:"group"`
	Name          string `json:"name,omitempty"`
	ExpNeeded     int    `json:"exp_needed"`
	CreditsNeeded int    `json:"credits_needed"`
	NextLevelExp  int    `json:"next_level_exp"`
}

// StudentCostResponse is the roster total with a per-group breakdown
type StudentCostResponse struct {
	domain.StudentEstimate
	Groups []StudentGroupCost `json:"groups"`
}

// HandleStudentReports returns the activity reports needed for an EXP amount
// @Summary Report allocation
// @Description Greedy allocation of activity reports no better than max_tier
// @Tags student
// @Accept json
// @Produce json
// @Param request body StudentReportsRequest true "EXP needed and highest report tier"
// @Success 200 {object} domain.StudentEstimate
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/student/reports [post]
func HandleStudentReports(svc student.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StudentReportsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Student reports"); err != nil {
			return
		}

		estimate := svc.Estimate(req.ExpNeeded, domain.ParseReportTier(req.MaxTier))
		metrics.RecordCalculation(metrics.CalculatorStudentReports)
		respondJSON(w, http.StatusOK, estimate)
	}
}

// HandleStudentCost totals the EXP, credits and reports of a roster
// @Summary Roster leveling cost
// @Description Student targets are capped at the account level
// @Tags student
// @Accept json
// @Produce json
// @Param request body StudentCostRequest true "Roster"
// @Success 200 {object} StudentCostResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/student/cost [post]
func HandleStudentCost(svc student.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StudentCostRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Student cost"); err != nil {
			return
		}

		groups := make([]StudentGroupCost, 0, len(req.Students))
		for i, plan := range req.Students {
			exp := svc.PlanExpNeeded(plan, req.SenseiLevel)
			groups = append(groups, StudentGroupCost{
				Group:         student.GroupName(i),
				Name:          plan.Name,
				ExpNeeded:     exp,
				CreditsNeeded: utils.SaturatingMul(exp, student.CreditsPerExp),
				NextLevelExp:  svc.NextLevelExp(plan.CurrentLevel),
			})
		}

		estimate := svc.RosterEstimate(req.Students, req.SenseiLevel, domain.ParseReportTier(req.MaxTier))
		metrics.RecordCalculation(metrics.CalculatorStudentCost)
		respondJSON(w, http.StatusOK, StudentCostResponse{StudentEstimate: estimate, Groups: groups})
	}
}
