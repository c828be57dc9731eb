package handler

import (
	"net/http"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
	"github.com/osse101/SchalePlanner_Go/internal/sensei"
)

// SenseiDaysRequest asks how long it takes to reach a target account level
type SenseiDaysRequest struct {
	Level       int             `json:"level" validate:"min=1,max=90"`
	CurrentExp  domain.Progress `json:"current_exp"`
	TargetLevel int             `json:"target_level" validate:"min=1,max=90"`
	DailyIncome int             `json:"daily_income" validate:"min=0,max=1000000000"`
}

// CapacityResponse describes the AP capacity of an account level
type CapacityResponse struct {
	Level           int     `json:"level"`
	BaseCapacity    int     `json:"base_capacity"`
	BoostMultiplier float64 `json:"boost_multiplier"`
	RequiredExp     int     `json:"required_exp"`
}

// HandleSenseiPlan runs every account estimate for a level and economy
// @Summary Account plan
// @Description Daily AP income, days to the target level, weekly Expert Permit income and hoarding EXP
// @Tags sensei
// @Accept json
// @Produce json
// @Param request body domain.SenseiPlanRequest true "Account state"
// @Success 200 {object} domain.SenseiPlan
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/sensei/plan [post]
func HandleSenseiPlan(svc sensei.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SenseiPlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sensei plan"); err != nil {
			return
		}

		plan := svc.Plan(req)
		metrics.RecordCalculation(metrics.CalculatorSenseiPlan)
		respondJSON(w, http.StatusOK, plan)
	}
}

// HandleSenseiDays estimates the days to reach a target level at a given
// starting daily income
// @Summary Days to target level
// @Tags sensei
// @Accept json
// @Produce json
// @Param request body SenseiDaysRequest true "Level, progress, target and daily AP"
// @Success 200 {object} domain.TargetEstimate
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/sensei/days [post]
func HandleSenseiDays(svc sensei.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SenseiDaysRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sensei days"); err != nil {
			return
		}

		estimate := svc.DaysToTarget(req.Level, req.CurrentExp, req.TargetLevel, req.DailyIncome)
		metrics.RecordCalculation(metrics.CalculatorSenseiDays)
		respondJSON(w, http.StatusOK, estimate)
	}
}

// HandleSenseiCapacity returns the base AP capacity and boost of a level.
// The level is read leniently; unreadable values mean level 1.
// @Summary AP capacity of a level
// @Tags sensei
// @Produce json
// @Param level query string true "Account level"
// @Success 200 {object} CapacityResponse
// @Router /api/v1/sensei/capacity [get]
func HandleSenseiCapacity(svc sensei.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level := sensei.ParseLevel(GetOptionalQueryParam(r, QueryParamLevel, ""))

		metrics.RecordCalculation(metrics.CalculatorSenseiCapacity)
		respondJSON(w, http.StatusOK, CapacityResponse{
			Level:           level,
			BaseCapacity:    sensei.BaseCapacity(level),
			BoostMultiplier: sensei.BoostMultiplier(level),
			RequiredExp:     svc.RequiredExp(level),
		})
	}
}
