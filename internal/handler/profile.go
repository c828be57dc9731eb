package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
	"github.com/osse101/SchalePlanner_Go/internal/profile"
	"github.com/osse101/SchalePlanner_Go/internal/sensei"
)

// ProfileRequest is the editable part of a planner profile
type ProfileRequest struct {
	Name        string               `json:"name" validate:"required,max=64"`
	Level       int                  `json:"level" validate:"min=1,max=90"`
	CurrentExp  domain.Progress      `json:"current_exp"`
	TargetLevel int                  `json:"target_level" validate:"min=1,max=90"`
	Economy     domain.EconomyConfig `json:"economy"`
}

func (req ProfileRequest) toProfile(id uuid.UUID) domain.Profile {
	return domain.Profile{
		ID:          id,
		Name:        req.Name,
		Level:       req.Level,
		Progress:    req.CurrentExp,
		TargetLevel: req.TargetLevel,
		Economy:     req.Economy,
	}
}

// ProfileHandlers serves saved planner profiles
type ProfileHandlers struct {
	profiles profile.Service
	sensei   sensei.Service
}

// NewProfileHandlers creates profile handlers
func NewProfileHandlers(profiles profile.Service, senseiSvc sensei.Service) *ProfileHandlers {
	return &ProfileHandlers{profiles: profiles, sensei: senseiSvc}
}

// HandleCreate saves a new profile
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body ProfileRequest true "Profile"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profiles [post]
func (h *ProfileHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create profile"); err != nil {
			return
		}

		p, err := h.profiles.Create(r.Context(), req.toProfile(uuid.Nil))
		if err != nil {
			respondServiceError(w, r, "Create profile", err)
			return
		}
		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleList returns saved profiles, most recently updated first
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Profile
// @Router /api/v1/profiles [get]
func (h *ProfileHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, profile.DefaultListLimit)
		if !ok {
			return
		}
		offset, ok := GetOptionalIntQueryParam(r, w, QueryParamOffset, 0)
		if !ok {
			return
		}

		profiles, err := h.profiles.List(r.Context(), limit, offset)
		if err != nil {
			respondServiceError(w, r, "List profiles", err)
			return
		}
		respondJSON(w, http.StatusOK, profiles)
	}
}

// HandleGet returns one profile
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{id} [get]
func (h *ProfileHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := profileID(w, r)
		if !ok {
			return
		}

		p, err := h.profiles.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleUpdate replaces a profile
// @Summary Update profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body ProfileRequest true "Profile"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{id} [put]
func (h *ProfileHandlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := profileID(w, r)
		if !ok {
			return
		}
		var req ProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		p, err := h.profiles.Update(r.Context(), req.toProfile(id))
		if err != nil {
			respondServiceError(w, r, "Update profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleDelete removes a profile
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{id} [delete]
func (h *ProfileHandlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := profileID(w, r)
		if !ok {
			return
		}

		if err := h.profiles.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete profile", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeleted})
	}
}

// HandlePlan runs the account plan for a saved profile
// @Summary Plan for a saved profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.SenseiPlan
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{id}/plan [get]
func (h *ProfileHandlers) HandlePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := profileID(w, r)
		if !ok {
			return
		}

		p, err := h.profiles.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Profile plan", err)
			return
		}

		plan := h.sensei.Plan(domain.SenseiPlanRequest{
			Level:       p.Level,
			Progress:    p.Progress,
			TargetLevel: p.TargetLevel,
			Economy:     p.Economy,
		})
		metrics.RecordCalculation(metrics.CalculatorSenseiPlan)
		respondJSON(w, http.StatusOK, plan)
	}
}

func profileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, URLParamID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidProfileID)
		return uuid.Nil, false
	}
	return id, true
}
