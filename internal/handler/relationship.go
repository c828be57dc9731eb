package handler

import (
	"net/http"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
	"github.com/osse101/SchalePlanner_Go/internal/relationship"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// RelationshipExpRequest asks for the EXP between two ranks
type RelationshipExpRequest struct {
	CurrentRank   int `json:"current_rank" validate:"min=1,max=100"`
	TargetRank    int `json:"target_rank" validate:"min=1,max=100"`
	AlreadyEarned int `json:"already_earned" validate:"min=0,max=1000000000"`
}

// RelationshipExpResponse is the EXP still needed
type RelationshipExpResponse struct {
	ExpNeeded int `json:"exp_needed"`
}

// RelationshipRankRequest spends EXP, given directly or as gifts, from a rank
type RelationshipRankRequest struct {
	StartRank int              `json:"start_rank" validate:"min=1,max=100"`
	AddedExp  int              `json:"added_exp" validate:"min=0,max=1000000000"`
	Gifts     []domain.GiftUse `json:"gifts" validate:"max=100,dive"`
}

// RelationshipRankResponse is the rank reached and the EXP that was spent
type RelationshipRankResponse struct {
	domain.RankResult
	SpentExp int `json:"spent_exp"`
}

// GiftPreferencesRequest lists the gifts a student loves and likes
type GiftPreferencesRequest struct {
	Love  []int `json:"love" validate:"max=100"`
	Liked []int `json:"liked" validate:"max=100"`
}

// RelationshipHandlers serves relationship rank calculations and the gift catalog
type RelationshipHandlers struct {
	svc     relationship.Service
	catalog *relationship.Catalog
}

// NewRelationshipHandlers creates relationship handlers
func NewRelationshipHandlers(svc relationship.Service, catalog *relationship.Catalog) *RelationshipHandlers {
	return &RelationshipHandlers{svc: svc, catalog: catalog}
}

// HandleExp returns the EXP needed from one rank to another
// @Summary Relationship EXP needed
// @Tags relationship
// @Accept json
// @Produce json
// @Param request body RelationshipExpRequest true "Ranks"
// @Success 200 {object} RelationshipExpResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/relationship/exp [post]
func (h *RelationshipHandlers) HandleExp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RelationshipExpRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Relationship EXP"); err != nil {
			return
		}

		need := h.svc.ExpNeeded(req.CurrentRank, req.TargetRank, req.AlreadyEarned)
		metrics.RecordCalculation(metrics.CalculatorRelationshipExp)
		respondJSON(w, http.StatusOK, RelationshipExpResponse{ExpNeeded: need})
	}
}

// HandleRank returns the rank reached after spending EXP and gifts
// @Summary Rank after EXP
// @Tags relationship
// @Accept json
// @Produce json
// @Param request body RelationshipRankRequest true "Start rank and EXP to spend"
// @Success 200 {object} RelationshipRankResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/relationship/rank [post]
func (h *RelationshipHandlers) HandleRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RelationshipRankRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Relationship rank"); err != nil {
			return
		}

		giftExp, err := h.catalog.ExpFromGifts(req.Gifts)
		if err != nil {
			respondServiceError(w, r, "Relationship rank", err)
			return
		}

		spent := utils.SaturatingAdd(req.AddedExp, giftExp)
		result := h.svc.RankAfterExp(req.StartRank, spent)
		metrics.RecordCalculation(metrics.CalculatorRelationshipRank)
		respondJSON(w, http.StatusOK, RelationshipRankResponse{RankResult: result, SpentExp: spent})
	}
}

// HandleGiftSearch fuzzy-searches gifts by name or alias
// @Summary Search gifts
// @Tags relationship
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results"
// @Success 200 {array} domain.Gift
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/relationship/gifts/search [get]
func (h *RelationshipHandlers) HandleGiftSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, QueryParamQuery)
		if !ok {
			return
		}
		limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, relationship.DefaultSearchLimit)
		if !ok {
			return
		}

		gifts := h.catalog.Search(query, limit)
		if gifts == nil {
			gifts = []domain.Gift{}
		}
		metrics.RecordCalculation(metrics.CalculatorGiftSearch)
		respondJSON(w, http.StatusOK, gifts)
	}
}

// HandleGiftPreferences orders a student's loved and liked gifts by reaction
// @Summary Rank gift preferences
// @Tags relationship
// @Accept json
// @Produce json
// @Param request body GiftPreferencesRequest true "Loved and liked gift IDs"
// @Success 200 {array} domain.GiftPreference
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/relationship/gifts/preferences [post]
func (h *RelationshipHandlers) HandleGiftPreferences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GiftPreferencesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Gift preferences"); err != nil {
			return
		}

		prefs := h.catalog.RankPreferences(req.Love, req.Liked)
		metrics.RecordCalculation(metrics.CalculatorGiftPreferences)
		respondJSON(w, http.StatusOK, prefs)
	}
}
