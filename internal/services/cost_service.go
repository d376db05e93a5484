package services

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/costmanager/backend/internal/models"
	"github.com/costmanager/backend/internal/repository"
)

// CostService owns the write path: ledger increment, cost insertion
// and cache invalidation for the bucket the cost lands in.
type CostService struct {
	users     repository.UserRepository
	costs     repository.CostRepository
	cache     repository.ReportCache
	validator *ValidationHelper
}

func NewCostService(users repository.UserRepository, costs repository.CostRepository, cache repository.ReportCache) *CostService {
	return &CostService{
		users:     users,
		costs:     costs,
		cache:     cache,
		validator: NewValidationHelper(),
	}
}

// AddCostRequest is the /add payload. The userid is accepted as a
// JSON number or digit string; sums may be negative (refunds).
type AddCostRequest struct {
	Description string     `json:"description" validate:"required"`
	Category    string     `json:"category" validate:"required,oneof=food health housing sport education"`
	UserID      FlexibleID `json:"userid" validate:"required"`
	Sum         float64    `json:"sum"`
	Date        string     `json:"date,omitempty"`
}

// AddCost records a new cost item
// @Summary Add a cost item
// @Description Persists a cost record, increments the user's running total, and invalidates the cached report for the month the cost lands in.
// @Tags costs
// @Accept json
// @Produce json
// @Param cost body AddCostRequest true "Cost data"
// @Success 201 {object} models.Cost
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /add [post]
func (s *CostService) AddCost(w http.ResponseWriter, r *http.Request) {
	var req AddCostRequest

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	userID, err := ParseUserID(string(req.UserID))
	if err != nil {
		SendErrorResponse(w, msgBadUserIDFormat, http.StatusBadRequest, nil)
		return
	}

	date, err := ParseCostDate(req.Date)
	if err != nil {
		SendErrorResponse(w, "Invalid date value. Supply RFC3339 or YYYY-MM-DD.", http.StatusBadRequest, nil)
		return
	}

	ctx := r.Context()

	// Ledger first: the atomic increment doubles as the existence
	// check, so a missing user aborts before anything is inserted.
	if err := s.users.IncrementTotal(ctx, userID, req.Sum); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			SendErrorResponse(w, "Invalid User ID. User does not exist.", http.StatusNotFound, nil)
			return
		}
		log.Printf("[COST] Ledger update failed for user %d: %v", userID, err)
		SendErrorResponse(w, "Failed to add cost", http.StatusInternalServerError, nil)
		return
	}

	cost := &models.Cost{
		Description: req.Description,
		Category:    req.Category,
		UserID:      userID,
		Sum:         req.Sum,
		Date:        date,
	}

	if err := s.costs.Insert(ctx, cost); err != nil {
		log.Printf("[COST] Insert failed for user %d: %v", userID, err)
		// Compensate the increment so the ledger invariant holds.
		if derr := s.users.IncrementTotal(ctx, userID, -req.Sum); derr != nil {
			log.Printf("[COST] Failed to roll back ledger increment for user %d: %v", userID, derr)
		}
		SendErrorResponse(w, "Failed to add cost", http.StatusInternalServerError, nil)
		return
	}

	// Invalidate the bucket before acknowledging the write so a
	// follow-up report request always sees this cost. Errors are
	// logged only; the insert already succeeded.
	bucket := cost.Date.UTC()
	if err := s.cache.Invalidate(ctx, userID, bucket.Year(), int(bucket.Month())); err != nil {
		log.Printf("[COST] Failed to invalidate cached report for user %d, %d/%d: %v",
			userID, int(bucket.Month()), bucket.Year(), err)
	} else {
		log.Printf("[COST] Cached report for user %d, %d/%d invalidated",
			userID, int(bucket.Month()), bucket.Year())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cost)
}

// DeleteAllCosts wipes every cost record
// @Summary Delete all cost records
// @Description Administrative utility: removes all cost records and flushes the report cache.
// @Tags costs
// @Produce json
// @Success 200 {object} object{success=bool,deleted=int}
// @Failure 500 {object} services.ErrorResponse
// @Router /deletecosts [get]
func (s *CostService) DeleteAllCosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := s.costs.DeleteAll(ctx)
	if err != nil {
		log.Printf("[COST] Bulk delete failed: %v", err)
		SendErrorResponse(w, "Failed to delete costs", http.StatusInternalServerError, nil)
		return
	}

	// Every cached breakdown is stale once the costs are gone.
	if err := s.cache.Flush(ctx); err != nil {
		log.Printf("[COST] Failed to flush report cache after bulk delete: %v", err)
	}

	log.Printf("[COST] Bulk delete removed %d cost records", deleted)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"deleted": deleted,
	})
}
