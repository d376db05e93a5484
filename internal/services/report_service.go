package services

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/costmanager/backend/internal/models"
	"github.com/costmanager/backend/internal/repository"
)

const (
	msgMissingParams    = "Missing required parameter. id, year, and month are required query parameters."
	msgBadUserIDFormat  = "Invalid User ID. User ID must contain only digits."
	msgUserDoesNotExist = "User does not exist."
	msgBadYearOrMonth   = "Received invalid year or month values. Please supply suitable values (month: 1-12)."
)

// ReportService is the report engine: cache lookup, on-miss
// aggregation over the cost store, cache population. Staleness is
// handled entirely by the write path deleting the affected bucket.
type ReportService struct {
	users   repository.UserRepository
	costs   repository.CostRepository
	cache   repository.ReportCache
	minYear int
	maxYear int
}

func NewReportService(users repository.UserRepository, costs repository.CostRepository, cache repository.ReportCache) *ReportService {
	viper.SetDefault("report.min_year", 1970)
	viper.SetDefault("report.max_year", time.Now().Year())
	return &ReportService{
		users:   users,
		costs:   costs,
		cache:   cache,
		minYear: viper.GetInt("report.min_year"),
		maxYear: viper.GetInt("report.max_year"),
	}
}

// reportResponse is the wire shape of a report; the cache entry's
// createdAt is internal and never leaves the server.
type reportResponse struct {
	UserID int64                  `json:"userid"`
	Year   int                    `json:"year"`
	Month  int                    `json:"month"`
	Costs  []models.CategoryGroup `json:"costs"`
}

// GetReport returns the monthly categorized report for a user
// @Summary Get a monthly cost report
// @Description Returns the cost breakdown for one user and month, grouped by category. Served from the report cache when a valid entry exists.
// @Tags reports
// @Produce json
// @Param id query string true "User ID"
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Success 200 {object} object{userid=int,year=int,month=int,costs=[]object}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /report [get]
func (s *ReportService) GetReport(w http.ResponseWriter, r *http.Request) {
	idQuery := r.URL.Query().Get("id")
	yearQuery := r.URL.Query().Get("year")
	monthQuery := r.URL.Query().Get("month")

	if idQuery == "" || yearQuery == "" || monthQuery == "" {
		SendErrorResponse(w, msgMissingParams, http.StatusBadRequest, nil)
		return
	}

	userID, err := ParseUserID(idQuery)
	if err != nil {
		SendErrorResponse(w, msgBadUserIDFormat, http.StatusBadRequest, nil)
		return
	}

	if !IsDigitString(yearQuery) || !IsDigitString(monthQuery) {
		SendErrorResponse(w, msgBadYearOrMonth, http.StatusBadRequest, nil)
		return
	}
	year, _ := strconv.Atoi(yearQuery)
	month, _ := strconv.Atoi(monthQuery)
	if month < 1 || month > 12 || year < s.minYear || year > s.maxYear {
		SendErrorResponse(w, msgBadYearOrMonth, http.StatusBadRequest, nil)
		return
	}

	ctx := r.Context()

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		log.Printf("[REPORT] User lookup failed for %d: %v", userID, err)
		SendErrorResponse(w, "Internal server error: "+err.Error(), http.StatusInternalServerError, nil)
		return
	}
	if !exists {
		SendErrorResponse(w, msgUserDoesNotExist, http.StatusNotFound, nil)
		return
	}

	// Cache hit short-circuits all aggregation.
	cached, err := s.cache.Get(ctx, userID, year, month)
	if err != nil {
		log.Printf("[REPORT] Cache lookup failed for %d/%d/%d: %v", userID, year, month, err)
	}
	if cached != nil {
		log.Printf("[REPORT] Returning cached report for user %d, %d/%d", userID, month, year)
		s.writeReport(w, cached)
		return
	}

	filteredCosts, err := s.costs.FindByUserMonth(ctx, userID, year, month)
	if err != nil {
		log.Printf("[REPORT] Cost query failed for user %d: %v", userID, err)
		SendErrorResponse(w, "Internal server error: "+err.Error(), http.StatusInternalServerError, nil)
		return
	}

	report := BuildReport(userID, year, month, filteredCosts)

	// Best-effort population: a failure is logged, never surfaced.
	if err := s.cache.Put(ctx, report); err != nil {
		log.Printf("[REPORT] Failed to cache report for user %d, %d/%d: %v", userID, month, year, err)
	} else {
		log.Printf("[REPORT] Report cached for user %d, %d/%d", userID, month, year)
	}

	s.writeReport(w, report)
}

func (s *ReportService) writeReport(w http.ResponseWriter, report *models.Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(reportResponse{
		UserID: report.UserID,
		Year:   report.Year,
		Month:  report.Month,
		Costs:  report.Costs,
	})
}

// BuildReport partitions the month's costs into the fixed categories,
// preserving store order within each. Every category is present even
// when empty. Rows with a category outside the known set are skipped;
// they can only come from data inserted before enum enforcement.
func BuildReport(userID int64, year, month int, costs []models.Cost) *models.Report {
	grouped := make(map[string][]models.ReportItem, len(models.Categories))
	for _, category := range models.Categories {
		grouped[category] = []models.ReportItem{}
	}

	for _, cost := range costs {
		if _, ok := grouped[cost.Category]; !ok {
			log.Printf("[REPORT] No matching category %q for cost item, skipping", cost.Category)
			continue
		}
		grouped[cost.Category] = append(grouped[cost.Category], models.ReportItem{
			Sum:         cost.Sum,
			Description: cost.Description,
			Day:         cost.Date.UTC().Day(),
		})
	}

	categorized := make([]models.CategoryGroup, 0, len(models.Categories))
	for _, category := range models.Categories {
		categorized = append(categorized, models.CategoryGroup{category: grouped[category]})
	}

	return &models.Report{
		UserID:    userID,
		Year:      year,
		Month:     month,
		Costs:     categorized,
		CreatedAt: time.Now().UTC(),
	}
}
