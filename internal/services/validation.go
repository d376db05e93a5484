package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	ErrorMessage string            `json:"errorMessage"`      // Error message
	Details      map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{
		validator: validator.New(),
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResp := ErrorResponse{ErrorMessage: message}
	if validationErr != nil {
		errorResp.Details = make(map[string]string)
		for _, err := range validationErr.(validator.ValidationErrors) {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}

	json.NewEncoder(w).Encode(errorResp)
}

// User ids are digit strings with no leading zero and never zero.
var userIDRegex = regexp.MustCompile(`^[1-9][0-9]*$`)

// ParseUserID validates the strict user id format and converts it.
func ParseUserID(raw string) (int64, error) {
	if !userIDRegex.MatchString(raw) {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return strconv.ParseInt(raw, 10, 64)
}

// IsDigitString reports whether raw is a positive integer with no
// leading zero, the format required for year and month parameters.
func IsDigitString(raw string) bool {
	return userIDRegex.MatchString(raw)
}

// FlexibleID accepts a JSON number or string and keeps the raw digits
// so the strict format check still sees what the client sent.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

var costDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCostDate parses an optional cost date, defaulting to now.
func ParseCostDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	for _, layout := range costDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
