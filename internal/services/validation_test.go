package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseUserID(t *testing.T) {
	t.Run("valid ids", func(t *testing.T) {
		for raw, want := range map[string]int64{
			"1":     1,
			"64209": 64209,
			"90":    90,
		} {
			id, err := ParseUserID(raw)
			assert.NoError(t, err)
			assert.Equal(t, want, id)
		}
	})

	t.Run("rejected formats", func(t *testing.T) {
		for _, raw := range []string{"", "0", "064209", "64209aba", "1234AB1234", "-5", "12.5", " 12"} {
			_, err := ParseUserID(raw)
			assert.Error(t, err, "expected %q to be rejected", raw)
		}
	})
}

func TestIsDigitString(t *testing.T) {
	assert.True(t, IsDigitString("2025"))
	assert.True(t, IsDigitString("6"))
	assert.False(t, IsDigitString("06"))
	assert.False(t, IsDigitString("20a5"))
	assert.False(t, IsDigitString(""))
	assert.False(t, IsDigitString("-2025"))
}

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	type payload struct {
		UserID FlexibleID `json:"userid"`
	}

	t.Run("json number", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"userid":64209}`), &p))
		assert.Equal(t, FlexibleID("64209"), p.UserID)
	})

	t.Run("digit string", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"userid":"64209"}`), &p))
		assert.Equal(t, FlexibleID("64209"), p.UserID)
	})

	t.Run("garbage string kept raw for the format check", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"userid":"64209aba"}`), &p))
		_, err := ParseUserID(string(p.UserID))
		assert.Error(t, err)
	})

	t.Run("fractional number fails the format check", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"userid":64209.5}`), &p))
		_, err := ParseUserID(string(p.UserID))
		assert.Error(t, err)
	})
}

func TestParseCostDate(t *testing.T) {
	t.Run("empty defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		parsed, err := ParseCostDate("")
		assert.NoError(t, err)
		assert.False(t, parsed.Before(before.Add(-time.Second)))
		assert.False(t, parsed.After(time.Now().UTC().Add(time.Second)))
	})

	t.Run("date only", func(t *testing.T) {
		parsed, err := ParseCostDate("2024-10-10")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rfc3339", func(t *testing.T) {
		parsed, err := ParseCostDate("2024-10-05T13:45:00Z")
		assert.NoError(t, err)
		assert.Equal(t, 5, parsed.Day())
	})

	t.Run("unparseable", func(t *testing.T) {
		_, err := ParseCostDate("word")
		assert.Error(t, err)
	})
}

func TestSendErrorResponse(t *testing.T) {
	t.Run("error response without validation errors", func(t *testing.T) {
		w := httptest.NewRecorder()

		SendErrorResponse(w, "Something went wrong", http.StatusInternalServerError, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Something went wrong", response.ErrorMessage)
		assert.Nil(t, response.Details)
	})

	t.Run("error response with validation details", func(t *testing.T) {
		vh := NewValidationHelper()
		req := AddCostRequest{Category: "gaming", UserID: "64209"}
		err := vh.ValidateStruct(&req)
		assert.Error(t, err)

		w := httptest.NewRecorder()
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Validation failed", response.ErrorMessage)
		assert.Contains(t, response.Details, "Category")
		assert.Contains(t, response.Details, "Description")
	})
}
