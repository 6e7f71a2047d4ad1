package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(zerolog.Nop())
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/strategies", h.Strategies)
	r.POST("/optimize", h.Optimize)
	return r
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestStrategies(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/strategies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []strategyDescription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 5)
}

func TestOptimize_ValidRequest(t *testing.T) {
	router := newTestRouter()

	reqBody := OptimizeRequest{
		NumberOfDays: 5,
		Strategy:     "balanced",
		Year:         2025,
		Holidays: []HolidayRequest{
			{Date: "2025-07-04", Name: "Independence Day"},
		},
	}
	payload, err := json.Marshal(reqBody)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body OptimizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.LessOrEqual(t, body.Stats.TotalCTODays, 5)
	assert.NotEmpty(t, body.Days)
}

func TestOptimize_MissingStrategyReturns400(t *testing.T) {
	router := newTestRouter()

	payload := []byte(`{"number_of_days": 5}`)
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestOptimize_MalformedDateReturns400(t *testing.T) {
	router := newTestRouter()

	payload := []byte(`{"number_of_days": 5, "strategy": "balanced", "holidays": [{"date": "not-a-date"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptimize_RecurringCompanyDayOffWithoutWeekdayReturns400(t *testing.T) {
	router := newTestRouter()

	payload := []byte(`{
		"number_of_days": 5,
		"strategy": "balanced",
		"company_days_off": [{"is_recurring": true, "start_date": "2025-01-01", "end_date": "2025-03-31"}]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
