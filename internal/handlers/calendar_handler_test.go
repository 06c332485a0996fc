package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func calendarRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/calendar", NewCalendarHandler("America/Sao_Paulo").Month)
	return r
}

type calendarResponse struct {
	Calendar struct {
		Year  int     `json:"year"`
		Month int     `json:"month"`
		Weeks [][]int `json:"weeks"`
	} `json:"calendar"`
	DisabledDays []int    `json:"disabled_days"`
	Hours        []string `json:"hours"`
}

func TestCalendarMonthExplicit(t *testing.T) {
	r := calendarRouter()

	req := httptest.NewRequest(http.MethodGet, "/calendar?year=2021&month=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp calendarResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Calendar.Year != 2021 || resp.Calendar.Month != 2 {
		t.Errorf("unexpected month %d/%d", resp.Calendar.Month, resp.Calendar.Year)
	}
	if len(resp.Calendar.Weeks) != 5 {
		t.Errorf("expected 5 week rows for Feb 2021, got %d", len(resp.Calendar.Weeks))
	}
	if len(resp.Hours) == 0 {
		t.Error("expected the booking hours list")
	}

	// February 2021 is entirely in the past: every day is disabled.
	if len(resp.DisabledDays) != 28 {
		t.Errorf("expected 28 disabled days, got %d", len(resp.DisabledDays))
	}
}

func TestCalendarMonthRejectsBadInput(t *testing.T) {
	r := calendarRouter()

	for _, path := range []string{
		"/calendar?month=13",
		"/calendar?month=0",
		"/calendar?year=abc",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestCalendarMonthDefaultsToCurrent(t *testing.T) {
	r := calendarRouter()

	req := httptest.NewRequest(http.MethodGet, "/calendar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp calendarResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Calendar.Year < 2024 {
		t.Errorf("unexpected default year %d", resp.Calendar.Year)
	}
}
