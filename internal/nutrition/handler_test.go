package nutrition

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNutritionRouter(t *testing.T) *mux.Router {
	t.Helper()

	dataRoot := t.TempDir()
	writeTable(t, dataRoot, "mantenimiento/semana1/lunes.csv", lunesTable)
	writeTable(t, dataRoot, "mantenimiento/semana1/martes.csv", lunesTable)

	router := mux.NewRouter()
	NewHandler(NewSource(dataRoot)).SetupRoutes(router)
	return router
}

func getJSON(t *testing.T, router *mux.Router, path string, target any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), target))
	}
	return rr.Code
}

func TestHandler_Day(t *testing.T) {
	router := testNutritionRouter(t)

	var dayData DayNutrition
	code := getJSON(t, router, "/nutrition/mantenimiento/week/1/day/lunes", &dayData)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dayData.Meals, 3)
	assert.Equal(t, float64(45), dayData.Totals.Proteins)

	// absent day
	req := httptest.NewRequest(http.MethodGet, "/nutrition/mantenimiento/week/1/day/viernes", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// bad inputs
	req = httptest.NewRequest(http.MethodGet, "/nutrition/bulking/week/1/day/lunes", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/nutrition/mantenimiento/week/1/day/monday", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_WeekSummaryAndGoals(t *testing.T) {
	router := testNutritionRouter(t)

	var summary WeeklySummary
	code := getJSON(t, router, "/nutrition/mantenimiento/week/1/summary", &summary)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, summary.Week)
	assert.Equal(t, float64(90), summary.WeeklyTotals.Proteins)
	// two days with data
	assert.Equal(t, float64(45), summary.AverageDaily.Proteins)

	var goals GoalProgress
	code = getJSON(t, router, "/nutrition/mantenimiento/week/1/goals", &goals)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(45), goals.Protein.Current)
	assert.Equal(t, float64(ProteinGoal), goals.Protein.Goal)
}

func TestHandler_CombinedSummary(t *testing.T) {
	router := testNutritionRouter(t)

	var combined WeeklySummary
	code := getJSON(t, router, "/nutrition/mantenimiento/summary", &combined)
	require.Equal(t, http.StatusOK, code)
	// week 2 has no data: combined totals equal week 1 totals
	assert.Equal(t, float64(90), combined.WeeklyTotals.Proteins)
}
