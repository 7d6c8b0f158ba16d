package progress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/gymplan/internal/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProgressRouter(t *testing.T) *mux.Router {
	t.Helper()
	router := mux.NewRouter()
	NewHandler(NewService(store.NewMemoryStore())).SetupRoutes(router)
	return router
}

func progressReq(t *testing.T, router *mux.Router, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandler_MissingUserHeader(t *testing.T) {
	router := testProgressRouter(t)

	rr := progressReq(t, router, http.MethodGet, "/progress", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_AddAndList(t *testing.T) {
	router := testProgressRouter(t)

	rr := progressReq(t, router, http.MethodGet, "/progress", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	record := `{"exerciseId":"lunes-press-banca","day":"lunes","week":1,"weights":[40,42.5,45],"date":"2025-03-01T10:00:00Z"}`
	rr = progressReq(t, router, http.MethodPost, "/progress", "user_1", record)
	require.Equal(t, http.StatusOK, rr.Code)

	// saving the same identity again upserts
	updated := `{"exerciseId":"lunes-press-banca","day":"lunes","week":1,"weights":[45,47.5,50],"date":"2025-03-08T10:00:00Z"}`
	rr = progressReq(t, router, http.MethodPost, "/progress", "user_1", updated)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = progressReq(t, router, http.MethodGet, "/progress", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var progressList []WorkoutProgress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progressList))
	require.Len(t, progressList, 1)
	assert.Equal(t, []float64{45, 47.5, 50}, progressList[0].Weights)

	// incomplete record
	rr = progressReq(t, router, http.MethodPost, "/progress", "user_1", `{"exerciseId":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_CopyWeek(t *testing.T) {
	router := testProgressRouter(t)

	record := `{"exerciseId":"lunes-press-banca","day":"lunes","week":1,"weights":[40],"date":"2025-03-01T10:00:00Z"}`
	rr := progressReq(t, router, http.MethodPost, "/progress", "user_1", record)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = progressReq(t, router, http.MethodPost, "/progress/copy-week", "user_1", `{"srcWeek":1,"dstWeek":2}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"copied": 1}`, rr.Body.String())

	rr = progressReq(t, router, http.MethodPost, "/progress/copy-week", "user_1", `{"srcWeek":1,"dstWeek":1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_ExportImportClear(t *testing.T) {
	router := testProgressRouter(t)

	record := `{"exerciseId":"lunes-press-banca","day":"lunes","week":1,"weights":[40],"date":"2025-03-01T10:00:00Z"}`
	rr := progressReq(t, router, http.MethodPost, "/progress", "user_1", record)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = progressReq(t, router, http.MethodGet, "/progress/export", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	exported := rr.Body.String()
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "gym-app-export.json")

	rr = progressReq(t, router, http.MethodPost, "/progress/clear", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = progressReq(t, router, http.MethodGet, "/progress", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	rr = progressReq(t, router, http.MethodPost, "/progress/import", "user_1", exported)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = progressReq(t, router, http.MethodGet, "/progress", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var progressList []WorkoutProgress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progressList))
	assert.Len(t, progressList, 1)

	rr = progressReq(t, router, http.MethodPost, "/progress/import", "user_1", "garbage")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_ShoppingLists(t *testing.T) {
	router := testProgressRouter(t)

	rr := progressReq(t, router, http.MethodGet, "/progress/shopping-lists", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	list := `{"selectedWeeks":[1],"selectedDays":["lunes"],"items":[{"alimento":"Avena","cantidad":80,"unidad":"g","purchased":false}],"generatedDate":"2025-03-01T10:00:00Z"}`
	rr = progressReq(t, router, http.MethodPost, "/progress/shopping-lists", "user_1", list)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = progressReq(t, router, http.MethodGet, "/progress/shopping-lists", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Avena")

	rr = progressReq(t, router, http.MethodDelete, "/progress/shopping-lists/0", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = progressReq(t, router, http.MethodGet, "/progress/shopping-lists", "user_1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
