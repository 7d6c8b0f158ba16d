package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/gymplan/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlerSetup(t *testing.T) (*mux.Router, *MemoryStore) {
	t.Helper()

	memStore := NewMemoryStore()
	handler := NewHandler(memStore, metrics.NewTestManager())

	router := mux.NewRouter()
	handler.SetupRoutes(router, nil, nil, 0)

	return router, memStore
}

func databaseReq(t *testing.T, router *mux.Router, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/database", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandleDatabase_Options(t *testing.T) {
	router, _ := testHandlerSetup(t)

	rr := databaseReq(t, router, http.MethodOptions, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandleDatabase_MethodNotAllowed(t *testing.T) {
	router, _ := testHandlerSetup(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := databaseReq(t, router, method, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, method)
		// error responses still carry the permissive CORS headers
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestHandleDatabase_BadRequests(t *testing.T) {
	router, _ := testHandlerSetup(t)

	rr := databaseReq(t, router, http.MethodPost, "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = databaseReq(t, router, http.MethodPost, `{"action":"get","key":"gym-app-theme"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "userId is required")

	rr = databaseReq(t, router, http.MethodPost, `{"action":"explode","key":"k","userId":"user_1"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid action")
}

func TestHandleDatabase_GetSetDeleteClear(t *testing.T) {
	router, memStore := testHandlerSetup(t)

	// get of an absent key yields null data
	rr := databaseReq(t, router, http.MethodPost, `{"action":"get","key":"gym-app-theme","userId":"user_1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": null}`, rr.Body.String())

	rr = databaseReq(t, router, http.MethodPost, `{"action":"set","key":"gym-app-theme","value":"dark","userId":"user_1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success": true}`, rr.Body.String())

	rr = databaseReq(t, router, http.MethodPost, `{"action":"get","key":"gym-app-theme","userId":"user_1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": "dark"}`, rr.Body.String())

	// the value is scoped: another user sees null
	rr = databaseReq(t, router, http.MethodPost, `{"action":"get","key":"gym-app-theme","userId":"user_2"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": null}`, rr.Body.String())

	rr = databaseReq(t, router, http.MethodPost, `{"action":"delete","key":"gym-app-theme","userId":"user_1"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = databaseReq(t, router, http.MethodPost, `{"action":"get","key":"gym-app-theme","userId":"user_1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": null}`, rr.Body.String())

	for _, key := range Keys {
		setBody := fmt.Sprintf(`{"action":"set","key":%q,"value":1,"userId":"user_1"}`, key)
		rr = databaseReq(t, router, http.MethodPost, setBody)
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr = databaseReq(t, router, http.MethodPost, `{"action":"clear","userId":"user_1"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	for _, key := range Keys {
		value, err := memStore.Get(context.Background(), "user_1", key)
		require.NoError(t, err)
		assert.Nil(t, value)
	}
}

func TestHandleNewScope(t *testing.T) {
	router, _ := testHandlerSetup(t)

	reqScope := httptest.NewRequest(http.MethodGet, "/api/database/scope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, reqScope)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	var resp struct {
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.UserID, "user_"))
	assert.Greater(t, len(resp.UserID), len("user_"))
}
