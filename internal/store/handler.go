package store

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/2beens/gymplan/internal/middleware"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Handler exposes the store contract over a single POST endpoint, the way
// the browser client consumes it:
//
//	POST /api/database {action: get|set|delete|clear, key, value?, userId}
type Handler struct {
	store          Store
	metricsManager *metrics.Manager
}

func NewHandler(store Store, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:          store,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	databaseSubrouter := mainRouter.PathPrefix("/api/database").Subrouter()
	databaseSubrouter.HandleFunc("", handler.HandleDatabase).
		Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("database")
	databaseSubrouter.HandleFunc("/scope", handler.HandleNewScope).
		Methods("GET", "OPTIONS").Name("database-scope")

	// rate limit the database endpoint to prevent abuse
	if rateLimiter != nil && allowedPerMin > 0 {
		databaseSubrouter.Use(middleware.RateLimit(rateLimiter, "database", allowedPerMin, metricsManager))
	}
}

type databaseRequest struct {
	Action string          `json:"action"`
	Key    string          `json:"key"`
	Value  json.RawMessage `json:"value,omitempty"`
	UserID string          `json:"userId"`
}

func setDatabaseCorsHeaders(w http.ResponseWriter) {
	// this endpoint is served to any origin, unlike the rest of the API
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (handler *Handler) HandleDatabase(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setDatabaseCorsHeaders(w)
		w.WriteHeader(http.StatusOK)
		return
	}

	setDatabaseCorsHeaders(w)

	if r.Method != http.MethodPost {
		writeDatabaseError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	var req databaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDatabaseError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.UserID == "" {
		writeDatabaseError(w, http.StatusBadRequest, "userId is required", "")
		return
	}

	handler.metricsManager.CounterStoreOps.WithLabelValues(req.Action).Inc()

	ctx := r.Context()
	switch req.Action {
	case "get":
		value, err := handler.store.Get(ctx, req.UserID, req.Key)
		if err != nil {
			log.Errorf("database get [%s]: %s", req.Key, err)
			writeDatabaseError(w, http.StatusInternalServerError, "internal server error", err.Error())
			return
		}
		data := json.RawMessage("null")
		if value != nil {
			data = value
		}
		pkg.WriteResponseBytes(w, "application/json", []byte(fmt.Sprintf(`{"data": %s}`, data)))

	case "set":
		if err := handler.store.Set(ctx, req.UserID, req.Key, req.Value); err != nil {
			log.Errorf("database set [%s]: %s", req.Key, err)
			writeDatabaseError(w, http.StatusInternalServerError, "internal server error", err.Error())
			return
		}
		pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))

	case "delete":
		if err := handler.store.Delete(ctx, req.UserID, req.Key); err != nil {
			log.Errorf("database delete [%s]: %s", req.Key, err)
			writeDatabaseError(w, http.StatusInternalServerError, "internal server error", err.Error())
			return
		}
		pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))

	case "clear":
		if err := handler.store.Clear(ctx, req.UserID); err != nil {
			log.Errorf("database clear: %s", err)
			writeDatabaseError(w, http.StatusInternalServerError, "internal server error", err.Error())
			return
		}
		pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))

	default:
		writeDatabaseError(w, http.StatusBadRequest, "invalid action", req.Action)
	}
}

// HandleNewScope hands out a fresh user scope token. The token is not an
// account: the client keeps it for the session, and a lost token orphans
// the data stored under it.
func (handler *Handler) HandleNewScope(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setDatabaseCorsHeaders(w)
		w.WriteHeader(http.StatusOK)
		return
	}

	setDatabaseCorsHeaders(w)

	userID := fmt.Sprintf("user_%s", uuid.NewString())
	pkg.WriteResponseBytes(w, "application/json", []byte(fmt.Sprintf(`{"userId": %q}`, userID)))
}

func writeDatabaseError(w http.ResponseWriter, status int, errMsg, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := struct {
		Error   string `json:"error"`
		Details string `json:"details,omitempty"`
	}{Error: errMsg, Details: details}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("write database error response: %s", err)
	}
}
