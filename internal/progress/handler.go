package progress

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/gymplan/internal/shopping"
	"github.com/2beens/gymplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// userIDHeader carries the caller's store scope on the typed endpoints.
// The raw /api/database endpoint takes the scope in the body instead.
const userIDHeader = "X-Gym-User"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/progress", handler.HandleList).
		Methods("GET", "OPTIONS").Name("progress-list")
	router.HandleFunc("/progress", handler.HandleAdd).
		Methods("POST").Name("progress-add")
	router.HandleFunc("/progress/copy-week", handler.HandleCopyWeek).
		Methods("POST", "OPTIONS").Name("progress-copy-week")
	router.HandleFunc("/progress/export", handler.HandleExport).
		Methods("GET", "OPTIONS").Name("progress-export")
	router.HandleFunc("/progress/import", handler.HandleImport).
		Methods("POST", "OPTIONS").Name("progress-import")
	router.HandleFunc("/progress/clear", handler.HandleClear).
		Methods("POST", "OPTIONS").Name("progress-clear")
	router.HandleFunc("/progress/shopping-lists", handler.HandleShoppingLists).
		Methods("GET", "OPTIONS").Name("progress-shopping-lists")
	router.HandleFunc("/progress/shopping-lists", handler.HandleAddShoppingList).
		Methods("POST").Name("progress-add-shopping-list")
	router.HandleFunc("/progress/shopping-lists/{index}", handler.HandleDeleteShoppingList).
		Methods("DELETE", "OPTIONS").Name("progress-delete-shopping-list")
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		http.Error(w, "error, user header missing", http.StatusBadRequest)
		return "", false
	}
	return userID, true
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	progressList, err := handler.service.WorkoutProgressList(r.Context(), userID)
	if err != nil {
		log.Errorf("list workout progress: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if progressList == nil {
		progressList = []WorkoutProgress{}
	}

	writeProgressJSON(w, progressList)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var record WorkoutProgress
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if record.ExerciseID == "" || record.Day == "" || record.Week == 0 {
		http.Error(w, "error, exerciseId, day and week are required", http.StatusBadRequest)
		return
	}

	if err := handler.service.AddWorkoutProgress(r.Context(), userID, record); err != nil {
		log.Errorf("add workout progress [%s]: %s", record.ExerciseID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))
}

func (handler *Handler) HandleCopyWeek(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		SrcWeek int `json:"srcWeek"`
		DstWeek int `json:"dstWeek"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if req.SrcWeek == req.DstWeek {
		http.Error(w, "error, source and destination week are the same", http.StatusBadRequest)
		return
	}

	copied, err := handler.service.CopyWeekProgress(r.Context(), userID, req.SrcWeek, req.DstWeek)
	if err != nil {
		log.Errorf("copy week progress [%d -> %d]: %s", req.SrcWeek, req.DstWeek, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeProgressJSON(w, struct {
		Copied int `json:"copied"`
	}{Copied: copied})
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	exported, err := handler.service.Export(r.Context(), userID)
	if err != nil {
		log.Errorf("export user data: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="gym-app-export.json"`)
	pkg.WriteResponseBytes(w, "application/json", exported)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	exported, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error, failed to read request body", http.StatusBadRequest)
		return
	}

	if err := handler.service.Import(r.Context(), userID, exported); err != nil {
		log.Errorf("import user data: %s", err)
		http.Error(w, "error, import failed", http.StatusBadRequest)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := handler.service.ClearAll(r.Context(), userID); err != nil {
		log.Errorf("clear user data: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))
}

func (handler *Handler) HandleShoppingLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	lists, err := handler.service.ShoppingLists(r.Context(), userID)
	if err != nil {
		log.Errorf("list shopping lists: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if lists == nil {
		lists = []shopping.List{}
	}

	writeProgressJSON(w, lists)
}

func (handler *Handler) HandleAddShoppingList(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var list shopping.List
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	if err := handler.service.AddShoppingList(r.Context(), userID, list); err != nil {
		log.Errorf("add shopping list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))
}

func (handler *Handler) HandleDeleteShoppingList(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "error, invalid index", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteShoppingList(r.Context(), userID, index); err != nil {
		log.Errorf("delete shopping list [%d]: %s", index, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, "application/json", []byte(`{"success": true}`))
}

func writeProgressJSON(w http.ResponseWriter, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal progress response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", valueBytes)
}
