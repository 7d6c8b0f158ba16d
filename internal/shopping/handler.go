package shopping

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/gymplan/internal/plan"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	source         NutritionSource
	metricsManager *metrics.Manager
}

func NewHandler(source NutritionSource, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		source:         source,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/shopping/build", handler.HandleBuild).
		Methods("POST", "OPTIONS").Name("shopping-build")
}

type buildRequest struct {
	Phase string   `json:"phase"`
	Weeks []int    `json:"weeks"`
	Days  []string `json:"days"`
}

// HandleBuild aggregates the selected day plans into a shopping list. The
// list is returned to the caller, not persisted; saving it is a separate
// store write.
func (handler *Handler) HandleBuild(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	phase, ok := plan.ParsePhase(req.Phase)
	if !ok {
		http.Error(w, "error, invalid phase", http.StatusBadRequest)
		return
	}
	if len(req.Weeks) == 0 || len(req.Days) == 0 {
		http.Error(w, "error, weeks and days must not be empty", http.StatusBadRequest)
		return
	}

	var selections []plan.WeekDay
	for _, week := range req.Weeks {
		for _, rawDay := range req.Days {
			day, ok := plan.ParseDay(rawDay)
			if !ok {
				http.Error(w, "error, invalid day", http.StatusBadRequest)
				return
			}
			selections = append(selections, plan.WeekDay{Week: week, Day: day})
		}
	}

	items := Build(phase, selections, handler.source)
	list := NewList(selections, items)
	handler.metricsManager.CounterShoppingListsBuilt.Inc()

	listBytes, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal shopping list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", listBytes)
}
