package nutrition

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/gymplan/internal/plan"
	"github.com/2beens/gymplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	source *Source
}

func NewHandler(source *Source) *Handler {
	return &Handler{
		source: source,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/nutrition/{phase}/week/{week}", handler.HandleWeek).
		Methods("GET", "OPTIONS").Name("nutrition-week")
	router.HandleFunc("/nutrition/{phase}/week/{week}/day/{day}", handler.HandleDay).
		Methods("GET", "OPTIONS").Name("nutrition-day")
	router.HandleFunc("/nutrition/{phase}/week/{week}/summary", handler.HandleWeekSummary).
		Methods("GET", "OPTIONS").Name("nutrition-week-summary")
	router.HandleFunc("/nutrition/{phase}/week/{week}/goals", handler.HandleWeekGoals).
		Methods("GET", "OPTIONS").Name("nutrition-week-goals")
	router.HandleFunc("/nutrition/{phase}/summary", handler.HandleCombinedSummary).
		Methods("GET", "OPTIONS").Name("nutrition-combined-summary")
}

func phaseAndWeekVars(r *http.Request) (plan.Phase, int, bool) {
	vars := mux.Vars(r)
	phase, ok := plan.ParsePhase(vars["phase"])
	if !ok {
		return "", 0, false
	}
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		return "", 0, false
	}
	return phase, week, true
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	phase, week, ok := phaseAndWeekVars(r)
	if !ok {
		http.Error(w, "error, invalid phase or week", http.StatusBadRequest)
		return
	}
	day, ok := plan.ParseDay(mux.Vars(r)["day"])
	if !ok {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	dayData := handler.source.DayNutrition(phase, week, day)
	if dayData == nil {
		http.Error(w, "no nutrition data", http.StatusNotFound)
		return
	}

	writeJSON(w, dayData)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	phase, week, ok := phaseAndWeekVars(r)
	if !ok {
		http.Error(w, "error, invalid phase or week", http.StatusBadRequest)
		return
	}

	writeJSON(w, handler.source.WeekNutrition(phase, week))
}

func (handler *Handler) HandleWeekSummary(w http.ResponseWriter, r *http.Request) {
	phase, week, ok := phaseAndWeekVars(r)
	if !ok {
		http.Error(w, "error, invalid phase or week", http.StatusBadRequest)
		return
	}

	summary := Summarize(week, handler.source.WeekNutrition(phase, week))
	writeJSON(w, summary)
}

func (handler *Handler) HandleWeekGoals(w http.ResponseWriter, r *http.Request) {
	phase, week, ok := phaseAndWeekVars(r)
	if !ok {
		http.Error(w, "error, invalid phase or week", http.StatusBadRequest)
		return
	}

	summary := Summarize(week, handler.source.WeekNutrition(phase, week))
	writeJSON(w, CalculateGoalProgress(summary.AverageDaily))
}

func (handler *Handler) HandleCombinedSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phase, ok := plan.ParsePhase(vars["phase"])
	if !ok {
		http.Error(w, "error, invalid phase", http.StatusBadRequest)
		return
	}

	combined := Combine(
		Summarize(1, handler.source.WeekNutrition(phase, 1)),
		Summarize(2, handler.source.WeekNutrition(phase, 2)),
	)
	writeJSON(w, combined)
}

func writeJSON(w http.ResponseWriter, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal nutrition response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", valueBytes)
}
