package workout

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
	router.HandleFunc("/workout/{phase}/week/{week}/day/{day}", handler.HandleDayWorkout).
		Methods("GET", "OPTIONS").Name("workout-day")
	router.HandleFunc("/workout/volumen/days", handler.HandleVolumeDays).
		Methods("GET", "OPTIONS").Name("workout-volume-days")
	router.HandleFunc("/workout/volumen/exercises/search", handler.HandleSearchExercises).
		Methods("GET", "OPTIONS").Name("workout-search")
	router.HandleFunc("/workout/volumen/day/{day}/exercise/{id}", handler.HandleExercise).
		Methods("GET", "OPTIONS").Name("workout-exercise")
}

func (handler *Handler) HandleDayWorkout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phase, ok := plan.ParsePhase(vars["phase"])
	if !ok {
		http.Error(w, "error, invalid phase", http.StatusBadRequest)
		return
	}
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		http.Error(w, "error, invalid week", http.StatusBadRequest)
		return
	}
	day, ok := plan.ParseDay(vars["day"])
	if !ok {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	dayWorkout := handler.source.DayWorkout(phase, week, day)
	if dayWorkout == nil {
		http.Error(w, "no workout for that day", http.StatusNotFound)
		return
	}

	writeWorkoutJSON(w, dayWorkout)
}

func (handler *Handler) HandleVolumeDays(w http.ResponseWriter, r *http.Request) {
	volumePlan, err := handler.source.VolumePlan()
	if err != nil {
		log.Errorf("get volume plan: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeWorkoutJSON(w, volumePlan.Days())
}

func (handler *Handler) HandleSearchExercises(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "error, query [q] is empty", http.StatusBadRequest)
		return
	}

	volumePlan, err := handler.source.VolumePlan()
	if err != nil {
		log.Errorf("get volume plan: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	found := volumePlan.SearchExercises(query)
	if found == nil {
		found = []Exercise{}
	}
	writeWorkoutJSON(w, found)
}

func (handler *Handler) HandleExercise(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	day, ok := plan.ParseDay(vars["day"])
	if !ok {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	volumePlan, err := handler.source.VolumePlan()
	if err != nil {
		log.Errorf("get volume plan: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	exercise := volumePlan.ExerciseByID(day, vars["id"])
	if exercise == nil {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	writeWorkoutJSON(w, exercise)
}

func writeWorkoutJSON(w http.ResponseWriter, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal workout response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, "application/json", valueBytes)
}
