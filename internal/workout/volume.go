package workout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/gymplan/internal/plan"
)

// The volume plan is a single structured JSON document with a "plan" array
// of day entries. The mapping to the domain model is direct; only the
// exercise ids are derived.

type volumePlanDoc struct {
	Plan []volumePlanDay `json:"plan"`
}

type volumePlanDay struct {
	Order     int                  `json:"orden"`
	Day       string               `json:"dia"`
	Muscles   string               `json:"musculos"`
	Exercises []volumePlanExercise `json:"ejercicios"`
}

type volumePlanExercise struct {
	Name         string        `json:"nombre"`
	Series       string        `json:"series"`
	Repetitions  string        `json:"repeticiones"`
	Image        string        `json:"imagen"`
	Alternatives []Alternative `json:"alternativas"`
}

// VolumePlan holds the parsed volume program, the same for both weeks.
type VolumePlan struct {
	days map[plan.Day]*Day
}

// ParseVolumePlan decodes the volume plan document.
func ParseVolumePlan(planJSON []byte) (*VolumePlan, error) {
	var doc volumePlanDoc
	if err := json.Unmarshal(planJSON, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal volume plan: %w", err)
	}

	vp := &VolumePlan{
		days: make(map[plan.Day]*Day, len(doc.Plan)),
	}

	for _, planDay := range doc.Plan {
		day, ok := plan.ParseDay(planDay.Day)
		if !ok {
			continue
		}

		workoutDay := &Day{
			Day:     day,
			Order:   planDay.Order,
			Muscles: planDay.Muscles,
			Type:    planDay.Muscles,
		}
		for _, planEx := range planDay.Exercises {
			workoutDay.Exercises = append(workoutDay.Exercises, Exercise{
				ID:           ExerciseID(day, planEx.Name),
				Name:         planEx.Name,
				Series:       planEx.Series,
				Repetitions:  planEx.Repetitions,
				Image:        planEx.Image,
				Alternatives: planEx.Alternatives,
			})
		}

		vp.days[day] = workoutDay
	}

	return vp, nil
}

// DayWorkout returns the plan of one day, or nil when the plan has no
// entry for it.
func (vp *VolumePlan) DayWorkout(day plan.Day) *Day {
	return vp.days[day]
}

// Days returns every planned day, in calendar order.
func (vp *VolumePlan) Days() []*Day {
	var days []*Day
	for _, day := range plan.Days {
		if d, ok := vp.days[day]; ok {
			days = append(days, d)
		}
	}
	return days
}

// ExerciseByID looks up a main exercise of the given day.
func (vp *VolumePlan) ExerciseByID(day plan.Day, exerciseID string) *Exercise {
	workoutDay := vp.days[day]
	if workoutDay == nil {
		return nil
	}
	for i := range workoutDay.Exercises {
		if workoutDay.Exercises[i].ID == exerciseID {
			return &workoutDay.Exercises[i]
		}
	}
	return nil
}

// AlternativeByID materializes an alternative as a standalone exercise
// view. Series and repetitions are inherited from the parent; the id is a
// display key only, progress stays keyed by the parent's id.
func (vp *VolumePlan) AlternativeByID(day plan.Day, exerciseID string, altIndex int) *Exercise {
	parent := vp.ExerciseByID(day, exerciseID)
	if parent == nil || altIndex < 0 || altIndex >= len(parent.Alternatives) {
		return nil
	}

	alt := parent.Alternatives[altIndex]
	return &Exercise{
		ID:          AlternativeID(parent.ID, altIndex),
		Name:        alt.Name,
		Series:      parent.Series,
		Repetitions: parent.Repetitions,
		Image:       alt.Image,
	}
}

// SearchExercises finds exercises whose name, or any alternative's name,
// contains the query (case-insensitive), in day order.
func (vp *VolumePlan) SearchExercises(query string) []Exercise {
	lowerQuery := strings.ToLower(query)

	var matches []Exercise
	for _, workoutDay := range vp.Days() {
		for _, ex := range workoutDay.Exercises {
			if strings.Contains(strings.ToLower(ex.Name), lowerQuery) {
				matches = append(matches, ex)
				continue
			}
			for _, alt := range ex.Alternatives {
				if strings.Contains(strings.ToLower(alt.Name), lowerQuery) {
					matches = append(matches, ex)
					break
				}
			}
		}
	}

	return matches
}
