package workout

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/2beens/gymplan/internal/plan"
)

// The maintenance plan is a markdown document per week. Each day lives
// under a recognizable "## ... <header>" section, and the exercises under a
// "### ENTRENAMIENTO" subsection inside it.

const exerciseSectionHeading = "### ENTRENAMIENTO"

var dayHeaders = map[plan.Day]string{
	plan.Lunes:     "LUNES - EMPUJE",
	plan.Martes:    "MARTES - CARDIO HIIT + CORE",
	plan.Miercoles: "MIÉRCOLES - TIRÓN",
	plan.Jueves:    "JUEVES - CARDIO MODERADO + MOVILIDAD",
	plan.Viernes:   "VIERNES - PIERNAS",
	plan.Sabado:    "SÁBADO - CARDIO + ACCESORIOS",
	plan.Domingo:   "DOMINGO - DESCANSO",
}

var workoutTypes = map[plan.Day]string{
	plan.Lunes:     "Empuje (Pecho, Hombros, Tríceps)",
	plan.Martes:    "Cardio HIIT + Core",
	plan.Miercoles: "Tirón (Espalda, Bíceps)",
	plan.Jueves:    "Cardio Moderado + Movilidad",
	plan.Viernes:   "Piernas (Cuádriceps, Glúteos, Isquios)",
	plan.Sabado:    "Cardio + Accesorios",
	plan.Domingo:   "Descanso activo",
}

// Numbered exercise lines: "1. **Press banca** - 3x12"
var numberedExerciseRe = regexp.MustCompile(`^\d+\.\s*\*\*([^*]+)\*\*\s*-\s*(\d+)x(\d+)`)

// lineRule captures one exercise when a line contains all of its trigger
// substrings. The cardio and accessories days are written as free prose in
// the source document, so they cannot be matched by the numbered-line
// pattern; instead each known exercise is declared here, data-driven. A
// line that matches no rule yields no exercise - never an error.
type lineRule struct {
	triggers []string
	exercise Exercise
}

var dayRules = map[plan.Day][]lineRule{
	plan.Martes: {
		{
			triggers: []string{"**Calentamiento:**"},
			exercise: Exercise{Name: "Calentamiento", Sets: 1, Reps: 0, Notes: "5 min caminata"},
		},
		{
			triggers: []string{"**HIIT en cinta:**"},
			exercise: Exercise{
				Name: "HIIT en cinta", Sets: 1, Reps: 0,
				Notes: "10 intervalos de 45seg sprint (85-90% FCmax) + 75seg caminata. Total: 20 minutos",
			},
		},
		{
			triggers: []string{"Rueda abdominal", "3x12"},
			exercise: Exercise{Name: "Rueda abdominal", Sets: 1, Reps: 0, Notes: "3x12 repeticiones"},
		},
		{
			triggers: []string{"Crunches bicicleta", "3x20"},
			exercise: Exercise{Name: "Crunches bicicleta", Sets: 1, Reps: 0, Notes: "3x20 repeticiones"},
		},
		{
			triggers: []string{"Elevaciones piernas", "3x15"},
			exercise: Exercise{Name: "Elevaciones piernas", Sets: 1, Reps: 0, Notes: "3x15 repeticiones"},
		},
		{
			triggers: []string{"**Enfriamiento:**"},
			exercise: Exercise{Name: "Enfriamiento", Sets: 1, Reps: 0, Notes: "5 min caminata"},
		},
	},
	plan.Jueves: {
		{
			triggers: []string{"**Cardio:**"},
			exercise: Exercise{
				Name: "Cardio", Sets: 1, Reps: 0,
				Notes: "45 min caminata inclinada (8-10% inclinación, 5-6 km/h)",
			},
		},
		{
			triggers: []string{"Estiramientos dinámicos", "10 min"},
			exercise: Exercise{Name: "Estiramientos dinámicos", Sets: 1, Reps: 0, Notes: "10 min"},
		},
		{
			triggers: []string{"Foam rolling", "10 min"},
			exercise: Exercise{Name: "Foam rolling", Sets: 1, Reps: 0, Notes: "10 min"},
		},
		{
			triggers: []string{"Estiramientos estáticos", "10 min"},
			exercise: Exercise{Name: "Estiramientos estáticos", Sets: 1, Reps: 0, Notes: "10 min"},
		},
	},
	plan.Sabado: {
		{
			triggers: []string{"**Cardio:**"},
			exercise: Exercise{
				Name: "Cardio", Sets: 1, Reps: 0,
				Notes: "35 min cardio mixto (15 min cinta inclinada + 20 min elíptica o bici)",
			},
		},
		{
			triggers: []string{"**Abductor en máquina**", "3x12"},
			exercise: Exercise{Name: "Abductor en máquina", Sets: 3, Reps: 12},
		},
		{
			triggers: []string{"**Aductor en máquina**", "3x12"},
			exercise: Exercise{Name: "Aductor en máquina", Sets: 3, Reps: 12},
		},
		{
			triggers: []string{"**Farmer Walk**", "3x12"},
			exercise: Exercise{Name: "Farmer Walk", Sets: 3, Reps: 12},
		},
		{
			triggers: []string{"**Triceps OverHead**", "3x12"},
			exercise: Exercise{Name: "Triceps OverHead", Sets: 3, Reps: 12},
		},
		{
			triggers: []string{"**Bayesian bíceps**", "3x12"},
			exercise: Exercise{Name: "Bayesian bíceps", Sets: 3, Reps: 12},
		},
		{
			triggers: []string{"**Triceps mancuerna o barra Z**", "3x12"},
			exercise: Exercise{Name: "Triceps mancuerna o barra Z", Sets: 3, Reps: 12},
		},
		{
			triggers: []string{"**Elevación lateral en máquina**", "3x12"},
			exercise: Exercise{Name: "Elevación lateral en máquina", Sets: 3, Reps: 12},
		},
	},
}

func (r lineRule) matches(line string) bool {
	for _, trigger := range r.triggers {
		if !strings.Contains(line, trigger) {
			return false
		}
	}
	return true
}

// ParseMaintenanceDay extracts the exercises of one day from the weekly
// markdown document. Lines outside the day's section or its ENTRENAMIENTO
// subsection are ignored; unmatched lines inside it are skipped silently.
func ParseMaintenanceDay(document string, day plan.Day) []Exercise {
	header, ok := dayHeaders[day]
	if !ok {
		return nil
	}

	lines := strings.Split(document, "\n")
	rules := dayRules[day]

	var exercises []Exercise
	inSection := false
	inExerciseList := false

	for _, rawLine := range lines {
		line := strings.TrimSpace(rawLine)

		if strings.Contains(line, header) {
			inSection = true
			continue
		}
		if inSection && line == exerciseSectionHeading {
			inExerciseList = true
			continue
		}
		// another ### heading ends the exercise subsection
		if inSection && inExerciseList && strings.HasPrefix(line, "###") {
			break
		}
		// another day's ## section ends this day
		if inSection && strings.Contains(line, "##") && !strings.Contains(line, header) {
			break
		}

		if !inSection || !inExerciseList || line == "" {
			continue
		}

		if len(rules) > 0 {
			for _, rule := range rules {
				if rule.matches(line) {
					ex := rule.exercise
					ex.ID = ExerciseID(day, ex.Name)
					exercises = append(exercises, ex)
				}
			}
			continue
		}

		if m := numberedExerciseRe.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			sets, _ := strconv.Atoi(m[2])
			reps, _ := strconv.Atoi(m[3])
			exercises = append(exercises, Exercise{
				ID:   ExerciseID(day, name),
				Name: name,
				Sets: sets,
				Reps: reps,
			})
		}
	}

	return dedupeByID(exercises)
}

// MaintenanceDayWorkout returns the whole day: exercises plus the workout
// type label.
func MaintenanceDayWorkout(document string, day plan.Day) *Day {
	workoutType, ok := workoutTypes[day]
	if !ok {
		workoutType = "Entrenamiento"
	}
	return &Day{
		Day:       day,
		Type:      workoutType,
		Exercises: ParseMaintenanceDay(document, day),
	}
}

// dedupeByID keeps the first occurrence of every exercise id.
func dedupeByID(exercises []Exercise) []Exercise {
	seen := make(map[string]bool, len(exercises))
	var unique []Exercise
	for _, ex := range exercises {
		if seen[ex.ID] {
			continue
		}
		seen[ex.ID] = true
		unique = append(unique, ex)
	}
	return unique
}
