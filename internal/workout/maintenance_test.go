package workout

import (
	"testing"

	"github.com/2beens/gymplan/internal/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maintenancePlanDoc = `# PLAN SEMANAL

## LUNES - EMPUJE

### ENTRENAMIENTO

1. **Press banca** - 4x10
2. **Press militar** - 3x12
3. **Fondos en paralelas** - 3x12
1. **Press banca** - 4x10
texto suelto que no es un ejercicio

### NOTAS

nada que ver aqui

## MARTES - CARDIO HIIT + CORE

### ENTRENAMIENTO

- **Calentamiento:** 5 min caminata
- **HIIT en cinta:** 10 intervalos
- Rueda abdominal 3x12
- Crunches bicicleta 3x20
- Elevaciones piernas 3x15
- **Enfriamiento:** 5 min caminata

## DOMINGO - DESCANSO

### ENTRENAMIENTO

descanso total
`

func TestParseMaintenanceDay_NumberedExercises(t *testing.T) {
	exercises := ParseMaintenanceDay(maintenancePlanDoc, plan.Lunes)
	require.Len(t, exercises, 3) // duplicated press banca deduped

	assert.Equal(t, "lunes-press-banca", exercises[0].ID)
	assert.Equal(t, "Press banca", exercises[0].Name)
	assert.Equal(t, 4, exercises[0].Sets)
	assert.Equal(t, 10, exercises[0].Reps)

	assert.Equal(t, "Press militar", exercises[1].Name)
	assert.Equal(t, "Fondos en paralelas", exercises[2].Name)
}

func TestParseMaintenanceDay_RuleBasedDay(t *testing.T) {
	exercises := ParseMaintenanceDay(maintenancePlanDoc, plan.Martes)
	require.Len(t, exercises, 6)

	assert.Equal(t, "Calentamiento", exercises[0].Name)
	assert.Equal(t, "5 min caminata", exercises[0].Notes)
	assert.Equal(t, "HIIT en cinta", exercises[1].Name)
	assert.Equal(t, "Rueda abdominal", exercises[2].Name)
	assert.Equal(t, "Enfriamiento", exercises[5].Name)

	for _, ex := range exercises {
		assert.Equal(t, ExerciseID(plan.Martes, ex.Name), ex.ID)
	}
}

func TestParseMaintenanceDay_RestDay(t *testing.T) {
	assert.Empty(t, ParseMaintenanceDay(maintenancePlanDoc, plan.Domingo))
}

func TestParseMaintenanceDay_MissingDay(t *testing.T) {
	assert.Empty(t, ParseMaintenanceDay(maintenancePlanDoc, plan.Viernes))
}

func TestMaintenanceDayWorkout(t *testing.T) {
	dayWorkout := MaintenanceDayWorkout(maintenancePlanDoc, plan.Lunes)
	require.NotNil(t, dayWorkout)
	assert.Equal(t, plan.Lunes, dayWorkout.Day)
	assert.Equal(t, "Empuje (Pecho, Hombros, Tríceps)", dayWorkout.Type)
	assert.Len(t, dayWorkout.Exercises, 3)
}
