package progress

import (
	"time"

	"github.com/2beens/gymplan/internal/plan"
)

// WorkoutProgress is the one genuinely user-generated entity: the weights
// recorded for an exercise on a given day and week.
//
// Identity is the composite (ExerciseID, Day, Week, IsAlternative,
// AlternativeIndex); at most one record exists per identity, and saves are
// upserts, never appends. Alternatives of a volume exercise share the
// parent's ExerciseID, so the weight sequence is one and the same
// regardless of which variant was performed.
type WorkoutProgress struct {
	ExerciseID       string    `json:"exerciseId"`
	Day              plan.Day  `json:"day"`
	Week             int       `json:"week"`
	Weights          []float64 `json:"weights"`
	SeriesCount      int       `json:"seriesCount,omitempty"`
	Date             time.Time `json:"date"`
	IsAlternative    bool      `json:"isAlternative,omitempty"`
	AlternativeIndex *int      `json:"alternativeIndex,omitempty"`
	Observations     string    `json:"observations,omitempty"`
}

// MaintenanceWeightSlots is the fixed number of weight slots of the
// maintenance tracker. The volume tracker sizes its slots from the
// exercise's series range instead.
const MaintenanceWeightSlots = 3

// SameIdentity reports whether two records describe the same logical
// entry.
func (p WorkoutProgress) SameIdentity(other WorkoutProgress) bool {
	if p.ExerciseID != other.ExerciseID || p.Day != other.Day || p.Week != other.Week {
		return false
	}
	if p.IsAlternative != other.IsAlternative {
		return false
	}
	return altIndexEqual(p.AlternativeIndex, other.AlternativeIndex)
}

func altIndexEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// TableColumn is a persisted nutrition-table column preference. The whole
// ordered array is replaced on every save; there is no per-column patch.
type TableColumn struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// DefaultTableColumns returns the column set used before the user has
// saved any preference.
func DefaultTableColumns() []TableColumn {
	return []TableColumn{
		{Key: "comida", Label: "Comida", Visible: false},
		{Key: "alimento", Label: "Alimento", Visible: true},
		{Key: "cantidad", Label: "Cantidad", Visible: true},
		{Key: "proteinas", Label: "Proteínas", Visible: false},
		{Key: "grasas", Label: "Grasas", Visible: false},
		{Key: "carbs", Label: "Carbs", Visible: false},
		{Key: "fibra", Label: "Fibra", Visible: false},
		{Key: "calorias", Label: "Calorías", Visible: false},
	}
}

const (
	DefaultTheme       = "dark"
	DefaultCurrentWeek = 1
	DefaultCurrentDay  = plan.Lunes
)
