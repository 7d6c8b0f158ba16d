package nutrition

import (
	"strings"

	"github.com/2beens/gymplan/internal/plan"
)

// Item is one row of a day's meal plan table. All fields are kept as the
// raw strings from the source table; numeric interpretation happens only
// when totals are computed.
type Item struct {
	Meal     string `json:"comida"`
	Food     string `json:"alimento"`
	Quantity string `json:"cantidad"`
	Proteins string `json:"proteinas"`
	Fats     string `json:"grasas"`
	Carbs    string `json:"carbs"`
	Fiber    string `json:"fibra"`
	Calories string `json:"calorias"`

	// volume layout extras, empty for the maintenance layout
	Time  string `json:"hora,omitempty"`
	Unit  string `json:"unidad,omitempty"`
	Notes string `json:"notas,omitempty"`
}

// IsAggregateRow reports whether the item is a synthetic subtotal/total row.
// Such rows must never be counted when totals are recomputed.
func (it Item) IsAggregateRow() bool {
	meal := strings.ToUpper(it.Meal)
	return strings.Contains(meal, "SUBTOTAL") || strings.Contains(meal, "TOTAL")
}

// Totals holds the summed numeric nutrient fields of a day.
type Totals struct {
	Proteins float64 `json:"proteinas"`
	Fats     float64 `json:"grasas"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fibra"`
	Calories float64 `json:"calorias"`
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		Proteins: t.Proteins + other.Proteins,
		Fats:     t.Fats + other.Fats,
		Carbs:    t.Carbs + other.Carbs,
		Fiber:    t.Fiber + other.Fiber,
		Calories: t.Calories + other.Calories,
	}
}

func (t Totals) DivideBy(n float64) Totals {
	if n == 0 {
		return Totals{}
	}
	return Totals{
		Proteins: t.Proteins / n,
		Fats:     t.Fats / n,
		Carbs:    t.Carbs / n,
		Fiber:    t.Fiber / n,
		Calories: t.Calories / n,
	}
}

// DayNutrition is the parsed meal plan of a single (week, day). It is a
// read-only projection of the source table, regenerated by the parser.
type DayNutrition struct {
	Day    plan.Day `json:"day"`
	Meals  []Item   `json:"meals"`
	Totals Totals   `json:"totals"`
}
