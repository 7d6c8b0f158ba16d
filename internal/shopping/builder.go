package shopping

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/nutrition"
	"github.com/2beens/gymplan/internal/plan"
)

// Item is one aggregated line of a shopping list.
type Item struct {
	Food      string  `json:"alimento"`
	Quantity  float64 `json:"cantidad"`
	Unit      string  `json:"unidad"`
	Purchased bool    `json:"purchased"`
}

// List is a saved shopping list. Saved lists are append-only; a list is
// never merged or updated after generation.
type List struct {
	SelectedWeeks []int      `json:"selectedWeeks"`
	SelectedDays  []plan.Day `json:"selectedDays"`
	Items         []Item     `json:"items"`
	GeneratedDate time.Time  `json:"generatedDate"`
}

// NutritionSource is the slice of the nutrition data the builder needs.
type NutritionSource interface {
	DayNutrition(phase plan.Phase, week int, day plan.Day) *nutrition.DayNutrition
}

var (
	// the unit must not start with a digit, otherwise "80" would split
	// into quantity 8 with unit "0"
	quantityWithUnitRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([^\d.].*)$`)
	bareNumberRe       = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

const (
	fallbackQuantity = 1
	fallbackUnit     = "unidad"
	strippedUnit     = "g"
)

// ParseQuantity extracts a numeric quantity and a unit from a free-text
// quantity field. "150g" gives (150, "g") and "2 unidades" gives
// (2, "unidades"). When only a number can be found, the remainder of the
// string is the unit, defaulting to "g" when nothing remains. A fully
// unparseable value like "al gusto" falls back to quantity 1, unit
// "unidad". One policy for both phases.
func ParseQuantity(quantityText string) (float64, string) {
	if m := quantityWithUnitRe.FindStringSubmatch(quantityText); m != nil {
		quantity, _ := strconv.ParseFloat(m[1], 64)
		return quantity, strings.TrimSpace(m[2])
	}

	if m := bareNumberRe.FindStringSubmatch(quantityText); m != nil {
		quantity, _ := strconv.ParseFloat(m[1], 64)
		unit := strings.TrimSpace(strings.Replace(quantityText, m[1], "", 1))
		if unit == "" {
			unit = strippedUnit
		}
		return quantity, unit
	}

	return fallbackQuantity, fallbackUnit
}

// Build aggregates ingredient quantities across the selected (week, day)
// pairs. Rows with the same food name and unit are merged by summing; the
// same name in a different unit is kept as a distinct "name (unit)" line.
// The result is sorted by food name.
func Build(phase plan.Phase, selections []plan.WeekDay, src NutritionSource) []Item {
	itemMap := make(map[string]*Item)

	for _, selection := range selections {
		dayData := src.DayNutrition(phase, selection.Week, selection.Day)
		if dayData == nil {
			continue
		}

		for _, meal := range dayData.Meals {
			if meal.IsAggregateRow() {
				continue
			}

			food := strings.TrimSpace(meal.Food)
			if food == "" {
				continue
			}

			quantity, unit := ParseQuantity(meal.Quantity)

			existing, ok := itemMap[food]
			switch {
			case !ok:
				itemMap[food] = &Item{Food: food, Quantity: quantity, Unit: unit}
			case existing.Unit == unit:
				existing.Quantity += quantity
			default:
				// same food in a different unit stays a separate line
				uniqueKey := fmt.Sprintf("%s (%s)", food, unit)
				if other, ok := itemMap[uniqueKey]; ok && other.Unit == unit {
					other.Quantity += quantity
				} else {
					itemMap[uniqueKey] = &Item{Food: uniqueKey, Quantity: quantity, Unit: unit}
				}
			}
		}
	}

	items := make([]Item, 0, len(itemMap))
	for _, item := range itemMap {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Food < items[j].Food
	})

	return items
}

// NewList snapshots a generated list together with its selections.
func NewList(selections []plan.WeekDay, items []Item) List {
	weekSet := make(map[int]bool)
	daySet := make(map[plan.Day]bool)
	for _, sel := range selections {
		weekSet[sel.Week] = true
		daySet[sel.Day] = true
	}

	var weeks []int
	for _, week := range plan.Weeks {
		if weekSet[week] {
			weeks = append(weeks, week)
		}
	}
	var days []plan.Day
	for _, day := range plan.Days {
		if daySet[day] {
			days = append(days, day)
		}
	}

	return List{
		SelectedWeeks: weeks,
		SelectedDays:  days,
		Items:         items,
		GeneratedDate: time.Now(),
	}
}
