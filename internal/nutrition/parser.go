package nutrition

import (
	"strconv"
	"strings"
)

// Layout describes one of the two source table shapes.
type Layout int

const (
	// LayoutMaintenance - 8 columns:
	// comida,alimento,cantidad,proteinas,grasas,carbs,fibra,calorias
	LayoutMaintenance Layout = iota
	// LayoutVolume - 11 columns:
	// comida,hora,alimento,cantidad,unidad,kcal,proteinas_g,carbohidratos_g,grasas_g,fibra_g,notas
	LayoutVolume
)

func (l Layout) minColumns() int {
	if l == LayoutVolume {
		return 11
	}
	return 8
}

// ParseTable converts a comma-separated meal table into items. The first
// line is a header and is discarded. Lines yielding fewer fields than the
// layout requires are dropped silently - truncated trailing lines are not
// an error.
func ParseTable(tableText string, layout Layout) []Item {
	lines := strings.Split(strings.TrimSpace(tableText), "\n")

	var items []Item
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		values := splitLine(line)
		if len(values) < layout.minColumns() {
			continue
		}

		if layout == LayoutVolume {
			items = append(items, Item{
				Meal:     values[0],
				Time:     values[1],
				Food:     values[2],
				Quantity: values[3],
				Unit:     values[4],
				Calories: values[5],
				Proteins: values[6],
				Carbs:    values[7],
				Fats:     values[8],
				Fiber:    values[9],
				Notes:    values[10],
			})
			continue
		}

		items = append(items, Item{
			Meal:     values[0],
			Food:     values[1],
			Quantity: values[2],
			Proteins: values[3],
			Fats:     values[4],
			Carbs:    values[5],
			Fiber:    values[6],
			Calories: values[7],
		})
	}

	return items
}

// splitLine splits a table line on commas, honoring double-quote enclosed
// fields: a quoted field may contain literal commas, and the quote
// characters themselves are stripped from the output.
//
// encoding/csv is deliberately not used here: it raises errors on stray
// quotes and short records, while this format requires quote-toggle
// semantics with silent recovery.
func splitLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	result = append(result, strings.TrimSpace(current.String()))
	return result
}

// ParseValue extracts the numeric part of a nutrient field: every character
// that is not a digit or a decimal point is stripped, and whatever remains
// is parsed as a float. "120g" parses to 120; a field with no digits
// parses to 0, never to an error.
func ParseValue(value string) float64 {
	var numeric strings.Builder
	for _, ch := range value {
		if (ch >= '0' && ch <= '9') || ch == '.' {
			numeric.WriteRune(ch)
		}
	}

	f, err := strconv.ParseFloat(numeric.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// CalculateTotals sums the nutrient fields of every non-aggregate row.
// Subtotal/total rows are synthetic and counting them would double the
// result.
func CalculateTotals(items []Item) Totals {
	var totals Totals
	for _, item := range items {
		if item.IsAggregateRow() {
			continue
		}
		totals.Proteins += ParseValue(item.Proteins)
		totals.Fats += ParseValue(item.Fats)
		totals.Carbs += ParseValue(item.Carbs)
		totals.Fiber += ParseValue(item.Fiber)
		totals.Calories += ParseValue(item.Calories)
	}
	return totals
}
