package nutrition

import "github.com/2beens/gymplan/internal/plan"

// Nutrition goals. Fixed targets, not configurable.
const (
	ProteinGoal = 195  // grams, 2g/kg
	CalorieGoal = 1450 // kcal
)

// WeeklySummary aggregates the totals of a whole week.
type WeeklySummary struct {
	Week         int                 `json:"week"`
	TotalsByDay  map[plan.Day]Totals `json:"totalsByDay"`
	WeeklyTotals Totals              `json:"weeklyTotals"`
	AverageDaily Totals              `json:"averageDaily"`
}

// Summarize computes the weekly totals and the daily average for one week.
// The average divides by the number of days that actually have data, not
// by seven - an average over observed days.
func Summarize(week int, weekNutrition map[plan.Day]*DayNutrition) WeeklySummary {
	summary := WeeklySummary{
		Week:        week,
		TotalsByDay: make(map[plan.Day]Totals, len(plan.Days)),
	}

	daysWithData := 0
	for _, day := range plan.Days {
		dayData, ok := weekNutrition[day]
		if !ok || dayData == nil {
			summary.TotalsByDay[day] = Totals{}
			continue
		}
		summary.TotalsByDay[day] = dayData.Totals
		summary.WeeklyTotals = summary.WeeklyTotals.Add(dayData.Totals)
		daysWithData++
	}

	summary.AverageDaily = summary.WeeklyTotals.DivideBy(float64(daysWithData))

	return summary
}

// Combine merges two weekly summaries. Weekly totals and per-day totals are
// summed; the daily average is the arithmetic mean of the two input
// averages. Averaging the averages matches the true combined average only
// when both weeks have the same number of observed days - this is the
// long-standing behavior and is kept as is.
func Combine(a, b WeeklySummary) WeeklySummary {
	combined := WeeklySummary{
		Week:         0,
		TotalsByDay:  make(map[plan.Day]Totals, len(plan.Days)),
		WeeklyTotals: a.WeeklyTotals.Add(b.WeeklyTotals),
		AverageDaily: a.AverageDaily.Add(b.AverageDaily).DivideBy(2),
	}

	for _, day := range plan.Days {
		combined.TotalsByDay[day] = a.TotalsByDay[day].Add(b.TotalsByDay[day])
	}

	return combined
}

// GoalAmount is the progress of one nutrient against its fixed goal.
type GoalAmount struct {
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Percentage float64 `json:"percentage"`
}

// GoalProgress holds goal tracking for the two targeted nutrients.
type GoalProgress struct {
	Protein  GoalAmount `json:"protein"`
	Calories GoalAmount `json:"calories"`
}

func CalculateGoalProgress(totals Totals) GoalProgress {
	return GoalProgress{
		Protein: GoalAmount{
			Current:    totals.Proteins,
			Goal:       ProteinGoal,
			Percentage: totals.Proteins / ProteinGoal * 100,
		},
		Calories: GoalAmount{
			Current:    totals.Calories,
			Goal:       CalorieGoal,
			Percentage: totals.Calories / CalorieGoal * 100,
		},
	}
}
