package nutrition

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/gymplan/internal/plan"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte          = 1024 * 1024
	sourceCacheSize   = 10 * megabyte
	sourceCacheExpire = 60 * 60 // seconds
)

// Source reads the per-day meal tables from the data directory. Tables are
// owned by the source text and re-parsed on access; parsed days are kept in
// a cache in front of the file reads.
type Source struct {
	dataRoot string
	cache    *freecache.Cache
}

func NewSource(dataRoot string) *Source {
	return &Source{
		dataRoot: dataRoot,
		cache:    freecache.NewCache(sourceCacheSize),
	}
}

func (s *Source) tablePath(phase plan.Phase, week int, day plan.Day) string {
	if phase == plan.PhaseVolume {
		return filepath.Join(
			s.dataRoot, "volumen",
			fmt.Sprintf("semana%d", week),
			fmt.Sprintf("semana%d_%s.csv", week, day),
		)
	}
	return filepath.Join(
		s.dataRoot, "mantenimiento",
		fmt.Sprintf("semana%d", week),
		fmt.Sprintf("%s.csv", day),
	)
}

// DayNutrition returns the parsed table for the given (phase, week, day),
// or nil when no source table exists for it. A missing table is not an
// error - that day is simply absent from the plan.
func (s *Source) DayNutrition(phase plan.Phase, week int, day plan.Day) *DayNutrition {
	cacheKey := []byte(fmt.Sprintf("%s::%d::%s", phase, week, day))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var dayNutrition DayNutrition
		if err := json.Unmarshal(cached, &dayNutrition); err == nil {
			return &dayNutrition
		}
		log.Errorf("unmarshal cached day nutrition [%s]: will re-parse", cacheKey)
	}

	tableBytes, err := os.ReadFile(s.tablePath(phase, week, day))
	if err != nil {
		log.Warnf("no nutrition data for phase %s, week %d, day %s", phase, week, day)
		return nil
	}

	layout := LayoutMaintenance
	if phase == plan.PhaseVolume {
		layout = LayoutVolume
	}

	meals := ParseTable(string(tableBytes), layout)
	dayNutrition := &DayNutrition{
		Day:    day,
		Meals:  meals,
		Totals: CalculateTotals(meals),
	}

	if dayNutritionBytes, err := json.Marshal(dayNutrition); err == nil {
		if err := s.cache.Set(cacheKey, dayNutritionBytes, sourceCacheExpire); err != nil {
			log.Tracef("day nutrition cache set [%s]: %s", cacheKey, err)
		}
	}

	return dayNutrition
}

// WeekNutrition returns the parsed tables for every day of the week that
// has one.
func (s *Source) WeekNutrition(phase plan.Phase, week int) map[plan.Day]*DayNutrition {
	weekData := make(map[plan.Day]*DayNutrition)
	for _, day := range plan.Days {
		if dayData := s.DayNutrition(phase, week, day); dayData != nil {
			weekData[day] = dayData
		}
	}
	return weekData
}

// AvailableWeeks lists the week numbers for which the phase has at least
// one day table.
func (s *Source) AvailableWeeks(phase plan.Phase) []int {
	var weeks []int
	for _, week := range plan.Weeks {
		if len(s.WeekNutrition(phase, week)) > 0 {
			weeks = append(weeks, week)
		}
	}
	return weeks
}

// AvailableDays lists the days of the given week that have a table.
func (s *Source) AvailableDays(phase plan.Phase, week int) []plan.Day {
	var days []plan.Day
	for _, day := range plan.Days {
		if s.DayNutrition(phase, week, day) != nil {
			days = append(days, day)
		}
	}
	return days
}
