package workout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/gymplan/internal/plan"

	log "github.com/sirupsen/logrus"
)

// Source reads the workout plan documents from the data directory: one
// markdown document per maintenance week, and a single JSON plan for the
// volume phase (the volume program is the same for both weeks).
type Source struct {
	dataRoot string
}

func NewSource(dataRoot string) *Source {
	return &Source{dataRoot: dataRoot}
}

func (s *Source) maintenancePlanPath(week int) string {
	return filepath.Join(s.dataRoot, "mantenimiento", fmt.Sprintf("semana%d", week), "plan.md")
}

func (s *Source) volumePlanPath() string {
	return filepath.Join(s.dataRoot, "volumen", "plan_volumen.json")
}

// MaintenanceDayWorkout parses the given week's markdown document and
// extracts one day. A missing document means the week is absent - nil, not
// an error.
func (s *Source) MaintenanceDayWorkout(week int, day plan.Day) *Day {
	document, err := os.ReadFile(s.maintenancePlanPath(week))
	if err != nil {
		log.Warnf("no workout plan document for week %d", week)
		return nil
	}
	return MaintenanceDayWorkout(string(document), day)
}

// VolumePlan parses the volume plan document.
func (s *Source) VolumePlan() (*VolumePlan, error) {
	planJSON, err := os.ReadFile(s.volumePlanPath())
	if err != nil {
		return nil, fmt.Errorf("read volume plan: %w", err)
	}
	return ParseVolumePlan(planJSON)
}

// DayWorkout returns the workout of one (phase, week, day), or nil when
// the phase has no plan for it.
func (s *Source) DayWorkout(phase plan.Phase, week int, day plan.Day) *Day {
	if phase == plan.PhaseVolume {
		volumePlan, err := s.VolumePlan()
		if err != nil {
			log.Errorf("load volume plan: %s", err)
			return nil
		}
		return volumePlan.DayWorkout(day)
	}
	return s.MaintenanceDayWorkout(week, day)
}
