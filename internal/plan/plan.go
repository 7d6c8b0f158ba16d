package plan

import "strings"

// Phase is one of the two training program variants. Each phase has its own
// data set and a slightly different tracking schema.
type Phase string

const (
	PhaseMaintenance Phase = "mantenimiento"
	PhaseVolume      Phase = "volumen"
)

func ParsePhase(s string) (Phase, bool) {
	switch strings.ToLower(s) {
	case "mantenimiento", "maintenance":
		return PhaseMaintenance, true
	case "volumen", "volume":
		return PhaseVolume, true
	default:
		return "", false
	}
}

// Day is one of the seven fixed weekday tokens used to key all
// per-day data (nutrition tables, workouts, progress records).
type Day string

const (
	Lunes     Day = "lunes"
	Martes    Day = "martes"
	Miercoles Day = "miercoles"
	Jueves    Day = "jueves"
	Viernes   Day = "viernes"
	Sabado    Day = "sabado"
	Domingo   Day = "domingo"
)

// Days lists the weekday tokens in calendar order.
var Days = []Day{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

func ParseDay(s string) (Day, bool) {
	d := Day(strings.ToLower(s))
	for _, known := range Days {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Weeks available per phase. Both phases currently ship two weeks of data.
var Weeks = []int{1, 2}

// WeekDay is a (week, day) pair, used for shopping list selections.
type WeekDay struct {
	Week int `json:"week"`
	Day  Day `json:"day"`
}
