package workout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/2beens/gymplan/internal/plan"
)

// Alternative is a substitute exercise listed under a main exercise. It is
// a display-only view: alternatives share the parent's tracking id, so a
// user records one weight sequence regardless of which variant they did.
type Alternative struct {
	Name  string `json:"nombre"`
	Image string `json:"imagen"`
}

// Exercise is one prescribed exercise of a workout day.
//
// The maintenance plan prescribes fixed Sets x Reps; the volume plan
// prescribes Series/Repetitions as strings, where Series may be a range
// like "2-3".
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Sets int `json:"sets,omitempty"`
	Reps int `json:"reps,omitempty"`

	Series       string        `json:"series,omitempty"`
	Repetitions  string        `json:"repeticiones,omitempty"`
	Image        string        `json:"imagen,omitempty"`
	Alternatives []Alternative `json:"alternativas,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// Day is the full workout prescription of one weekday.
type Day struct {
	Day       plan.Day   `json:"day"`
	Order     int        `json:"orden,omitempty"`
	Muscles   string     `json:"musculos,omitempty"`
	Type      string     `json:"type"`
	Exercises []Exercise `json:"exercises"`
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9-]`)
)

// ExerciseID derives the stable tracking id of an exercise from its day and
// name: lowercase, whitespace runs to hyphens, everything outside
// [a-z0-9-] stripped. Progress records are keyed by this id, so it must
// stay identical across reparses.
func ExerciseID(day plan.Day, name string) string {
	slug := strings.ToLower(name)
	slug = whitespaceRe.ReplaceAllString(slug, "-")
	slug = nonSlugRe.ReplaceAllString(slug, "")
	return fmt.Sprintf("%s-%s", day, slug)
}

// AlternativeID is the display/lookup key of an alternative. It is never
// used as a tracking key - progress is recorded under the parent's id.
func AlternativeID(parentID string, index int) string {
	return fmt.Sprintf("%s-alt-%d", parentID, index)
}
