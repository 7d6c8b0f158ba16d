package workout

import (
	"strconv"
	"strings"
)

// SeriesRange is the parsed form of a series specification string. It
// determines how many weight slots a tracker renders for the exercise.
type SeriesRange struct {
	Min     int `json:"minSeries"`
	Max     int `json:"maxSeries"`
	Default int `json:"defaultSeries"`
}

// ParseSeries parses a series spec like "3", "4" or "2-3".
//
// A hyphen means a range: an unparseable min falls back to 2, an
// unparseable max to the parsed min and then to 3, and the default is the
// minimum. A single number is used for all three values. Anything else
// falls back to 3 across the board.
func ParseSeries(seriesStr string) SeriesRange {
	if strings.Contains(seriesStr, "-") {
		parts := strings.SplitN(seriesStr, "-", 2)
		minParsed, minOk := parseLeadingInt(strings.TrimSpace(parts[0]))
		maxParsed, maxOk := parseLeadingInt(strings.TrimSpace(parts[1]))

		min := minParsed
		if !minOk || min == 0 {
			min = 2
		}
		max := maxParsed
		if !maxOk || max == 0 {
			max = minParsed
			if !minOk || max == 0 {
				max = 3
			}
		}
		return SeriesRange{Min: min, Max: max, Default: min}
	}

	if single, ok := parseLeadingInt(strings.TrimSpace(seriesStr)); ok {
		return SeriesRange{Min: single, Max: single, Default: single}
	}

	return SeriesRange{Min: 3, Max: 3, Default: 3}
}

// parseLeadingInt reads the leading decimal digits of s, so that "3" and
// "3 series" both parse to 3.
func parseLeadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
