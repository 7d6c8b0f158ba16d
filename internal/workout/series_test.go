package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeries(t *testing.T) {
	testCases := []struct {
		seriesStr string
		want      SeriesRange
	}{
		{seriesStr: "3", want: SeriesRange{Min: 3, Max: 3, Default: 3}},
		{seriesStr: "4", want: SeriesRange{Min: 4, Max: 4, Default: 4}},
		{seriesStr: "2-3", want: SeriesRange{Min: 2, Max: 3, Default: 2}},
		{seriesStr: "3-4", want: SeriesRange{Min: 3, Max: 4, Default: 3}},
		{seriesStr: "3 series", want: SeriesRange{Min: 3, Max: 3, Default: 3}},
		// range with unparseable max falls back to the parsed min
		{seriesStr: "2-", want: SeriesRange{Min: 2, Max: 2, Default: 2}},
		// fully unparseable range falls back to 2-3
		{seriesStr: "x-y", want: SeriesRange{Min: 2, Max: 3, Default: 2}},
		// unparseable single value falls back to 3 across the board
		{seriesStr: "", want: SeriesRange{Min: 3, Max: 3, Default: 3}},
		{seriesStr: "muchas", want: SeriesRange{Min: 3, Max: 3, Default: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.seriesStr, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSeries(tc.seriesStr))
		})
	}
}
