package analytics

import (
	"time"

	"github.com/korven/backend/internal/application/adapter"
)

// Measure selects the summed amount of an analytics query.
type Measure string

const (
	MeasureRevenue Measure = "revenue"
	MeasureProfit  Measure = "profit"
)

// IsValid reports whether the measure is known.
func (m Measure) IsValid() bool {
	return m == MeasureRevenue || m == MeasureProfit
}

// yearBounds returns [Jan 1, Jan 1 of next year) for year, or for the
// current calendar year when year is zero. Both bounds are the UTC instants
// at which those days begin in the clock's location.
func yearBounds(clock adapter.Clock, year int) (int, time.Time, time.Time) {
	if year <= 0 {
		year = clock.Today().Year()
	}
	loc := clock.Location()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return year, from.UTC(), from.AddDate(1, 0, 0).UTC()
}
