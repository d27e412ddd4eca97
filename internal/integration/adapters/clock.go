package adapters

import (
	"time"

	"github.com/korven/backend/internal/application/adapter"
	"github.com/korven/backend/internal/domain/valueobject"
)

// systemClock implements the adapter.Clock interface over the wall clock.
type systemClock struct {
	location *time.Location
	now      func() time.Time
}

// NewSystemClock creates a clock whose calendar days follow location.
func NewSystemClock(location *time.Location) adapter.Clock {
	return NewClock(location, time.Now)
}

// NewClock creates a clock reading instants from now. Tests use it to pin time.
func NewClock(location *time.Location, now func() time.Time) adapter.Clock {
	if location == nil {
		location = time.UTC
	}
	return &systemClock{location: location, now: now}
}

// Now returns the current instant in UTC.
func (c *systemClock) Now() time.Time {
	return c.now().UTC()
}

// Location returns the configured time zone.
func (c *systemClock) Location() *time.Location {
	return c.location
}

// Today returns the current calendar day in the configured location.
func (c *systemClock) Today() time.Time {
	return valueobject.DateOf(c.now().In(c.location))
}
