// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current instant and the business calendar day.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time

	// Today returns the current calendar day, as midnight UTC, in the configured time zone.
	Today() time.Time

	// Location returns the time zone calendar days are lived in.
	Location() *time.Location
}
