package mock

import (
	"sync"
	"time"

	"github.com/korven/backend/internal/domain/valueobject"
)

// Time is a settable clock. Once pinned it keeps ticking from the pinned
// instant, so ordering by creation time still works inside a scenario.
type Time struct {
	mu               sync.RWMutex
	location         *time.Location
	currentStartTime time.Time
	updatedAt        time.Time
}

func NewTime(location *time.Location) *Time {
	now := time.Now()
	return &Time{
		location:         location,
		currentStartTime: now,
		updatedAt:        now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// Reset returns the clock to the wall time.
func (t *Time) Reset() {
	t.SetCurrentTime(time.Now())
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentStartTime.Add(time.Since(t.updatedAt)).UTC()
}

func (t *Time) Location() *time.Location {
	return t.location
}

func (t *Time) Today() time.Time {
	return valueobject.DateOf(t.Now().In(t.location))
}
