package models

import "time"

// Timestamp records when an entity was created and when its content last changed.
// createdAt is fixed at construction; updatedAt only moves through Touch.
type Timestamp struct {
	clock     Clock
	createdAt time.Time
	updatedAt time.Time
}

// NewTimestamp stamps both instants with the clock's current time.
func NewTimestamp(clock Clock) Timestamp {
	clock = clockOrSystem(clock)
	now := clock.Now()
	return Timestamp{clock: clock, createdAt: now, updatedAt: now}
}

// RestoreTimestamp rebuilds a Timestamp from persisted instants.
// An updatedAt earlier than createdAt is raised to createdAt.
func RestoreTimestamp(clock Clock, createdAt, updatedAt time.Time) Timestamp {
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}
	return Timestamp{clock: clockOrSystem(clock), createdAt: createdAt, updatedAt: updatedAt}
}

// Touch refreshes updatedAt. It never moves backwards, even if the clock does.
func (t *Timestamp) Touch() {
	now := clockOrSystem(t.clock).Now()
	if now.Before(t.updatedAt) {
		return
	}
	t.updatedAt = now
}

func (t Timestamp) CreatedAt() time.Time { return t.createdAt }

func (t Timestamp) UpdatedAt() time.Time { return t.updatedAt }

// String displays the creation instant.
func (t Timestamp) String() string {
	return t.createdAt.Format(time.RFC3339)
}
