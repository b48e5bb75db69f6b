package model

import "time"

// Timestamps tracks when a record was created and last replaced.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stamp sets both timestamps to now, as on creation.
func (t *Timestamps) Stamp(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// Touch refreshes UpdatedAt while keeping the original CreatedAt.
func (t *Timestamps) Touch(createdAt, now time.Time) {
	t.CreatedAt = createdAt
	t.UpdatedAt = now
}
