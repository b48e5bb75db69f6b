package model_test

import (
	"testing"
	"time"

	"scaffold/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestTimestamps_Stamp(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var ts model.Timestamps
	ts.Stamp(now)

	assert.Equal(t, now, ts.CreatedAt)
	assert.Equal(t, now, ts.UpdatedAt)
}

func TestTimestamps_Touch(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	ts := model.Timestamps{CreatedAt: later, UpdatedAt: later}
	ts.Touch(created, later.Add(time.Minute))

	assert.Equal(t, created, ts.CreatedAt)
	assert.Equal(t, later.Add(time.Minute), ts.UpdatedAt)
}
