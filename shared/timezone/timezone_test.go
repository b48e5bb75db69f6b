package timezone_test

import (
	"testing"
	"time"

	"scaffold/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	before := time.Now()
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.False(t, now.Before(before.Truncate(time.Second)))
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty falls back to UTC", input: "", expected: "UTC"},
		{name: "unknown falls back to UTC", input: "Mars/Olympus", expected: "UTC"},
		{name: "utc", input: "UTC", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Load(tt.input).String())
		})
	}
}
