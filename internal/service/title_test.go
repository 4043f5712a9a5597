package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestBuildTitle verifies the "[<cwd-basename>] - <DD.MM.YYYY>" format.
func TestBuildTitle(t *testing.T) {
	tests := []struct {
		name     string
		workDir  string
		now      time.Time
		expected string
	}{
		{
			name:     "plain directory",
			workDir:  "/home/dev/my-project",
			now:      time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC),
			expected: "[my-project] - 31.12.2026",
		},
		{
			name:     "single-digit day and month are zero-padded",
			workDir:  "/srv/api",
			now:      time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC),
			expected: "[api] - 03.02.2026",
		},
		{
			name:     "trailing separator is ignored",
			workDir:  "/home/dev/my-project/",
			now:      time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "[my-project] - 31.12.2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildTitle(tt.workDir, tt.now))
		})
	}
}
