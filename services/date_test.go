package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Valid date",
			input:    "2026-01-27",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
			wantErr:  false,
		},
		{
			name:    "Invalid format",
			input:   "27-01-2026",
			wantErr: true,
		},
		{
			name:    "Invalid day",
			input:   "2026-01-32",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-05-10", FormatDate(time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-09", FormatDate(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, invoiceDueDays)))
}
