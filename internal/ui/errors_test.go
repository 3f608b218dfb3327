package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		want     string
	}{
		{
			name:     "nil error",
			err:      nil,
			maxWidth: 80,
			want:     "",
		},
		{
			name:     "empty message",
			err:      errors.New(""),
			maxWidth: 80,
			want:     "Error: unknown error",
		},
		{
			name:     "short message fits one line",
			err:      errors.New("sync failed"),
			maxWidth: 80,
			want:     "Error: sync failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplayWrapsLongMessage(t *testing.T) {
	err := errors.New("sync request failed because the coach sheet endpoint did not respond in time")

	got := formatErrorForDisplay(err, 40)
	lines := strings.Split(got, "\n")

	assert.True(t, strings.HasPrefix(got, "Error: "))
	assert.LessOrEqual(t, len(lines), maxErrorLines)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40+len(truncationMark))
	}
}

func TestFormatErrorForDisplayTruncatesOverflow(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 60))

	got := formatErrorForDisplay(err, 30)
	lines := strings.Split(got, "\n")

	assert.Equal(t, maxErrorLines, len(lines))
	assert.True(t, strings.HasSuffix(got, truncationMark))
}
