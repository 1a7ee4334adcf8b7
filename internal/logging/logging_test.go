package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, err := New(false, false)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = New(true, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1)) // debug level enabled
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"Short string unchanged", "hello", 10, "hello"},
		{"Exact limit unchanged", "hello", 5, "hello"},
		{"Over limit truncated", "hello world", 5, "hello..."},
		{"Whitespace trimmed first", "  hi  ", 10, "hi"},
		{"Zero limit empty", "hello", 0, ""},
		{"Negative limit empty", "hello", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateForLog(tt.input, tt.limit))
		})
	}
}
