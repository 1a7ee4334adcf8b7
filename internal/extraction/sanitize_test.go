package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeExperience(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name:     "Nil input",
			input:    nil,
			expected: map[string]any{},
		},
		{
			name:     "Empty input",
			input:    map[string]any{},
			expected: map[string]any{},
		},
		{
			name:     "Numeric string parses",
			input:    map[string]any{"years": "3"},
			expected: map[string]any{"years": 3.0},
		},
		{
			name:     "Fractional string parses",
			input:    map[string]any{"years": "2.5"},
			expected: map[string]any{"years": 2.5},
		},
		{
			name:     "Blank string coerces to zero",
			input:    map[string]any{"years": ""},
			expected: map[string]any{"years": 0.0},
		},
		{
			name:     "Non-numeric string coerces to zero",
			input:    map[string]any{"years": "3+"},
			expected: map[string]any{"years": 0.0},
		},
		{
			name:     "Whitespace-padded string parses",
			input:    map[string]any{"years": " 4 "},
			expected: map[string]any{"years": 4.0},
		},
		{
			name:     "Null coerces to zero",
			input:    map[string]any{"years": nil},
			expected: map[string]any{"years": 0.0},
		},
		{
			name:     "Numeric passes through",
			input:    map[string]any{"years": 5.0},
			expected: map[string]any{"years": 5.0},
		},
		{
			name:     "Absent years left alone",
			input:    map[string]any{"tasks_performed": []any{"feeding"}},
			expected: map[string]any{"tasks_performed": []any{"feeding"}},
		},
		{
			name:     "Other fields pass through unmodified",
			input:    map[string]any{"years": "1", "medical_care": []any{"wound care"}},
			expected: map[string]any{"years": 1.0, "medical_care": []any{"wound care"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeExperience(tt.input))
		})
	}
}

func TestSanitizeExperienceDoesNotMutateInput(t *testing.T) {
	input := map[string]any{"years": "3"}
	SanitizeExperience(input)
	assert.Equal(t, "3", input["years"])
}
