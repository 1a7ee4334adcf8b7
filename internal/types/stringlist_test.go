package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
		wantErr  bool
	}{
		{"Array of strings", `["a","b"]`, StringList{"a", "b"}, false},
		{"Empty array", `[]`, StringList{}, false},
		{"Bare string promotes to list", `"solo"`, StringList{"solo"}, false},
		{"Null stays nil", `null`, nil, false},
		{"Number is a shape error", `5`, nil, true},
		{"Bool is a shape error", `true`, nil, true},
		{"Object is a shape error", `{"a":1}`, nil, true},
		{"Array of numbers is a shape error", `[1,2]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringList
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestStringListMarshal(t *testing.T) {
	data, err := json.Marshal(StringList(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = json.Marshal(StringList{"x"})
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(data))
}

func TestCaregivingExperienceEmpty(t *testing.T) {
	exp := &CaregivingExperience{}
	assert.True(t, exp.Empty())

	exp.Dementia = &DementiaExperience{Years: 2}
	assert.False(t, exp.Empty())
}

func TestExperienceJSONShape(t *testing.T) {
	// Embedded base fields must flatten into the specialization object.
	elder := EldercareExperience{
		CareTypeExperience: CareTypeExperience{
			Years:          4,
			TasksPerformed: StringList{"medication management"},
		},
		MedicalCare: StringList{"wound care"},
	}

	data, err := json.Marshal(elder)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4.0, decoded["years"])
	assert.Equal(t, []any{"medication management"}, decoded["tasks_performed"])
	assert.Equal(t, []any{"wound care"}, decoded["medical_care"])
}
