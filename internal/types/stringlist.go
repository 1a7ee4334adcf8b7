package types

import (
	"encoding/json"
	"fmt"
)

// StringList is a list of strings that also accepts a bare JSON string,
// promoting it to a single-element list. Generators regularly return a scalar
// where the output schema asks for an array.
type StringList []string

// UnmarshalJSON decodes either a JSON array of strings or a single JSON
// string. Any other value is a shape error.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	return fmt.Errorf("expected string or array of strings, got %s", string(data))
}

// MarshalJSON renders a nil list as an empty array instead of null.
func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}
