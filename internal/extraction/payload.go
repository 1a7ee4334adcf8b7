// Package extraction converts free-form generator output into typed caregiver
// profiles. The loosely-typed representation of "whatever the generator
// returned" stays inside this package; callers only see typed results.
package extraction

import (
	"encoding/json"
	"strings"
)

// ExtractPayload recovers a JSON value from generator output that may be
// wrapped in a markdown code fence. If the text opens with a triple-backtick
// marker the first line is dropped, along with the closing marker line when
// present, and the remainder is decoded as JSON.
func ExtractPayload(text string) (any, error) {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		lines := strings.Split(cleaned, "\n")
		lines = lines[1:]
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			lines = lines[:len(lines)-1]
		}
		cleaned = strings.Join(lines, "\n")
	}

	var payload any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &MalformedOutputError{Message: "output is not valid JSON", Cause: err}
	}
	return payload, nil
}

// ExtractObject is ExtractPayload for callers expecting a JSON object.
func ExtractObject(text string) (map[string]any, error) {
	payload, err := ExtractPayload(text)
	if err != nil {
		return nil, err
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, &MalformedOutputError{Message: "expected a JSON object"}
	}
	return obj, nil
}

// ExtractList is ExtractPayload for callers expecting a JSON array.
func ExtractList(text string) ([]any, error) {
	payload, err := ExtractPayload(text)
	if err != nil {
		return nil, err
	}
	list, ok := payload.([]any)
	if !ok {
		return nil, &MalformedOutputError{Message: "expected a JSON array"}
	}
	return list, nil
}
