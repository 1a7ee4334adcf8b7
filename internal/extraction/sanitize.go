package extraction

import (
	"strconv"
	"strings"
)

// SanitizeExperience normalizes the years field of one loosely-typed
// experience record so the typed model can be built from it. String values
// are parsed as numbers; blank or unparseable strings ("3+" included) and
// explicit nulls become 0.0. Numeric values pass through unchanged, as do all
// other fields; shape validation belongs to the assembler.
//
// Empty or nil input maps to an empty map: the caller treats that as "no
// evidence", not an error.
func SanitizeExperience(exp map[string]any) map[string]any {
	if len(exp) == 0 {
		return map[string]any{}
	}

	cleaned := make(map[string]any, len(exp))
	for k, v := range exp {
		cleaned[k] = v
	}

	years, present := cleaned["years"]
	if !present {
		return cleaned
	}

	switch v := years.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			cleaned["years"] = 0.0
			break
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			cleaned["years"] = 0.0
		} else {
			cleaned["years"] = f
		}
	case nil:
		cleaned["years"] = 0.0
	}

	return cleaned
}
