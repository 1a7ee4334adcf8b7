// Package matching reconciles generator-produced candidate rankings against
// the caller's original profile list, producing deterministic, typed results.
package matching

import (
	"strings"

	"github.com/carematch/carematch-api/internal/extraction"
	"github.com/carematch/carematch-api/internal/types"
)

// profileIndex resolves generator ranking entries back to caller-supplied
// profiles, by non-empty identifier first and case-insensitive full name
// second.
type profileIndex struct {
	byID   map[string]*types.CaregiverProfile
	byName map[string]*types.CaregiverProfile
}

func newProfileIndex(profiles []types.CaregiverProfile) *profileIndex {
	idx := &profileIndex{
		byID:   make(map[string]*types.CaregiverProfile, len(profiles)),
		byName: make(map[string]*types.CaregiverProfile, len(profiles)),
	}
	for i := range profiles {
		p := &profiles[i]
		if p.ID != "" {
			idx.byID[p.ID] = p
		}
		idx.byName[strings.ToLower(p.Name)] = p
	}
	return idx
}

// resolve returns the caller profile a ranking entry refers to, or nil when
// the entry's identity cannot be matched. The entry name is read from the
// nested candidate_profile first, then from a flat name field; generators
// restate both shapes.
func (idx *profileIndex) resolve(entry map[string]any) *types.CaregiverProfile {
	id := extraction.String(entry["id"])

	name := ""
	if candidate, ok := entry["candidate_profile"].(map[string]any); ok {
		name = extraction.String(candidate["candidate_name"])
	}
	if name == "" {
		name = extraction.String(entry["name"])
	}

	if id != "" {
		if p, ok := idx.byID[id]; ok {
			return p
		}
	}
	if name != "" {
		if p, ok := idx.byName[strings.ToLower(name)]; ok {
			return p
		}
	}
	return nil
}
