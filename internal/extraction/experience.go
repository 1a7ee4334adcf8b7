package extraction

import (
	"encoding/json"

	"github.com/carematch/carematch-api/internal/types"
)

// AssembleExperience builds the six-slot caregiving experience aggregate from
// a loosely-typed mapping keyed by care-type identifiers. Each present,
// non-empty slot is sanitized and decoded into its typed specialization;
// unknown keys are ignored for forward compatibility. Returns nil when the
// input carries no usable slot.
func AssembleExperience(raw map[string]any) (*types.CaregivingExperience, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	exp := &types.CaregivingExperience{}
	for _, ct := range types.ExperienceCareTypes {
		value, present := raw[string(ct)]
		if !present || value == nil {
			continue
		}

		slot, ok := value.(map[string]any)
		if !ok {
			return nil, &ExperienceShapeError{CareType: ct}
		}
		if len(slot) == 0 {
			continue
		}

		if err := decodeSlot(ct, SanitizeExperience(slot), exp); err != nil {
			return nil, err
		}
	}

	if exp.Empty() {
		return nil, nil
	}
	return exp, nil
}

// decodeSlot decodes one sanitized mapping into the typed specialization for
// its care type. Decoding goes through encoding/json so that StringList
// promotion and scalar shape errors apply uniformly.
func decodeSlot(ct types.CareType, cleaned map[string]any, dst *types.CaregivingExperience) error {
	buf, err := json.Marshal(cleaned)
	if err != nil {
		return &ExperienceShapeError{CareType: ct, Cause: err}
	}

	switch ct {
	case types.CareTypeEldercare:
		slot := &types.EldercareExperience{}
		if err := json.Unmarshal(buf, slot); err != nil {
			return &ExperienceShapeError{CareType: ct, Cause: err}
		}
		dst.Eldercare = slot
	case types.CareTypeChildcare:
		slot := &types.ChildcareExperience{}
		if err := json.Unmarshal(buf, slot); err != nil {
			return &ExperienceShapeError{CareType: ct, Cause: err}
		}
		dst.Childcare = slot
	case types.CareTypeSpecialNeeds:
		slot := &types.SpecialNeedsExperience{}
		if err := json.Unmarshal(buf, slot); err != nil {
			return &ExperienceShapeError{CareType: ct, Cause: err}
		}
		dst.SpecialNeeds = slot
	case types.CareTypePostSurgery:
		slot := &types.PostSurgeryExperience{}
		if err := json.Unmarshal(buf, slot); err != nil {
			return &ExperienceShapeError{CareType: ct, Cause: err}
		}
		dst.PostSurgery = slot
	case types.CareTypeDementia:
		slot := &types.DementiaExperience{}
		if err := json.Unmarshal(buf, slot); err != nil {
			return &ExperienceShapeError{CareType: ct, Cause: err}
		}
		dst.Dementia = slot
	case types.CareTypeDisability:
		slot := &types.DisabilityExperience{}
		if err := json.Unmarshal(buf, slot); err != nil {
			return &ExperienceShapeError{CareType: ct, Cause: err}
		}
		dst.Disability = slot
	}
	return nil
}
