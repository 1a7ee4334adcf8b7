package types

// CareTypeExperience is the base shape shared by the eldercare, childcare and
// special-needs specializations.
type CareTypeExperience struct {
	Years                 float64    `json:"years"`
	ConditionsExperienced StringList `json:"conditions_experienced,omitempty"`
	TasksPerformed        StringList `json:"tasks_performed,omitempty"`
}

// EldercareExperience extends the base shape with medical care tasks.
type EldercareExperience struct {
	CareTypeExperience
	MedicalCare StringList `json:"medical_care,omitempty"`
}

// ChildcareExperience extends the base shape with the age ranges cared for.
type ChildcareExperience struct {
	CareTypeExperience
	AgeRange StringList `json:"age_range,omitempty"`
}

// SpecialNeedsExperience extends the base shape with supported therapies.
type SpecialNeedsExperience struct {
	CareTypeExperience
	TherapiesSupported StringList `json:"therapies_supported,omitempty"`
}

// PostSurgeryExperience replaces conditions with the surgeries supported and
// the recovery phases covered.
type PostSurgeryExperience struct {
	Years              float64    `json:"years"`
	SurgeriesSupported StringList `json:"surgeries_supported,omitempty"`
	TasksPerformed     StringList `json:"tasks_performed,omitempty"`
	RecoveryPhases     StringList `json:"recovery_phases,omitempty"`
}

// DementiaExperience replaces conditions with dementia types and stages.
type DementiaExperience struct {
	Years             float64    `json:"years"`
	DementiaTypes     StringList `json:"dementia_types,omitempty"`
	TasksPerformed    StringList `json:"tasks_performed,omitempty"`
	StagesExperienced StringList `json:"stages_experienced,omitempty"`
}

// DisabilityExperience replaces conditions with disability types and
// specialized skills.
type DisabilityExperience struct {
	Years             float64    `json:"years"`
	DisabilityTypes   StringList `json:"disability_types,omitempty"`
	TasksPerformed    StringList `json:"tasks_performed,omitempty"`
	SpecializedSkills StringList `json:"specialized_skills,omitempty"`
}

// CaregivingExperience holds exactly six optional slots, one per care type.
// An absent slot means no evidence of that care type, which is distinct from
// a present slot with zero years.
type CaregivingExperience struct {
	Eldercare    *EldercareExperience    `json:"eldercare,omitempty"`
	Childcare    *ChildcareExperience    `json:"childcare,omitempty"`
	SpecialNeeds *SpecialNeedsExperience `json:"special_needs,omitempty"`
	PostSurgery  *PostSurgeryExperience  `json:"post_surgery,omitempty"`
	Dementia     *DementiaExperience     `json:"dementia,omitempty"`
	Disability   *DisabilityExperience   `json:"disability,omitempty"`
}

// Empty reports whether no slot is populated.
func (e *CaregivingExperience) Empty() bool {
	return e.Eldercare == nil && e.Childcare == nil && e.SpecialNeeds == nil &&
		e.PostSurgery == nil && e.Dementia == nil && e.Disability == nil
}
