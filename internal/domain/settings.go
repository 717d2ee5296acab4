package domain

// LearningSkillCategory identifies one reportable learning skill.
// ID is the canonical slug; Label is the display string it was derived from.
type LearningSkillCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TenantSettings holds per-tenant classroom configuration.
// Read through from the settings provider on every request; never cached
// across requests.
type TenantSettings struct {
	LSCategories []LearningSkillCategory `json:"lsCategories"`
	Jurisdiction string                  `json:"jurisdiction"`
	Subjects     []string                `json:"subjects"`
	GradeBands   []string                `json:"gradeBands"`
	Terms        []string                `json:"terms"`
}

// DefaultTenantSettings returns the built-in Ontario configuration used when
// no settings file is present or the file cannot be parsed.
func DefaultTenantSettings() *TenantSettings {
	return &TenantSettings{
		LSCategories: []LearningSkillCategory{
			{ID: "responsibility", Label: "Responsibility"},
			{ID: "organization", Label: "Organization"},
			{ID: "independent-work", Label: "Independent Work"},
			{ID: "collaboration", Label: "Collaboration"},
			{ID: "initiative", Label: "Initiative"},
			{ID: "self-regulation", Label: "Self Regulation"},
			{ID: "homework-completion", Label: "Homework Completion"},
		},
		Jurisdiction: "ontario",
		Subjects:     []string{"Language", "Mathematics", "Science", "Social Studies", "The Arts", "Health and Physical Education", "French"},
		GradeBands:   []string{"K-3", "4-6", "7-8"},
		Terms:        []string{"Term 1", "Term 2"},
	}
}
