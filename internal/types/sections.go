package types

// Section names reported in SectionsResult.Sections
const (
	SectionProfile        = "profile"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// SectionNames lists every section in reporting order
var SectionNames = []string{
	SectionProfile,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// ContactInfo holds contact details found in a resume
type ContactInfo struct {
	Email *string  `json:"email"`
	Phone *string  `json:"phone"`
	URLs  []string `json:"urls"`
}

// SkillSet holds the skill categories detected in a resume
type SkillSet struct {
	Hard []string `json:"hard"`
	Soft []string `json:"soft"`
}

// SectionsResult is the entity and section extraction result for a document
type SectionsResult struct {
	ContactInfo     ContactInfo     `json:"contact_info"`
	Skills          SkillSet        `json:"skills"`
	KeyPhrases      []string        `json:"key_phrases"`
	Education       []string        `json:"education"`
	Sections        map[string]bool `json:"sections"`
	Recommendations []string        `json:"recommendations"`
}

// PresentSections counts the sections detected as present
func (r SectionsResult) PresentSections() int {
	count := 0
	for _, present := range r.Sections {
		if present {
			count++
		}
	}
	return count
}
