package lexicon

import "github.com/lachho/resume/internal/types"

// Category is a named group of variant phrases. A category matches when any variant matches.
type Category struct {
	Name     string   `json:"name" validate:"required"`
	Variants []string `json:"variants" validate:"required,min=1,unique,dive,required"`
}

// SectionHeaders lists the header phrases that signal each standard resume section
type SectionHeaders struct {
	Profile        []string `json:"profile" validate:"required,min=1,unique,dive,required"`
	Experience     []string `json:"experience" validate:"required,min=1,unique,dive,required"`
	Education      []string `json:"education" validate:"required,min=1,unique,dive,required"`
	Skills         []string `json:"skills" validate:"required,min=1,unique,dive,required"`
	Projects       []string `json:"projects" validate:"required,min=1,unique,dive,required"`
	Certifications []string `json:"certifications" validate:"required,min=1,unique,dive,required"`
}

// Categories returns the headers as categories named after the reported sections, in reporting order.
func (h SectionHeaders) Categories() []Category {
	return []Category{
		{Name: types.SectionProfile, Variants: h.Profile},
		{Name: types.SectionExperience, Variants: h.Experience},
		{Name: types.SectionEducation, Variants: h.Education},
		{Name: types.SectionSkills, Variants: h.Skills},
		{Name: types.SectionProjects, Variants: h.Projects},
		{Name: types.SectionCertifications, Variants: h.Certifications},
	}
}

// JobRequirements is the reference job posting a resume is matched against
type JobRequirements struct {
	Degrees                []string   `json:"degrees" validate:"required,min=1,unique,dive,required"`
	FieldsOfStudy          []string   `json:"fields_of_study" validate:"required,min=1,unique,dive,required"`
	Software               []string   `json:"software" validate:"required,unique,dive,required"`
	EngineeringDisciplines []string   `json:"engineering_disciplines" validate:"required,unique,dive,required"`
	TechnicalTasks         []string   `json:"technical_tasks" validate:"required,unique,dive,required"`
	SoftSkills             []Category `json:"soft_skills" validate:"required,min=1,unique=Name,dive"`
}

// HardSkillCount is the number of hard-skill requirements across all three lists
func (r JobRequirements) HardSkillCount() int {
	return len(r.Software) + len(r.EngineeringDisciplines) + len(r.TechnicalTasks)
}

// Tables is the serialisable form of a lexicon
type Tables struct {
	StrongVerbs       []string        `json:"strong_verbs" validate:"required,min=1,unique,dive,required"`
	WeakVerbs         []string        `json:"weak_verbs" validate:"required,min=1,unique,dive,required"`
	Pronouns          []string        `json:"pronouns" validate:"required,min=1,unique,dive,required"`
	DegreeKeywords    []string        `json:"degree_keywords" validate:"required,min=1,unique,dive,required"`
	HardSkills        []Category      `json:"hard_skills" validate:"required,min=1,unique=Name,dive"`
	SoftSkills        []Category      `json:"soft_skills" validate:"required,min=1,unique=Name,dive"`
	SectionHeaders    SectionHeaders  `json:"section_headers"`
	JobRequirements   JobRequirements `json:"job_requirements"`
	SpecialCharacters string          `json:"special_characters" validate:"required"`
	JoiningWords      []string        `json:"joining_words" validate:"required,min=1,unique,dive,required"`
}

func (t Tables) clone() Tables {
	out := t
	out.StrongVerbs = cloneStrings(t.StrongVerbs)
	out.WeakVerbs = cloneStrings(t.WeakVerbs)
	out.Pronouns = cloneStrings(t.Pronouns)
	out.DegreeKeywords = cloneStrings(t.DegreeKeywords)
	out.HardSkills = cloneCategories(t.HardSkills)
	out.SoftSkills = cloneCategories(t.SoftSkills)
	out.SectionHeaders = SectionHeaders{
		Profile:        cloneStrings(t.SectionHeaders.Profile),
		Experience:     cloneStrings(t.SectionHeaders.Experience),
		Education:      cloneStrings(t.SectionHeaders.Education),
		Skills:         cloneStrings(t.SectionHeaders.Skills),
		Projects:       cloneStrings(t.SectionHeaders.Projects),
		Certifications: cloneStrings(t.SectionHeaders.Certifications),
	}
	out.JobRequirements = JobRequirements{
		Degrees:                cloneStrings(t.JobRequirements.Degrees),
		FieldsOfStudy:          cloneStrings(t.JobRequirements.FieldsOfStudy),
		Software:               cloneStrings(t.JobRequirements.Software),
		EngineeringDisciplines: cloneStrings(t.JobRequirements.EngineeringDisciplines),
		TechnicalTasks:         cloneStrings(t.JobRequirements.TechnicalTasks),
		SoftSkills:             cloneCategories(t.JobRequirements.SoftSkills),
	}
	out.JoiningWords = cloneStrings(t.JoiningWords)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneCategories(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	for i, c := range in {
		out[i] = Category{Name: c.Name, Variants: cloneStrings(c.Variants)}
	}
	return out
}
