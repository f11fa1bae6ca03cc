package types

// OverallResult is the weighted combination of the ATS, content and section scores
type OverallResult struct {
	FinalScore          int      `json:"final_score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
}

// AnalysisBundle is the complete analysis of one document.
// OriginalText is kept so a job match can be derived later without re-extracting.
type AnalysisBundle struct {
	ATS          ATSResult      `json:"ats"`
	Content      ContentResult  `json:"content"`
	Sections     SectionsResult `json:"sections"`
	Overall      OverallResult  `json:"overall"`
	OriginalText string         `json:"original_text"`
}
