package model

type SaveDraftRequest struct {
	Courses []CourseRow `json:"courses"`
}

type SummaryRequest struct {
	Courses []CourseRow `json:"courses"`
}

type FinalizeRequest struct {
	Year int `json:"year"`
	Term int `json:"term"`
	// Courses overrides the current draft when present.
	Courses []CourseRow `json:"courses,omitempty"`
}

type FinalizeResponse struct {
	Semester SemesterRecord  `json:"semester"`
	Summary  SemesterSummary `json:"summary"`
	Class    DegreeClass     `json:"class"`
}

type DraftResponse struct {
	Courses []CourseRow     `json:"courses"`
	Summary SemesterSummary `json:"summary"`
}
