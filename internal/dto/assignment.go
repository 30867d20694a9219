package dto

// AssignmentListRequest captures the query filters for GET /assignments.
type AssignmentListRequest struct {
	YearSem  string `form:"yearSem"`
	Year     string `form:"year"`
	Semester int    `form:"semester"`
	Page     int    `form:"page"`
}

// AssignmentItem is one row of the teacher's class list.
type AssignmentItem struct {
	ID          string `json:"id"`
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
	ClassLabel  string `json:"classLabel"`
	Department  string `json:"department"`
	Semester    int    `json:"semester"`
	Section     string `json:"section"`
	YearSem     string `json:"yearSem"`
}

// AssignmentListResponse is the paginated class list with its filter
// vocabulary so clients can render the term dropdown.
type AssignmentListResponse struct {
	Assignments []AssignmentItem `json:"assignments"`
	YearSems    []string         `json:"yearSems"`
	CurrentTerm string           `json:"currentTerm"`
}
