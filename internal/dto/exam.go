package dto

// CreateExamRequest opens (or reopens) an exam session for an assignment.
type CreateExamRequest struct {
	Name string `json:"name" binding:"required"`
}

// ExamItem is one exam session row.
type ExamItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalMarks int    `json:"totalMarks"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// ExamListResponse is an assignment's sessions with their progress counts
// and the names a new session may take.
type ExamListResponse struct {
	Exams        []ExamItem `json:"exams"`
	Total        int        `json:"total"`
	Completed    int        `json:"completed"`
	Pending      int        `json:"pending"`
	AllowedNames []string   `json:"allowedNames"`
}

// CreateExamResponse reports the session and whether it already existed.
type CreateExamResponse struct {
	Exam    ExamItem `json:"exam"`
	Created bool     `json:"created"`
}

// RosterEntry is one student line on the mark entry sheet. Score is nil
// until a mark has been saved for the student; scores submitted for
// unregistered students are never saved.
type RosterEntry struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Registered  bool   `json:"registered"`
	Score       *int   `json:"score"`
}

// ExamRosterResponse is the mark entry sheet for a session.
type ExamRosterResponse struct {
	Exam    ExamItem      `json:"exam"`
	Entries []RosterEntry `json:"entries"`
}

// MarkEntry is a single score submitted for a student.
type MarkEntry struct {
	StudentID string `json:"studentId" binding:"required" validate:"required"`
	Score     int    `json:"score" binding:"min=0,max=100" validate:"min=0,max=100"`
}

// ConfirmMarksRequest saves the submitted scores and finalizes the session.
type ConfirmMarksRequest struct {
	Marks []MarkEntry `json:"marks" binding:"required,dive" validate:"required,dive"`
}

// ConfirmMarksResponse reports how many marks were written and how many
// submitted scores were skipped for unregistered students.
type ConfirmMarksResponse struct {
	ExamID  string `json:"examId"`
	Saved   int    `json:"saved"`
	Skipped int    `json:"skipped"`
	Status  string `json:"status"`
}
