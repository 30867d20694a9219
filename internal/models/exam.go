package models

import "time"

// ExamStatus tracks whether an exam session may still accept mark entry.
type ExamStatus string

const (
	ExamStatusPending   ExamStatus = "PENDING"
	ExamStatusFinalized ExamStatus = "FINALIZED"
)

// ExamSession is one graded event (internal test, event or semester end
// exam) held for an assignment. Sessions are unique per assignment and name.
type ExamSession struct {
	ID           string     `db:"id" json:"id"`
	AssignmentID string     `db:"assignment_id" json:"assignment_id"`
	Name         string     `db:"name" json:"name"`
	TotalMarks   int        `db:"total_marks" json:"total_marks"`
	Status       ExamStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Mark is a single student's score in an exam session.
type Mark struct {
	ID        string    `db:"id" json:"id"`
	ExamID    string    `db:"exam_id" json:"exam_id"`
	StudentID string    `db:"student_id" json:"student_id"`
	Score     int       `db:"score" json:"score"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MarkDetail is a mark joined with student identity for rosters.
type MarkDetail struct {
	Mark
	StudentName string `db:"student_name" json:"student_name"`
}

// ExamScore pairs a session name with a student's score when aggregating
// per-subject performance.
type ExamScore struct {
	StudentID string `db:"student_id" json:"student_id"`
	ExamName  string `db:"exam_name" json:"exam_name"`
	Score     int    `db:"score" json:"score"`
}
