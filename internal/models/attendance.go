package models

import "time"

// AttendanceStatus tracks whether a session's register has been confirmed.
type AttendanceStatus int

const (
	AttendanceNotMarked AttendanceStatus = 0
	AttendanceMarked    AttendanceStatus = 1
)

// AttendanceSession is one register taken for an assignment on a given date.
// Sessions are unique per assignment and date.
type AttendanceSession struct {
	ID           string           `db:"id" json:"id"`
	AssignmentID string           `db:"assignment_id" json:"assignment_id"`
	Date         time.Time        `db:"date" json:"date"`
	Status       AttendanceStatus `db:"status" json:"status"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// AttendanceRecord marks a single student present or absent in a session.
type AttendanceRecord struct {
	ID        string    `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	StudentID string    `db:"student_id" json:"student_id"`
	Present   bool      `db:"present" json:"present"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AttendanceRecordDetail is a record joined with student identity.
type AttendanceRecordDetail struct {
	AttendanceRecord
	StudentName string `db:"student_name" json:"student_name"`
}

// StudentAttendanceCount aggregates presence totals per student across the
// sessions of one assignment.
type StudentAttendanceCount struct {
	StudentID    string `db:"student_id" json:"student_id"`
	StudentName  string `db:"student_name" json:"student_name"`
	PresentCount int    `db:"present_count" json:"present_count"`
	TotalCount   int    `db:"total_count" json:"total_count"`
}
