package models

import (
	"fmt"
	"time"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
)

// Assignment links a teacher to a subject taught for a class in a given
// term. The academic year is stored as a span, e.g. "2025-2026".
type Assignment struct {
	ID           string    `db:"id" json:"id"`
	TeacherID    string    `db:"teacher_id" json:"teacher_id"`
	ClassID      string    `db:"class_id" json:"class_id"`
	SubjectID    string    `db:"subject_id" json:"subject_id"`
	AcademicYear string    `db:"academic_year" json:"academic_year"`
	Semester     int       `db:"semester" json:"semester"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// YearSem renders the display term used for filtering and dropdown labels.
// Semester 1 shows the span's first year, later semesters its second, so
// semester 2 of "2025-2026" reads "2026.2".
func (a *Assignment) YearSem() string {
	return academic.TermLabelForSpan(a.AcademicYear, a.Semester)
}

// AssignmentDetail is an assignment joined with its class, subject and
// department descriptors for list views.
type AssignmentDetail struct {
	Assignment
	SubjectCode    string `db:"subject_code" json:"subject_code"`
	SubjectName    string `db:"subject_name" json:"subject_name"`
	DepartmentName string `db:"department_name" json:"department_name"`
	ClassSemester  int    `db:"class_semester" json:"class_semester"`
	Section        string `db:"section" json:"section"`
	TeacherName    string `db:"teacher_name" json:"teacher_name"`
}

// ClassLabel renders the roster display name, e.g. "CSE 3 A".
func (d *AssignmentDetail) ClassLabel() string {
	return fmt.Sprintf("%s %d %s", d.DepartmentName, d.ClassSemester, d.Section)
}

// AssignmentFilter narrows assignment listings.
type AssignmentFilter struct {
	TeacherID string
	YearSem   string
	Year      string
	Semester  int
	Page      int
	PageSize  int
}

// ScheduleSlot places an assignment on the weekly timetable grid.
type ScheduleSlot struct {
	ID           string `db:"id" json:"id"`
	AssignmentID string `db:"assignment_id" json:"assignment_id"`
	Day          string `db:"day" json:"day"`
	Period       string `db:"period" json:"period"`
}

// SlotDetail is a schedule slot joined with its assignment descriptors.
type SlotDetail struct {
	ScheduleSlot
	TeacherID      string `db:"teacher_id" json:"teacher_id"`
	ClassID        string `db:"class_id" json:"class_id"`
	SubjectID      string `db:"subject_id" json:"subject_id"`
	SubjectCode    string `db:"subject_code" json:"subject_code"`
	SubjectName    string `db:"subject_name" json:"subject_name"`
	DepartmentName string `db:"department_name" json:"department_name"`
	ClassSemester  int    `db:"class_semester" json:"class_semester"`
	Section        string `db:"section" json:"section"`
	TeacherName    string `db:"teacher_name" json:"teacher_name"`
}
