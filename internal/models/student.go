package models

import "time"

// Student is an enrolled learner identified by their university seat
// number. Registered reports whether the student is enrolled in the
// subject a roster was loaded for.
type Student struct {
	USN        string    `db:"usn" json:"usn"`
	FullName   string    `db:"full_name" json:"full_name"`
	ClassID    string    `db:"class_id" json:"class_id"`
	Email      string    `db:"email" json:"email"`
	Registered bool      `db:"registered" json:"registered"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// StudentSubject enrolls a student into a subject for a term. The roster of
// an assignment is the set of students enrolled in its subject.
type StudentSubject struct {
	ID        string `db:"id" json:"id"`
	StudentID string `db:"student_id" json:"student_id"`
	SubjectID string `db:"subject_id" json:"subject_id"`
}
