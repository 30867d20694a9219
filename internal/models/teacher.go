package models

import "time"

// Teacher is a staff member who can hold class assignments.
type Teacher struct {
	ID           string    `db:"id" json:"id"`
	UserID       *string   `db:"user_id" json:"user_id,omitempty"`
	FullName     string    `db:"full_name" json:"full_name"`
	Email        string    `db:"email" json:"email"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Department groups subjects and teachers.
type Department struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Subject is a course offered by a department.
type Subject struct {
	ID           string `db:"id" json:"id"`
	Code         string `db:"code" json:"code"`
	Name         string `db:"name" json:"name"`
	DepartmentID string `db:"department_id" json:"department_id"`
	Credits      int    `db:"credits" json:"credits"`
}

// Class is a cohort of students identified by department, semester and section.
type Class struct {
	ID           string `db:"id" json:"id"`
	DepartmentID string `db:"department_id" json:"department_id"`
	Semester     int    `db:"semester" json:"semester"`
	Section      string `db:"section" json:"section"`
}
