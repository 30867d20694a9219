package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-portal-api/internal/models"
)

// StudentRepository reads rosters and enrollments.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListRoster returns every student of a class ordered by seat number,
// flagging who is registered for the subject. This is the working roster
// for marks and attendance; mark entry skips unregistered students.
func (r *StudentRepository) ListRoster(ctx context.Context, classID, subjectID string) ([]models.Student, error) {
	const query = `SELECT st.usn, st.full_name, st.class_id, st.email, st.created_at,
       ss.subject_id IS NOT NULL AS registered
FROM students st
LEFT JOIN student_subjects ss ON ss.student_id = st.usn AND ss.subject_id = $2
WHERE st.class_id = $1
ORDER BY st.usn ASC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, classID, subjectID); err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return students, nil
}

// GetByUSN loads a student by seat number.
func (r *StudentRepository) GetByUSN(ctx context.Context, usn string) (*models.Student, error) {
	const query = `SELECT usn, full_name, class_id, email, created_at FROM students WHERE usn = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, usn); err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &student, nil
}
