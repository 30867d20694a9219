package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-portal-api/internal/models"
)

// TeacherRepository persists staff records.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs the repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// GetByUserID resolves the teacher profile linked to a user account.
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID string) (*models.Teacher, error) {
	const query = `SELECT id, user_id, full_name, email, department_id, created_at
FROM teachers WHERE user_id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, userID); err != nil {
		return nil, fmt.Errorf("get teacher by user: %w", err)
	}
	return &teacher, nil
}

// ListByClass returns the distinct teachers holding any assignment to a
// class, ordered by name. This is the candidate pool when looking for a
// substitute on one of the class's slots.
func (r *TeacherRepository) ListByClass(ctx context.Context, classID string) ([]models.Teacher, error) {
	const query = `SELECT DISTINCT t.id, t.user_id, t.full_name, t.email, t.department_id, t.created_at
FROM teachers t
JOIN assignments a ON a.teacher_id = t.id
WHERE a.class_id = $1
ORDER BY t.full_name ASC`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, classID); err != nil {
		return nil, fmt.Errorf("list class teachers: %w", err)
	}
	return teachers, nil
}
