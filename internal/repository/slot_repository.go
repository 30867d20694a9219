package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-portal-api/internal/models"
)

const slotDetailQuery = `
SELECT sl.id, sl.assignment_id, sl.day, sl.period,
       a.teacher_id, a.class_id, a.subject_id,
       s.code AS subject_code, s.name AS subject_name,
       d.name AS department_name, c.semester AS class_semester, c.section,
       t.full_name AS teacher_name
FROM assignment_slots sl
JOIN assignments a ON a.id = sl.assignment_id
JOIN subjects s ON s.id = a.subject_id
JOIN classes c ON c.id = a.class_id
JOIN departments d ON d.id = c.department_id
JOIN teachers t ON t.id = a.teacher_id`

// SlotRepository persists the weekly timetable placements.
type SlotRepository struct {
	db *sqlx.DB
}

// NewSlotRepository constructs the repository.
func NewSlotRepository(db *sqlx.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// ListByTeacher returns the slots a teacher is scheduled in during the
// term of the academic year starting in yearStart. The year matches any
// stored span containing it.
func (r *SlotRepository) ListByTeacher(ctx context.Context, teacherID string, yearStart, semester int) ([]models.SlotDetail, error) {
	query := slotDetailQuery +
		"\nWHERE a.teacher_id = $1 AND a.academic_year LIKE $2 AND a.semester = $3" +
		"\nORDER BY sl.day ASC, sl.period ASC"
	var slots []models.SlotDetail
	if err := r.db.SelectContext(ctx, &slots, query, teacherID, fmt.Sprintf("%%%d%%", yearStart), semester); err != nil {
		return nil, fmt.Errorf("list teacher slots: %w", err)
	}
	return slots, nil
}

// GetDetail loads one slot with its assignment descriptors.
func (r *SlotRepository) GetDetail(ctx context.Context, id string) (*models.SlotDetail, error) {
	query := slotDetailQuery + "\nWHERE sl.id = $1"
	var slot models.SlotDetail
	if err := r.db.GetContext(ctx, &slot, query, id); err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return &slot, nil
}

// BusyTeacherIDs returns the teachers already scheduled in a day and period.
func (r *SlotRepository) BusyTeacherIDs(ctx context.Context, day, period string) ([]string, error) {
	const query = `SELECT DISTINCT a.teacher_id
FROM assignment_slots sl
JOIN assignments a ON a.id = sl.assignment_id
WHERE sl.day = $1 AND sl.period = $2`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, day, period); err != nil {
		return nil, fmt.Errorf("list busy teachers: %w", err)
	}
	return ids, nil
}

// QualifiedTeacherIDs returns the teachers holding any assignment of a subject.
func (r *SlotRepository) QualifiedTeacherIDs(ctx context.Context, subjectID string) ([]string, error) {
	const query = `SELECT DISTINCT teacher_id FROM assignments WHERE subject_id = $1`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, subjectID); err != nil {
		return nil, fmt.Errorf("list qualified teachers: %w", err)
	}
	return ids, nil
}
