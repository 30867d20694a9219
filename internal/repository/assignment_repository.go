package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
	"github.com/noah-isme/teacher-portal-api/internal/models"
)

const assignmentDetailColumns = `
a.id, a.teacher_id, a.class_id, a.subject_id, a.academic_year, a.semester, a.created_at,
s.code AS subject_code, s.name AS subject_name,
d.name AS department_name, c.semester AS class_semester, c.section,
t.full_name AS teacher_name`

const assignmentDetailJoins = `
FROM assignments a
JOIN subjects s ON s.id = a.subject_id
JOIN classes c ON c.id = a.class_id
JOIN departments d ON d.id = c.department_id
JOIN teachers t ON t.id = a.teacher_id`

// AssignmentRepository persists teacher-subject-class assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// List returns one page of a teacher's assignments plus the unfiltered
// match count. The yearSem filter takes priority over year and semester.
func (r *AssignmentRepository) List(ctx context.Context, filter models.AssignmentFilter) ([]models.AssignmentDetail, int, error) {
	where, args := buildAssignmentWhere(filter)

	countQuery := "SELECT COUNT(*) " + assignmentDetailJoins + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count assignments: %w", err)
	}

	query := "SELECT " + assignmentDetailColumns + assignmentDetailJoins + where +
		"\nORDER BY a.academic_year DESC, a.semester DESC, s.name ASC"
	if filter.PageSize > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PageSize
		}
		query += fmt.Sprintf("\nLIMIT %d OFFSET %d", filter.PageSize, offset)
	}

	var assignments []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &assignments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, total, nil
}

// GetDetail loads one assignment with its descriptors.
func (r *AssignmentRepository) GetDetail(ctx context.Context, id string) (*models.AssignmentDetail, error) {
	query := "SELECT " + assignmentDetailColumns + assignmentDetailJoins + "\nWHERE a.id = $1"
	var detail models.AssignmentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &detail, nil
}

// DistinctYearSems lists the display terms a teacher has taught in,
// newest first, for the filter dropdown.
func (r *AssignmentRepository) DistinctYearSems(ctx context.Context, teacherID string) ([]string, error) {
	const query = `SELECT DISTINCT academic_year, semester
FROM assignments WHERE teacher_id = $1
ORDER BY academic_year DESC, semester DESC`
	var rows []struct {
		AcademicYear string `db:"academic_year"`
		Semester     int    `db:"semester"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, teacherID); err != nil {
		return nil, fmt.Errorf("list assignment terms: %w", err)
	}
	terms := make([]string, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, academic.TermLabelForSpan(row.AcademicYear, row.Semester))
	}
	return terms, nil
}

// CountByTeacherAndTerm returns how many assignments a teacher holds in
// the term of the academic year starting in yearStart.
func (r *AssignmentRepository) CountByTeacherAndTerm(ctx context.Context, teacherID string, yearStart, semester int) (int, error) {
	const query = `SELECT COUNT(*) FROM assignments
WHERE teacher_id = $1 AND academic_year LIKE $2 AND semester = $3`
	var count int
	if err := r.db.GetContext(ctx, &count, query, teacherID, fmt.Sprintf("%d-%%", yearStart), semester); err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return count, nil
}

// buildAssignmentWhere maps the filter onto the stored year spans. A year
// together with a semester selects the exact display term (semester 1
// matches the span's first year, later semesters its second); a year on
// its own matches any span containing it.
func buildAssignmentWhere(filter models.AssignmentFilter) (string, []interface{}) {
	conditions := []string{"a.teacher_id = $1"}
	args := []interface{}{filter.TeacherID}

	next := func() int { return len(args) + 1 }

	year, semester := filter.Year, filter.Semester
	if filter.YearSem != "" {
		if y, s, ok := splitYearSem(filter.YearSem); ok {
			year, semester = strconv.Itoa(y), s
		}
	}

	switch {
	case year != "" && semester > 0:
		pattern := year + "-%"
		if semester != 1 {
			pattern = "%-" + year
		}
		conditions = append(conditions, fmt.Sprintf("a.academic_year LIKE $%d", next()))
		args = append(args, pattern)
		conditions = append(conditions, fmt.Sprintf("a.semester = $%d", next()))
		args = append(args, semester)
	case year != "":
		conditions = append(conditions, fmt.Sprintf("a.academic_year LIKE $%d", next()))
		args = append(args, "%"+year+"%")
	case semester > 0:
		conditions = append(conditions, fmt.Sprintf("a.semester = $%d", next()))
		args = append(args, semester)
	}

	return "\nWHERE " + strings.Join(conditions, " AND "), args
}

func splitYearSem(label string) (int, int, bool) {
	parts := strings.SplitN(label, ".", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	sem, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, sem, true
}
