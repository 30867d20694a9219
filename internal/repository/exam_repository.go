package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-portal-api/internal/models"
)

// ExamRepository persists exam sessions and marks.
type ExamRepository struct {
	db *sqlx.DB
}

// NewExamRepository constructs the repository.
func NewExamRepository(db *sqlx.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

// ListByAssignment returns an assignment's exam sessions, newest first.
func (r *ExamRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]models.ExamSession, error) {
	const query = `SELECT id, assignment_id, name, total_marks, status, created_at
FROM exam_sessions WHERE assignment_id = $1
ORDER BY created_at DESC, name ASC`
	var sessions []models.ExamSession
	if err := r.db.SelectContext(ctx, &sessions, query, assignmentID); err != nil {
		return nil, fmt.Errorf("list exam sessions: %w", err)
	}
	return sessions, nil
}

// GetByID loads one exam session.
func (r *ExamRepository) GetByID(ctx context.Context, id string) (*models.ExamSession, error) {
	const query = `SELECT id, assignment_id, name, total_marks, status, created_at
FROM exam_sessions WHERE id = $1`
	var session models.ExamSession
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, fmt.Errorf("get exam session: %w", err)
	}
	return &session, nil
}

// GetOrCreate returns the session for an assignment and name, inserting it
// when absent. The boolean reports whether a new row was created.
func (r *ExamRepository) GetOrCreate(ctx context.Context, session *models.ExamSession) (bool, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	if session.Status == "" {
		session.Status = models.ExamStatusPending
	}
	const insert = `INSERT INTO exam_sessions (id, assignment_id, name, total_marks, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (assignment_id, name) DO NOTHING
RETURNING id, assignment_id, name, total_marks, status, created_at`
	err := r.db.GetContext(ctx, session, insert,
		session.ID, session.AssignmentID, session.Name, session.TotalMarks, session.Status, session.CreatedAt)
	if err == nil {
		return true, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("create exam session: %w", err)
	}

	const query = `SELECT id, assignment_id, name, total_marks, status, created_at
FROM exam_sessions WHERE assignment_id = $1 AND name = $2`
	if err := r.db.GetContext(ctx, session, query, session.AssignmentID, session.Name); err != nil {
		return false, fmt.Errorf("get exam session: %w", err)
	}
	return false, nil
}

// ListMarks returns the saved marks of a session keyed to student identity.
func (r *ExamRepository) ListMarks(ctx context.Context, examID string) ([]models.MarkDetail, error) {
	const query = `SELECT m.id, m.exam_id, m.student_id, m.score, m.updated_at,
       st.full_name AS student_name
FROM marks m
JOIN students st ON st.usn = m.student_id
WHERE m.exam_id = $1
ORDER BY st.usn ASC`
	var marks []models.MarkDetail
	if err := r.db.SelectContext(ctx, &marks, query, examID); err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	return marks, nil
}

// SaveMarksAndFinalize upserts the submitted scores and flips the session
// to finalized in one transaction. Resubmitting overwrites earlier scores.
func (r *ExamRepository) SaveMarksAndFinalize(ctx context.Context, examID string, marks []models.Mark) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin marks tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT INTO marks (id, exam_id, student_id, score, updated_at)
VALUES (:id, :exam_id, :student_id, :score, :updated_at)
ON CONFLICT (exam_id, student_id)
DO UPDATE SET score = EXCLUDED.score, updated_at = EXCLUDED.updated_at`
	now := time.Now().UTC()
	for i := range marks {
		marks[i].ExamID = examID
		if marks[i].ID == "" {
			marks[i].ID = uuid.NewString()
		}
		marks[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, upsert, marks[i]); err != nil {
			return fmt.Errorf("upsert mark: %w", err)
		}
	}

	const finalize = `UPDATE exam_sessions SET status = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, finalize, examID, models.ExamStatusFinalized); err != nil {
		return fmt.Errorf("finalize exam session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit marks tx: %w", err)
	}
	return nil
}

// ScoresByAssignment returns every saved score across an assignment's exam
// sessions, grouped per student in session creation order.
func (r *ExamRepository) ScoresByAssignment(ctx context.Context, assignmentID string) ([]models.ExamScore, error) {
	const query = `SELECT m.student_id, e.name AS exam_name, m.score
FROM marks m
JOIN exam_sessions e ON e.id = m.exam_id
WHERE e.assignment_id = $1
ORDER BY m.student_id ASC, e.created_at ASC, e.id ASC`
	var scores []models.ExamScore
	if err := r.db.SelectContext(ctx, &scores, query, assignmentID); err != nil {
		return nil, fmt.Errorf("list assignment scores: %w", err)
	}
	return scores, nil
}

// CountPendingByTeacher returns the number of sessions still open for mark
// entry across a teacher's assignments.
func (r *ExamRepository) CountPendingByTeacher(ctx context.Context, teacherID string) (int, error) {
	const query = `SELECT COUNT(*)
FROM exam_sessions e
JOIN assignments a ON a.id = e.assignment_id
WHERE a.teacher_id = $1 AND e.status = $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, teacherID, models.ExamStatusPending); err != nil {
		return 0, fmt.Errorf("count pending exams: %w", err)
	}
	return count, nil
}
