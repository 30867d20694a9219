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

// AttendanceRepository persists attendance sessions and their records.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// SessionWithCounts is a session row with its presence totals.
type SessionWithCounts struct {
	models.AttendanceSession
	PresentCount int `db:"present_count"`
	TotalCount   int `db:"total_count"`
}

// ListByAssignment returns an assignment's sessions newest first, each with
// its presence totals, plus the unpaginated session count.
func (r *AttendanceRepository) ListByAssignment(ctx context.Context, assignmentID string, page, pageSize int) ([]SessionWithCounts, int, error) {
	const countQuery = `SELECT COUNT(*) FROM attendance_sessions WHERE assignment_id = $1`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, assignmentID); err != nil {
		return nil, 0, fmt.Errorf("count attendance sessions: %w", err)
	}

	query := `SELECT s.id, s.assignment_id, s.date, s.status, s.created_at,
       COUNT(r.id) FILTER (WHERE r.present) AS present_count,
       COUNT(r.id) AS total_count
FROM attendance_sessions s
LEFT JOIN attendance_records r ON r.session_id = s.id
WHERE s.assignment_id = $1
GROUP BY s.id
ORDER BY s.date DESC`
	if pageSize > 0 {
		offset := 0
		if page > 1 {
			offset = (page - 1) * pageSize
		}
		query += fmt.Sprintf("\nLIMIT %d OFFSET %d", pageSize, offset)
	}

	var sessions []SessionWithCounts
	if err := r.db.SelectContext(ctx, &sessions, query, assignmentID); err != nil {
		return nil, 0, fmt.Errorf("list attendance sessions: %w", err)
	}
	return sessions, total, nil
}

// GetByID loads one session with its presence totals.
func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*SessionWithCounts, error) {
	const query = `SELECT s.id, s.assignment_id, s.date, s.status, s.created_at,
       COUNT(r.id) FILTER (WHERE r.present) AS present_count,
       COUNT(r.id) AS total_count
FROM attendance_sessions s
LEFT JOIN attendance_records r ON r.session_id = s.id
WHERE s.id = $1
GROUP BY s.id`
	var session SessionWithCounts
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, fmt.Errorf("get attendance session: %w", err)
	}
	return &session, nil
}

// GetOrCreate returns the session for an assignment and date, inserting it
// when absent. The boolean reports whether a new row was created.
func (r *AttendanceRepository) GetOrCreate(ctx context.Context, session *models.AttendanceSession) (bool, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	const insert = `INSERT INTO attendance_sessions (id, assignment_id, date, status, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (assignment_id, date) DO NOTHING
RETURNING id, assignment_id, date, status, created_at`
	err := r.db.GetContext(ctx, session, insert,
		session.ID, session.AssignmentID, session.Date, session.Status, session.CreatedAt)
	if err == nil {
		return true, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("create attendance session: %w", err)
	}

	const query = `SELECT id, assignment_id, date, status, created_at
FROM attendance_sessions WHERE assignment_id = $1 AND date = $2`
	if err := r.db.GetContext(ctx, session, query, session.AssignmentID, session.Date); err != nil {
		return false, fmt.Errorf("get attendance session: %w", err)
	}
	return false, nil
}

// ListRecords returns a session's records keyed to student identity.
func (r *AttendanceRepository) ListRecords(ctx context.Context, sessionID string) ([]models.AttendanceRecordDetail, error) {
	const query = `SELECT r.id, r.session_id, r.student_id, r.present, r.updated_at,
       st.full_name AS student_name
FROM attendance_records r
JOIN students st ON st.usn = r.student_id
WHERE r.session_id = $1
ORDER BY st.usn ASC`
	var records []models.AttendanceRecordDetail
	if err := r.db.SelectContext(ctx, &records, query, sessionID); err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	return records, nil
}

// SaveRecordsAndConfirm upserts the submitted register and marks the
// session taken in one transaction. Resubmitting overwrites earlier flags.
func (r *AttendanceRepository) SaveRecordsAndConfirm(ctx context.Context, sessionID string, records []models.AttendanceRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin attendance tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT INTO attendance_records (id, session_id, student_id, present, updated_at)
VALUES (:id, :session_id, :student_id, :present, :updated_at)
ON CONFLICT (session_id, student_id)
DO UPDATE SET present = EXCLUDED.present, updated_at = EXCLUDED.updated_at`
	now := time.Now().UTC()
	for i := range records {
		records[i].SessionID = sessionID
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
		records[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, upsert, records[i]); err != nil {
			return fmt.Errorf("upsert attendance record: %w", err)
		}
	}

	const confirm = `UPDATE attendance_sessions SET status = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, confirm, sessionID, models.AttendanceMarked); err != nil {
		return fmt.Errorf("confirm attendance session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attendance tx: %w", err)
	}
	return nil
}

// CountsByStudent aggregates presence totals per student across every
// confirmed session of an assignment.
func (r *AttendanceRepository) CountsByStudent(ctx context.Context, assignmentID string) ([]models.StudentAttendanceCount, error) {
	const query = `SELECT r.student_id, st.full_name AS student_name,
       COUNT(r.id) FILTER (WHERE r.present) AS present_count,
       COUNT(r.id) AS total_count
FROM attendance_records r
JOIN attendance_sessions s ON s.id = r.session_id
JOIN students st ON st.usn = r.student_id
WHERE s.assignment_id = $1 AND s.status = $2
GROUP BY r.student_id, st.full_name
ORDER BY r.student_id ASC`
	var counts []models.StudentAttendanceCount
	if err := r.db.SelectContext(ctx, &counts, query, assignmentID, models.AttendanceMarked); err != nil {
		return nil, fmt.Errorf("aggregate attendance counts: %w", err)
	}
	return counts, nil
}

// TodayPresence aggregates presence across all of a teacher's sessions on a
// given date, for the dashboard headline.
func (r *AttendanceRepository) TodayPresence(ctx context.Context, teacherID string, date time.Time) (present, total int, err error) {
	const query = `SELECT COUNT(r.id) FILTER (WHERE r.present) AS present_count,
       COUNT(r.id) AS total_count
FROM attendance_records r
JOIN attendance_sessions s ON s.id = r.session_id
JOIN assignments a ON a.id = s.assignment_id
WHERE a.teacher_id = $1 AND s.date = $2`
	var row struct {
		PresentCount int `db:"present_count"`
		TotalCount   int `db:"total_count"`
	}
	if err := r.db.GetContext(ctx, &row, query, teacherID, date); err != nil {
		return 0, 0, fmt.Errorf("aggregate today attendance: %w", err)
	}
	return row.PresentCount, row.TotalCount, nil
}
