package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	"github.com/noah-isme/teacher-portal-api/internal/repository"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type attendanceRepo interface {
	ListByAssignment(ctx context.Context, assignmentID string, page, pageSize int) ([]repository.SessionWithCounts, int, error)
	GetByID(ctx context.Context, id string) (*repository.SessionWithCounts, error)
	GetOrCreate(ctx context.Context, session *models.AttendanceSession) (bool, error)
	ListRecords(ctx context.Context, sessionID string) ([]models.AttendanceRecordDetail, error)
	SaveRecordsAndConfirm(ctx context.Context, sessionID string, records []models.AttendanceRecord) error
}

// AttendanceService manages per-date registers for an assignment.
type AttendanceService struct {
	attendance  attendanceRepo
	assignments assignmentGuard
	students    rosterReader
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAttendanceService constructs AttendanceService.
func NewAttendanceService(attendance attendanceRepo, assignments assignmentGuard, students rosterReader, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{attendance: attendance, assignments: assignments, students: students, validator: validate, logger: logger}
}

// List returns one page of an owned assignment's registers, newest first.
func (s *AttendanceService) List(ctx context.Context, teacherID, assignmentID string, page int) ([]dto.AttendanceSessionItem, *models.Pagination, error) {
	if _, err := s.assignments.GetOwned(ctx, teacherID, assignmentID); err != nil {
		return nil, nil, err
	}
	if page < 1 {
		page = 1
	}
	sessions, total, err := s.attendance.ListByAssignment(ctx, assignmentID, page, academic.AttendancePageSize)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance sessions")
	}
	items := make([]dto.AttendanceSessionItem, 0, len(sessions))
	for i := range sessions {
		items = append(items, toSessionItem(&sessions[i]))
	}
	pagination := &models.Pagination{Page: page, PageSize: academic.AttendancePageSize, TotalCount: total}
	return items, pagination, nil
}

// Create opens the register for a date, returning the existing one
// unchanged when the date was already opened.
func (s *AttendanceService) Create(ctx context.Context, teacherID, assignmentID string, req dto.CreateAttendanceRequest) (*dto.CreateAttendanceResponse, error) {
	date, err := time.ParseInLocation(academic.DateFormat, req.Date, time.UTC)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("date must use format %s", academic.DateFormat))
	}
	if _, err := s.assignments.GetOwned(ctx, teacherID, assignmentID); err != nil {
		return nil, err
	}

	session := &models.AttendanceSession{
		AssignmentID: assignmentID,
		Date:         date,
		Status:       models.AttendanceNotMarked,
	}
	created, err := s.attendance.GetOrCreate(ctx, session)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open attendance session")
	}
	if created {
		s.logger.Info("attendance session opened",
			zap.String("assignment_id", assignmentID),
			zap.String("date", req.Date))
	}

	item := dto.AttendanceSessionItem{
		ID:     session.ID,
		Date:   session.Date.Format(academic.DateFormat),
		Status: int(session.Status),
	}
	return &dto.CreateAttendanceResponse{Session: item, Created: created}, nil
}

// Get returns one session with its headline stats.
func (s *AttendanceService) Get(ctx context.Context, teacherID, sessionID string) (*dto.AttendanceSessionItem, error) {
	session, _, err := s.ownedSession(ctx, teacherID, sessionID)
	if err != nil {
		return nil, err
	}
	item := toSessionItem(session)
	return &item, nil
}

// Sheet returns the register sheet for a session. Roster members without a
// saved record default to present, matching a freshly opened register.
func (s *AttendanceService) Sheet(ctx context.Context, teacherID, sessionID string) (*dto.AttendanceSheetResponse, error) {
	session, detail, err := s.ownedSession(ctx, teacherID, sessionID)
	if err != nil {
		return nil, err
	}

	roster, err := s.students.ListRoster(ctx, detail.ClassID, detail.SubjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	records, err := s.attendance.ListRecords(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance records")
	}

	presentByStudent := make(map[string]bool, len(records))
	for _, r := range records {
		presentByStudent[r.StudentID] = r.Present
	}

	entries := make([]dto.AttendanceEntry, 0, len(roster))
	for _, st := range roster {
		present, recorded := presentByStudent[st.USN]
		if !recorded {
			present = true
		}
		entries = append(entries, dto.AttendanceEntry{
			StudentID:   st.USN,
			StudentName: st.FullName,
			Present:     present,
		})
	}

	return &dto.AttendanceSheetResponse{Session: toSessionItem(session), Entries: entries}, nil
}

// Confirm saves the submitted register and marks the session taken.
// Every roster student gets a record: those missing from the payload are
// recorded absent, payload entries outside the roster are ignored.
// Resubmitting overwrites the earlier flags.
func (s *AttendanceService) Confirm(ctx context.Context, teacherID, sessionID string, req dto.ConfirmAttendanceRequest) (*dto.ConfirmAttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid register payload")
	}
	_, detail, err := s.ownedSession(ctx, teacherID, sessionID)
	if err != nil {
		return nil, err
	}

	roster, err := s.students.ListRoster(ctx, detail.ClassID, detail.SubjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	presentByStudent := make(map[string]bool, len(req.Records))
	for _, entry := range req.Records {
		presentByStudent[entry.StudentID] = entry.Present
	}

	records := make([]models.AttendanceRecord, 0, len(roster))
	for _, st := range roster {
		records = append(records, models.AttendanceRecord{StudentID: st.USN, Present: presentByStudent[st.USN]})
	}

	if err := s.attendance.SaveRecordsAndConfirm(ctx, sessionID, records); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save attendance")
	}
	s.logger.Info("attendance session confirmed",
		zap.String("session_id", sessionID),
		zap.Int("records", len(records)))

	return &dto.ConfirmAttendanceResponse{
		SessionID: sessionID,
		Saved:     len(records),
		Status:    int(models.AttendanceMarked),
	}, nil
}

func (s *AttendanceService) ownedSession(ctx context.Context, teacherID, sessionID string) (*repository.SessionWithCounts, *models.AssignmentDetail, error) {
	session, err := s.attendance.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "attendance session not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance session")
	}
	detail, err := s.assignments.GetOwned(ctx, teacherID, session.AssignmentID)
	if err != nil {
		return nil, nil, err
	}
	return session, detail, nil
}

func toSessionItem(session *repository.SessionWithCounts) dto.AttendanceSessionItem {
	return dto.AttendanceSessionItem{
		ID:           session.ID,
		Date:         session.Date.Format(academic.DateFormat),
		Status:       int(session.Status),
		PresentCount: session.PresentCount,
		AbsentCount:  session.TotalCount - session.PresentCount,
		TotalCount:   session.TotalCount,
		Percent:      academic.SessionAttendancePercent(session.PresentCount, session.TotalCount),
	}
}
