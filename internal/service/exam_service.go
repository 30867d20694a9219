package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type examRepo interface {
	ListByAssignment(ctx context.Context, assignmentID string) ([]models.ExamSession, error)
	GetByID(ctx context.Context, id string) (*models.ExamSession, error)
	GetOrCreate(ctx context.Context, session *models.ExamSession) (bool, error)
	ListMarks(ctx context.Context, examID string) ([]models.MarkDetail, error)
	SaveMarksAndFinalize(ctx context.Context, examID string, marks []models.Mark) error
}

type assignmentGuard interface {
	GetOwned(ctx context.Context, teacherID, assignmentID string) (*models.AssignmentDetail, error)
}

// ExamService manages exam sessions and mark entry for an assignment.
type ExamService struct {
	exams       examRepo
	assignments assignmentGuard
	students    rosterReader
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewExamService constructs ExamService.
func NewExamService(exams examRepo, assignments assignmentGuard, students rosterReader, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{exams: exams, assignments: assignments, students: students, validator: validate, logger: logger}
}

// List returns the exam sessions of an owned assignment with their
// progress counts and the allowed session names.
func (s *ExamService) List(ctx context.Context, teacherID, assignmentID string) (*dto.ExamListResponse, error) {
	if _, err := s.assignments.GetOwned(ctx, teacherID, assignmentID); err != nil {
		return nil, err
	}
	sessions, err := s.exams.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exam sessions")
	}
	items := make([]dto.ExamItem, 0, len(sessions))
	completed := 0
	for i := range sessions {
		if sessions[i].Status == models.ExamStatusFinalized {
			completed++
		}
		items = append(items, toExamItem(&sessions[i]))
	}
	return &dto.ExamListResponse{
		Exams:        items,
		Total:        len(items),
		Completed:    completed,
		Pending:      len(items) - completed,
		AllowedNames: academic.ExamNames,
	}, nil
}

// Create opens the named session for an assignment, returning the existing
// one unchanged when it was already opened. The total marks follow from
// the session name.
func (s *ExamService) Create(ctx context.Context, teacherID, assignmentID string, req dto.CreateExamRequest) (*dto.CreateExamResponse, error) {
	if !academic.ValidExamName(req.Name) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown exam name %q", req.Name))
	}
	if _, err := s.assignments.GetOwned(ctx, teacherID, assignmentID); err != nil {
		return nil, err
	}

	session := &models.ExamSession{
		AssignmentID: assignmentID,
		Name:         req.Name,
		TotalMarks:   academic.TotalMarksFor(req.Name),
	}
	created, err := s.exams.GetOrCreate(ctx, session)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open exam session")
	}
	if created {
		s.logger.Info("exam session opened",
			zap.String("assignment_id", assignmentID),
			zap.String("exam", req.Name))
	}
	return &dto.CreateExamResponse{Exam: toExamItem(session), Created: created}, nil
}

// Roster returns one page of the mark entry sheet for a session: every
// enrolled student, with their saved score when one exists.
func (s *ExamService) Roster(ctx context.Context, teacherID, examID string, page int) (*dto.ExamRosterResponse, *models.Pagination, error) {
	session, detail, err := s.ownedSession(ctx, teacherID, examID)
	if err != nil {
		return nil, nil, err
	}

	roster, err := s.students.ListRoster(ctx, detail.ClassID, detail.SubjectID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	marks, err := s.exams.ListMarks(ctx, examID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load marks")
	}

	scoreByStudent := make(map[string]int, len(marks))
	for _, m := range marks {
		scoreByStudent[m.StudentID] = m.Score
	}

	if page < 1 {
		page = 1
	}
	total := len(roster)
	start, end := pageBounds(total, page, academic.MarksPageSize)

	entries := make([]dto.RosterEntry, 0, end-start)
	for _, st := range roster[start:end] {
		entry := dto.RosterEntry{StudentID: st.USN, StudentName: st.FullName, Registered: st.Registered}
		if score, ok := scoreByStudent[st.USN]; ok {
			v := score
			entry.Score = &v
		}
		entries = append(entries, entry)
	}

	pagination := &models.Pagination{Page: page, PageSize: academic.MarksPageSize, TotalCount: total}
	return &dto.ExamRosterResponse{Exam: toExamItem(session), Entries: entries}, pagination, nil
}

func pageBounds(total, page, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// Confirm saves the submitted scores and finalizes the session. Scores
// for students not registered in the subject are skipped rather than
// rejected; scores must stay within the session's total. Resubmitting
// overwrites.
func (s *ExamService) Confirm(ctx context.Context, teacherID, examID string, req dto.ConfirmMarksRequest) (*dto.ConfirmMarksResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid marks payload")
	}
	session, detail, err := s.ownedSession(ctx, teacherID, examID)
	if err != nil {
		return nil, err
	}

	roster, err := s.students.ListRoster(ctx, detail.ClassID, detail.SubjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	registered := make(map[string]struct{}, len(roster))
	for _, st := range roster {
		if st.Registered {
			registered[st.USN] = struct{}{}
		}
	}

	marks := make([]models.Mark, 0, len(req.Marks))
	skipped := 0
	for _, entry := range req.Marks {
		if _, ok := registered[entry.StudentID]; !ok {
			skipped++
			continue
		}
		if entry.Score < academic.MinScore || entry.Score > session.TotalMarks {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("score for %s must be between %d and %d", entry.StudentID, academic.MinScore, session.TotalMarks))
		}
		marks = append(marks, models.Mark{StudentID: entry.StudentID, Score: entry.Score})
	}

	if err := s.exams.SaveMarksAndFinalize(ctx, examID, marks); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save marks")
	}
	s.logger.Info("exam session finalized",
		zap.String("exam_id", examID),
		zap.Int("marks", len(marks)),
		zap.Int("skipped", skipped))

	return &dto.ConfirmMarksResponse{
		ExamID:  examID,
		Saved:   len(marks),
		Skipped: skipped,
		Status:  string(models.ExamStatusFinalized),
	}, nil
}

func (s *ExamService) ownedSession(ctx context.Context, teacherID, examID string) (*models.ExamSession, *models.AssignmentDetail, error) {
	session, err := s.exams.GetByID(ctx, examID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "exam session not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exam session")
	}
	detail, err := s.assignments.GetOwned(ctx, teacherID, session.AssignmentID)
	if err != nil {
		return nil, nil, err
	}
	return session, detail, nil
}

func toExamItem(session *models.ExamSession) dto.ExamItem {
	return dto.ExamItem{
		ID:         session.ID,
		Name:       session.Name,
		TotalMarks: session.TotalMarks,
		Status:     string(session.Status),
		CreatedAt:  session.CreatedAt.Format(academic.DateFormat),
	}
}
