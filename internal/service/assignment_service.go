package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type assignmentRepo interface {
	List(ctx context.Context, filter models.AssignmentFilter) ([]models.AssignmentDetail, int, error)
	GetDetail(ctx context.Context, id string) (*models.AssignmentDetail, error)
	DistinctYearSems(ctx context.Context, teacherID string) ([]string, error)
}

type teacherReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.Teacher, error)
}

type rosterReader interface {
	ListRoster(ctx context.Context, classID, subjectID string) ([]models.Student, error)
}

// AssignmentService serves the teacher's class list and guards ownership
// of assignment-scoped resources.
type AssignmentService struct {
	assignments assignmentRepo
	teachers    teacherReader
	logger      *zap.Logger
	now         func() time.Time
}

// NewAssignmentService constructs AssignmentService.
func NewAssignmentService(assignments assignmentRepo, teachers teacherReader, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		assignments: assignments,
		teachers:    teachers,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// TeacherForUser resolves the staff profile behind an authenticated user.
func (s *AssignmentService) TeacherForUser(ctx context.Context, userID string) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "no teacher profile linked to account")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}

// List returns one page of a teacher's assignments with the term dropdown
// vocabulary and pagination metadata.
func (s *AssignmentService) List(ctx context.Context, teacherID string, req dto.AssignmentListRequest) (*dto.AssignmentListResponse, *models.Pagination, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	filter := models.AssignmentFilter{
		TeacherID: teacherID,
		YearSem:   req.YearSem,
		Year:      req.Year,
		Semester:  req.Semester,
		Page:      page,
		PageSize:  academic.AssignmentPageSize,
	}
	assignments, total, err := s.assignments.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}

	yearSems, err := s.assignments.DistinctYearSems(ctx, teacherID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list terms")
	}

	items := make([]dto.AssignmentItem, 0, len(assignments))
	for i := range assignments {
		items = append(items, toAssignmentItem(&assignments[i]))
	}

	resp := &dto.AssignmentListResponse{
		Assignments: items,
		YearSems:    yearSems,
		CurrentTerm: academic.CurrentYearSem(s.now()),
	}
	pagination := &models.Pagination{Page: page, PageSize: academic.AssignmentPageSize, TotalCount: total}
	return resp, pagination, nil
}

// GetOwned loads an assignment and verifies the teacher owns it.
func (s *AssignmentService) GetOwned(ctx context.Context, teacherID, assignmentID string) (*models.AssignmentDetail, error) {
	detail, err := s.assignments.GetDetail(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if detail.TeacherID != teacherID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "assignment belongs to another teacher")
	}
	return detail, nil
}

func toAssignmentItem(d *models.AssignmentDetail) dto.AssignmentItem {
	return dto.AssignmentItem{
		ID:          d.ID,
		SubjectCode: d.SubjectCode,
		SubjectName: d.SubjectName,
		ClassLabel:  d.ClassLabel(),
		Department:  d.DepartmentName,
		Semester:    d.ClassSemester,
		Section:     d.Section,
		YearSem:     d.YearSem(),
	}
}
