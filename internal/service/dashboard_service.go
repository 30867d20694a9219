package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type assignmentCounter interface {
	CountByTeacherAndTerm(ctx context.Context, teacherID string, year, semester int) (int, error)
}

type pendingExamCounter interface {
	CountPendingByTeacher(ctx context.Context, teacherID string) (int, error)
}

type todayAttendanceReader interface {
	TodayPresence(ctx context.Context, teacherID string, date time.Time) (present, total int, err error)
}

// DashboardService summarises a teacher's current term.
type DashboardService struct {
	assignments assignmentCounter
	exams       pendingExamCounter
	slots       slotReader
	attendance  todayAttendanceReader
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService constructs DashboardService.
func NewDashboardService(assignments assignmentCounter, exams pendingExamCounter, slots slotReader, attendance todayAttendanceReader, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		assignments: assignments,
		exams:       exams,
		slots:       slots,
		attendance:  attendance,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Summary builds the dashboard payload for a teacher.
func (s *DashboardService) Summary(ctx context.Context, teacher *models.Teacher) (*dto.DashboardResponse, error) {
	now := s.now()
	year := academic.AcademicYearStart(now)
	semester := academic.SemesterFor(now)

	assignmentCount, err := s.assignments.CountByTeacherAndTerm(ctx, teacher.ID, year, semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count assignments")
	}
	pendingExams, err := s.exams.CountPendingByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count pending exams")
	}

	slots, err := s.slots.ListByTeacher(ctx, teacher.ID, year, semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	today := now.Weekday().String()
	schedule := make([]dto.TodaySlot, 0)
	for _, period := range academic.TimeSlots {
		for _, slot := range slots {
			if slot.Day != today || slot.Period != period {
				continue
			}
			schedule = append(schedule, dto.TodaySlot{
				Period:      slot.Period,
				SubjectName: slot.SubjectName,
				ClassLabel:  fmt.Sprintf("%s %d %s", slot.DepartmentName, slot.ClassSemester, slot.Section),
			})
		}
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	present, total, err := s.attendance.TodayPresence(ctx, teacher.ID, midnight)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load today attendance")
	}

	return &dto.DashboardResponse{
		TeacherName:     teacher.FullName,
		CurrentTerm:     academic.CurrentYearSem(now),
		AssignmentCount: assignmentCount,
		PendingExams:    pendingExams,
		TodaySchedule:   schedule,
		TodayAttendance: academic.SessionAttendancePercent(present, total),
	}, nil
}
