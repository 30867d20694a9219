package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
	"github.com/noah-isme/teacher-portal-api/pkg/export"
)

type attendanceAggregator interface {
	CountsByStudent(ctx context.Context, assignmentID string) ([]models.StudentAttendanceCount, error)
}

type scoreReader interface {
	ScoresByAssignment(ctx context.Context, assignmentID string) ([]models.ExamScore, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ReportStandards are the thresholds a student must clear.
type ReportStandards struct {
	Attendance int
	CIE        int
	CIELimit   int
	CIEDivisor int
}

// ReportService builds the per-subject performance report.
type ReportService struct {
	assignments assignmentGuard
	students    rosterReader
	attendance  attendanceAggregator
	scores      scoreReader
	csv         csvRenderer
	pdf         pdfRenderer
	standards   ReportStandards
	logger      *zap.Logger
}

// NewReportService constructs ReportService.
func NewReportService(assignments assignmentGuard, students rosterReader, attendance attendanceAggregator, scores scoreReader, csv csvRenderer, pdf pdfRenderer, standards ReportStandards, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		assignments: assignments,
		students:    students,
		attendance:  attendance,
		scores:      scores,
		csv:         csv,
		pdf:         pdf,
		standards:   standards,
		logger:      logger,
	}
}

// reportInputs is everything a per-student aggregation needs.
type reportInputs struct {
	detail          *models.AssignmentDetail
	roster          []models.Student
	countByStudent  map[string]models.StudentAttendanceCount
	scoresByStudent map[string][]int
}

func (s *ReportService) load(ctx context.Context, teacherID, assignmentID string) (*reportInputs, error) {
	detail, err := s.assignments.GetOwned(ctx, teacherID, assignmentID)
	if err != nil {
		return nil, err
	}

	roster, err := s.students.ListRoster(ctx, detail.ClassID, detail.SubjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	counts, err := s.attendance.CountsByStudent(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance counts")
	}
	scores, err := s.scores.ScoresByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scores")
	}

	countByStudent := make(map[string]models.StudentAttendanceCount, len(counts))
	for _, c := range counts {
		countByStudent[c.StudentID] = c
	}
	scoresByStudent := make(map[string][]int)
	for _, sc := range scores {
		scoresByStudent[sc.StudentID] = append(scoresByStudent[sc.StudentID], sc.Score)
	}

	return &reportInputs{
		detail:          detail,
		roster:          roster,
		countByStudent:  countByStudent,
		scoresByStudent: scoresByStudent,
	}, nil
}

// Build assembles the report for an owned assignment. Each registered
// roster member gets their attendance percentage and CIE score; students
// under either standard are flagged for support.
func (s *ReportService) Build(ctx context.Context, teacherID, assignmentID string) (*dto.ReportResponse, error) {
	inputs, err := s.load(ctx, teacherID, assignmentID)
	if err != nil {
		return nil, err
	}
	detail := inputs.detail

	rows := make([]dto.ReportRow, 0, len(inputs.roster))
	needSupport := 0
	goodAttendance := 0
	goodCIE := 0
	for _, st := range inputs.roster {
		if !st.Registered {
			continue
		}
		count := inputs.countByStudent[st.USN]
		percent := academic.AttendancePercent(count.PresentCount, count.TotalCount)
		cie := academic.CIE(inputs.scoresByStudent[st.USN], s.standards.CIELimit, s.standards.CIEDivisor)

		row := dto.ReportRow{
			StudentID:         st.USN,
			StudentName:       st.FullName,
			AttendancePercent: percent,
			CIE:               cie,
			LowAttendance:     percent < float64(s.standards.Attendance),
			LowCIE:            cie < s.standards.CIE,
		}
		row.NeedSupport = row.LowAttendance || row.LowCIE
		if !row.LowAttendance {
			goodAttendance++
		}
		if !row.LowCIE {
			goodCIE++
		}
		if row.NeedSupport {
			needSupport++
		}
		rows = append(rows, row)
	}

	return &dto.ReportResponse{
		AssignmentID:        assignmentID,
		SubjectName:         detail.SubjectName,
		ClassLabel:          detail.ClassLabel(),
		Rows:                rows,
		TotalStudents:       len(rows),
		NeedSupportCount:    needSupport,
		GoodAttendanceCount: goodAttendance,
		GoodCIECount:        goodCIE,
		PassRate:            academic.PassRate(len(rows), needSupport),
		AttendanceStandard:  s.standards.Attendance,
		CIEStandard:         s.standards.CIE,
	}, nil
}

// Students returns one page of per-student totals for an owned
// assignment: summed marks, CIE and attendance counts. Class members not
// registered in the subject appear with zeroed totals.
func (s *ReportService) Students(ctx context.Context, teacherID, assignmentID string, page int) (*dto.StudentTotalsResponse, *models.Pagination, error) {
	inputs, err := s.load(ctx, teacherID, assignmentID)
	if err != nil {
		return nil, nil, err
	}

	if page < 1 {
		page = 1
	}
	total := len(inputs.roster)
	start, end := pageBounds(total, page, academic.RosterPageSize)

	students := make([]dto.StudentTotal, 0, end-start)
	for _, st := range inputs.roster[start:end] {
		if !st.Registered {
			students = append(students, dto.StudentTotal{StudentID: st.USN, StudentName: st.FullName})
			continue
		}
		count := inputs.countByStudent[st.USN]
		scores := inputs.scoresByStudent[st.USN]
		sum := 0
		for _, v := range scores {
			sum += v
		}
		students = append(students, dto.StudentTotal{
			StudentID:         st.USN,
			StudentName:       st.FullName,
			Registered:        true,
			TotalMarks:        sum,
			CIE:               academic.CIE(scores, s.standards.CIELimit, s.standards.CIEDivisor),
			AttendedCount:     count.PresentCount,
			TotalCount:        count.TotalCount,
			AttendancePercent: academic.AttendancePercent(count.PresentCount, count.TotalCount),
		})
	}

	resp := &dto.StudentTotalsResponse{
		AssignmentID: assignmentID,
		SubjectName:  inputs.detail.SubjectName,
		ClassLabel:   inputs.detail.ClassLabel(),
		Students:     students,
	}
	pagination := &models.Pagination{Page: page, PageSize: academic.RosterPageSize, TotalCount: total}
	return resp, pagination, nil
}

// Export renders the report as csv or pdf bytes with a content type.
func (s *ReportService) Export(ctx context.Context, teacherID, assignmentID, format string) ([]byte, string, error) {
	report, err := s.Build(ctx, teacherID, assignmentID)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"USN", "Name", "Attendance %", "CIE", "Needs Support"},
		Rows:    make([]map[string]string, 0, len(report.Rows)),
	}
	for _, row := range report.Rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"USN":           row.StudentID,
			"Name":          row.StudentName,
			"Attendance %":  strconv.FormatFloat(row.AttendancePercent, 'f', 2, 64),
			"CIE":           strconv.Itoa(row.CIE),
			"Needs Support": strconv.FormatBool(row.NeedSupport),
		})
	}

	switch format {
	case "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		title := fmt.Sprintf("%s - %s", report.SubjectName, report.ClassLabel)
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
