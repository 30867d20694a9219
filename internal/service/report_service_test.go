package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
	"github.com/noah-isme/teacher-portal-api/pkg/export"
)

type fakeAttendanceCounts struct {
	counts []models.StudentAttendanceCount
}

func (f *fakeAttendanceCounts) CountsByStudent(context.Context, string) ([]models.StudentAttendanceCount, error) {
	return f.counts, nil
}

type fakeScores struct {
	scores []models.ExamScore
}

func (f *fakeScores) ScoresByAssignment(context.Context, string) ([]models.ExamScore, error) {
	return f.scores, nil
}

func defaultStandards() ReportStandards {
	return ReportStandards{Attendance: 75, CIE: 25, CIELimit: 5, CIEDivisor: 2}
}

func newReportService(counts []models.StudentAttendanceCount, scores []models.ExamScore) *ReportService {
	return NewReportService(
		ownedAssignment(),
		twoStudentRoster(),
		&fakeAttendanceCounts{counts: counts},
		&fakeScores{scores: scores},
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		defaultStandards(),
		nil,
	)
}

func TestReportServiceFlagsStudentsUnderStandards(t *testing.T) {
	counts := []models.StudentAttendanceCount{
		{StudentID: "1MS21CS001", PresentCount: 9, TotalCount: 10},
		{StudentID: "1MS21CS002", PresentCount: 5, TotalCount: 10},
	}
	scores := []models.ExamScore{
		{StudentID: "1MS21CS001", ExamName: "Internal test 1", Score: 18},
		{StudentID: "1MS21CS001", ExamName: "Internal test 2", Score: 16},
		{StudentID: "1MS21CS001", ExamName: "Internal test 3", Score: 17},
		{StudentID: "1MS21CS002", ExamName: "Internal test 1", Score: 8},
	}
	svc := newReportService(counts, scores)

	report, err := svc.Build(context.Background(), "teacher-1", "assign-1")
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)

	first := report.Rows[0]
	assert.Equal(t, float64(90), first.AttendancePercent)
	assert.Equal(t, 26, first.CIE)
	assert.False(t, first.NeedSupport)

	second := report.Rows[1]
	assert.Equal(t, float64(50), second.AttendancePercent)
	assert.Equal(t, 4, second.CIE)
	assert.True(t, second.LowAttendance)
	assert.True(t, second.LowCIE)
	assert.True(t, second.NeedSupport)

	assert.Equal(t, 1, report.NeedSupportCount)
	assert.Equal(t, 1, report.GoodAttendanceCount)
	assert.Equal(t, 1, report.GoodCIECount)
	assert.Equal(t, float64(50), report.PassRate)
}

func TestReportServiceBuildSkipsUnregisteredStudents(t *testing.T) {
	roster := &fakeRoster{students: []models.Student{
		{USN: "1MS21CS001", FullName: "Asha Rao", Registered: true},
		{USN: "1MS21CS003", FullName: "Priya Nair"},
	}}
	counts := []models.StudentAttendanceCount{
		{StudentID: "1MS21CS001", PresentCount: 9, TotalCount: 10},
	}
	svc := NewReportService(
		ownedAssignment(),
		roster,
		&fakeAttendanceCounts{counts: counts},
		&fakeScores{},
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		defaultStandards(),
		nil,
	)

	report, err := svc.Build(context.Background(), "teacher-1", "assign-1")
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "1MS21CS001", report.Rows[0].StudentID)
	assert.Equal(t, 1, report.TotalStudents)
}

func TestReportServiceStudentWithNoDataNeedsSupport(t *testing.T) {
	svc := newReportService(nil, nil)

	report, err := svc.Build(context.Background(), "teacher-1", "assign-1")
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	for _, row := range report.Rows {
		assert.Equal(t, float64(0), row.AttendancePercent)
		assert.Equal(t, 0, row.CIE)
		assert.True(t, row.NeedSupport)
	}
	assert.Equal(t, float64(0), report.PassRate)
}

func TestReportServiceEmptyRosterPassesInFull(t *testing.T) {
	svc := NewReportService(
		ownedAssignment(),
		&fakeRoster{},
		&fakeAttendanceCounts{},
		&fakeScores{},
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		defaultStandards(),
		nil,
	)

	report, err := svc.Build(context.Background(), "teacher-1", "assign-1")
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, float64(100), report.PassRate)
}

func TestReportServiceStudentsTotals(t *testing.T) {
	counts := []models.StudentAttendanceCount{
		{StudentID: "1MS21CS001", PresentCount: 9, TotalCount: 10},
	}
	scores := []models.ExamScore{
		{StudentID: "1MS21CS001", ExamName: "Internal test 1", Score: 18},
		{StudentID: "1MS21CS001", ExamName: "Internal test 2", Score: 16},
		{StudentID: "1MS21CS001", ExamName: "Semester End Exam", Score: 74},
	}
	svc := newReportService(counts, scores)

	totals, pagination, err := svc.Students(context.Background(), "teacher-1", "assign-1", 0)
	require.NoError(t, err)
	assert.Equal(t, "Operating Systems", totals.SubjectName)
	assert.Equal(t, 2, pagination.TotalCount)
	assert.Equal(t, 25, pagination.PageSize)

	require.Len(t, totals.Students, 2)
	first := totals.Students[0]
	assert.Equal(t, 108, first.TotalMarks)
	assert.Equal(t, 54, first.CIE, "first five scores summed and halved, rounded up")
	assert.Equal(t, 9, first.AttendedCount)
	assert.Equal(t, float64(90), first.AttendancePercent)

	second := totals.Students[1]
	assert.Equal(t, 0, second.TotalMarks)
	assert.Equal(t, 0, second.TotalCount)
	assert.True(t, second.Registered)
}

func TestReportServiceStudentsZeroesUnregisteredStudents(t *testing.T) {
	roster := &fakeRoster{students: []models.Student{
		{USN: "1MS21CS001", FullName: "Asha Rao", Registered: true},
		{USN: "1MS21CS003", FullName: "Priya Nair"},
	}}
	counts := []models.StudentAttendanceCount{
		{StudentID: "1MS21CS001", PresentCount: 9, TotalCount: 10},
		{StudentID: "1MS21CS003", PresentCount: 7, TotalCount: 10},
	}
	svc := NewReportService(
		ownedAssignment(),
		roster,
		&fakeAttendanceCounts{counts: counts},
		&fakeScores{},
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		defaultStandards(),
		nil,
	)

	totals, _, err := svc.Students(context.Background(), "teacher-1", "assign-1", 1)
	require.NoError(t, err)
	require.Len(t, totals.Students, 2)

	unregistered := totals.Students[1]
	assert.Equal(t, "1MS21CS003", unregistered.StudentID)
	assert.Equal(t, "Priya Nair", unregistered.StudentName)
	assert.False(t, unregistered.Registered)
	assert.Equal(t, 0, unregistered.TotalCount, "attendance rows for unregistered students are not surfaced")
	assert.Equal(t, float64(0), unregistered.AttendancePercent)
}

func TestReportServiceExportCSV(t *testing.T) {
	counts := []models.StudentAttendanceCount{
		{StudentID: "1MS21CS001", PresentCount: 8, TotalCount: 10},
	}
	svc := newReportService(counts, nil)

	payload, contentType, err := svc.Export(context.Background(), "teacher-1", "assign-1", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "USN,Name,Attendance %,CIE,Needs Support")
	assert.Contains(t, string(payload), "1MS21CS001,Asha Rao,80.00,0,true")
}

func TestReportServiceExportPDF(t *testing.T) {
	svc := newReportService(nil, nil)

	payload, contentType, err := svc.Export(context.Background(), "teacher-1", "assign-1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.NotEmpty(t, payload)
}

func TestReportServiceExportUnknownFormat(t *testing.T) {
	svc := newReportService(nil, nil)

	_, _, err := svc.Export(context.Background(), "teacher-1", "assign-1", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
