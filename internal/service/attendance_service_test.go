package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	"github.com/noah-isme/teacher-portal-api/internal/repository"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type fakeAttendanceRepo struct {
	sessions  map[string]*repository.SessionWithCounts
	records   map[string][]models.AttendanceRecordDetail
	created   []string
	confirmed map[string][]models.AttendanceRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		sessions:  map[string]*repository.SessionWithCounts{},
		records:   map[string][]models.AttendanceRecordDetail{},
		confirmed: map[string][]models.AttendanceRecord{},
	}
}

func (f *fakeAttendanceRepo) ListByAssignment(_ context.Context, assignmentID string, _, _ int) ([]repository.SessionWithCounts, int, error) {
	var out []repository.SessionWithCounts
	for _, s := range f.sessions {
		if s.AssignmentID == assignmentID {
			out = append(out, *s)
		}
	}
	return out, len(out), nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (*repository.SessionWithCounts, error) {
	if s, ok := f.sessions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAttendanceRepo) GetOrCreate(_ context.Context, session *models.AttendanceSession) (bool, error) {
	for _, s := range f.sessions {
		if s.AssignmentID == session.AssignmentID && s.Date.Equal(session.Date) {
			*session = s.AttendanceSession
			return false, nil
		}
	}
	if session.ID == "" {
		session.ID = "att-" + session.Date.Format("20060102")
	}
	f.sessions[session.ID] = &repository.SessionWithCounts{AttendanceSession: *session}
	f.created = append(f.created, session.ID)
	return true, nil
}

func (f *fakeAttendanceRepo) ListRecords(_ context.Context, sessionID string) ([]models.AttendanceRecordDetail, error) {
	return f.records[sessionID], nil
}

func (f *fakeAttendanceRepo) SaveRecordsAndConfirm(_ context.Context, sessionID string, records []models.AttendanceRecord) error {
	f.confirmed[sessionID] = records
	if s, ok := f.sessions[sessionID]; ok {
		s.Status = models.AttendanceMarked
	}
	return nil
}

func TestAttendanceServiceCreateIsIdempotent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, ownedAssignment(), twoStudentRoster(), nil, nil)

	first, err := svc.Create(context.Background(), "teacher-1", "assign-1", dto.CreateAttendanceRequest{Date: "2026-03-02"})
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := svc.Create(context.Background(), "teacher-1", "assign-1", dto.CreateAttendanceRequest{Date: "2026-03-02"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Session.ID, second.Session.ID)
	assert.Len(t, repo.created, 1)
}

func TestAttendanceServiceCreateRejectsBadDate(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), ownedAssignment(), twoStudentRoster(), nil, nil)

	_, err := svc.Create(context.Background(), "teacher-1", "assign-1", dto.CreateAttendanceRequest{Date: "02/03/2026"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAttendanceServiceSheetDefaultsToPresent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.sessions["att-1"] = &repository.SessionWithCounts{
		AttendanceSession: models.AttendanceSession{
			ID: "att-1", AssignmentID: "assign-1",
			Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	repo.records["att-1"] = []models.AttendanceRecordDetail{
		{AttendanceRecord: models.AttendanceRecord{StudentID: "1MS21CS002", Present: false}, StudentName: "Vikram Shet"},
	}
	svc := NewAttendanceService(repo, ownedAssignment(), twoStudentRoster(), nil, nil)

	sheet, err := svc.Sheet(context.Background(), "teacher-1", "att-1")
	require.NoError(t, err)
	require.Len(t, sheet.Entries, 2)
	assert.True(t, sheet.Entries[0].Present, "unrecorded student defaults to present")
	assert.False(t, sheet.Entries[1].Present, "saved absence survives")
}

func TestAttendanceServiceConfirmMarksSession(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.sessions["att-1"] = &repository.SessionWithCounts{
		AttendanceSession: models.AttendanceSession{
			ID: "att-1", AssignmentID: "assign-1",
			Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	svc := NewAttendanceService(repo, ownedAssignment(), twoStudentRoster(), nil, nil)

	resp, err := svc.Confirm(context.Background(), "teacher-1", "att-1", dto.ConfirmAttendanceRequest{
		Records: []dto.RecordEntry{
			{StudentID: "1MS21CS001", Present: true},
			{StudentID: "1MS21CS002", Present: false},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Saved)
	assert.Equal(t, int(models.AttendanceMarked), resp.Status)
	assert.Len(t, repo.confirmed["att-1"], 2)
}

func TestAttendanceServiceConfirmDefaultsMissingStudentsToAbsent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.sessions["att-1"] = &repository.SessionWithCounts{
		AttendanceSession: models.AttendanceSession{ID: "att-1", AssignmentID: "assign-1"},
	}
	svc := NewAttendanceService(repo, ownedAssignment(), twoStudentRoster(), nil, nil)

	resp, err := svc.Confirm(context.Background(), "teacher-1", "att-1", dto.ConfirmAttendanceRequest{
		Records: []dto.RecordEntry{{StudentID: "1MS21CS001", Present: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Saved)

	saved := repo.confirmed["att-1"]
	require.Len(t, saved, 2)
	byStudent := map[string]bool{}
	for _, r := range saved {
		byStudent[r.StudentID] = r.Present
	}
	assert.True(t, byStudent["1MS21CS001"])
	assert.False(t, byStudent["1MS21CS002"], "student missing from the payload is recorded absent")
}

func TestAttendanceServiceConfirmIgnoresUnknownStudents(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.sessions["att-1"] = &repository.SessionWithCounts{
		AttendanceSession: models.AttendanceSession{ID: "att-1", AssignmentID: "assign-1"},
	}
	svc := NewAttendanceService(repo, ownedAssignment(), twoStudentRoster(), nil, nil)

	resp, err := svc.Confirm(context.Background(), "teacher-1", "att-1", dto.ConfirmAttendanceRequest{
		Records: []dto.RecordEntry{{StudentID: "1MS21EC099", Present: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Saved)
	for _, r := range repo.confirmed["att-1"] {
		assert.NotEqual(t, "1MS21EC099", r.StudentID)
		assert.False(t, r.Present)
	}
}

func TestAttendanceServiceGetComputesStats(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.sessions["att-1"] = &repository.SessionWithCounts{
		AttendanceSession: models.AttendanceSession{
			ID: "att-1", AssignmentID: "assign-1", Status: models.AttendanceMarked,
			Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		PresentCount: 2,
		TotalCount:   3,
	}
	svc := NewAttendanceService(repo, ownedAssignment(), twoStudentRoster(), nil, nil)

	item, err := svc.Get(context.Background(), "teacher-1", "att-1")
	require.NoError(t, err)
	assert.Equal(t, 1, item.AbsentCount)
	assert.Equal(t, 66.7, item.Percent)
}
