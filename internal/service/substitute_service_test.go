package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type fakeSlotFinder struct {
	slots     map[string]*models.SlotDetail
	busy      []string
	qualified []string
}

func (f *fakeSlotFinder) GetDetail(_ context.Context, id string) (*models.SlotDetail, error) {
	if s, ok := f.slots[id]; ok {
		return s, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeSlotFinder) BusyTeacherIDs(context.Context, string, string) ([]string, error) {
	return f.busy, nil
}

func (f *fakeSlotFinder) QualifiedTeacherIDs(context.Context, string) ([]string, error) {
	return f.qualified, nil
}

type fakeClassTeachers struct {
	byClass map[string][]models.Teacher
}

func (f *fakeClassTeachers) ListByClass(_ context.Context, classID string) ([]models.Teacher, error) {
	return f.byClass[classID], nil
}

func TestSubstituteServicePartitionsClassTeachers(t *testing.T) {
	slot := &models.SlotDetail{
		ScheduleSlot: models.ScheduleSlot{ID: "slot-1", AssignmentID: "assign-1", Day: "Monday", Period: "8:30 - 9:30"},
		TeacherID:    "teacher-1",
		ClassID:      "class-1",
		SubjectID:    "subject-1",
		SubjectName:  "Operating Systems",
	}
	finder := &fakeSlotFinder{
		slots:     map[string]*models.SlotDetail{"slot-1": slot},
		busy:      []string{"teacher-1", "teacher-3", "teacher-5"},
		qualified: []string{"teacher-1", "teacher-2", "teacher-3"},
	}
	teachers := &fakeClassTeachers{
		byClass: map[string][]models.Teacher{
			"class-1": {
				{ID: "teacher-1", FullName: "Meera Iyer", DepartmentID: "cse"},
				{ID: "teacher-2", FullName: "Ravi Kumar", DepartmentID: "cse"},
				{ID: "teacher-3", FullName: "Sana Begum", DepartmentID: "cse"},
				{ID: "teacher-4", FullName: "John Dsouza", DepartmentID: "mat"},
				{ID: "teacher-5", FullName: "Asha Rao", DepartmentID: "phy"},
			},
		},
	}
	svc := NewSubstituteService(finder, teachers, nil)

	resp, err := svc.Candidates(context.Background(), "teacher-1", "slot-1")
	require.NoError(t, err)

	require.Len(t, resp.Free, 1)
	assert.Equal(t, "teacher-2", resp.Free[0].TeacherID)
	require.Len(t, resp.Busy, 1)
	assert.Equal(t, "teacher-3", resp.Busy[0].TeacherID)
	require.Len(t, resp.Unassigned, 1)
	assert.Equal(t, "teacher-4", resp.Unassigned[0].TeacherID)
	assert.Equal(t, "Monday", resp.Day)
	assert.Equal(t, "Operating Systems", resp.Subject)
	assert.Equal(t, 4, resp.TotalChecked)
	assert.Equal(t, 1, resp.AvailableCount)
	assert.False(t, resp.Warning)
}

func TestSubstituteServiceDropsBusyUnqualifiedTeachers(t *testing.T) {
	slot := &models.SlotDetail{
		ScheduleSlot: models.ScheduleSlot{ID: "slot-1", Day: "Tuesday", Period: "9:30 - 10:30"},
		TeacherID:    "teacher-1",
		ClassID:      "class-1",
		SubjectID:    "subject-1",
	}
	finder := &fakeSlotFinder{
		slots:     map[string]*models.SlotDetail{"slot-1": slot},
		busy:      []string{"teacher-2"},
		qualified: []string{"teacher-1"},
	}
	teachers := &fakeClassTeachers{
		byClass: map[string][]models.Teacher{
			"class-1": {
				{ID: "teacher-1", DepartmentID: "cse"},
				{ID: "teacher-2", DepartmentID: "cse"},
			},
		},
	}
	svc := NewSubstituteService(finder, teachers, nil)

	resp, err := svc.Candidates(context.Background(), "teacher-1", "slot-1")
	require.NoError(t, err)

	// teacher-2 has a clash and never taught the subject: counted but
	// listed nowhere.
	assert.Empty(t, resp.Free)
	assert.Empty(t, resp.Busy)
	assert.Empty(t, resp.Unassigned)
	assert.Equal(t, 1, resp.TotalChecked)
	assert.True(t, resp.Warning)
}

func TestSubstituteServiceOnlyConsidersSlotClass(t *testing.T) {
	slot := &models.SlotDetail{
		ScheduleSlot: models.ScheduleSlot{ID: "slot-1", Day: "Monday", Period: "8:30 - 9:30"},
		TeacherID:    "teacher-1",
		ClassID:      "class-1",
		SubjectID:    "subject-1",
	}
	finder := &fakeSlotFinder{
		slots:     map[string]*models.SlotDetail{"slot-1": slot},
		qualified: []string{"teacher-1", "teacher-9"},
	}
	teachers := &fakeClassTeachers{
		byClass: map[string][]models.Teacher{
			"class-1": {{ID: "teacher-1", DepartmentID: "cse"}},
			"class-2": {{ID: "teacher-9", DepartmentID: "cse"}},
		},
	}
	svc := NewSubstituteService(finder, teachers, nil)

	resp, err := svc.Candidates(context.Background(), "teacher-1", "slot-1")
	require.NoError(t, err)

	// teacher-9 teaches another class and is never checked.
	assert.Equal(t, 0, resp.TotalChecked)
	assert.Empty(t, resp.Free)
	assert.Empty(t, resp.Unassigned)
}

func TestSubstituteServiceWarnsWhenNobodyFree(t *testing.T) {
	slot := &models.SlotDetail{
		ScheduleSlot: models.ScheduleSlot{ID: "slot-1", Day: "Monday", Period: "8:30 - 9:30"},
		TeacherID:    "teacher-1",
		ClassID:      "class-1",
		SubjectID:    "subject-1",
	}
	finder := &fakeSlotFinder{
		slots:     map[string]*models.SlotDetail{"slot-1": slot},
		busy:      []string{"teacher-1", "teacher-2"},
		qualified: []string{"teacher-1", "teacher-2"},
	}
	teachers := &fakeClassTeachers{
		byClass: map[string][]models.Teacher{
			"class-1": {
				{ID: "teacher-1", DepartmentID: "cse"},
				{ID: "teacher-2", DepartmentID: "cse"},
			},
		},
	}
	svc := NewSubstituteService(finder, teachers, nil)

	resp, err := svc.Candidates(context.Background(), "teacher-1", "slot-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Free)
	assert.True(t, resp.Warning)
	assert.Equal(t, 0, resp.AvailableCount)
}

func TestSubstituteServiceRejectsForeignSlot(t *testing.T) {
	finder := &fakeSlotFinder{slots: map[string]*models.SlotDetail{
		"slot-1": {
			ScheduleSlot: models.ScheduleSlot{ID: "slot-1"},
			TeacherID:    "teacher-9",
		},
	}}
	svc := NewSubstituteService(finder, &fakeClassTeachers{}, nil)

	_, err := svc.Candidates(context.Background(), "teacher-1", "slot-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestSubstituteServiceUnknownSlot(t *testing.T) {
	svc := NewSubstituteService(&fakeSlotFinder{slots: map[string]*models.SlotDetail{}}, &fakeClassTeachers{}, nil)

	_, err := svc.Candidates(context.Background(), "teacher-1", "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
