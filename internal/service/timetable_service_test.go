package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-portal-api/internal/academic"
	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type fakeSlotReader struct {
	byTerm map[string][]models.SlotDetail
	calls  int
}

func (f *fakeSlotReader) ListByTeacher(_ context.Context, _ string, yearStart, semester int) ([]models.SlotDetail, error) {
	f.calls++
	return f.byTerm[fmt.Sprintf("%d.%d", yearStart, semester)], nil
}

type memoryCache struct {
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := c.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

// Midweek during semester 2 of the 2025 academic year.
var timetableClock = time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)

func newTimetableService(slots slotReader, cache cacheStore) *TimetableService {
	svc := NewTimetableService(slots, cache, time.Minute, nil)
	svc.now = func() time.Time { return timetableClock }
	return svc
}

func TestTimetableServiceGridPlacesSlots(t *testing.T) {
	slots := &fakeSlotReader{byTerm: map[string][]models.SlotDetail{
		"2025.2": {
			{
				ScheduleSlot:   models.ScheduleSlot{ID: "slot-1", Day: "Monday", Period: "8:30 - 9:30"},
				SubjectCode:    "CS301",
				SubjectName:    "Operating Systems",
				DepartmentName: "CSE",
				ClassSemester:  3,
				Section:        "A",
			},
		},
	}}
	svc := newTimetableService(slots, nil)

	grid, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{})
	require.NoError(t, err)
	assert.Equal(t, academic.DaysOfWeek, grid.Days)
	assert.Equal(t, "2026.2", grid.Term)
	assert.Equal(t, "2026-03-02", grid.WeekStart)
	assert.Equal(t, "2026-02-23", grid.PrevWeek)
	assert.Equal(t, "2026-03-09", grid.NextWeek)
	require.Len(t, grid.Rows, len(academic.TimeSlots)+2)

	// Second row is the 8:30 period, first cell is Monday.
	row := grid.Rows[1]
	assert.Equal(t, "8:30 - 9:30", row.Period)
	assert.Equal(t, "CS301", row.Cells[0].SubjectCode)
	assert.Equal(t, "CSE 3 A", row.Cells[0].ClassLabel)
	assert.Empty(t, row.Cells[1].SubjectCode)
}

func TestTimetableServiceGridFiltersByTerm(t *testing.T) {
	slots := &fakeSlotReader{byTerm: map[string][]models.SlotDetail{
		"2025.2": {
			{ScheduleSlot: models.ScheduleSlot{ID: "slot-1", Day: "Monday", Period: "8:30 - 9:30"}, SubjectCode: "CS301"},
		},
	}}
	svc := newTimetableService(slots, nil)

	grid, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{})
	require.NoError(t, err)
	assert.Equal(t, "CS301", grid.Rows[1].Cells[0].SubjectCode)

	// The same teacher's semester 3 grid holds none of the semester 2
	// slots.
	grid, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{
		AcademicYear: 2025, Semester: 3, WeekStart: "2026-07-06",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026.3", grid.Term)
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			assert.Empty(t, cell.SubjectCode)
		}
	}
}

func TestTimetableServiceGridMarkerRows(t *testing.T) {
	svc := newTimetableService(&fakeSlotReader{}, nil)

	grid, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{})
	require.NoError(t, err)

	assert.Equal(t, academic.BreakMarker, grid.Rows[3].Period)
	for _, cell := range grid.Rows[3].Cells {
		assert.Equal(t, academic.BreakMarker, cell.Marker)
	}
	assert.Equal(t, academic.LunchMarker, grid.Rows[7].Period)
}

func TestTimetableServiceGridClipsWeekToSemester(t *testing.T) {
	svc := newTimetableService(&fakeSlotReader{}, nil)

	// The week of June 29 straddles the semester 2 / semester 3 boundary:
	// only Monday and Tuesday still belong to semester 2.
	grid, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{WeekStart: "2026-06-29"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Tuesday"}, grid.Days)
	assert.Equal(t, []string{"2026-06-29", "2026-06-30"}, grid.Dates)
	require.NotEmpty(t, grid.Rows)
	assert.Len(t, grid.Rows[0].Cells, 2)

	// The same week viewed as semester 3 holds the remaining days.
	grid, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{
		AcademicYear: 2025, Semester: 3, WeekStart: "2026-06-29",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Wednesday", "Thursday", "Friday", "Saturday"}, grid.Days)
}

func TestTimetableServiceGridCustomDateRange(t *testing.T) {
	svc := newTimetableService(&fakeSlotReader{}, nil)

	// An explicit range spanning the whole week overrides the semester
	// clip for the June 29 boundary week.
	grid, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{
		WeekStart: "2026-06-29",
		StartDate: "2026-06-01",
		EndDate:   "2026-07-31",
	})
	require.NoError(t, err)
	assert.Equal(t, academic.DaysOfWeek, grid.Days)

	// A lone startDate leaves the semester range in place.
	grid, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{
		WeekStart: "2026-06-29",
		StartDate: "2026-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Tuesday"}, grid.Days)
}

func TestTimetableServiceGridNormalizesWeekStart(t *testing.T) {
	svc := newTimetableService(&fakeSlotReader{}, nil)

	// A Thursday snaps back to its Monday.
	grid, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{WeekStart: "2026-03-12"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", grid.WeekStart)
}

func TestTimetableServiceGridRejectsBadInput(t *testing.T) {
	svc := newTimetableService(&fakeSlotReader{}, nil)

	_, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{WeekStart: "03/12/2026"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{StartDate: "06/01/2026", EndDate: "2026-07-31"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{StartDate: "2026-06-01", EndDate: "31-07-2026"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{Semester: 4})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimetableServiceGridUsesCache(t *testing.T) {
	slots := &fakeSlotReader{}
	cache := newMemoryCache()
	svc := newTimetableService(slots, cache)

	_, err := svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{})
	require.NoError(t, err)
	_, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, slots.calls, "second call served from cache")

	// A different week misses the cache.
	_, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{WeekStart: "2026-03-09"})
	require.NoError(t, err)
	assert.Equal(t, 2, slots.calls)

	// So does a different term for the same week.
	_, err = svc.Grid(context.Background(), "teacher-1", dto.TimetableRequest{Semester: 1, WeekStart: "2026-03-02"})
	require.NoError(t, err)
	assert.Equal(t, 3, slots.calls)
}
