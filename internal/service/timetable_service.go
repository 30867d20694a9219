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

type slotReader interface {
	ListByTeacher(ctx context.Context, teacherID string, yearStart, semester int) ([]models.SlotDetail, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// TimetableService renders a teacher's weekly grid.
type TimetableService struct {
	slots    slotReader
	cache    cacheStore
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewTimetableService constructs TimetableService. A nil cache disables
// caching.
func NewTimetableService(slots slotReader, cache cacheStore, cacheTTL time.Duration, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		slots:    slots,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Grid returns the timetable for one week: one row per period (plus the
// break and lunch marker rows) and one cell per teaching day whose date
// falls inside the selected range. The range defaults to the semester's
// dates; an explicit start and end date pair overrides it. Term and week
// default from the clock, and only the term's slots are placed.
func (s *TimetableService) Grid(ctx context.Context, teacherID string, req dto.TimetableRequest) (*dto.TimetableResponse, error) {
	now := s.now()

	year := req.AcademicYear
	if year == 0 {
		year = academic.AcademicYearStart(now)
	}
	semester := req.Semester
	if semester == 0 {
		semester = academic.SemesterFor(now)
	}
	rangeStart, rangeEnd, err := academic.SemesterDateRange(year, semester)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	customStart, err := parseDateParam(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	customEnd, err := parseDateParam(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}
	if !customStart.IsZero() && !customEnd.IsZero() {
		rangeStart, rangeEnd = customStart, customEnd
	}

	weekStart := academic.WeekStart(now)
	if req.WeekStart != "" {
		parsed, err := time.ParseInLocation(academic.DateFormat, req.WeekStart, time.UTC)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("weekStart must use format %s", academic.DateFormat))
		}
		weekStart = academic.WeekStart(parsed)
	}

	cacheKey := timetableCacheKey(teacherID, year, semester, weekStart, rangeStart, rangeEnd)
	if s.cache != nil {
		var cached dto.TimetableResponse
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	slots, err := s.slots.ListByTeacher(ctx, teacherID, year, semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	type cellKey struct{ day, period string }
	byCell := make(map[cellKey]*models.SlotDetail, len(slots))
	for i := range slots {
		slot := &slots[i]
		byCell[cellKey{slot.Day, slot.Period}] = slot
	}

	// Map each weekday name onto its date this week and keep only the
	// days inside the semester.
	days := make([]string, 0, len(academic.DaysOfWeek))
	dates := make([]string, 0, len(academic.DaysOfWeek))
	for i, day := range academic.DaysOfWeek {
		date := weekStart.AddDate(0, 0, i)
		if date.Before(rangeStart) || date.After(rangeEnd) {
			continue
		}
		days = append(days, day)
		dates = append(dates, date.Format(academic.DateFormat))
	}

	rows := make([]dto.TimetableRow, 0, len(academic.GridPeriods()))
	for _, period := range academic.GridPeriods() {
		row := dto.TimetableRow{Period: period, Cells: make([]dto.TimetableCell, 0, len(days))}
		for _, day := range days {
			if academic.IsMarker(period) {
				row.Cells = append(row.Cells, dto.TimetableCell{Marker: period})
				continue
			}
			cell := dto.TimetableCell{}
			if slot, ok := byCell[cellKey{day, period}]; ok {
				cell = dto.TimetableCell{
					SlotID:      slot.ID,
					SubjectCode: slot.SubjectCode,
					SubjectName: slot.SubjectName,
					ClassLabel:  fmt.Sprintf("%s %d %s", slot.DepartmentName, slot.ClassSemester, slot.Section),
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	resp := &dto.TimetableResponse{
		Days:      days,
		Dates:     dates,
		Rows:      rows,
		Term:      academic.TermLabel(year, semester),
		WeekStart: weekStart.Format(academic.DateFormat),
		PrevWeek:  weekStart.AddDate(0, 0, -7).Format(academic.DateFormat),
		NextWeek:  weekStart.AddDate(0, 0, 7).Format(academic.DateFormat),
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache timetable", zap.String("teacher_id", teacherID), zap.Error(err))
		}
	}
	return resp, nil
}

func parseDateParam(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation(academic.DateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s must use format %s", name, academic.DateFormat))
	}
	return parsed, nil
}

func timetableCacheKey(teacherID string, year, semester int, weekStart, rangeStart, rangeEnd time.Time) string {
	return fmt.Sprintf("timetable:%s:%d.%d:%s:%s_%s",
		teacherID, year, semester,
		weekStart.Format(academic.DateFormat),
		rangeStart.Format(academic.DateFormat),
		rangeEnd.Format(academic.DateFormat))
}
