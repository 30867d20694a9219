package academic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestSemesterFor(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{day(2025, time.September, 1), 1},
		{day(2025, time.December, 15), 1},
		{day(2026, time.January, 31), 1},
		{day(2026, time.February, 1), 2},
		{day(2026, time.June, 30), 2},
		{day(2026, time.July, 1), 3},
		{day(2026, time.August, 31), 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SemesterFor(tt.date), "date %s", tt.date.Format(DateFormat))
	}
}

func TestAcademicYearStart(t *testing.T) {
	assert.Equal(t, 2025, AcademicYearStart(day(2025, time.September, 1)))
	assert.Equal(t, 2025, AcademicYearStart(day(2025, time.December, 31)))
	assert.Equal(t, 2025, AcademicYearStart(day(2026, time.January, 1)))
	assert.Equal(t, 2025, AcademicYearStart(day(2026, time.August, 31)))
	assert.Equal(t, 2026, AcademicYearStart(day(2026, time.September, 1)))
}

func TestCurrentYearSem(t *testing.T) {
	assert.Equal(t, "2025.1", CurrentYearSem(day(2025, time.October, 10)))
	assert.Equal(t, "2026.2", CurrentYearSem(day(2026, time.March, 5)))
	assert.Equal(t, "2026.3", CurrentYearSem(day(2026, time.July, 20)))
}

func TestTermLabel(t *testing.T) {
	assert.Equal(t, "2025.1", TermLabel(2025, 1))
	assert.Equal(t, "2026.2", TermLabel(2025, 2))
	assert.Equal(t, "2026.3", TermLabel(2025, 3))
}

func TestTermLabelForSpan(t *testing.T) {
	assert.Equal(t, "2025.1", TermLabelForSpan("2025-2026", 1))
	assert.Equal(t, "2026.2", TermLabelForSpan("2025-2026", 2))
	assert.Equal(t, "garbled.2", TermLabelForSpan("garbled", 2))
}

func TestYearSpan(t *testing.T) {
	assert.Equal(t, "2025-2026", YearSpan(2025))

	start, ok := SpanStart("2025-2026")
	require.True(t, ok)
	assert.Equal(t, 2025, start)
	_, ok = SpanStart("n/a")
	assert.False(t, ok)
}

func TestSemesterDateRange(t *testing.T) {
	start, end, err := SemesterDateRange(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.September, 1), start)
	assert.Equal(t, day(2026, time.January, 31), end)

	start, end, err = SemesterDateRange(2025, 2)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.February, 1), start)
	assert.Equal(t, day(2026, time.June, 30), end)

	start, end, err = SemesterDateRange(2025, 3)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.July, 1), start)
	assert.Equal(t, day(2026, time.August, 31), end)

	_, _, err = SemesterDateRange(2025, 4)
	assert.Error(t, err)
}

func TestWeekStart(t *testing.T) {
	monday := day(2026, time.August, 24)
	assert.Equal(t, monday, WeekStart(monday))
	assert.Equal(t, monday, WeekStart(day(2026, time.August, 26)))
	assert.Equal(t, monday, WeekStart(day(2026, time.August, 30)))
	assert.Equal(t, monday, WeekStart(time.Date(2026, time.August, 29, 23, 59, 0, 0, time.UTC)))
}
