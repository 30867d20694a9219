package academic

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SemesterFor maps a date onto the semester running at that time.
// Semester 1 runs September through January, semester 2 February through
// June, semester 3 July and August.
func SemesterFor(t time.Time) int {
	switch m := t.Month(); {
	case m >= time.September || m == time.January:
		return 1
	case m >= time.February && m <= time.June:
		return 2
	default:
		return 3
	}
}

// AcademicYearStart returns the year the academic year containing t began.
// The academic year starts in September, so January through August belong
// to the year that started the previous September.
func AcademicYearStart(t time.Time) int {
	if t.Month() >= time.September {
		return t.Year()
	}
	return t.Year() - 1
}

// SemesterDateRange returns the inclusive start and end dates of a semester
// within the academic year that began in yearStart.
func SemesterDateRange(yearStart, semester int) (time.Time, time.Time, error) {
	yearEnd := yearStart + 1
	switch semester {
	case 1:
		return date(yearStart, time.September, 1), date(yearEnd, time.January, 31), nil
	case 2:
		return date(yearEnd, time.February, 1), date(yearEnd, time.June, 30), nil
	case 3:
		return date(yearEnd, time.July, 1), date(yearEnd, time.August, 31), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("semester must be 1, 2 or 3, got %d", semester)
	}
}

// YearSpan renders the stored academic year for its starting year,
// e.g. 2025 becomes "2025-2026".
func YearSpan(yearStart int) string {
	return fmt.Sprintf("%d-%d", yearStart, yearStart+1)
}

// TermLabel renders the display term for an academic year and semester.
// Semester 1 shows the span's first year, the later semesters its second,
// so semester 2 of the year starting 2025 reads "2026.2".
func TermLabel(yearStart, semester int) string {
	display := yearStart
	if semester != 1 {
		display = yearStart + 1
	}
	return fmt.Sprintf("%d.%d", display, semester)
}

// TermLabelForSpan renders the display term for a stored "YYYY-YYYY" span.
// Malformed spans fall back to the raw value.
func TermLabelForSpan(span string, semester int) string {
	start, ok := SpanStart(span)
	if !ok {
		return fmt.Sprintf("%s.%d", span, semester)
	}
	return TermLabel(start, semester)
}

// SpanStart parses the starting year out of a "YYYY-YYYY" span.
func SpanStart(span string) (int, bool) {
	first, _, _ := strings.Cut(span, "-")
	year, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, false
	}
	return year, true
}

// CurrentYearSem renders the display term running at a date, e.g. "2025.1"
// during October 2025 and "2026.2" during March 2026.
func CurrentYearSem(t time.Time) string {
	return TermLabel(AcademicYearStart(t), SemesterFor(t))
}

// WeekStart returns midnight on the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := date(t.Year(), t.Month(), t.Day())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
