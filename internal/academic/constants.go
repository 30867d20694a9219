// Package academic holds the pure calendar, timetable and scoring rules the
// services orchestrate. Nothing in this package touches the database.
package academic

// DaysOfWeek lists the teaching days in timetable order.
var DaysOfWeek = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// TimeSlots lists the lecture periods a slot may be scheduled in.
var TimeSlots = []string{
	"7:30 - 8:30",
	"8:30 - 9:30",
	"9:30 - 10:30",
	"11:00 - 11:50",
	"11:50 - 12:40",
	"12:40 - 1:30",
	"2:30 - 3:30",
	"3:30 - 4:30",
	"4:30 - 5:30",
}

// Markers for the non-teaching rows rendered between periods.
const (
	BreakMarker = "Break"
	LunchMarker = "Lunch"
)

// Periods after which a break row appears in the rendered grid.
const (
	breakAfterPeriod = "9:30 - 10:30"
	lunchAfterPeriod = "12:40 - 1:30"
)

// ExamNames lists the valid exam session names in reporting order.
var ExamNames = []string{
	"Internal test 1",
	"Internal test 2",
	"Internal test 3",
	"Event 1",
	"Event 2",
	"Semester End Exam",
}

const (
	// SemesterEndExamName is the only session graded out of 100.
	SemesterEndExamName = "Semester End Exam"

	SemesterEndExamTotal = 100
	OtherExamTotal       = 20

	MinScore = 0
	MaxScore = 100
)

// DateFormat is the wire format for session dates.
const DateFormat = "2006-01-02"

// Page sizes used by the paginated listings.
const (
	AssignmentPageSize = 10
	MarksPageSize      = 20
	AttendancePageSize = 25
	RosterPageSize     = 25
)

// ValidDay reports whether day is one of the teaching days.
func ValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// ValidPeriod reports whether period is one of the lecture time slots.
func ValidPeriod(period string) bool {
	for _, p := range TimeSlots {
		if p == period {
			return true
		}
	}
	return false
}

// ValidExamName reports whether name is one of the recognised sessions.
func ValidExamName(name string) bool {
	for _, n := range ExamNames {
		if n == name {
			return true
		}
	}
	return false
}

// TotalMarksFor returns the maximum score for a session by its name.
func TotalMarksFor(examName string) int {
	if examName == SemesterEndExamName {
		return SemesterEndExamTotal
	}
	return OtherExamTotal
}
