package dto

// TimetableCell is one grid cell. Marker rows (break and lunch) carry the
// marker label; empty teaching cells carry nothing.
type TimetableCell struct {
	SlotID      string `json:"slotId,omitempty"`
	SubjectCode string `json:"subjectCode,omitempty"`
	SubjectName string `json:"subjectName,omitempty"`
	ClassLabel  string `json:"classLabel,omitempty"`
	Marker      string `json:"marker,omitempty"`
}

// TimetableRow is one period row across all teaching days.
type TimetableRow struct {
	Period string          `json:"period"`
	Cells  []TimetableCell `json:"cells"`
}

// TimetableRequest selects the week and term to render. Everything is
// optional; the current clock fills the gaps. A startDate and endDate
// pair overrides the semester's date range.
type TimetableRequest struct {
	AcademicYear int    `form:"academicYear"`
	Semester     int    `form:"semester"`
	WeekStart    string `form:"weekStart"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
}

// TimetableResponse is a teacher's grid for one week. Days carries only
// the weekdays falling inside the semester's date range; Dates holds the
// matching calendar dates.
type TimetableResponse struct {
	Days      []string       `json:"days"`
	Dates     []string       `json:"dates"`
	Rows      []TimetableRow `json:"rows"`
	Term      string         `json:"term"`
	WeekStart string         `json:"weekStart"`
	PrevWeek  string         `json:"prevWeek"`
	NextWeek  string         `json:"nextWeek"`
}

// SubstituteCandidate is a colleague considered for covering a slot.
type SubstituteCandidate struct {
	TeacherID  string `json:"teacherId"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}

// SubstituteResponse partitions the teachers of the slot's class.
// Teachers with a clash of their own never appear in Free or Unassigned.
// Warning is set when nobody qualified is free to cover the slot.
type SubstituteResponse struct {
	SlotID         string                `json:"slotId"`
	Day            string                `json:"day"`
	Period         string                `json:"period"`
	Subject        string                `json:"subject"`
	Free           []SubstituteCandidate `json:"free"`
	Busy           []SubstituteCandidate `json:"busy"`
	Unassigned     []SubstituteCandidate `json:"unassigned"`
	TotalChecked   int                   `json:"totalChecked"`
	AvailableCount int                   `json:"availableCount"`
	Warning        bool                  `json:"warning"`
}
