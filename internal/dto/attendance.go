package dto

// CreateAttendanceRequest opens (or reopens) a register for a date.
type CreateAttendanceRequest struct {
	Date string `json:"date" binding:"required"`
}

// AttendanceSessionItem is one register row with its headline stats.
type AttendanceSessionItem struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Status       int     `json:"status"`
	PresentCount int     `json:"presentCount"`
	AbsentCount  int     `json:"absentCount"`
	TotalCount   int     `json:"totalCount"`
	Percent      float64 `json:"percent"`
}

// CreateAttendanceResponse reports the session and whether it already
// existed for the requested date.
type CreateAttendanceResponse struct {
	Session AttendanceSessionItem `json:"session"`
	Created bool                  `json:"created"`
}

// AttendanceEntry is one student line on the register sheet.
type AttendanceEntry struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Present     bool   `json:"present"`
}

// AttendanceSheetResponse is the register sheet for a session.
type AttendanceSheetResponse struct {
	Session AttendanceSessionItem `json:"session"`
	Entries []AttendanceEntry     `json:"entries"`
}

// RecordEntry is a single presence flag submitted for a student.
type RecordEntry struct {
	StudentID string `json:"studentId" binding:"required" validate:"required"`
	Present   bool   `json:"present"`
}

// ConfirmAttendanceRequest saves the register and marks the session
// taken. An empty record list is a valid register where nobody was
// present.
type ConfirmAttendanceRequest struct {
	Records []RecordEntry `json:"records" binding:"dive" validate:"dive"`
}

// ConfirmAttendanceResponse reports how many records were written.
type ConfirmAttendanceResponse struct {
	SessionID string `json:"sessionId"`
	Saved     int    `json:"saved"`
	Status    int    `json:"status"`
}
