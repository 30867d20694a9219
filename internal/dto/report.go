package dto

// ReportRow is one student's standing in a subject.
type ReportRow struct {
	StudentID         string  `json:"studentId"`
	StudentName       string  `json:"studentName"`
	AttendancePercent float64 `json:"attendancePercent"`
	CIE               int     `json:"cie"`
	LowAttendance     bool    `json:"lowAttendance"`
	LowCIE            bool    `json:"lowCie"`
	NeedSupport       bool    `json:"needSupport"`
}

// StudentTotal is one student's accumulated marks and attendance in a
// subject. Unregistered class members carry zeroed totals.
type StudentTotal struct {
	StudentID         string  `json:"studentId"`
	StudentName       string  `json:"studentName"`
	Registered        bool    `json:"registered"`
	TotalMarks        int     `json:"totalMarks"`
	CIE               int     `json:"cie"`
	AttendedCount     int     `json:"attendedCount"`
	TotalCount        int     `json:"totalCount"`
	AttendancePercent float64 `json:"attendancePercent"`
}

// StudentTotalsResponse is one page of per-student totals.
type StudentTotalsResponse struct {
	AssignmentID string         `json:"assignmentId"`
	SubjectName  string         `json:"subjectName"`
	ClassLabel   string         `json:"classLabel"`
	Students     []StudentTotal `json:"students"`
}

// ReportResponse is the per-subject performance report.
type ReportResponse struct {
	AssignmentID        string      `json:"assignmentId"`
	SubjectName         string      `json:"subjectName"`
	ClassLabel          string      `json:"classLabel"`
	Rows                []ReportRow `json:"rows"`
	TotalStudents       int         `json:"totalStudents"`
	NeedSupportCount    int         `json:"needSupportCount"`
	GoodAttendanceCount int         `json:"goodAttendanceCount"`
	GoodCIECount        int         `json:"goodCieCount"`
	PassRate            float64     `json:"passRate"`
	AttendanceStandard  int         `json:"attendanceStandard"`
	CIEStandard         int         `json:"cieStandard"`
}
