package dto

// TodaySlot is one scheduled lecture on the dashboard.
type TodaySlot struct {
	Period      string `json:"period"`
	SubjectName string `json:"subjectName"`
	ClassLabel  string `json:"classLabel"`
}

// DashboardResponse summarises a teacher's current term at a glance.
type DashboardResponse struct {
	TeacherName     string      `json:"teacherName"`
	CurrentTerm     string      `json:"currentTerm"`
	AssignmentCount int         `json:"assignmentCount"`
	PendingExams    int         `json:"pendingExams"`
	TodaySchedule   []TodaySlot `json:"todaySchedule"`
	TodayAttendance float64     `json:"todayAttendance"`
}
