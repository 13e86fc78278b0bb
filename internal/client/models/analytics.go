package models

type AnalyticsSummary struct {
	TotalLectures         int64 `json:"totalLectures"`
	ActiveEnrollments     int64 `json:"activeEnrollments"`
	WaitlistedEnrollments int64 `json:"waitlistedEnrollments"`
	ClassroomsInUse       int64 `json:"classroomsInUse"`
	UpcomingSessions      int64 `json:"upcomingSessions"`
}

type TeacherWorkload struct {
	TeacherID      int64  `json:"teacherId"`
	TeacherName    string `json:"teacherName"`
	LectureCount   int64  `json:"lectureCount"`
	StudentCount   int64  `json:"studentCount"`
	WeeklySessions int64  `json:"weeklySessions,omitempty"`
}

// EnrollmentFunnel counts enrollments per status.
type EnrollmentFunnel struct {
	StatusCounts map[string]int64 `json:"statusCounts"`
}
