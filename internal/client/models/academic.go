package models

// Enrollment statuses.
const (
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusActive          = "ACTIVE"
	StatusWaiting         = "WAITING"
	StatusCompleted       = "COMPLETED"
	StatusDropped         = "DROPPED"
)

type Lecture struct {
	ID        int64  `json:"id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	TeacherID int64  `json:"teacherId,omitempty"`
	Credits   int    `json:"credits,omitempty"`
}

type Enrollment struct {
	ID         int64    `json:"id"`
	LectureID  int64    `json:"lectureId"`
	StudentID  int64    `json:"studentId,omitempty"`
	Status     string   `json:"status"`
	EnrolledAt string   `json:"enrolledAt,omitempty"`
	Grade      *float64 `json:"grade,omitempty"`
}

// Schedule is a planned lecture session. The date range is used by the
// dashboards; day and times feed the weekly timetable.
type Schedule struct {
	ID             int64  `json:"id"`
	LectureID      int64  `json:"lectureId"`
	LectureName    string `json:"lectureName,omitempty"`
	ClassroomID    int64  `json:"classroomId,omitempty"`
	ClassroomName  string `json:"classroomName,omitempty"`
	ScheduleSlotID int64  `json:"scheduleSlotId,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	DayOfWeek      string `json:"dayOfWeek,omitempty"`
	StartTime      string `json:"startTime,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
}

// ScheduleForm is the payload of a new lecture schedule.
type ScheduleForm struct {
	LectureID      int64  `json:"lectureId" validate:"gt=0"`
	ClassroomID    int64  `json:"classroomId" validate:"gt=0"`
	ScheduleSlotID int64  `json:"scheduleSlotId" validate:"gt=0"`
	StartDate      string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type Classroom struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Building string `json:"building,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

type ScheduleSlot struct {
	ID        int64  `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type GradeComponent struct {
	ID        int64   `json:"id"`
	LectureID int64   `json:"lectureId"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
}
