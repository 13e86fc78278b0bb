package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Authentication and session messages.
const (
	MsgCredentialsRejected = "Credentials could not be verified"
	MsgLoginFailed         = "An error occurred while signing in"
	MsgNoRefreshToken      = "Refresh token not found"
	MsgSessionExpired      = "Session expired"
	MsgProfileUnavailable  = "Profile could not be loaded"
	MsgMFAUpdateFailed     = "MFA preference could not be updated"
	MsgSessionsUnavailable = "Active sessions could not be loaded"
	MsgRevokeFailed        = "Session could not be revoked"
	MsgNotAuthenticated    = "Sign in required"
	MsgDeviceName          = "%s terminal"
	MsgInvalidInput        = "Invalid input: %s"
)

// Dashboard and schedule messages.
const (
	MsgCollectionFailed      = "%s could not be loaded: %s"
	MsgUnknownError          = "Unknown error"
	MsgSummaryFailed         = "analytics/summary could not be loaded"
	MsgWorkloadFailed        = "Teacher workload could not be loaded"
	MsgFunnelFailed          = "Enrollment funnel could not be computed"
	MsgLectureEnrollFailed   = "Course enrollments could not be loaded"
	MsgTeacherDataFailed     = "Teacher data could not be loaded"
	MsgStudentDataFailed     = "Student data could not be loaded"
	MsgSchedulesFailed       = "Schedule could not be loaded"
	MsgLookupsFailed         = "Reference data could not be loaded"
	MsgScheduleCreateFailed  = "Schedule could not be created"
	MsgScheduleDeleteFailed  = "Session could not be deleted"
	MsgMySchedulesFailed     = "Personal schedule could not be loaded"
	MsgExamRequestFailed     = "Exam request failed"
	MsgCapacityFull          = "Capacity full"
	MsgCapacityAlmostFull    = "Capacity almost full"
	MsgStudentsWaiting       = "%d students waiting"
	MsgAwaitingApproval      = "Awaiting approval for 48 hours"
	MsgEnrollmentRef         = "Enrollment #%d"
	MsgSlotNotSpecified      = "Not specified"
	MsgRecordsShown          = "%d records shown"
	MsgRecords               = "%d records"
	MsgRecentOperations      = "%d recent operations"
	MsgNavigationRedirected  = "Not allowed here, redirected to %s"
	MsgNavigationLoginNeeded = "Please sign in first"
)

// Metric labels and helpers.
const (
	LabelActiveLectures    = "Active lectures"
	LabelPlannedSessions   = "Planned sessions"
	LabelStudentEnrollment = "Student enrollments"
	LabelClassrooms        = "Classrooms"
	LabelGradeComponents   = "Grade components"

	LabelTotalLectures      = "Total lectures"
	HelpTotalLectures       = "Lectures defined in the system"
	LabelActiveEnrollments  = "Active enrollments"
	HelpActiveEnrollments   = "Students currently attending"
	LabelWaitlisted         = "Waiting"
	HelpWaitlisted          = "Waitlist size"
	LabelClassroomsInUse    = "Classrooms in use"
	HelpClassroomsInUse     = "Classrooms active in the schedule"
	LabelUpcomingSessions   = "Upcoming sessions"
	HelpUpcomingSessions    = "Next sessions in the calendar"
	LabelLectureCount       = "Lecture count"
	HelpLectureCount        = "Lectures assigned to you"
	LabelActiveStudents     = "Active students"
	HelpActiveStudents      = "Currently attending the lecture"
	HelpWaitingStudents     = "Students waiting for a seat"
	LabelCompleted          = "Completed"
	HelpCompletedGrading    = "Enrollments with finished grading"
	LabelActiveCourses      = "Active courses"
	HelpActiveCourses       = "Ongoing enrollments"
	LabelPendingApproval    = "Pending approval"
	HelpPendingApproval     = "In student affairs review"
	LabelWaitlist           = "Waitlist"
	HelpWaitlist            = "Waiting for a free seat"
	HelpCompletedFinalGrade = "Final grade confirmed"
)

// Day labels.
const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
	DaySaturday  = "Saturday"
	DaySunday    = "Sunday"
)

var turkish = map[string]string{
	MsgCredentialsRejected: "Kimlik bilgileri doğrulanamadı",
	MsgLoginFailed:         "Oturum açılırken bir hata oluştu",
	MsgNoRefreshToken:      "Yenileme tokeni bulunamadı",
	MsgSessionExpired:      "Oturum süresi doldu",
	MsgProfileUnavailable:  "Profil bilgileri getirilemedi",
	MsgMFAUpdateFailed:     "MFA ayarı güncellenemedi",
	MsgSessionsUnavailable: "Aktif oturumlar getirilemedi",
	MsgRevokeFailed:        "Oturum kapatılamadı",
	MsgNotAuthenticated:    "Oturum açmanız gerekiyor",
	MsgDeviceName:          "%s Terminali",
	MsgInvalidInput:        "Geçersiz giriş: %s",

	MsgCollectionFailed:      "%s yüklenemedi: %s",
	MsgUnknownError:          "Bilinmeyen hata",
	MsgSummaryFailed:         "analytics/summary yüklenemedi",
	MsgWorkloadFailed:        "Öğretmen iş yükü alınamadı",
	MsgFunnelFailed:          "Kayıt hunisi hesaplanamadı",
	MsgLectureEnrollFailed:   "Ders kayıtları yüklenemedi",
	MsgTeacherDataFailed:     "Öğretmen verileri getirilemedi",
	MsgStudentDataFailed:     "Öğrenci verileri yüklenemedi",
	MsgSchedulesFailed:       "Ders programı alınamadı",
	MsgLookupsFailed:         "Referans veriler getirilemedi",
	MsgScheduleCreateFailed:  "Plan oluşturulamadı",
	MsgScheduleDeleteFailed:  "Oturum silinemedi",
	MsgMySchedulesFailed:     "Kişisel program alınamadı",
	MsgExamRequestFailed:     "Sınav isteği başarısız oldu",
	MsgCapacityFull:          "Kontenjan dolu",
	MsgCapacityAlmostFull:    "Kapasite dolmak üzere",
	MsgStudentsWaiting:       "%d öğrenci beklemede",
	MsgAwaitingApproval:      "48 saattir onay bekliyor",
	MsgEnrollmentRef:         "Kayıt #%d",
	MsgSlotNotSpecified:      "Belirtilmedi",
	MsgRecordsShown:          "%d kayıt görüntüleniyor",
	MsgRecords:               "%d kayıt",
	MsgRecentOperations:      "%d son işlem",
	MsgNavigationRedirected:  "Bu sayfaya erişiminiz yok, %s sayfasına yönlendirildiniz",
	MsgNavigationLoginNeeded: "Lütfen önce oturum açın",

	LabelActiveLectures:    "Aktif Ders",
	LabelPlannedSessions:   "Planlı Oturum",
	LabelStudentEnrollment: "Öğrenci Kaydı",
	LabelClassrooms:        "Sınıf Sayısı",
	LabelGradeComponents:   "Not Bileşeni",

	LabelTotalLectures:      "Toplam Ders",
	HelpTotalLectures:       "Sistemde tanımlı ders sayısı",
	LabelActiveEnrollments:  "Aktif Kayıt",
	HelpActiveEnrollments:   "Devam eden öğrenciler",
	LabelWaitlisted:         "Bekleyen",
	HelpWaitlisted:          "Bekleme listesi boyutu",
	LabelClassroomsInUse:    "Kullanılan Sınıf",
	HelpClassroomsInUse:     "Programda aktif sınıflar",
	LabelUpcomingSessions:   "Yaklaşan Oturum",
	HelpUpcomingSessions:    "Takvimde sıradaki seans",
	LabelLectureCount:       "Ders Sayısı",
	HelpLectureCount:        "Atandığınız toplam ders",
	LabelActiveStudents:     "Aktif Öğrenci",
	HelpActiveStudents:      "Şu anda derse devam eden",
	HelpWaitingStudents:     "Kontenjan bekleyen öğrenciler",
	LabelCompleted:          "Tamamlanan",
	HelpCompletedGrading:    "Notlandırması biten kayıtlar",
	LabelActiveCourses:      "Aktif Ders",
	HelpActiveCourses:       "Devam eden kayıtlar",
	LabelPendingApproval:    "Onay Bekleyen",
	HelpPendingApproval:     "Öğrenci işleri sürecinde",
	LabelWaitlist:           "Bekleme Listesi",
	HelpWaitlist:            "Kontenjan açılması bekleniyor",
	HelpCompletedFinalGrade: "Final notu kesinleşti",

	DayMonday:    "Pazartesi",
	DayTuesday:   "Salı",
	DayWednesday: "Çarşamba",
	DayThursday:  "Perşembe",
	DayFriday:    "Cuma",
	DaySaturday:  "Cumartesi",
	DaySunday:    "Pazar",
}

func init() {
	for key, msg := range turkish {
		if err := message.SetString(language.Turkish, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
}
