package services

import (
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/auth"
	"github.com/digiclass/backend/internal/pkg/email"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	User         *UserService
	Student      *StudentService
	ClassBatch   *ClassBatchService
	Catalog      *CatalogService
	Attendance   *AttendanceService
	Exam         *ExamService
	Fee          *FeeService
	Ledger       *LedgerService
	Inquiry      *InquiryService
	Timetable    *TimetableService
	Notification *NotificationService
}

// NewServices wires all services to their repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, emailService email.Service) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Token, repos.PasswordResetToken, jwtService, emailService),
		User:         NewUserService(repos.User),
		Student:      NewStudentService(repos.Student, repos.ClassBatch),
		ClassBatch:   NewClassBatchService(repos.ClassBatch, repos.Student),
		Catalog:      NewCatalogService(repos.Catalog),
		Attendance:   NewAttendanceService(repos.Attendance, repos.ClassBatch, repos.Student),
		Exam:         NewExamService(repos.Exam, repos.ClassBatch),
		Fee:          NewFeeService(repos.Fee, repos.Student),
		Ledger:       NewLedgerService(repos.Ledger),
		Inquiry:      NewInquiryService(repos.Inquiry),
		Timetable:    NewTimetableService(repos.Timetable, repos.ClassBatch),
		Notification: NewNotificationService(repos.NotificationSetting),
	}
}
