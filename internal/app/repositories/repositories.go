package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	User                *UserRepository
	Token               *TokenRepository
	PasswordResetToken  *PasswordResetTokenRepository
	Student             *StudentRepository
	ClassBatch          *ClassBatchRepository
	Catalog             *CatalogRepository
	Attendance          *AttendanceRepository
	Exam                *ExamRepository
	Fee                 *FeeRepository
	Ledger              *LedgerRepository
	Inquiry             *InquiryRepository
	Timetable           *TimetableRepository
	NotificationSetting *NotificationSettingRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:                NewUserRepository(db),
		Token:               NewTokenRepository(db),
		PasswordResetToken:  NewPasswordResetTokenRepository(db),
		Student:             NewStudentRepository(db),
		ClassBatch:          NewClassBatchRepository(db),
		Catalog:             NewCatalogRepository(db),
		Attendance:          NewAttendanceRepository(db),
		Exam:                NewExamRepository(db),
		Fee:                 NewFeeRepository(db),
		Ledger:              NewLedgerRepository(db),
		Inquiry:             NewInquiryRepository(db),
		Timetable:           NewTimetableRepository(db),
		NotificationSetting: NewNotificationSettingRepository(db),
	}
}
