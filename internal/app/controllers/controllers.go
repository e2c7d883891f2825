package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/services"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth         *AuthController
	User         *UserController
	Student      *StudentController
	ClassBatch   *ClassBatchController
	Catalog      *CatalogController
	Attendance   *AttendanceController
	Exam         *ExamController
	Fee          *FeeController
	Ledger       *LedgerController
	Inquiry      *InquiryController
	Timetable    *TimetableController
	Notification *NotificationController
}

// NewControllers wires all controllers to their services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(svcs.Auth),
		User:         NewUserController(svcs.User),
		Student:      NewStudentController(svcs.Student),
		ClassBatch:   NewClassBatchController(svcs.ClassBatch),
		Catalog:      NewCatalogController(svcs.Catalog),
		Attendance:   NewAttendanceController(svcs.Attendance),
		Exam:         NewExamController(svcs.Exam),
		Fee:          NewFeeController(svcs.Fee),
		Ledger:       NewLedgerController(svcs.Ledger),
		Inquiry:      NewInquiryController(svcs.Inquiry),
		Timetable:    NewTimetableController(svcs.Timetable),
		Notification: NewNotificationController(svcs.Notification),
	}
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(name + " must be a positive integer")
	}
	return id, nil
}

// parseOptionalIDQuery reads an optional positive integer query parameter
func parseOptionalIDQuery(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewBadRequestError(name + " must be a positive integer")
	}
	return &id, nil
}
