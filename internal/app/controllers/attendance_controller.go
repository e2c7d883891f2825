package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/app/services"
	"github.com/digiclass/backend/internal/middleware"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Record handles POST /attendance
func (ctrl *AttendanceController) Record(c *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	records, err := ctrl.attendanceService.Record(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(records))
}

// List handles GET /attendance with optional classBatchId, studentId,
// from and to filters
func (ctrl *AttendanceController) List(c *gin.Context) {
	batchID, err := parseOptionalIDQuery(c, "classBatchId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	studentID, err := parseOptionalIDQuery(c, "studentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	filter := repositories.AttendanceFilter{ClassBatchID: batchID, StudentID: studentID}

	if raw := c.Query("from"); raw != "" {
		from, err := helpers.ParseDate(raw)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("from must be YYYY-MM-DD"))
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := helpers.ParseDate(raw)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("to must be YYYY-MM-DD"))
			return
		}
		filter.To = &to
	}

	records, err := ctrl.attendanceService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// Update handles PATCH /attendance/:id
func (ctrl *AttendanceController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := ctrl.attendanceService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Attendance updated"))
}
