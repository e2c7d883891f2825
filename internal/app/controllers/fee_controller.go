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

// FeeController handles fee structure and payment endpoints
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new fee controller
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// CreateStructure handles POST /fees/structures
func (ctrl *FeeController) CreateStructure(c *gin.Context) {
	var req dto.CreateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	fs, err := ctrl.feeService.CreateStructure(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(fs))
}

// ListStructures handles GET /fees/structures
func (ctrl *FeeController) ListStructures(c *gin.Context) {
	structures, err := ctrl.feeService.ListStructures(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(structures))
}

// UpdateStructure handles PUT /fees/structures/:id
func (ctrl *FeeController) UpdateStructure(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	fs, err := ctrl.feeService.UpdateStructure(c.Request.Context(), id, req.Amount)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(fs))
}

// DeleteStructure handles DELETE /fees/structures/:id
func (ctrl *FeeController) DeleteStructure(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.feeService.DeleteStructure(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Fee structure deleted"))
}

// RecordPayment handles POST /fees/payments
func (ctrl *FeeController) RecordPayment(c *gin.Context) {
	var req dto.RecordFeePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	payment, err := ctrl.feeService.RecordPayment(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(payment))
}

// ListPayments handles GET /fees/payments with optional studentId, from
// and to filters
func (ctrl *FeeController) ListPayments(c *gin.Context) {
	studentID, err := parseOptionalIDQuery(c, "studentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	filter := repositories.FeePaymentFilter{StudentID: studentID}

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

	payments, err := ctrl.feeService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(payments))
}

// DeletePayment handles DELETE /fees/payments/:id
func (ctrl *FeeController) DeletePayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.feeService.DeletePayment(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Fee payment deleted"))
}

// StudentStatus handles GET /fees/students/:id/status
func (ctrl *FeeController) StudentStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	status, err := ctrl.feeService.StudentStatus(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(status))
}
