package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/app/services"
	"github.com/digiclass/backend/internal/middleware"
)

// ExamController handles exam scheduling endpoints
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new exam controller
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// Create handles POST /exams
func (ctrl *ExamController) Create(c *gin.Context) {
	var req dto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	exam, err := ctrl.examService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}

// Get handles GET /exams/:id
func (ctrl *ExamController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	exam, err := ctrl.examService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// List handles GET /exams with optional standard and classBatchId filters
func (ctrl *ExamController) List(c *gin.Context) {
	batchID, err := parseOptionalIDQuery(c, "classBatchId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	filter := repositories.ExamFilter{
		Standard:     c.Query("standard"),
		ClassBatchID: batchID,
	}

	exams, err := ctrl.examService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(exams))
}

// Update handles PUT /exams/:id
func (ctrl *ExamController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	exam, err := ctrl.examService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// Delete handles DELETE /exams/:id
func (ctrl *ExamController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.examService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Exam deleted"))
}
