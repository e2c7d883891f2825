package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/services"
	"github.com/digiclass/backend/internal/middleware"
)

// ClassBatchController handles class batch and roster endpoints
type ClassBatchController struct {
	batchService *services.ClassBatchService
}

// NewClassBatchController creates a new class batch controller
func NewClassBatchController(batchService *services.ClassBatchService) *ClassBatchController {
	return &ClassBatchController{batchService: batchService}
}

// Create handles POST /class-batches
func (ctrl *ClassBatchController) Create(c *gin.Context) {
	var req dto.CreateClassBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	batch, err := ctrl.batchService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(batch))
}

// Get handles GET /class-batches/:id
func (ctrl *ClassBatchController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	batch, err := ctrl.batchService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(batch))
}

// List handles GET /class-batches
func (ctrl *ClassBatchController) List(c *gin.Context) {
	batches, err := ctrl.batchService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(batches))
}

// Update handles PUT /class-batches/:id
func (ctrl *ClassBatchController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateClassBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	batch, err := ctrl.batchService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(batch))
}

// Delete handles DELETE /class-batches/:id
func (ctrl *ClassBatchController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.batchService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Class batch deleted"))
}

// Roster handles GET /class-batches/:id/students
func (ctrl *ClassBatchController) Roster(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	students, err := ctrl.batchService.Roster(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// AssignStudent handles POST /class-batches/:id/students
func (ctrl *ClassBatchController) AssignStudent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AssignStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := ctrl.batchService.AssignStudent(c.Request.Context(), id, req.StudentID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Student assigned to class batch"))
}

// RemoveStudent handles DELETE /class-batches/:id/students/:studentId
func (ctrl *ClassBatchController) RemoveStudent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.batchService.RemoveStudent(c.Request.Context(), id, studentID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Student removed from class batch"))
}
