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

// StudentController handles student registration and profile endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new student controller
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Register handles POST /students
func (ctrl *StudentController) Register(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.studentService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// Me handles GET /students/me, the profile linked to the caller's account
func (ctrl *StudentController) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	student, err := ctrl.studentService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Get handles GET /students/:id
func (ctrl *StudentController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.studentService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// List handles GET /students with optional standard, courseType,
// classBatchId and unassigned filters plus page/size pagination
func (ctrl *StudentController) List(c *gin.Context) {
	batchID, err := parseOptionalIDQuery(c, "classBatchId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	filter := repositories.StudentFilter{
		Standard:     c.Query("standard"),
		CourseType:   c.Query("courseType"),
		ClassBatchID: batchID,
		Unassigned:   c.Query("unassigned") == "true",
	}

	page, size := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := ctrl.studentService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp := dto.NewAPIResponse(students)
	pagination := helpers.NewPaginationInfo(total, page, limit)
	resp.Pagination = &pagination

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /students/:id
func (ctrl *StudentController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ctrl.studentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Delete handles DELETE /students/:id
func (ctrl *StudentController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted"))
}
