package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/services"
	"github.com/digiclass/backend/internal/middleware"
)

// InquiryController handles admission inquiry endpoints
type InquiryController struct {
	inquiryService *services.InquiryService
}

// NewInquiryController creates a new inquiry controller
func NewInquiryController(inquiryService *services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

// Create handles POST /inquiries
func (ctrl *InquiryController) Create(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inquiry, err := ctrl.inquiryService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(inquiry))
}

// Get handles GET /inquiries/:id
func (ctrl *InquiryController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	inquiry, err := ctrl.inquiryService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(inquiry))
}

// List handles GET /inquiries with an optional status filter
func (ctrl *InquiryController) List(c *gin.Context) {
	status := models.InquiryStatus(c.Query("status"))

	inquiries, err := ctrl.inquiryService.List(c.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(inquiries))
}

// Update handles PUT /inquiries/:id
func (ctrl *InquiryController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inquiry, err := ctrl.inquiryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(inquiry))
}

// Delete handles DELETE /inquiries/:id
func (ctrl *InquiryController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.inquiryService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Inquiry deleted"))
}
