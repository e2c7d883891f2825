package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/app/services"
	"github.com/digiclass/backend/internal/middleware"
)

// CatalogController handles the assigned standards and subjects endpoints.
// Both catalogs share one controller; the route decides the table.
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func (ctrl *CatalogController) list(c *gin.Context, table string) {
	items, err := ctrl.catalogService.List(c.Request.Context(), table)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.CatalogResponse{Items: items}))
}

func (ctrl *CatalogController) assign(c *gin.Context, table string) {
	var req dto.AssignCatalogItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, err := ctrl.catalogService.Assign(c.Request.Context(), table, req.Items)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.CatalogResponse{Items: items}))
}

func (ctrl *CatalogController) remove(c *gin.Context, table string) {
	var req dto.RemoveCatalogItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, err := ctrl.catalogService.Remove(c.Request.Context(), table, req.Items)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.CatalogResponse{Items: items}))
}

// ListStandards handles GET /catalog/standards
func (ctrl *CatalogController) ListStandards(c *gin.Context) {
	ctrl.list(c, repositories.CatalogStandards)
}

// AssignStandards handles POST /catalog/standards
func (ctrl *CatalogController) AssignStandards(c *gin.Context) {
	ctrl.assign(c, repositories.CatalogStandards)
}

// RemoveStandards handles POST /catalog/standards/remove
func (ctrl *CatalogController) RemoveStandards(c *gin.Context) {
	ctrl.remove(c, repositories.CatalogStandards)
}

// ListSubjects handles GET /catalog/subjects
func (ctrl *CatalogController) ListSubjects(c *gin.Context) {
	ctrl.list(c, repositories.CatalogSubjects)
}

// AssignSubjects handles POST /catalog/subjects
func (ctrl *CatalogController) AssignSubjects(c *gin.Context) {
	ctrl.assign(c, repositories.CatalogSubjects)
}

// RemoveSubjects handles POST /catalog/subjects/remove
func (ctrl *CatalogController) RemoveSubjects(c *gin.Context) {
	ctrl.remove(c, repositories.CatalogSubjects)
}
