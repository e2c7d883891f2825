package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/app/services"
	"github.com/digiclass/backend/internal/middleware"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
)

// LedgerController handles bookkeeping endpoints
type LedgerController struct {
	ledgerService *services.LedgerService
}

// NewLedgerController creates a new ledger controller
func NewLedgerController(ledgerService *services.LedgerService) *LedgerController {
	return &LedgerController{ledgerService: ledgerService}
}

func ledgerFilterFromQuery(c *gin.Context) (repositories.LedgerFilter, error) {
	filter := repositories.LedgerFilter{
		EntryType: models.LedgerEntryType(c.Query("entryType")),
		Category:  c.Query("category"),
	}

	if filter.EntryType != "" && !models.ValidLedgerEntryType(filter.EntryType) {
		return filter, apperrors.NewBadRequestError("entryType must be EXPENSE or INCOME")
	}

	if raw := c.Query("from"); raw != "" {
		from, err := helpers.ParseDate(raw)
		if err != nil {
			return filter, apperrors.NewBadRequestError("from must be YYYY-MM-DD")
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := helpers.ParseDate(raw)
		if err != nil {
			return filter, apperrors.NewBadRequestError("to must be YYYY-MM-DD")
		}
		filter.To = &to
	}

	return filter, nil
}

// Create handles POST /ledger
func (ctrl *LedgerController) Create(c *gin.Context) {
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entry, err := ctrl.ledgerService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(entry))
}

// List handles GET /ledger with optional entryType, category, from and to
// filters
func (ctrl *LedgerController) List(c *gin.Context) {
	filter, err := ledgerFilterFromQuery(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	entries, err := ctrl.ledgerService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}

// Get handles GET /ledger/:id
func (ctrl *LedgerController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	entry, err := ctrl.ledgerService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(entry))
}

// Summary handles GET /ledger/summary
func (ctrl *LedgerController) Summary(c *gin.Context) {
	filter, err := ledgerFilterFromQuery(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	summary, err := ctrl.ledgerService.Summarize(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

// Update handles PUT /ledger/:id
func (ctrl *LedgerController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	entry, err := ctrl.ledgerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(entry))
}

// Delete handles DELETE /ledger/:id
func (ctrl *LedgerController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.ledgerService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Ledger entry deleted"))
}
