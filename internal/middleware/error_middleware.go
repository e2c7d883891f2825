package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/logger"
)

// errorMapping binds a sentinel error to its HTTP status and wire code
type errorMapping struct {
	status int
	code   dto.ErrorCode
}

var errorMappings = map[error]errorMapping{
	// 400
	apperrors.ErrBadRequest:              {http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	apperrors.ErrValidationFailed:        {http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	apperrors.ErrInvalidEmail:            {http.StatusBadRequest, dto.ErrorCodeInvalidEmail},
	apperrors.ErrInvalidPassword:         {http.StatusBadRequest, dto.ErrorCodeInvalidPassword},
	apperrors.ErrStudentNotAssigned:      {http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	apperrors.ErrCatalogItemsNotAssigned: {http.StatusBadRequest, dto.ErrorCodeValidationFailed},

	// 401
	apperrors.ErrInvalidCredentials: {http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
	apperrors.ErrTokenExpired:       {http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
	apperrors.ErrTokenInvalid:       {http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
	apperrors.ErrTokenNotFound:      {http.StatusUnauthorized, dto.ErrorCodeTokenNotFound},
	apperrors.ErrTokenRevoked:       {http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
	apperrors.ErrTokenUsed:          {http.StatusUnauthorized, dto.ErrorCodeInvalidToken},

	// 403
	apperrors.ErrPermissionDenied: {http.StatusForbidden, dto.ErrorCodeForbidden},

	// 404
	apperrors.ErrResourceNotFound:   {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrUserNotFound:       {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrStudentNotFound:    {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrClassBatchNotFound: {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrFeeStructureNotFound: {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrFeePaymentNotFound:   {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrAttendanceNotFound:   {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrExamNotFound:         {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrLedgerEntryNotFound:  {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrInquiryNotFound:      {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	apperrors.ErrTimetableNotFound:    {http.StatusNotFound, dto.ErrorCodeResourceNotFound},

	// 409
	apperrors.ErrConflict:               {http.StatusConflict, dto.ErrorCodeResourceConflict},
	apperrors.ErrResourceAlreadyExists:  {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	apperrors.ErrEmailAlreadyExists:     {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	apperrors.ErrStudentEmailExists:     {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	apperrors.ErrStudentHasRelations:    {http.StatusConflict, dto.ErrorCodeResourceConflict},
	apperrors.ErrClassBatchAlreadyExists: {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	apperrors.ErrClassBatchFull:          {http.StatusConflict, dto.ErrorCodeResourceConflict},
	apperrors.ErrFeeStructureExists:      {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
}

// HandleAPIError translates an application error into a JSON error response.
// Unknown errors are logged and returned as a generic 500 so database and
// driver details never reach clients.
func HandleAPIError(c *gin.Context, err error) {
	for sentinel, mapping := range errorMappings {
		if errors.Is(err, sentinel) {
			detail := dto.NewErrorDetail(mapping.code, messageFor(err, sentinel))
			c.JSON(mapping.status, dto.NewErrorResponse(detail))
			return
		}
	}

	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
}

// messageFor prefers the CustomError message when one wraps the sentinel
func messageFor(err error, sentinel error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return sentinel.Error()
}

// HandleValidationError responds with 400 for request binding failures
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
