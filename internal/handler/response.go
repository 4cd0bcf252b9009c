package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
)

// APIResponse is the uniform JSON envelope for all endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// RespondSuccess writes a successful JSON response.
func RespondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

// RespondError writes an error JSON response.
func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	})
}

// RespondValidationError writes a 400 with per-field messages.
func RespondValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    "VALIDATION_ERROR",
			Message: "request validation failed",
			Details: gin.H{"errors": fields},
		},
	})
}

// MapDomainError translates a domain error into an HTTP response.
func MapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, domain.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, domain.ErrUserInactive):
		RespondError(c, http.StatusForbidden, "USER_INACTIVE", "user account is inactive")
	case errors.Is(err, domain.ErrDuplicateEmail):
		RespondError(c, http.StatusConflict, "DUPLICATE_EMAIL", "email already registered")
	case errors.Is(err, domain.ErrDuplicateInvoiceNumber):
		RespondError(c, http.StatusConflict, "DUPLICATE_INVOICE_NUMBER", "Invoice number already exists.")
	case errors.Is(err, domain.ErrSequenceNotGreater):
		RespondError(c, http.StatusUnprocessableEntity, "SEQUENCE_NOT_GREATER", "invoice sequence must exceed the highest existing sequence")
	case errors.Is(err, domain.ErrUnsupportedFileType):
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "only jpg and png files are accepted")
	case errors.Is(err, domain.ErrFileTooLarge):
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
	case errors.Is(err, domain.ErrUploadFailed):
		RespondError(c, http.StatusBadGateway, "UPLOAD_FAILED", "file upload to storage failed")
	case errors.Is(err, domain.ErrInvalidUploadFolder):
		RespondError(c, http.StatusBadRequest, "INVALID_UPLOAD_FOLDER", "upload folder must be logos, stamps, or signatures")
	case errors.Is(err, domain.ErrClientHasNoEmail):
		RespondError(c, http.StatusBadRequest, "CLIENT_HAS_NO_EMAIL", "client has no email address on record")
	default:
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
	}
}
