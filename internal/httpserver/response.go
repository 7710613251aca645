package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/service/preference"
	"invoice-web-app/internal/validation"
)

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

type healthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// badBodyError reports a request body that could not be decoded.
type badBodyError struct {
	field string
	err   error
}

func (e *badBodyError) Error() string { return "invalid request body: " + e.err.Error() }

func (e *badBodyError) Unwrap() error { return e.err }

// bindJSON decodes the body into dst. Validation happens in the services.
func bindJSON(c *gin.Context, dst any) error {
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		bad := &badBodyError{err: err}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			bad.field = typeErr.Field
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			bad.field = "body"
		}
		return bad
	}
	return nil
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, dataResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string, fields []validation.FieldError) {
	c.AbortWithStatusJSON(status, errorResponse{Success: false, Message: message, Errors: fields})
}

// writeError maps service errors onto the JSON error envelope.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	var (
		verrs *validation.Errors
		dup   *domain.DuplicateKeyError
		bad   *badBodyError
	)
	switch {
	case errors.As(err, &verrs):
		respondError(c, http.StatusBadRequest, "Validation failed", verrs.Fields)
	case errors.As(err, &bad):
		var fields []validation.FieldError
		if bad.field != "" {
			fields = []validation.FieldError{{Field: bad.field, FormField: validation.FormField(bad.field), Message: "Invalid value"}}
		}
		if errors.Is(bad.err, io.EOF) {
			fields = nil
		}
		respondError(c, http.StatusBadRequest, "Invalid request body", fields)
	case errors.Is(err, domain.ErrMalformedID):
		respondError(c, http.StatusBadRequest, "Invalid ID format", nil)
	case errors.Is(err, preference.ErrMissingUser):
		respondError(c, http.StatusBadRequest, "X-User-Id header is required", nil)
	case errors.As(err, &dup):
		respondError(c, http.StatusBadRequest, dup.Error(), []validation.FieldError{{
			Field: dup.Field, FormField: validation.FormField(dup.Field), Message: dup.Error(),
		}})
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "Invoice not found", nil)
	case errors.Is(err, domain.ErrAllocationExhausted):
		logger.Printf("http: %s %s error=%v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "Could not generate a unique invoice ID", nil)
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Printf("http: %s %s error=%v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "Database unavailable", nil)
	default:
		logger.Printf("http: %s %s error=%v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
