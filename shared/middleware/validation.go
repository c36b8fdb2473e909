package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidateRequest checks obj against its validate tags and returns one entry
// per failing field, or nil when obj is valid.
func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}
	return validationErrors
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	default:
		return "Invalid value"
	}
}

// RespondWithError aborts the chain with {success:false, error:message}.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Success: false, Error: message})
}

// NotFound answers unmatched routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondWithError(c, http.StatusNotFound, "Endpoint not found")
	}
}
