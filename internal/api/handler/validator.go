package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Field-level failures render as 422 with human-readable messages.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return echo.NewHTTPError(http.StatusUnprocessableEntity, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s is required.", field)
	case "email":
		return "The email must be a valid email address."
	case "min":
		return fmt.Sprintf("The %s must have at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s cannot have more than %s characters.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be positive.", field)
	case "eqfield":
		return "Passwords must match."
	default:
		return fmt.Sprintf("The %s failed validation (%s).", field, fe.Tag())
	}
}
