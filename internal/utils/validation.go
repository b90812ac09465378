package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"nutrition-app-server/internal/apperr"
)

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	validate := validator.New()
	return validate.Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range errs {
			switch e.Tag() {
			case "required":
				errorMessages = append(errorMessages, e.Field()+" is required")
			case "email":
				errorMessages = append(errorMessages, e.Field()+" must be a valid email address")
			default:
				errorMessages = append(errorMessages, e.Field()+" is invalid")
			}
		}
		return strings.Join(errorMessages, ", ")
	}
	return err.Error()
}

// BindForm binds a form request to a struct and validates it, returning a
// validation error suitable for flashing back to the user.
func BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		return apperr.Validation("Please fill in all required fields.")
	}
	if err := Validate(obj); err != nil {
		return apperr.Validation(FormatValidationError(err))
	}
	return nil
}
