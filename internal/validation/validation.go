// Package validation checks request payloads and cleans user supplied text.
package validation

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"sync"

	"bloghub/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate *validator.Validate
	once     sync.Once

	strict = bluemonday.StrictPolicy()
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("notification_filter", validateNotificationFilter)
	})
	return validate
}

func validateNotificationFilter(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "all" || models.NotificationType(v).Valid()
}

// Struct validates v against its `validate` tags and returns a VALIDATION_ERROR AppError naming the first bad field.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return models.NewValidationError(fieldMessage(fe))
	}
	return models.NewValidationError(err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "notification_filter":
		return fmt.Sprintf("%s must be one of all, like, comment, reply", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// SanitizeBody strips all markup from a comment body and trims surrounding whitespace.
// The policy escapes the text it keeps; the result is unescaped again so plain
// text round-trips unchanged.
func SanitizeBody(body string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(body)))
}
