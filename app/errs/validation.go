package errs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError converts a validator failure into a 400 with one entry
// per offending field. Other errors become a plain 400 carrying their text.
func ValidationError(err error) *HTTPError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field: fieldName(fe),
			Error: fieldMessage(fe),
		})
	}
	return NewBadRequestError("Validation failed", nil, fieldErrors)
}

// fieldName lower-cases the first letter of the struct field so it matches
// the JSON key, e.g. "PostID" becomes "postID".
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
