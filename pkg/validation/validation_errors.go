package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps json field names to user-facing labels
var FieldLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"subject": "Subject",
	"message": "Message",
}

// FieldMessages converts validator.ValidationErrors into a field -> message map.
// Any other error is returned unchanged.
func FieldMessages(err error) (map[string]string, error) {
	if err == nil {
		return map[string]string{}, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	messages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		messages[e.Field()] = formatSingleError(e)
	}
	return messages, nil
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required", "trimmed_required":
		return fmt.Sprintf("%s is required", label)
	case "email", "loose_email":
		return fmt.Sprintf("%s is invalid", label)
	case "min", "trimmed_min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
