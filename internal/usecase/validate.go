package usecase

import (
	"fmt"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var formValidator = mustFormValidator()

func mustFormValidator() *validator.Validate {
	v, err := validation.New()
	if err != nil {
		panic(fmt.Sprintf("contact form validator: %v", err))
	}
	return v
}

// Validate checks every field of the form and returns the failures.
// An empty result means the form is valid.
func Validate(form domain.FormData) domain.FormErrors {
	errs := domain.FormErrors{}

	messages, err := validation.FieldMessages(formValidator.Struct(form))
	if err != nil {
		// Only an invalid validator setup gets here
		panic(fmt.Sprintf("contact form validation: %v", err))
	}

	for name, msg := range messages {
		field, err := domain.ParseField(name)
		if err != nil {
			continue
		}
		errs[field] = msg
	}
	return errs
}
