package usecase_test

import (
	"testing"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func validForm() domain.FormData {
	return domain.FormData{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hi",
		Message: "This is long enough.",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid form has no errors", func(t *testing.T) {
		assert.Empty(t, usecase.Validate(validForm()))
	})

	t.Run("format errors", func(t *testing.T) {
		got := usecase.Validate(domain.FormData{
			Name:    "Jo",
			Email:   "bad-email",
			Subject: "Hi",
			Message: "short",
		})
		assert.Equal(t, domain.FormErrors{
			domain.FieldEmail:   "Email is invalid",
			domain.FieldMessage: "Message must be at least 10 characters",
		}, got)
	})

	t.Run("all empty collects every required error", func(t *testing.T) {
		got := usecase.Validate(domain.FormData{})
		assert.Equal(t, domain.FormErrors{
			domain.FieldName:    "Name is required",
			domain.FieldEmail:   "Email is required",
			domain.FieldSubject: "Subject is required",
			domain.FieldMessage: "Message is required",
		}, got)
	})

	required := map[domain.Field]string{
		domain.FieldName:    "Name is required",
		domain.FieldEmail:   "Email is required",
		domain.FieldSubject: "Subject is required",
		domain.FieldMessage: "Message is required",
	}
	for field, msg := range required {
		t.Run("blank "+string(field)+" only", func(t *testing.T) {
			form, err := validForm().Set(field, "   ")
			assert.NoError(t, err)
			assert.Equal(t, domain.FormErrors{field: msg}, usecase.Validate(form))
		})
	}

	t.Run("is deterministic", func(t *testing.T) {
		form := domain.FormData{Email: "x"}
		assert.Equal(t, usecase.Validate(form), usecase.Validate(form))
	})
}
