package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	provider  string
	available bool
}

// NewHealthUsecase reports the configured email provider and whether it is usable.
func NewHealthUsecase(provider string, available bool) HealthUsecase {
	return &healthUsecase{provider: provider, available: available}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	email := "unavailable"
	if u.available {
		email = "configured"
	}
	return map[string]string{
		"status":         "ok",
		"email_provider": u.provider,
		"email":          email,
	}
}
