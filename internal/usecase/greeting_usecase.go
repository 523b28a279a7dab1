package usecase

import "portfolio-contact-backend/internal/domain"

type greetingUsecase struct {
	message string
}

func NewGreetingUsecase(message string) domain.GreetingUsecase {
	return &greetingUsecase{message: message}
}

func (u *greetingUsecase) Greet() domain.GreetingResponse {
	return domain.GreetingResponse{Message: u.message}
}
