package usecase

import (
	"context"

	"portfolio-contact-backend/internal/domain"
)

type contactUsecase struct {
	dispatcher Dispatcher
	opts       []ControllerOption
}

// NewContactUsecase creates a new contact usecase. A nil dispatcher marks
// the contact form as unavailable.
func NewContactUsecase(dispatcher Dispatcher, opts ...ControllerOption) domain.ContactUsecase {
	return &contactUsecase{
		dispatcher: dispatcher,
		opts:       opts,
	}
}

func (uc *contactUsecase) IsAvailable() bool {
	return uc.dispatcher != nil
}

func (uc *contactUsecase) NewController() domain.ContactController {
	return NewContactController(uc.dispatcher, uc.opts...)
}

// SendContactMessage replays the request into a fresh controller and submits it
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResult, error) {
	if !uc.IsAvailable() {
		return nil, domain.ErrEmailUnavailable
	}

	ctrl := uc.NewController()
	data := domain.FormDataFromRequest(req)
	for _, field := range domain.Fields {
		if err := ctrl.OnFieldChange(field, data.Get(field)); err != nil {
			return nil, err
		}
	}

	outcome, err := ctrl.OnSubmit(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.ContactResult{
		Outcome: outcome,
		Errors:  ctrl.Snapshot().Errors,
	}, nil
}
