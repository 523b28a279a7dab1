package domain

// GreetingResponse is the fixed body of the greeting route.
type GreetingResponse struct {
	Message string `json:"message"`
}

// GreetingUsecase returns the canned greeting.
type GreetingUsecase interface {
	Greet() GreetingResponse
}
