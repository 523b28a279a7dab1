package v1

import (
	"net/http"

	"portfolio-contact-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type GreetingHandler struct {
	greetingUC domain.GreetingUsecase
}

// NewGreetingHandler answers every method on /demo with the canned greeting
func NewGreetingHandler(api *gin.RouterGroup, greetingUC domain.GreetingUsecase) {
	handler := &GreetingHandler{greetingUC: greetingUC}
	api.Any("/demo", handler.Greet)
}

// Greet godoc
// @Summary      Greeting
// @Description  Returns a fixed greeting. The request body is ignored.
// @Tags         greeting
// @Produce      json
// @Success      200  {object}  domain.GreetingResponse
// @Router       /api/demo [get]
func (h *GreetingHandler) Greet(c *gin.Context) {
	c.JSON(http.StatusOK, h.greetingUC.Greet())
}
