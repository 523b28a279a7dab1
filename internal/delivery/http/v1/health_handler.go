package v1

import (
	"net/http"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(api *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	api.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health Check
// @Description  Reports the configured email provider and whether the contact form can send.
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /v1/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", h.healthUC.Check(c.Request.Context()))
}
