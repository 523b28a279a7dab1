package v1

import (
	"errors"
	"net/http"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact message and forward it to the site owner, with an auto-reply to the sender.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response  "error holds field -> message"
// @Failure      500      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /v1/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	res, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailUnavailable) {
			c.Error(apperror.ServiceUnavailable("Contact service temporarily unavailable", err))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	switch res.Outcome {
	case domain.OutcomeRejected:
		c.Error(apperror.Validation("Please correct the highlighted fields.", res.Errors))
	case domain.OutcomeFailed:
		c.Error(apperror.New(http.StatusInternalServerError, domain.FailureNotice, nil))
	default:
		response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
	}
}
