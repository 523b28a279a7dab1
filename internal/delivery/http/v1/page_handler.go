package v1

import (
	"bytes"
	"net/http"

	"portfolio-contact-backend/internal/delivery/http/view"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the server-rendered contact page. Every request gets
// its own controller; values travel in the posted form.
type PageHandler struct {
	contactUC domain.ContactUsecase
	renderer  *view.Renderer
}

func NewPageHandler(r *gin.RouterGroup, contactUC domain.ContactUsecase, renderer *view.Renderer) {
	handler := &PageHandler{
		contactUC: contactUC,
		renderer:  renderer,
	}

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/contact") })
	r.GET("/contact", handler.ShowContact)
	r.POST("/contact", handler.SubmitContact)
}

func (h *PageHandler) ShowContact(c *gin.Context) {
	page := view.NewContactPage(h.contactUC.NewController().Snapshot(), view.DefaultContactInfo)
	page.Unavailable = !h.contactUC.IsAvailable()
	h.render(c, http.StatusOK, page)
}

func (h *PageHandler) SubmitContact(c *gin.Context) {
	ctrl := h.contactUC.NewController()
	for _, field := range domain.Fields {
		if err := ctrl.OnFieldChange(field, c.PostForm(string(field))); err != nil {
			c.Error(apperror.Internal(err))
			return
		}
	}

	if !h.contactUC.IsAvailable() {
		page := view.NewContactPage(ctrl.Snapshot(), view.DefaultContactInfo)
		page.Unavailable = true
		h.render(c, http.StatusServiceUnavailable, page)
		return
	}

	outcome, err := ctrl.OnSubmit(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	status := http.StatusOK
	switch outcome {
	case domain.OutcomeRejected:
		status = http.StatusUnprocessableEntity
	case domain.OutcomeFailed:
		status = http.StatusInternalServerError
	}

	h.render(c, status, view.NewContactPage(ctrl.Snapshot(), view.DefaultContactInfo))
}

func (h *PageHandler) render(c *gin.Context, status int, page view.ContactPage) {
	var buf bytes.Buffer
	if err := h.renderer.RenderContact(&buf, page); err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
