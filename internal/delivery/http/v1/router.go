package v1

import (
	"net/http"

	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/delivery/http/middleware"
	"portfolio-contact-backend/internal/delivery/http/view"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	GreetingUC domain.GreetingUsecase
	HealthUC   usecase.HealthUsecase
	Renderer   *view.Renderer
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Swagger UI relies on inline scripts, so it stays outside the CSP group
	r.GET("/v1/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	site := r.Group("")
	site.Use(middleware.SecurityHeadersMiddleware())

	NewGreetingHandler(site.Group("/api"), deps.GreetingUC)

	v1 := site.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)
	NewContactHandler(v1, deps.ContactUC)

	// Server-rendered pages
	site.StaticFS("/static", http.FS(view.Static()))
	NewPageHandler(site, deps.ContactUC, deps.Renderer)

	return r
}
