package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/devfolio-app/portfolio-backend/internal/api/http"
	"github.com/devfolio-app/portfolio-backend/internal/api/http/middleware"
	"github.com/devfolio-app/portfolio-backend/internal/catalog"
	cataloghttp "github.com/devfolio-app/portfolio-backend/internal/catalog/http"
	"github.com/devfolio-app/portfolio-backend/internal/contact"
	contacthttp "github.com/devfolio-app/portfolio-backend/internal/contact/http"
	contactrepo "github.com/devfolio-app/portfolio-backend/internal/contact/repository"
	contactsvc "github.com/devfolio-app/portfolio-backend/internal/contact/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string

	Store    *catalog.Store
	PageSize int

	ContactUpstreamURL string
	ContactTimeout     time.Duration
	ContactRatePerMin  int
	ContactBurst       int
	ContactDupWindow   time.Duration

	Redis *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware(dep.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	projectsGroup := api.Group("/projects")
	cataloghttp.New(dep.Store, dep.PageSize).Register(projectsGroup)

	var upstream *contactsvc.UpstreamClient
	if dep.ContactUpstreamURL != "" {
		upstream = contactsvc.NewUpstreamClient(dep.ContactUpstreamURL, dep.ContactTimeout)
	}

	var subRepo *contactrepo.SubmissionRepo
	if dep.Redis != nil {
		subRepo = contactrepo.NewSubmissionRepo(dep.Redis)
	}

	limiter := contact.NewIPLimiter(dep.ContactRatePerMin, dep.ContactBurst)

	contactGroup := api.Group("/contact")
	contacthttp.New(upstream, subRepo, limiter, dep.ContactDupWindow).Register(contactGroup)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-Id"},
		MaxAge:       12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}

	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
