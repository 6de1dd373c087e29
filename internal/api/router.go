package api

import (
	"net/http"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reviewhub/internal/api/handler"
	"reviewhub/internal/api/middleware"
	"reviewhub/internal/api/service"
	"reviewhub/internal/config"
	"reviewhub/internal/metrics"
)

// Handlers bundles everything NewRouter needs to mount.
type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Genre    *handler.GenreHandler
	Title    *handler.TitleHandler
	Review   *handler.ReviewHandler
	Comment  *handler.CommentHandler
	User     *handler.UserHandler
}

var (
	slugRx            = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	registerRulesOnce sync.Once
)

// RegisterValidators installs custom binding rules shared by the DTOs.
// Idempotent, so tests that bind DTOs directly can call it too.
func RegisterValidators() {
	registerRulesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
				return slugRx.MatchString(fl.Field().String())
			})
		}
	})
}

// NewRouter wires the full route tree. Reads on catalog and review data are
// public; mutations require a token and the role gates noted per handler.
func NewRouter(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	RegisterValidators()

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(metrics.GinMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authn := middleware.Authenticate(authSvc)
	signupLimit := middleware.RateLimit(cfg.SignupRatePerMinute, cfg.SignupBurst)

	apiGroup := r.Group("/api")

	h.Auth.RegisterRoutes(apiGroup.Group("/auth"), signupLimit)
	h.Category.RegisterRoutes(apiGroup.Group("/categories"), authn)
	h.Genre.RegisterRoutes(apiGroup.Group("/genres"), authn)
	h.Title.RegisterRoutes(apiGroup.Group("/titles"), authn)
	h.Review.RegisterRoutes(apiGroup.Group("/titles/:title_id/reviews"), authn)
	h.Comment.RegisterRoutes(apiGroup.Group("/titles/:title_id/reviews/:review_id/comments"), authn)
	h.User.RegisterRoutes(apiGroup.Group("/users"), authn)

	return r
}
