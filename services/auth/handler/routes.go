package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/middleware"
	"github.com/markazhub/markaz/internal/pkg/models"
	authhttp "github.com/markazhub/markaz/services/auth/handler/http"
)

// Handler coordinates the auth service's HTTP routes
type Handler struct {
	authHandler *authhttp.AuthHandler
	cfg         *models.Config
}

// NewHandler creates the auth route coordinator
func NewHandler(authHandler *authhttp.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{authHandler: authHandler, cfg: cfg}
}

// RegisterRoutes registers the public auth routes and the authenticated
// password-change route
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/otp/send", h.authHandler.SendOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/register/verify", h.authHandler.CompleteRegistration)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/refresh", h.authHandler.Refresh)

	protected := e.Group("/auth", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.PATCH("/password", h.authHandler.ChangePassword)
}
