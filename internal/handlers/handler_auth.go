package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/bjtmarts/transfer_tracker_app/internal/dto"
	"github.com/bjtmarts/transfer_tracker_app/internal/middleware"
	"github.com/bjtmarts/transfer_tracker_app/internal/platform/config"
	"github.com/bjtmarts/transfer_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests. The tracker uses a
// shared application password plus an allow-list of team member emails; the
// email becomes the audit identity on everything the session touches.
type AuthHandler struct {
	passwordHash string
	allowedUsers []string
	jwtSecret    string
	jwtDuration  time.Duration
	jwtIssuer    string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		passwordHash: cfg.AppPasswordHash,
		allowedUsers: cfg.AllowedUsers,
		jwtSecret:    cfg.JWTSecret,
		jwtDuration:  cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates an allow-listed user against the shared app password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.isAllowed(email) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}
	if h.passwordHash == "" || !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(email, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// isAllowed checks the email against the allow-list. The allow-list is
// optional: when none is configured, any email bearing the shared password
// may sign in.
func (h *AuthHandler) isAllowed(email string) bool {
	if len(h.allowedUsers) == 0 {
		return true
	}
	for _, allowed := range h.allowedUsers {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}
