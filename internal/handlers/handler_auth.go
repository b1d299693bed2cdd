package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/dto"
	"github.com/SscSPs/currency_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and token issuing.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the public /user routes. loginLimit is applied to login only.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.TokenService)

	user := rg.Group("/user")
	{
		user.POST("/register", h.register)
		user.POST("/login", loginLimit, h.login)
		user.POST("/refresh", h.refresh)
	}
	registerGoogleOAuthRoutes(user, services)
}

// register godoc
// @Summary Register new user
// @Description Creates a new account. The email is stored lower-case.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegisterResponse(user))
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /user/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	writeTokenPair(c, h.tokenService, user)
}

// refresh godoc
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new token pair. The presented refresh token stops working.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /user/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}

	writeTokenPair(c, h.tokenService, user)
}

// writeTokenPair issues a fresh access/refresh pair for user.
func writeTokenPair(c *gin.Context, tokenService portssvc.TokenSvcFacade, user *domain.User) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	access, _, err := tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}
	refresh, _, err := tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Issued token pair", slog.Int64("user_id", user.ID))
	c.JSON(http.StatusOK, dto.TokenPairResponse{Access: access, Refresh: refresh})
}
