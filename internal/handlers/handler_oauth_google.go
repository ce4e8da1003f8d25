package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler handles the optional Google sign-in flow for staff.
// A Google account only signs in when its email already belongs to a
// registered user; no account is created from the OAuth flow.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// registerGoogleOAuthRoutes wires the Google routes when a client is
// configured, and skips them silently otherwise.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	if services.GoogleOAuthHandler == nil || !services.GoogleOAuthHandler.Enabled() {
		return
	}

	h := &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuthHandler,
		userService:        services.User,
		tokenService:       services.Token,
	}

	google := rg.Group("/google")
	{
		google.GET("/login", h.loginGoogle)
		google.GET("/callback", h.callbackGoogle)
		google.POST("/exchange-code", h.exchangeCodeGoogle)
	}
}

// loginGoogle godoc
// @Summary Start the Google sign-in flow
// @Description Redirects to the Google consent screen with a CSRF state cookie.
// @Tags oauth
// @Success 307
// @Router /api/auth/google/login [get]
func (h *googleOAuthHandler) loginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao iniciar login com Google"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// callbackGoogle godoc
// @Summary Google sign-in callback
// @Description Validates the state and code from Google and returns an application token.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/google/callback [get]
func (h *googleOAuthHandler) callbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Estado OAuth inválido"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Código de autorização ausente"})
		return
	}

	h.finishLogin(c, code)
}

// exchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a token
// @Description Used by SPA frontends that receive the code directly.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Código de autorização ausente"})
		return
	}

	h.finishLogin(c, req.Code)
}

// finishLogin exchanges the code, validates the Google ID token and signs an
// application token for the matching user.
func (h *googleOAuthHandler) finishLogin(c *gin.Context, code string) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	oauthToken, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Código de autorização inválido"})
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Warn("Google token response missing id_token")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Resposta do Google inválida"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		logger.Warn("Invalid Google ID token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token do Google inválido"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Conta Google sem email verificado"})
		return
	}

	user, err := h.userService.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Warn("Google sign-in for unregistered email", slog.String("email", email))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Usuário não cadastrado"})
		return
	}

	token, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao gerar token"})
		return
	}

	logger.Info("Google sign-in succeeded", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.ToUserResponse(user), Token: token})
}
