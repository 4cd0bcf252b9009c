package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/config"
	"gstbill/internal/service"
)

// AuthHandler serves registration, login, and logout. The session token is
// set as an HTTP-only cookie and never appears in a response body.
type AuthHandler struct {
	auth service.AuthService
	cfg  config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthService, cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

// Register creates a company and its first user, then starts a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		MapDomainError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	RespondSuccess(c, http.StatusCreated, gin.H{
		"user":    result.User,
		"company": result.Company,
	})
}

// Login authenticates credentials and starts a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), input)
	if err != nil {
		MapDomainError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	RespondSuccess(c, http.StatusOK, gin.H{
		"user":    result.User,
		"company": result.Company,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
	RespondSuccess(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, token, int(h.cfg.SessionExpiry.Seconds()), "/", "", h.cfg.CookieSecure, true)
}
