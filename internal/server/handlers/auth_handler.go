package handlers

import (
	"net/http"

	"poll-service/internal/ports/models"
	"poll-service/internal/server/middleware"
	"poll-service/internal/server/service"
	"poll-service/pkg/response"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body."

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// @Summary Register a new account
// @Description Create a new account; the display name is stored with it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"user": nil, "error": msgInvalidBody})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"user": nil, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "error": nil})
}

// @Summary Log in
// @Description Authenticate and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"session": nil, "error": msgInvalidBody})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"session": nil, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "error": nil})
}

// @Summary Log out
// @Description Close the caller's session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromContext(c.Request.Context())

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(response.StatusOf(err), gin.H{"error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil})
}

// @Summary Current account
// @Description The reduced account projection, or null when not signed in
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	token := middleware.TokenFromContext(c.Request.Context())

	user, err := h.authService.CurrentUser(c.Request.Context(), token)
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"user": nil, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "error": nil})
}

// @Summary Current session
// @Description The reduced session projection, or null when none is active
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	token := middleware.TokenFromContext(c.Request.Context())

	session, err := h.authService.CurrentSession(c.Request.Context(), token)
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"session": nil, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "error": nil})
}
