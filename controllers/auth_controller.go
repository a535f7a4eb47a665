package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-backend/config"
	"tienda-backend/middleware"
	"tienda-backend/models"
	"tienda-backend/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func setSessionCookie(c *gin.Context, sessionID string, maxAge int) {
	secure := config.AppConfig.AppEnv == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, sessionID, maxAge, "/", "", secure, true)
}

// @Summary Admin login
// @Description Authenticate an admin and open a session (rate limited)
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /api/admin/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			OK:      false,
			Message: "Invalid input",
			Errors:  models.ValidationErrors(err),
		})
		return
	}

	admin, sessionID, err := ctrl.auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			OK:      false,
			Message: "Invalid credentials",
		})
		return
	}
	if err != nil {
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}

	setSessionCookie(c, sessionID, int(services.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin})
}

// @Summary Admin logout
// @Description Destroy the current session (idempotent)
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && sessionID != "" {
		if err := ctrl.auth.Logout(c.Request.Context(), sessionID); err != nil {
			log.Printf("Logout error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				OK:      false,
				Message: "Logout failed",
			})
			return
		}
	}

	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Current admin
// @Description Return the identity bound to the session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/admin/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	admin, err := ctrl.auth.Me(c.Request.Context(), c.GetString("admin_id"))
	if errors.Is(err, services.ErrAdminNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			OK:      false,
			Message: "Admin not found",
		})
		return
	}
	if err != nil {
		log.Printf("Get admin error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "admin": admin})
}
