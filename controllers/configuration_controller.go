package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-backend/models"
	"tienda-backend/services"
)

type ConfigurationController struct {
	configuration *services.ConfigurationService
}

func NewConfigurationController(configuration *services.ConfigurationService) *ConfigurationController {
	return &ConfigurationController{configuration: configuration}
}

// @Summary List configuration
// @Description Get all configuration entries (public, the checkout flow needs whatsapp_number)
// @Tags Configuration
// @Produce json
// @Success 200 {array} models.Configuration
// @Router /api/configuration [get]
func (ctrl *ConfigurationController) GetConfiguration(c *gin.Context) {
	entries, err := ctrl.configuration.List(c.Request.Context())
	if err != nil {
		log.Printf("Get configuration error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary Set configuration
// @Description Upsert a configuration entry (admin only)
// @Tags Configuration
// @Accept json
// @Produce json
// @Param entry body models.ConfigurationRequest true "Entry"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/configuration [post]
func (ctrl *ConfigurationController) SetConfiguration(c *gin.Context) {
	var req models.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			OK:      false,
			Message: "Invalid input",
			Errors:  models.ValidationErrors(err),
		})
		return
	}

	entry, err := ctrl.configuration.Set(c.Request.Context(), req.Key, req.Value)
	if err != nil {
		log.Printf("Set configuration error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			OK:      false,
			Message: "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "config": entry})
}
