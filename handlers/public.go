package handlers

import (
	"net/http"

	"pharmacy-api/config"
	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK
	if sqlDB, err := config.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":  status,
		"service": "Pharmacy API",
		"version": "1.0.0",
	})
}

func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Pharmacy API",
		"health":  "/health",
		"rules":   "/api/validation/rules",
		"enums": gin.H{
			"specializations": models.Specializations,
			"modesOfConsult":  models.ConsultModes,
			"languages":       models.Languages,
			"categories":      models.MedicineCategories,
		},
	})
}

// ValidationRules publishes the form rules so browser clients can check input before submitting
func ValidationRules(c *gin.Context) {
	c.JSON(http.StatusOK, models.Envelope[map[string][]validation.FieldRules]{
		Success: true,
		Data:    validation.Schema(),
	})
}
