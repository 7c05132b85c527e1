package handlers

import (
	"net/http"

	"pharmacy-api/config"
	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// SaveContact stores a contact form message
func SaveContact(c *gin.Context) {
	var form models.ContactForm
	if !bindJSON(c, &form) {
		return
	}
	form.Normalize()
	if err := validation.Struct(form); err != nil {
		invalid(c, err)
		return
	}

	contact := models.Contact{Name: form.Name, Email: form.Email, Message: form.Message}
	if err := config.DB.Create(&contact).Error; err != nil {
		serverError(c, "Failed to save contact", errors.Wrap(err, "create contact"))
		return
	}
	c.JSON(http.StatusCreated, models.Envelope[models.Contact]{
		Success: true,
		Message: "Contact saved successfully",
		Data:    contact,
	})
}

func ListContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := config.DB.Order("created_at DESC").Order("id DESC").Find(&contacts).Error; err != nil {
		serverError(c, "Failed to fetch contacts", errors.Wrap(err, "query contacts"))
		return
	}
	c.JSON(http.StatusOK, models.NewList(contacts))
}
