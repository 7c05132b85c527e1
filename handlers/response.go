package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorEnvelope{Success: false, Message: message})
}

// serverError logs err and answers 500 with a generic message
func serverError(c *gin.Context, message string, err error) {
	zap.L().Error(message, zap.Error(err), zap.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, models.ErrorEnvelope{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

// invalid answers 400 naming the first failing field, or passes other errors to serverError
func invalid(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, models.ErrorEnvelope{
			Success: false,
			Message: verr.Message,
			Field:   verr.Field,
		})
		return
	}
	serverError(c, "Validation failed", err)
}

// bindJSON decodes the request body into dst, answering 400 on malformed JSON
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorEnvelope{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return false
	}
	return true
}

// paramID parses the :id path segment, answering 400 when it is not a positive integer
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "Invalid id: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate reports a unique index violation
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
