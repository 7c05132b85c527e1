package handlers

import (
	"net/http"

	"pharmacy-api/config"
	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func ListMedicines(c *gin.Context) {
	medicines, err := models.FindMedicines(config.DB, models.ParseMedicineQuery(c.Request.URL.Query()))
	if err != nil {
		serverError(c, "Failed to fetch medicines", err)
		return
	}
	c.JSON(http.StatusOK, models.NewList(medicines))
}

func GetMedicine(c *gin.Context) {
	medicine, ok := loadMedicine(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.Envelope[models.Medicine]{Success: true, Data: medicine})
}

func CreateMedicine(c *gin.Context) {
	form := models.NewMedicineForm()
	if !bindJSON(c, &form) {
		return
	}
	form.Normalize()
	if err := validation.Struct(form); err != nil {
		invalid(c, err)
		return
	}

	var medicine models.Medicine
	form.Apply(&medicine)
	if err := config.DB.Create(&medicine).Error; err != nil {
		serverError(c, "Failed to add medicine", errors.Wrap(err, "create medicine"))
		return
	}

	zap.S().Infof("medicine %d created", medicine.ID)
	c.JSON(http.StatusCreated, models.Envelope[models.Medicine]{
		Success: true,
		Message: "Medicine added successfully",
		Data:    medicine,
	})
}

// UpdateMedicine overrides the fields present in the body. A stored expiry date that
// has since passed does not block edits to other fields.
func UpdateMedicine(c *gin.Context) {
	medicine, ok := loadMedicine(c)
	if !ok {
		return
	}
	stored := models.MedicineFormFrom(medicine)
	form := stored
	if !bindJSON(c, &form) {
		return
	}
	form.Normalize()

	check := form
	if check.ExpiryDate == stored.ExpiryDate {
		check.ExpiryDate = ""
	}
	if err := validation.Struct(check); err != nil {
		invalid(c, err)
		return
	}

	form.Apply(&medicine)
	if err := config.DB.Save(&medicine).Error; err != nil {
		serverError(c, "Failed to update medicine", errors.Wrapf(err, "update medicine %d", medicine.ID))
		return
	}

	c.JSON(http.StatusOK, models.Envelope[models.Medicine]{
		Success: true,
		Message: "Medicine updated successfully",
		Data:    medicine,
	})
}

func DeleteMedicine(c *gin.Context) {
	medicine, ok := loadMedicine(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(&medicine).Error; err != nil {
		serverError(c, "Failed to delete medicine", errors.Wrapf(err, "delete medicine %d", medicine.ID))
		return
	}
	zap.S().Infof("medicine %d deleted", medicine.ID)
	c.JSON(http.StatusOK, models.Envelope[*models.Medicine]{Success: true, Message: "Medicine deleted successfully"})
}

func loadMedicine(c *gin.Context) (models.Medicine, bool) {
	var medicine models.Medicine
	id, ok := paramID(c)
	if !ok {
		return medicine, false
	}
	if err := config.DB.First(&medicine, id).Error; err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Medicine not found")
			return medicine, false
		}
		serverError(c, "Failed to fetch medicine", errors.Wrapf(err, "load medicine %d", id))
		return medicine, false
	}
	return medicine, true
}
