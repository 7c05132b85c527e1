package handlers

import (
	"net/http"

	"pharmacy-api/config"
	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListDoctors returns the doctors matching the query string filters
func ListDoctors(c *gin.Context) {
	q, err := models.ParseDoctorQuery(c.Request.URL.Query())
	if err != nil {
		var qerr *models.QueryError
		if errors.As(err, &qerr) {
			c.JSON(http.StatusBadRequest, models.ErrorEnvelope{
				Success: false,
				Message: qerr.Error(),
				Field:   qerr.Param,
			})
			return
		}
		serverError(c, "Failed to read filters", err)
		return
	}

	doctors, err := models.FindDoctors(config.DB, q)
	if err != nil {
		serverError(c, "Failed to fetch doctors", err)
		return
	}
	c.JSON(http.StatusOK, models.NewList(doctors))
}

func GetDoctor(c *gin.Context) {
	doctor, ok := loadDoctor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.Envelope[models.Doctor]{Success: true, Data: doctor})
}

// CreateDoctor registers a doctor; omitted mode and languages take their defaults
func CreateDoctor(c *gin.Context) {
	form := models.NewDoctorForm()
	if !bindJSON(c, &form) {
		return
	}
	form.Normalize()
	if err := validation.Struct(form); err != nil {
		invalid(c, err)
		return
	}

	var doctor models.Doctor
	form.Apply(&doctor)
	if err := config.DB.Create(&doctor).Error; err != nil {
		if isDuplicate(err) {
			fail(c, http.StatusConflict, "A doctor with this contact number already exists.")
			return
		}
		serverError(c, "Failed to add doctor", errors.Wrap(err, "create doctor"))
		return
	}

	zap.S().Infof("doctor %d created", doctor.ID)
	c.JSON(http.StatusCreated, models.Envelope[models.Doctor]{
		Success: true,
		Message: "Doctor added successfully",
		Data:    doctor,
	})
}

// UpdateDoctor overrides the fields present in the body and re-validates the whole record
func UpdateDoctor(c *gin.Context) {
	doctor, ok := loadDoctor(c)
	if !ok {
		return
	}
	form := models.DoctorFormFrom(doctor)
	if !bindJSON(c, &form) {
		return
	}
	form.Normalize()
	if err := validation.Struct(form); err != nil {
		invalid(c, err)
		return
	}

	form.Apply(&doctor)
	if err := config.DB.Save(&doctor).Error; err != nil {
		if isDuplicate(err) {
			fail(c, http.StatusConflict, "A doctor with this contact number already exists.")
			return
		}
		serverError(c, "Failed to update doctor", errors.Wrapf(err, "update doctor %d", doctor.ID))
		return
	}

	c.JSON(http.StatusOK, models.Envelope[models.Doctor]{
		Success: true,
		Message: "Doctor updated successfully",
		Data:    doctor,
	})
}

// DeleteDoctor removes a doctor together with the bookings made against them
func DeleteDoctor(c *gin.Context) {
	doctor, ok := loadDoctor(c)
	if !ok {
		return
	}
	var dropped int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.Booking{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete bookings")
		}
		dropped = res.RowsAffected
		return errors.Wrap(tx.Delete(&doctor).Error, "delete doctor")
	})
	if err != nil {
		serverError(c, "Failed to delete doctor", errors.Wrapf(err, "doctor %d", doctor.ID))
		return
	}
	zap.S().Infof("doctor %d deleted with %d bookings", doctor.ID, dropped)
	c.JSON(http.StatusOK, models.Envelope[*models.Doctor]{Success: true, Message: "Doctor deleted successfully"})
}

func loadDoctor(c *gin.Context) (models.Doctor, bool) {
	var doctor models.Doctor
	id, ok := paramID(c)
	if !ok {
		return doctor, false
	}
	if err := config.DB.First(&doctor, id).Error; err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Doctor not found")
			return doctor, false
		}
		serverError(c, "Failed to fetch doctor", errors.Wrapf(err, "load doctor %d", id))
		return doctor, false
	}
	return doctor, true
}
