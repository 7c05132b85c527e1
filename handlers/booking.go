package handlers

import (
	"net/http"
	"time"

	"pharmacy-api/config"
	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateBooking records an appointment request for a doctor in a mode the doctor offers
func CreateBooking(c *gin.Context) {
	var form models.BookingForm
	if !bindJSON(c, &form) {
		return
	}
	form.Normalize()
	if err := validation.Struct(form); err != nil {
		invalid(c, err)
		return
	}

	var doctor models.Doctor
	if err := config.DB.First(&doctor, form.DoctorID).Error; err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Doctor not found")
			return
		}
		serverError(c, "Failed to fetch doctor", errors.Wrapf(err, "load doctor %d", form.DoctorID))
		return
	}
	if !doctor.Offers(form.ConsultationType) {
		c.JSON(http.StatusBadRequest, models.ErrorEnvelope{
			Success: false,
			Message: "Doctor does not offer " + form.ConsultationType,
			Field:   "consultation_type",
		})
		return
	}

	date, err := time.ParseInLocation(models.DateLayout, form.AppointmentDate, time.Local)
	if err != nil {
		invalid(c, &validation.Error{Field: "appointment_date", Rule: "isodate", Message: "Invalid appointment date"})
		return
	}

	booking := models.Booking{
		DoctorID:         doctor.ID,
		PatientName:      form.PatientName,
		PatientEmail:     form.PatientEmail,
		PatientPhone:     form.PatientPhone,
		AppointmentDate:  date,
		AppointmentTime:  form.AppointmentTime,
		ConsultationType: form.ConsultationType,
		Symptoms:         form.Symptoms,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		serverError(c, "Failed to book appointment", errors.Wrap(err, "create booking"))
		return
	}
	booking.Doctor = &doctor

	zap.S().Infof("booking %d created for doctor %d", booking.ID, doctor.ID)
	c.JSON(http.StatusCreated, models.Envelope[models.Booking]{
		Success: true,
		Message: "Appointment booked successfully",
		Data:    booking,
	})
}

func ListBookings(c *gin.Context) {
	var bookings []models.Booking
	err := config.DB.Preload("Doctor").
		Order("appointment_date ASC").
		Order("appointment_time ASC").
		Find(&bookings).Error
	if err != nil {
		serverError(c, "Failed to fetch bookings", errors.Wrap(err, "query bookings"))
		return
	}
	c.JSON(http.StatusOK, models.NewList(bookings))
}
