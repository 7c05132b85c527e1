package models

import "time"

// Booking is an appointment request made from a doctor card in the storefront
type Booking struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	DoctorID         uint      `json:"doctor_id" gorm:"not null;index"`
	Doctor           *Doctor   `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	PatientName      string    `json:"patient_name" gorm:"size:100;not null"`
	PatientEmail     string    `json:"patient_email" gorm:"size:150;not null"`
	PatientPhone     string    `json:"patient_phone" gorm:"size:15;not null"`
	AppointmentDate  time.Time `json:"appointment_date" gorm:"not null"`
	AppointmentTime  string    `json:"appointment_time" gorm:"size:5;not null"`
	ConsultationType string    `json:"consultation_type" gorm:"size:16;not null"`
	Symptoms         string    `json:"symptoms"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
