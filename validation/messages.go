package validation

import (
	"fmt"
	"strings"
)

var messages = map[string]string{
	"name.required":                 "Name is required.",
	"name.personname":               "Name must contain only letters and spaces.",
	"name.max":                      "Name is too long.",
	"email.required":                "Email is required.",
	"email.emailfmt":                "Invalid email format.",
	"email.max":                     "Email is too long.",
	"password.required":             "Password is required.",
	"password.min":                  "Password must be at least 6 characters.",
	"message.required":              "Message is required.",
	"contact_no.required":           "Contact number is required",
	"contact_no.min":                "Contact number must be between 8 and 15 characters",
	"contact_no.max":                "Contact number must be between 8 and 15 characters",
	"contact_no.phonechars":         "Contact number may only contain digits, spaces, +, - and parentheses",
	"address.required":              "Address is required",
	"address.max":                   "Address is too long",
	"specialization.required":       "Specialization is required",
	"specialization.specialization": "Invalid specialization",
	"mode_of_consult.required":      "Mode of consult is required",
	"mode_of_consult.consultmode":   "Invalid mode of consult",
	"experience.min":                "Experience cannot be negative",
	"experience.max":                "Experience cannot exceed 60 years",
	"consultation_fee.min":          "Consultation fee cannot be negative",
	"languages.min":                 "At least one language is required",
	"languages.language":            "Invalid language",
	"category.required":             "Category is required",
	"category.category":             "Invalid category",
	"price.min":                     "Price cannot be negative",
	"rating.min":                    "Rating must be between 0 and 5",
	"rating.max":                    "Rating must be between 0 and 5",
	"pack.max":                      "Pack description is too long",
	"image.max":                     "Image path is too long",
	"expiry_date.isodate":           "Expiry date must use the YYYY-MM-DD format",
	"expiry_date.notpast":           "Expiry date cannot be in the past",
	"status.required":               "Status is required",
	"status.medstatus":              "Status must be available or inactive",
	"doctor_id.required":            "Doctor is required",
	"patient_name.required":         "Patient name is required",
	"patient_name.max":              "Patient name is too long",
	"patient_email.required":        "Email is required",
	"patient_email.emailfmt":        "Valid email is required",
	"patient_phone.required":        "Phone number is required",
	"patient_phone.min":             "Phone number must be 8-15 characters",
	"patient_phone.max":             "Phone number must be 8-15 characters",
	"patient_phone.phonechars":      "Phone number may only contain digits, spaces, +, - and parentheses",
	"appointment_date.required":     "Appointment date is required",
	"appointment_date.isodate":      "Appointment date must use the YYYY-MM-DD format",
	"appointment_date.notpast":      "Appointment date cannot be in the past",
	"appointment_time.required":     "Appointment time is required",
	"appointment_time.hhmm":         "Appointment time must use the HH:MM format",
	"consultation_type.required":    "Consultation type is required",
	"consultation_type.visitmode":   "Consultation type must be Hospital Visit or Online Consult",
	"symptoms.max":                  "Symptoms description is too long",
}

// enum rules name the rejected value
var echoValue = map[string]bool{
	"specialization": true,
	"consultmode":    true,
	"language":       true,
	"category":       true,
}

func message(field, rule, param string) string {
	if msg, ok := messages[field+"."+rule]; ok {
		return msg
	}
	return fallback(field, rule, param)
}

func fallback(field, rule, param string) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch rule {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, param)
	}
	return label + " is invalid"
}
