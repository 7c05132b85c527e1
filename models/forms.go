package models

import (
	"strings"
	"time"
)

// Form types carry the one validation schema shared by the HTTP handlers and the
// storefront client. Rules live in the validate tags; messages live in package validation.

const DateLayout = "2006-01-02"

type SignupForm struct {
	Name     string `json:"name" validate:"required,personname"`
	Email    string `json:"email" validate:"required,emailfmt"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ContactForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,emailfmt,max=100"`
	Message string `json:"message" validate:"required"`
}

func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

type DoctorForm struct {
	Name            string   `json:"name" validate:"required,max=100"`
	ContactNo       string   `json:"contact_no" validate:"required,min=8,max=15,phonechars"`
	Address         string   `json:"address" validate:"required,max=255"`
	Specialization  string   `json:"specialization" validate:"required,specialization"`
	ModeOfConsult   string   `json:"mode_of_consult" validate:"required,consultmode"`
	Experience      int      `json:"experience" validate:"min=0,max=60"`
	ConsultationFee float64  `json:"consultation_fee" validate:"min=0"`
	Languages       []string `json:"languages" validate:"min=1,dive,language"`
}

// NewDoctorForm returns a form holding the defaults applied to fields a create request omits
func NewDoctorForm() DoctorForm {
	return DoctorForm{ModeOfConsult: ModeBoth, Languages: []string{Languages[0]}}
}

// DoctorFormFrom seeds a form with a stored doctor so an update only overrides the fields it sends
func DoctorFormFrom(d Doctor) DoctorForm {
	return DoctorForm{
		Name:            d.Name,
		ContactNo:       d.ContactNo,
		Address:         d.Address,
		Specialization:  d.Specialization,
		ModeOfConsult:   d.ModeOfConsult,
		Experience:      d.Experience,
		ConsultationFee: d.ConsultationFee,
		Languages:       append([]string(nil), d.Languages...),
	}
}

func (f *DoctorForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.ContactNo = strings.TrimSpace(f.ContactNo)
	f.Address = strings.TrimSpace(f.Address)
}

// Apply copies the form onto d
func (f DoctorForm) Apply(d *Doctor) {
	d.Name = f.Name
	d.ContactNo = f.ContactNo
	d.Address = f.Address
	d.Specialization = f.Specialization
	d.ModeOfConsult = f.ModeOfConsult
	d.Experience = f.Experience
	d.ConsultationFee = f.ConsultationFee
	d.Languages = f.Languages
}

type MedicineForm struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,category"`
	Price       float64 `json:"price" validate:"min=0"`
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
	Pack        string  `json:"pack" validate:"max=120"`
	Description string  `json:"description"`
	Image       string  `json:"image" validate:"max=255"`
	ExpiryDate  string  `json:"expiry_date" validate:"omitempty,isodate,notpast"`
	Status      string  `json:"status" validate:"required,medstatus"`
}

func NewMedicineForm() MedicineForm {
	return MedicineForm{Status: MedicineAvailable}
}

func MedicineFormFrom(m Medicine) MedicineForm {
	f := MedicineForm{
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		Rating:      m.Rating,
		Pack:        m.Pack,
		Description: m.Description,
		Image:       m.Image,
		Status:      m.Status,
	}
	if m.ExpiryDate != nil {
		f.ExpiryDate = m.ExpiryDate.Format(DateLayout)
	}
	return f
}

func (f *MedicineForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Pack = strings.TrimSpace(f.Pack)
	f.Image = strings.TrimSpace(f.Image)
	f.ExpiryDate = strings.TrimSpace(f.ExpiryDate)
	if f.Status == "" {
		f.Status = MedicineAvailable
	}
}

// Apply copies the form onto m. The form must already be valid.
func (f MedicineForm) Apply(m *Medicine) {
	m.Name = f.Name
	m.Category = f.Category
	m.Price = f.Price
	m.Rating = f.Rating
	m.Pack = f.Pack
	m.Description = f.Description
	m.Image = f.Image
	m.Status = f.Status
	m.ExpiryDate = nil
	if f.ExpiryDate != "" {
		if t, err := time.ParseInLocation(DateLayout, f.ExpiryDate, time.Local); err == nil {
			m.ExpiryDate = &t
		}
	}
}

type BookingForm struct {
	DoctorID         uint   `json:"doctor_id" validate:"required"`
	PatientName      string `json:"patient_name" validate:"required,max=100"`
	PatientEmail     string `json:"patient_email" validate:"required,emailfmt"`
	PatientPhone     string `json:"patient_phone" validate:"required,min=8,max=15,phonechars"`
	AppointmentDate  string `json:"appointment_date" validate:"required,isodate,notpast"`
	AppointmentTime  string `json:"appointment_time" validate:"required,hhmm"`
	ConsultationType string `json:"consultation_type" validate:"required,visitmode"`
	Symptoms         string `json:"symptoms" validate:"max=1000"`
}

func (f *BookingForm) Normalize() {
	f.PatientName = strings.TrimSpace(f.PatientName)
	f.PatientEmail = strings.TrimSpace(f.PatientEmail)
	f.PatientPhone = strings.TrimSpace(f.PatientPhone)
	f.Symptoms = strings.TrimSpace(f.Symptoms)
}
