package models

// Specializations a doctor can be registered under
var Specializations = []string{
	"Urologist",
	"Cardiologist",
	"Dermatologist",
	"Pediatrician",
	"Orthopedic",
	"Gynecologist",
	"Neurologist",
	"Dentist",
	"General Physician",
	"Psychiatrist",
	"Ophthalmologist",
	"ENT Specialist",
}

// SpecializationAll is the list filter value that disables specialization matching
const SpecializationAll = "All"

const (
	ModeHospitalVisit = "Hospital Visit"
	ModeOnlineConsult = "Online Consult"
	ModeBoth          = "Both"
)

var ConsultModes = []string{ModeHospitalVisit, ModeOnlineConsult, ModeBoth}

// Languages a doctor may list; the first entry is the default for new doctors
var Languages = []string{
	"English",
	"Hindi",
	"Marathi",
	"Telugu",
	"Tamil",
	"Kannada",
	"Malayalam",
	"Bengali",
	"Gujarati",
	"Punjabi",
	"Urdu",
	"Odia",
}

var MedicineCategories = []string{
	"Diabetic Care",
	"Stomach Care",
	"Liver Care",
	"Cold & Immunity",
	"Pain Relief",
	"Personal Care",
}

const (
	MedicineAvailable = "available"
	MedicineInactive  = "inactive"
)

var MedicineStatuses = []string{MedicineAvailable, MedicineInactive}

// OneOf reports whether value is an exact member of allowed
func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
