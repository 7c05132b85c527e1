// Package search filters lists the storefront has already fetched. Nothing here
// performs I/O; every function is a pure function of the list and the filter state.
package search

import (
	"strings"

	"pharmacy-api/models"
)

// Group names a multi-select filter group
type Group string

const (
	GroupConsultMode Group = "modeOfConsult"
	GroupExperience  Group = "experienceRange"
	GroupFee         Group = "feeRange"
	GroupLanguage    Group = "languages"
)

// Filters is the doctor search page state. Within a group any selected value may
// match; every non-empty group must match.
type Filters struct {
	Specialization  string   `json:"specialization"`
	ModesOfConsult  []string `json:"modeOfConsult"`
	ExperienceRange []string `json:"experienceRange"`
	FeeRange        []string `json:"feeRange"`
	Languages       []string `json:"languages"`
}

func NewFilters() Filters {
	return Filters{Specialization: models.SpecializationAll}
}

// SetSpecialization replaces the single-select value; an empty value resets it to All
func (f *Filters) SetSpecialization(s string) {
	if s == "" {
		s = models.SpecializationAll
	}
	f.Specialization = s
}

// Toggle adds value to a group, or removes it when it is already selected
func (f *Filters) Toggle(g Group, value string) {
	set := f.group(g)
	if set == nil {
		return
	}
	for i, v := range *set {
		if v == value {
			*set = append((*set)[:i:i], (*set)[i+1:]...)
			return
		}
	}
	*set = append(*set, value)
}

func (f *Filters) Clear() {
	*f = NewFilters()
}

func (f *Filters) group(g Group) *[]string {
	switch g {
	case GroupConsultMode:
		return &f.ModesOfConsult
	case GroupExperience:
		return &f.ExperienceRange
	case GroupFee:
		return &f.FeeRange
	case GroupLanguage:
		return &f.Languages
	}
	return nil
}

// Match reports whether d passes every active group
func (f Filters) Match(d models.Doctor) bool {
	if f.Specialization != "" && f.Specialization != models.SpecializationAll && d.Specialization != f.Specialization {
		return false
	}
	if len(f.ModesOfConsult) > 0 && !anyOf(f.ModesOfConsult, d.Offers) {
		return false
	}
	if len(f.ExperienceRange) > 0 && !anyOf(f.ExperienceRange, func(label string) bool {
		return ExperienceBuckets.Contains(label, float64(d.Experience))
	}) {
		return false
	}
	if len(f.FeeRange) > 0 && !anyOf(f.FeeRange, func(label string) bool {
		return FeeBuckets.Contains(label, d.ConsultationFee)
	}) {
		return false
	}
	if len(f.Languages) > 0 && !anyOf(f.Languages, d.Speaks) {
		return false
	}
	return true
}

// Apply returns the doctors that pass f, keeping their order
func Apply(doctors []models.Doctor, f Filters) []models.Doctor {
	out := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

func anyOf(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if pred(v) {
			return true
		}
	}
	return false
}

// MedicineFilters is the shop and admin list state for medicines
type MedicineFilters struct {
	Term     string `json:"term"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// Match checks category and status exactly and looks for Term in the name,
// category or description, ignoring case
func (f MedicineFilters) Match(m models.Medicine) bool {
	if f.Category != "" && f.Category != models.SpecializationAll && m.Category != f.Category {
		return false
	}
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.Category), term) ||
		strings.Contains(strings.ToLower(m.Description), term)
}

func ApplyMedicines(medicines []models.Medicine, f MedicineFilters) []models.Medicine {
	out := make([]models.Medicine, 0, len(medicines))
	for _, m := range medicines {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}
