package models

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DoctorQuery is the parsed form of the doctor listing filters. Zero values and nil
// bounds impose no constraint.
type DoctorQuery struct {
	Name           string
	Specialization string
	ModeOfConsult  string
	ExperienceMin  *int
	ExperienceMax  *int
	FeeMin         *float64
	FeeMax         *float64
	Language       string
}

// QueryError reports a filter parameter that could not be parsed
type QueryError struct {
	Param string
	Value string
	Want  string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s must be %s, got %q", e.Param, e.Want, e.Value)
}

// ParseDoctorQuery reads q, specialization, modeOfConsult, experienceMin, experienceMax,
// feeMin, feeMax and language. Malformed numbers are rejected rather than ignored.
func ParseDoctorQuery(values url.Values) (DoctorQuery, error) {
	q := DoctorQuery{
		Name:           strings.TrimSpace(values.Get("q")),
		Specialization: strings.TrimSpace(values.Get("specialization")),
		ModeOfConsult:  strings.TrimSpace(values.Get("modeOfConsult")),
		Language:       strings.TrimSpace(values.Get("language")),
	}
	var err error
	if q.ExperienceMin, err = parseIntParam(values, "experienceMin"); err != nil {
		return q, err
	}
	if q.ExperienceMax, err = parseIntParam(values, "experienceMax"); err != nil {
		return q, err
	}
	if q.FeeMin, err = parseFloatParam(values, "feeMin"); err != nil {
		return q, err
	}
	if q.FeeMax, err = parseFloatParam(values, "feeMax"); err != nil {
		return q, err
	}
	return q, nil
}

func parseIntParam(values url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &QueryError{Param: name, Value: raw, Want: "a whole number"}
	}
	return &n, nil
}

func parseFloatParam(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &QueryError{Param: name, Value: raw, Want: "a number"}
	}
	return &f, nil
}

// Scope applies the filters to db; use it with db.Scopes
func (q DoctorQuery) Scope(db *gorm.DB) *gorm.DB {
	if q.Name != "" {
		db = db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(q.Name))+"%")
	}
	if q.Specialization != "" && q.Specialization != SpecializationAll {
		db = db.Where("specialization = ?", q.Specialization)
	}
	if q.ModeOfConsult != "" {
		db = db.Where("mode_of_consult IN ?", []string{q.ModeOfConsult, ModeBoth})
	}
	if q.ExperienceMin != nil {
		db = db.Where("experience >= ?", *q.ExperienceMin)
	}
	if q.ExperienceMax != nil {
		db = db.Where("experience <= ?", *q.ExperienceMax)
	}
	if q.FeeMin != nil {
		db = db.Where("consultation_fee >= ?", *q.FeeMin)
	}
	if q.FeeMax != nil {
		db = db.Where("consultation_fee <= ?", *q.FeeMax)
	}
	if q.Language != "" {
		// languages is a JSON array column; instr is case sensitive, unlike LIKE
		elem, _ := json.Marshal(q.Language)
		db = db.Where("instr(languages, ?) > 0", string(elem))
	}
	return db
}

// FindDoctors returns every doctor matching q, newest first
func FindDoctors(db *gorm.DB, q DoctorQuery) ([]Doctor, error) {
	var doctors []Doctor
	err := db.Model(&Doctor{}).
		Scopes(q.Scope).
		Order("created_at DESC").
		Order("id DESC").
		Find(&doctors).Error
	if err != nil {
		return nil, errors.Wrap(err, "query doctors")
	}
	return doctors, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
