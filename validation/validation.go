// Package validation enforces the form rules declared on the models form types and
// turns the first violated rule into a human-readable message.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"pharmacy-api/models"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	personNameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe      = regexp.MustCompile(`^[0-9+\-\s()]*$`)
)

// Now is the clock used by the notpast rule
var Now = time.Now

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"personname":     matches(personNameRe),
		"emailfmt":       matches(emailRe),
		"phonechars":     matches(phoneRe),
		"specialization": member(models.Specializations),
		"consultmode":    member(models.ConsultModes),
		"visitmode":      member([]string{models.ModeHospitalVisit, models.ModeOnlineConsult}),
		"language":       member(models.Languages),
		"category":       member(models.MedicineCategories),
		"medstatus":      member(models.MedicineStatuses),
		"isodate":        isoDate,
		"notpast":        notPast,
		"hhmm":           clockTime,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func member(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return models.OneOf(fl.Field().String(), allowed)
	}
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

// notPast accepts today and any later date
func notPast(fl validator.FieldLevel) bool {
	d, err := time.ParseInLocation(models.DateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	now := Now().In(time.Local)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !d.Before(today)
}

func clockTime(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// Error is the first rule a form violated
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Struct validates a form and returns the first failing rule as *Error
func Struct(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(err, "validate form")
	}
	fe := verrs[0]
	field := baseField(fe.Field())
	msg := message(field, fe.Tag(), fe.Param())
	if echoValue[fe.Tag()] {
		msg = fmt.Sprintf("%s: %v", msg, fe.Value())
	}
	return &Error{Field: field, Rule: fe.Tag(), Message: msg}
}

// baseField strips a slice index such as languages[2]
func baseField(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}
