package validation

import (
	"reflect"
	"strings"

	"pharmacy-api/models"
)

// Rule is one published constraint of a form field
type Rule struct {
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Each    bool   `json:"each,omitempty"` // applies to every element of a list field
	Message string `json:"message"`
}

type FieldRules struct {
	Field    string `json:"field"`
	Optional bool   `json:"optional,omitempty"`
	Rules    []Rule `json:"rules"`
}

// Forms lists the forms whose rules are published to clients
var Forms = map[string]interface{}{
	"signup":   models.SignupForm{},
	"login":    models.LoginForm{},
	"contact":  models.ContactForm{},
	"doctor":   models.DoctorForm{},
	"medicine": models.MedicineForm{},
	"booking":  models.BookingForm{},
}

// Schema describes every form in Forms
func Schema() map[string][]FieldRules {
	out := make(map[string][]FieldRules, len(Forms))
	for name, form := range Forms {
		out[name] = Describe(form)
	}
	return out
}

// Describe reads the validate tags of a form struct in field order
func Describe(form interface{}) []FieldRules {
	t := reflect.TypeOf(form)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var fields []FieldRules
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}
		field := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		fr := FieldRules{Field: field}
		each := false
		for _, part := range strings.Split(tag, ",") {
			switch part {
			case "omitempty":
				fr.Optional = true
				continue
			case "dive":
				each = true
				continue
			}
			rule, param, _ := strings.Cut(part, "=")
			fr.Rules = append(fr.Rules, Rule{
				Rule:    rule,
				Param:   param,
				Each:    each,
				Message: message(field, rule, param),
			})
		}
		fields = append(fields, fr)
	}
	return fields
}
