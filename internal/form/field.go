// Package form is the registration rules engine: per-field validators, the
// country → state → city cascade, the password strength classifier and the
// submit-gating aggregate.
//
// Everything here is pure. Functions take the current Values and return
// verdicts; nothing is cached, nothing is rendered.
package form

import (
	"strconv"
	"strings"

	"github.com/dukerupert/signup/internal/domain"
)

// FieldName identifies one logical form field.
type FieldName string

const (
	FieldFirstName       FieldName = "first_name"
	FieldLastName        FieldName = "last_name"
	FieldEmail           FieldName = "email"
	FieldPhone           FieldName = "phone"
	FieldAge             FieldName = "age"
	FieldGender          FieldName = "gender"
	FieldAddress         FieldName = "address"
	FieldCountry         FieldName = "country"
	FieldState           FieldName = "state"
	FieldCity            FieldName = "city"
	FieldPassword        FieldName = "password"
	FieldConfirmPassword FieldName = "confirm_password"
	FieldTerms           FieldName = "terms"
)

// Fields lists every field in display order.
var Fields = []FieldName{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldAge,
	FieldGender,
	FieldAddress,
	FieldCountry,
	FieldState,
	FieldCity,
	FieldPassword,
	FieldConfirmPassword,
	FieldTerms,
}

var labels = map[FieldName]string{
	FieldFirstName:       "First name",
	FieldLastName:        "Last name",
	FieldEmail:           "Email",
	FieldPhone:           "Phone number",
	FieldAge:             "Age",
	FieldGender:          "Gender",
	FieldAddress:         "Address",
	FieldCountry:         "Country",
	FieldState:           "State",
	FieldCity:            "City",
	FieldPassword:        "Password",
	FieldConfirmPassword: "Confirm password",
	FieldTerms:           "Terms and conditions",
}

// Label returns the static display label for the field.
func (f FieldName) Label() string {
	return labels[f]
}

// Known reports whether f is one of the fixed form fields.
func (f FieldName) Known() bool {
	_, ok := labels[f]
	return ok
}

// ParseFieldName resolves a field name, rejecting anything outside the fixed set.
func ParseFieldName(name string) (FieldName, error) {
	f := FieldName(strings.TrimSpace(strings.ToLower(name)))
	if !f.Known() {
		return "", domain.Errorf(domain.EINVALID, "form.field", "unknown field: %s", name)
	}
	return f, nil
}

// Values is the complete set of user-entered values for one registration
// attempt. Raw values are stored untrimmed; trimming only affects validation
// and the normalized output record.
type Values struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Age             string
	Gender          string
	Address         string
	Country         string
	State           string
	City            string
	Password        string
	ConfirmPassword string
	TermsAccepted   bool
}

// Get returns the raw value of a field. Terms acceptance is rendered as
// "true" or "false".
func (v Values) Get(f FieldName) string {
	switch f {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldAge:
		return v.Age
	case FieldGender:
		return v.Gender
	case FieldAddress:
		return v.Address
	case FieldCountry:
		return v.Country
	case FieldState:
		return v.State
	case FieldCity:
		return v.City
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	case FieldTerms:
		return strconv.FormatBool(v.TermsAccepted)
	}
	return ""
}

// Set assigns the raw value of a field. Terms acceptance accepts anything
// strconv.ParseBool understands, plus "yes"/"no", "on"/"off" and "" (false).
func (v *Values) Set(f FieldName, raw string) error {
	const op = "form.set"

	switch f {
	case FieldFirstName:
		v.FirstName = raw
	case FieldLastName:
		v.LastName = raw
	case FieldEmail:
		v.Email = raw
	case FieldPhone:
		v.Phone = raw
	case FieldAge:
		v.Age = raw
	case FieldGender:
		v.Gender = raw
	case FieldAddress:
		v.Address = raw
	case FieldCountry:
		v.Country = raw
	case FieldState:
		v.State = raw
	case FieldCity:
		v.City = raw
	case FieldPassword:
		v.Password = raw
	case FieldConfirmPassword:
		v.ConfirmPassword = raw
	case FieldTerms:
		accepted, err := parseChecked(raw)
		if err != nil {
			return domain.WrapError(err, domain.EINVALID, op, "terms must be true or false")
		}
		v.TermsAccepted = accepted
	default:
		return domain.Errorf(domain.EINVALID, op, "unknown field: %s", f)
	}
	return nil
}

func parseChecked(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "no", "off":
		return false, nil
	case "yes", "on":
		return true, nil
	}
	return strconv.ParseBool(strings.TrimSpace(raw))
}
