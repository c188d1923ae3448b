package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dukerupert/signup/internal/reference"
)

// Reason classifies why a field failed validation.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonRequired         Reason = "required"
	ReasonTooShort         Reason = "too_short"
	ReasonInvalidFormat    Reason = "invalid_format"
	ReasonDisposableDomain Reason = "disposable_domain"
	ReasonBelowMinimum     Reason = "below_minimum"
	ReasonAboveMaximum     Reason = "above_maximum"
	ReasonMismatch         Reason = "mismatch"
	ReasonNotAccepted      Reason = "not_accepted"
)

// Rule limits.
const (
	MinNameLength     = 2
	MinPasswordLength = 8
	MinAge            = 18
	MaxAge            = 120

	// minFallbackPhoneDigits applies when no country rule is known.
	minFallbackPhoneDigits = 7
)

// Result is the verdict for one field. Message is empty iff Valid.
type Result struct {
	Valid   bool
	Reason  Reason
	Message string
}

func pass() Result {
	return Result{Valid: true}
}

func fail(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message}
}

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validator applies the field rules against a set of reference tables.
// It holds no per-session state and is safe for concurrent use.
type Validator struct {
	tables *reference.Tables
}

// NewValidator creates a Validator backed by the given tables.
func NewValidator(tables *reference.Tables) *Validator {
	return &Validator{tables: tables}
}

// Tables returns the reference tables the validator reads.
func (v *Validator) Tables() *reference.Tables {
	return v.tables
}

// Validate returns the verdict for one field given the current values.
// Each rule reads only its own field plus its declared dependency:
// phone→country, state→country, city→state, confirm password→password.
func (v *Validator) Validate(f FieldName, values Values) Result {
	switch f {
	case FieldFirstName, FieldLastName:
		return validateName(f.Label(), values.Get(f))
	case FieldEmail:
		return v.validateEmail(values.Email)
	case FieldPhone:
		return v.validatePhone(values.Phone, values.Country)
	case FieldAge:
		return validateAge(values.Age)
	case FieldGender, FieldCountry:
		return validateSelected(f.Label(), values.Get(f))
	case FieldState:
		if values.Country == "" {
			return pass()
		}
		return validateSelected(f.Label(), values.State)
	case FieldCity:
		if values.State == "" {
			return pass()
		}
		return validateSelected(f.Label(), values.City)
	case FieldPassword:
		return validatePassword(values.Password)
	case FieldConfirmPassword:
		return validateConfirmPassword(values.ConfirmPassword, values.Password)
	case FieldTerms:
		if !values.TermsAccepted {
			return fail(ReasonNotAccepted, "You must accept the terms and conditions")
		}
		return pass()
	case FieldAddress:
		return pass()
	}
	return fail(ReasonInvalidFormat, fmt.Sprintf("Unknown field %q", string(f)))
}

func validateName(label, value string) Result {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return fail(ReasonRequired, label+" is required")
	}
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return fail(ReasonTooShort, fmt.Sprintf("%s must be at least %d characters", label, MinNameLength))
	}
	if !namePattern.MatchString(trimmed) {
		return fail(ReasonInvalidFormat, label+" can only contain letters, spaces, hyphens, and apostrophes")
	}
	return pass()
}

func (v *Validator) validateEmail(value string) Result {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return fail(ReasonRequired, "Email is required")
	}
	if !emailPattern.MatchString(trimmed) {
		return fail(ReasonInvalidFormat, "Please enter a valid email address")
	}

	domainPart := trimmed[strings.LastIndex(trimmed, "@")+1:]
	if v.tables.IsDisposable(domainPart) {
		return fail(ReasonDisposableDomain, "Disposable email domains are not allowed")
	}
	return pass()
}

func (v *Validator) validatePhone(value, country string) Result {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return fail(ReasonRequired, "Phone number is required")
	}

	cleaned := cleanPhone(trimmed)

	rule, ok := v.tables.PhoneRule(country)
	if country == "" || !ok {
		if !isDigits(cleaned) || len(cleaned) < minFallbackPhoneDigits {
			return fail(ReasonInvalidFormat, "Please enter a valid phone number")
		}
		return pass()
	}

	national := cleaned
	if code := rule.CodeDigits(); code != "" && strings.HasPrefix(cleaned, code) {
		national = strings.TrimPrefix(cleaned, code)
	}
	if !isDigits(national) || len(national) != rule.Digits {
		return fail(ReasonInvalidFormat, fmt.Sprintf("Phone must have %d digits for %s", rule.Digits, country))
	}
	return pass()
}

func validateAge(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return pass()
	}

	age, err := strconv.Atoi(trimmed)
	if err != nil {
		return fail(ReasonInvalidFormat, "Please enter a valid age")
	}
	if age < MinAge {
		return fail(ReasonBelowMinimum, fmt.Sprintf("You must be at least %d years old", MinAge))
	}
	if age > MaxAge {
		return fail(ReasonAboveMaximum, "Please enter a valid age")
	}
	return pass()
}

func validateSelected(label, value string) Result {
	if value == "" {
		return fail(ReasonRequired, label+" is required")
	}
	return pass()
}

func validatePassword(value string) Result {
	if value == "" {
		return fail(ReasonRequired, "Password is required")
	}
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return fail(ReasonTooShort, fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	return pass()
}

func validateConfirmPassword(value, password string) Result {
	if value == "" {
		return fail(ReasonRequired, "Confirm password is required")
	}
	if value != password {
		return fail(ReasonMismatch, "Passwords do not match")
	}
	return pass()
}

// cleanPhone strips whitespace, hyphens and parentheses.
func cleanPhone(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
