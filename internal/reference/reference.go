// Package reference holds the static lookup tables behind the registration form:
// the country → state → city cascade, per-country phone rules and the set of
// disposable email domains.
//
// Tables are immutable once built. Accessors return copies so callers can never
// mutate the shared data.
package reference

import (
	"slices"
	"strings"

	"github.com/dukerupert/signup/internal/domain"
)

// PhoneRule describes the national number format for a country.
type PhoneRule struct {
	// CountryCode is the international dialing prefix including "+", e.g. "+44".
	CountryCode string `mapstructure:"code" validate:"required,startswith=+,max=5"`

	// Digits is the number of national digits after the country code.
	Digits int `mapstructure:"digits" validate:"gt=0,lte=15"`
}

// CodeDigits returns the country code without the leading "+".
func (r PhoneRule) CodeDigits() string {
	return strings.TrimPrefix(r.CountryCode, "+")
}

// Tables is the immutable set of reference data.
type Tables struct {
	countries  []string
	states     map[string][]string
	cities     map[string][]string
	phoneRules map[string]PhoneRule
	disposable map[string]struct{}
}

// Countries returns the selectable countries in display order.
func (t *Tables) Countries() []string {
	return slices.Clone(t.countries)
}

// States returns the ordered state list for a country.
// The boolean is false when the country has no reference entry.
func (t *Tables) States(country string) ([]string, bool) {
	states, ok := t.states[country]
	return slices.Clone(states), ok
}

// Cities returns the ordered city list for a state.
// The boolean is false when the state has no city list on file.
func (t *Tables) Cities(state string) ([]string, bool) {
	cities, ok := t.cities[state]
	return slices.Clone(cities), ok
}

// PhoneRule returns the phone format for a country, if one is known.
func (t *Tables) PhoneRule(country string) (PhoneRule, bool) {
	rule, ok := t.phoneRules[country]
	return rule, ok
}

// IsDisposable reports whether an email domain is a disposable mailbox provider.
// Matching is case-insensitive.
func (t *Tables) IsDisposable(emailDomain string) bool {
	_, ok := t.disposable[strings.ToLower(strings.TrimSpace(emailDomain))]
	return ok
}

// DisposableDomains returns the disposable domain set in sorted order.
func (t *Tables) DisposableDomains() []string {
	out := make([]string, 0, len(t.disposable))
	for d := range t.disposable {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// =============================================================================
// Construction
// =============================================================================

// Spec is the declarative form of the reference data, as read from YAML.
type Spec struct {
	Countries         []CountrySpec `mapstructure:"countries" validate:"required,min=1,dive"`
	DisposableDomains []string      `mapstructure:"disposable_domains" validate:"dive,required"`
}

// CountrySpec describes one selectable country.
type CountrySpec struct {
	Name   string      `mapstructure:"name" validate:"required"`
	Phone  PhoneRule   `mapstructure:"phone"`
	States []StateSpec `mapstructure:"states" validate:"dive"`
}

// StateSpec describes one state and its (possibly empty) city list.
type StateSpec struct {
	Name   string   `mapstructure:"name" validate:"required"`
	Cities []string `mapstructure:"cities" validate:"dive,required"`
}

// New builds Tables from a Spec, validating it first.
func New(spec Spec) (*Tables, error) {
	const op = "reference.new"

	if err := validate.Struct(spec); err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, op, "invalid reference data")
	}

	t := &Tables{
		countries:  make([]string, 0, len(spec.Countries)),
		states:     make(map[string][]string, len(spec.Countries)),
		cities:     make(map[string][]string),
		phoneRules: make(map[string]PhoneRule, len(spec.Countries)),
		disposable: make(map[string]struct{}, len(spec.DisposableDomains)),
	}

	// State names key the city table, so they must be unique across countries.
	stateOwner := make(map[string]string)

	for _, c := range spec.Countries {
		if _, dup := t.states[c.Name]; dup {
			return nil, domain.Errorf(domain.EINVALID, op, "duplicate country: %s", c.Name)
		}
		t.countries = append(t.countries, c.Name)
		t.phoneRules[c.Name] = c.Phone

		states := make([]string, 0, len(c.States))
		for _, s := range c.States {
			if owner, dup := stateOwner[s.Name]; dup {
				return nil, domain.Errorf(domain.EINVALID, op, "state %q listed under both %s and %s", s.Name, owner, c.Name)
			}
			stateOwner[s.Name] = c.Name
			states = append(states, s.Name)
			if len(s.Cities) > 0 {
				t.cities[s.Name] = slices.Clone(s.Cities)
			}
		}
		t.states[c.Name] = states
	}

	for _, d := range spec.DisposableDomains {
		t.disposable[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}

	return t, nil
}

// MustNew is like New but panics on invalid data. Intended for built-in tables.
func MustNew(spec Spec) *Tables {
	t, err := New(spec)
	if err != nil {
		panic(err)
	}
	return t
}
