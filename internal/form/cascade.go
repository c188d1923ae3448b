package form

import "github.com/dukerupert/signup/internal/reference"

// AwaitingStatePlaceholder is the single city option offered before a state
// has been chosen.
const AwaitingStatePlaceholder = "Select a state first"

// CityStatus says why a city list looks the way it does.
type CityStatus int

const (
	// CitiesAwaitingState means no state is selected yet.
	CitiesAwaitingState CityStatus = iota

	// CitiesListed means the state has a reference city list.
	CitiesListed

	// CitiesUnlisted means the state is selected but has no city list on
	// file. The city is entered as free text.
	CitiesUnlisted
)

func (s CityStatus) String() string {
	switch s {
	case CitiesAwaitingState:
		return "awaiting_state"
	case CitiesListed:
		return "listed"
	case CitiesUnlisted:
		return "unlisted"
	}
	return "unknown"
}

// CityList is the resolved city dropdown for a state.
type CityList struct {
	Status  CityStatus
	Options []string
}

// Dropdown is the option list and enabled state for one dependent field.
type Dropdown struct {
	Field   FieldName
	Options []string
	Enabled bool

	// FreeEntry means the field takes any non-empty text instead of a
	// choice from Options.
	FreeEntry bool
}

// CascadeUpdate describes what must change downstream of a country or state
// change. Callers clear every field in Cleared before re-validating.
type CascadeUpdate struct {
	Source    FieldName
	Cleared   []FieldName
	Dropdowns []Dropdown
}

// Clears reports whether the update clears the given field.
func (u *CascadeUpdate) Clears(f FieldName) bool {
	if u == nil {
		return false
	}
	for _, c := range u.Cleared {
		if c == f {
			return true
		}
	}
	return false
}

// Dropdown returns the dropdown for a field, if the update carries one.
func (u *CascadeUpdate) Dropdown(f FieldName) (Dropdown, bool) {
	if u == nil {
		return Dropdown{}, false
	}
	for _, d := range u.Dropdowns {
		if d.Field == f {
			return d, true
		}
	}
	return Dropdown{}, false
}

// Resolver derives dependent dropdown contents from the reference tables.
type Resolver struct {
	tables *reference.Tables
}

// NewResolver creates a Resolver backed by the given tables.
func NewResolver(tables *reference.Tables) *Resolver {
	return &Resolver{tables: tables}
}

// ResolveStates returns the ordered states for a country, or an empty list
// for an unknown or empty country.
func (r *Resolver) ResolveStates(country string) []string {
	states, _ := r.tables.States(country)
	if states == nil {
		return []string{}
	}
	return states
}

// ResolveCities returns the city dropdown for a state.
func (r *Resolver) ResolveCities(state string) CityList {
	if state == "" {
		return CityList{Status: CitiesAwaitingState, Options: []string{AwaitingStatePlaceholder}}
	}
	if cities, ok := r.tables.Cities(state); ok {
		return CityList{Status: CitiesListed, Options: cities}
	}
	return CityList{Status: CitiesUnlisted, Options: []string{}}
}

// CountryChanged returns the update owed after the country selection changes:
// state and city are cleared, the state list is repopulated and the city
// dropdown is disabled until a new state is chosen.
func (r *Resolver) CountryChanged(country string) *CascadeUpdate {
	return &CascadeUpdate{
		Source:  FieldCountry,
		Cleared: []FieldName{FieldState, FieldCity},
		Dropdowns: []Dropdown{
			{Field: FieldState, Options: r.ResolveStates(country), Enabled: country != ""},
			{Field: FieldCity, Options: []string{AwaitingStatePlaceholder}, Enabled: false},
		},
	}
}

// StateChanged returns the update owed after the state selection changes:
// city is cleared and its dropdown repopulated (enabled only when a state is
// selected).
func (r *Resolver) StateChanged(state string) *CascadeUpdate {
	cities := r.ResolveCities(state)

	city := Dropdown{Field: FieldCity, Options: cities.Options}
	switch cities.Status {
	case CitiesListed:
		city.Enabled = true
	case CitiesUnlisted:
		city.Enabled = true
		city.FreeEntry = true
	}

	return &CascadeUpdate{
		Source:    FieldState,
		Cleared:   []FieldName{FieldCity},
		Dropdowns: []Dropdown{city},
	}
}

// InitialDropdowns returns the dependent dropdowns for an empty form. Both
// are disabled; the city list shows the awaiting-state placeholder.
func InitialDropdowns() []Dropdown {
	return []Dropdown{
		{Field: FieldState, Options: []string{}},
		{Field: FieldCity, Options: []string{AwaitingStatePlaceholder}},
	}
}
