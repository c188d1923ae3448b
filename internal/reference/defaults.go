package reference

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultSpec is the built-in reference data used when no file is configured.
func DefaultSpec() Spec {
	return Spec{
		Countries: []CountrySpec{
			{
				Name:  "USA",
				Phone: PhoneRule{CountryCode: "+1", Digits: 10},
				States: []StateSpec{
					{Name: "California", Cities: []string{"Los Angeles", "San Francisco", "San Diego", "Sacramento"}},
					{Name: "Texas", Cities: []string{"Houston", "Dallas", "Austin", "San Antonio"}},
					{Name: "Florida", Cities: []string{"Miami", "Tampa", "Orlando", "Jacksonville"}},
					{Name: "New York"},
					{Name: "Pennsylvania"},
				},
			},
			{
				Name:  "UK",
				Phone: PhoneRule{CountryCode: "+44", Digits: 10},
				States: []StateSpec{
					{Name: "England", Cities: []string{"London", "Manchester", "Liverpool", "Leeds"}},
					{Name: "Scotland", Cities: []string{"Edinburgh", "Glasgow", "Aberdeen", "Dundee"}},
					{Name: "Wales"},
					{Name: "Northern Ireland"},
				},
			},
			{
				Name:  "Canada",
				Phone: PhoneRule{CountryCode: "+1", Digits: 10},
				States: []StateSpec{
					{Name: "Ontario", Cities: []string{"Toronto", "Ottawa", "Hamilton", "London"}},
					{Name: "Quebec"},
					{Name: "Alberta"},
					{Name: "British Columbia"},
				},
			},
			{
				Name:  "Australia",
				Phone: PhoneRule{CountryCode: "+61", Digits: 9},
				States: []StateSpec{
					{Name: "New South Wales", Cities: []string{"Sydney", "Newcastle", "Wollongong", "Central Coast"}},
					{Name: "Victoria"},
					{Name: "Queensland"},
					{Name: "Western Australia"},
				},
			},
			{
				Name:  "India",
				Phone: PhoneRule{CountryCode: "+91", Digits: 10},
				States: []StateSpec{
					{Name: "Maharashtra", Cities: []string{"Mumbai", "Pune", "Nagpur", "Aurangabad"}},
					{Name: "Delhi", Cities: []string{"New Delhi", "North Delhi", "South Delhi"}},
					{Name: "Karnataka"},
					{Name: "Tamil Nadu"},
					{Name: "Gujarat"},
				},
			},
		},
		DisposableDomains: []string{
			"tempmail.com",
			"10minutemail.com",
			"mailinator.com",
			"temp-mail.org",
			"throwaway.email",
			"guerrillamail.com",
			"yopmail.com",
			"temp.email",
			"10minuteemail.com",
		},
	}
}

// Default returns the built-in reference tables.
func Default() *Tables {
	return MustNew(DefaultSpec())
}
