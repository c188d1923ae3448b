package reference

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukerupert/signup/internal/domain"
)

// Load reads reference data from a YAML (or JSON/TOML) file.
//
// Viper lower-cases map keys, so the file lists countries and states as
// sequences of named entries rather than maps keyed by name:
//
//	countries:
//	  - name: USA
//	    phone: {code: "+1", digits: 10}
//	    states:
//	      - name: California
//	        cities: [Los Angeles, San Diego]
//	disposable_domains: [tempmail.com]
func Load(path string) (*Tables, error) {
	const op = "reference.load"

	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NotFound(op, "reference data file", path)
		}
		return nil, domain.WrapError(err, domain.EINVALID, op, "failed to read reference data")
	}

	var spec Spec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, op, "failed to decode reference data")
	}

	return New(spec)
}

// LoadOrDefault loads tables from path, or returns the built-in tables when
// path is empty.
func LoadOrDefault(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
