package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/signup/internal/domain"
	"github.com/dukerupert/signup/internal/form"
)

func TestParseFieldName(t *testing.T) {
	f, err := form.ParseFieldName(" Email ")
	require.NoError(t, err)
	assert.Equal(t, form.FieldEmail, f)

	_, err = form.ParseFieldName("nickname")
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.EINVALID))
}

func TestValues_SetGet(t *testing.T) {
	var values form.Values

	for _, f := range form.Fields {
		if f == form.FieldTerms {
			continue
		}
		require.NoError(t, values.Set(f, "  raw "+string(f)+"  "))
		assert.Equal(t, "  raw "+string(f)+"  ", values.Get(f), "raw value is stored untrimmed")
	}
}

func TestValues_SetTerms(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var values form.Values
			require.NoError(t, values.Set(form.FieldTerms, tt.raw))
			assert.Equal(t, tt.expected, values.TermsAccepted)
		})
	}

	var values form.Values
	err := values.Set(form.FieldTerms, "maybe")
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.EINVALID))
}

func TestValues_SetUnknownField(t *testing.T) {
	var values form.Values
	err := values.Set(form.FieldName("nickname"), "x")
	require.Error(t, err)
	assert.Equal(t, form.Values{}, values)
}

func TestFieldName_Label(t *testing.T) {
	assert.Equal(t, "First name", form.FieldFirstName.Label())
	assert.Equal(t, "Confirm password", form.FieldConfirmPassword.Label())
	assert.Len(t, form.Fields, 13)
	for _, f := range form.Fields {
		assert.True(t, f.Known())
		assert.NotEmpty(t, f.Label())
	}
}
