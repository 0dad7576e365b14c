package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-admin/errors"
	"hotel-admin/models"
)

func TestSanitizeSSN(t *testing.T) {
	assert.Equal(t, "123456789", SanitizeSSN("123-45-6789"))
	assert.Equal(t, "123456789", SanitizeSSN(" 123 456 789 "))
	assert.Equal(t, "123", SanitizeSSN("12a3"))
	assert.Equal(t, "", SanitizeSSN("abc"))
}

func TestValidateSSN(t *testing.T) {
	assert.NoError(t, ValidateSSN("123456789"))
	assert.NoError(t, ValidateSSN("123-45-6789"))

	for _, raw := range []string{"", "12345678", "1234567890", "12a3", "abcdefghi"} {
		err := ValidateSSN(raw)
		assert.Error(t, err, "raw %q", raw)
		assert.True(t, errors.IsValidation(err), "raw %q", raw)
	}
}

func TestValidateCreate(t *testing.T) {
	err := ValidateCreate(models.KindEmployee, map[string]string{"ssn": "12345"})
	assert.Error(t, err)

	assert.NoError(t, ValidateCreate(models.KindEmployee, map[string]string{"ssn": "123456789"}))
	// other kinds carry no format rules
	assert.NoError(t, ValidateCreate(models.KindCustomer, map[string]string{}))
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey(models.KindCustomer, models.Key{ID: "C1"}))
	assert.NoError(t, ValidateKey(models.KindRoom, models.Key{ID: "12", HotelAddress: "100 Main St"}))

	err := ValidateKey(models.KindCustomer, models.Key{})
	if app := errors.GetAppError(err); assert.NotNil(t, app) {
		assert.Equal(t, errors.ErrCodeMissingKey, app.Code)
	}

	err = ValidateKey(models.KindRoom, models.Key{ID: "12"})
	if app := errors.GetAppError(err); assert.NotNil(t, app) {
		assert.Equal(t, errors.ErrCodeMissingKey, app.Code)
	}
}
