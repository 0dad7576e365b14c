package validator

import (
	"regexp"
	"strings"

	"hotel-admin/errors"
	"hotel-admin/models"
)

var ssnPattern = regexp.MustCompile(`^\d{9}$`)

// SanitizeSSN keeps only the digits of a raw SSN input.
func SanitizeSSN(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateSSN rejects anything that is not exactly nine digits. It runs
// before any network call is attempted.
func ValidateSSN(raw string) error {
	if !ssnPattern.MatchString(SanitizeSSN(raw)) {
		return errors.NewAppError(errors.ErrCodeValidation, errors.ErrInvalidSSN.Error(), errors.ErrInvalidSSN)
	}
	return nil
}

// ValidateCreate runs the kind-specific pre-flight checks on a create
// form. Only employee creation carries a format rule today.
func ValidateCreate(kind models.Kind, fields map[string]string) error {
	if kind == models.KindEmployee {
		return ValidateSSN(fields["ssn"])
	}
	return nil
}

// ValidateKey checks that a key is complete enough to address a record.
// A room key missing either composite part is reported as incomplete so
// callers can skip the call rather than fire a malformed request.
func ValidateKey(kind models.Kind, key models.Key) error {
	if strings.TrimSpace(key.ID) == "" {
		return errors.NewAppError(errors.ErrCodeMissingKey, "record key is empty", nil)
	}
	if kind == models.KindRoom && strings.TrimSpace(key.HotelAddress) == "" {
		return errors.NewAppError(errors.ErrCodeMissingKey, errors.ErrMissingRoomKey.Error(), errors.ErrMissingRoomKey)
	}
	return nil
}
