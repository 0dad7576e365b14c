package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111-1111-1111-1111"))
	assert.Equal(t, "4111 111", FormatCardNumber("4111111"))
	assert.Equal(t, "", FormatCardNumber("no digits here"))
}

func TestFormatCardNumberIdempotent(t *testing.T) {
	inputs := []string{"4111111111111111", "4111 1111 1111 1111", "12 34", ""}
	for _, in := range inputs {
		once := FormatCardNumber(in)
		assert.Equal(t, once, FormatCardNumber(once))
	}
}

func TestFormatCardNumberCapped(t *testing.T) {
	// extra digits past 16 never widen the display
	got := FormatCardNumber("41111111111111112222")
	assert.Equal(t, "4111 1111 1111 1111", got)
	assert.LessOrEqual(t, len(got), 19)
}

func TestValidCardNumber(t *testing.T) {
	assert.True(t, ValidCardNumber("4111111111111111"))
	assert.True(t, ValidCardNumber("4111 1111 1111 1111"))
	assert.False(t, ValidCardNumber("411111111111111"))
	assert.False(t, ValidCardNumber("41111111111111112"))
	assert.False(t, ValidCardNumber(""))
}

func TestPaymentLabel(t *testing.T) {
	assert.Equal(t, "Credit Card 1111", PaymentLabel("4111 1111 1111 1111"))
	assert.Equal(t, "Credit Card 9876", PaymentLabel("1234123412349876"))
	// separators never change the derived label
	assert.Equal(t, PaymentLabel("4111111111111111"), PaymentLabel("4111-1111-1111-1111"))
	assert.Equal(t, "", PaymentLabel("123"))
}
