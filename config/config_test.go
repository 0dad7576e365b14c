package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"BACKEND_URL", "PORT", "EMPLOYEE_SSN", "DEFAULT_CUSTOMER_ID", "CORS_ORIGINS", "HTTP_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "100000001", cfg.EmployeeSSN)
	assert.Equal(t, "TC001", cfg.DefaultCustomerID)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://reservations:9000")
	t.Setenv("PORT", "3000")
	t.Setenv("EMPLOYEE_SSN", "200000002")
	t.Setenv("DEFAULT_CUSTOMER_ID", "TC042")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://admin.example.com")
	t.Setenv("HTTP_TIMEOUT", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://reservations:9000", cfg.BackendURL)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "200000002", cfg.EmployeeSSN)
	assert.Equal(t, "TC042", cfg.DefaultCustomerID)
	assert.Equal(t, []string{"http://localhost:3000", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadRejectsBadBackendURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "not a url")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("HTTP_TIMEOUT", "-5")
	_, err = Load()
	assert.Error(t, err)
}
