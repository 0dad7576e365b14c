package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the gateway reads from the environment. There
// is no database of its own: the reservation backend is the single
// source of truth, reached over HTTP.
type Config struct {
	// BackendURL is the base URL of the reservation REST backend.
	BackendURL string
	// Port the gateway listens on.
	Port string
	// EmployeeSSN is the fixed staff identity attached to booking
	// conversions while no authentication exists.
	EmployeeSSN string
	// DefaultCustomerID is used for bookings made from the search
	// surface when no customer id is supplied.
	DefaultCustomerID string
	// CORSOrigins is the allowed origin list for the browser UI.
	CORSOrigins []string
	// HTTPTimeout bounds every backend call.
	HTTPTimeout time.Duration
}

// LoadEnv loads .env if present; real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	cfg := Config{
		BackendURL:        envOrDefault("BACKEND_URL", "http://localhost:8000"),
		Port:              envOrDefault("PORT", "8080"),
		EmployeeSSN:       envOrDefault("EMPLOYEE_SSN", "100000001"),
		DefaultCustomerID: envOrDefault("DEFAULT_CUSTOMER_ID", "TC001"),
		CORSOrigins:       parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		HTTPTimeout:       15 * time.Second,
	}

	if raw := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT must be a positive number of seconds, got %q", raw)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	u, err := url.Parse(cfg.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("BACKEND_URL %q is not a valid URL", cfg.BackendURL)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
