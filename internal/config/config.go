package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

const (
	DefaultAPIBaseURL = "https://fsa-puppy-bowl.herokuapp.com/api"
	DefaultCohort     = "2302-ACC-ET-WEB-PT-E"
	DefaultPort       = "8080"
)

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

type Config struct {
	apiBaseURL  string
	cohort      string
	port        string
	sentryDSN   string
	otelEnabled bool
	env         environment
}

func (c *Config) APIBaseURL() string {
	return c.apiBaseURL
}

func (c *Config) Cohort() string {
	return c.cohort
}

func (c *Config) CohortURL() string {
	return CohortURL(c.apiBaseURL, c.cohort)
}

// CohortURL is the root of the cohort's players collection, e.g. https://host/api/<cohort>
func CohortURL(apiBaseURL, cohort string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(apiBaseURL, "/"), url.PathEscape(cohort))
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) OTelEnabled() bool {
	return c.otelEnabled
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf(
		"Config{env: %s, apiBaseURL: %s, cohort: %s, port: %s, otelEnabled: %t, ...}",
		string(c.env), c.apiBaseURL, c.cohort, c.port, c.otelEnabled,
	)
}

func getenvOr(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// APIBaseURLFromEnv is ROSTER_API_BASE_URL, or DefaultAPIBaseURL when unset. It is not validated.
func APIBaseURLFromEnv() string {
	return getenvOr("ROSTER_API_BASE_URL", DefaultAPIBaseURL)
}

// CohortFromEnv is ROSTER_COHORT, or DefaultCohort when unset
func CohortFromEnv() string {
	return getenvOr("ROSTER_COHORT", DefaultCohort)
}

// ParseAPIBaseURL trims trailing slashes and requires an absolute http(s) URL
func ParseAPIBaseURL(raw string) (string, error) {
	apiBaseURL := strings.TrimRight(raw, "/")
	parsed, err := url.Parse(apiBaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("%w: api base url (%s)", ErrInvalidValue, raw)
	}
	return apiBaseURL, nil
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}
	invalidValue := func(key, value string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s (%s)", ErrInvalidValue, key, value)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("ROSTER_ENVIRONMENT")
	if !ok {
		return missingKey("ROSTER_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return invalidValue("ROSTER_ENVIRONMENT", rawEnv)
	}

	apiBaseURL, err := ParseAPIBaseURL(APIBaseURLFromEnv())
	if err != nil {
		return invalidValue("ROSTER_API_BASE_URL", APIBaseURLFromEnv())
	}

	cohort := CohortFromEnv()

	port := getenvOr("PORT", DefaultPort)
	if portNumber, err := strconv.Atoi(port); err != nil || portNumber <= 0 || portNumber > 65535 {
		return invalidValue("PORT", port)
	}

	otelEnabled := false
	if rawOTelEnabled := os.Getenv("OTEL_ENABLED"); rawOTelEnabled != "" {
		otelEnabled, err = strconv.ParseBool(rawOTelEnabled)
		if err != nil {
			return invalidValue("OTEL_ENABLED", rawOTelEnabled)
		}
	}

	sentryDSN := os.Getenv("SENTRY_DSN")

	if env == production || env == staging {
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	return Config{
		apiBaseURL:  apiBaseURL,
		cohort:      cohort,
		port:        port,
		sentryDSN:   sentryDSN,
		otelEnabled: otelEnabled,
		env:         env,
	}, nil
}
