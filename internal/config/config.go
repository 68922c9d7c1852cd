package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Storage backends.
const (
	BackendCSV      = "csv"
	BackendPostgres = "postgres"
)

type Config struct {
	Port     string
	LogLevel string

	StorageBackend string
	DataDir        string

	// Empty means the built-in category table.
	CategoryRulesFile string
	CurrencySymbol    string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		LogLevel:         "info",
		StorageBackend:   BackendCSV,
		DataDir:          "data",
		CurrencySymbol:   "₹",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	overrides := map[string]*string{
		"PORT":                &env.Port,
		"LOG_LEVEL":           &env.LogLevel,
		"STORAGE_BACKEND":     &env.StorageBackend,
		"DATA_DIR":            &env.DataDir,
		"CATEGORY_RULES_FILE": &env.CategoryRulesFile,
		"CURRENCY_SYMBOL":     &env.CurrencySymbol,
		"POSTGRES_ADDRESS":    &env.PostgresAddress,
		"POSTGRES_PORT":       &env.PostgresPort,
		"POSTGRES_DB":         &env.PostgresDB,
		"POSTGRES_USERNAME":   &env.PostgresUsername,
		"POSTGRES_PASSWORD":   &env.PostgresPassword,
	}
	for key, field := range overrides {
		if value := os.Getenv(key); len(value) != 0 {
			*field = value
		}
	}
	env.StorageBackend = strings.ToLower(env.StorageBackend)

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	switch c.StorageBackend {
	case BackendCSV:
		if c.DataDir == "" {
			problems = append(problems, "data dir cannot be empty when using the csv backend")
		}
	case BackendPostgres:
		if c.PostgresAddress == "" || c.PostgresDB == "" {
			problems = append(problems, "postgres address and database are required when using the postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of [%s %s]",
			c.StorageBackend, BackendCSV, BackendPostgres))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// PostgresURL is the lib/pq connection string.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
