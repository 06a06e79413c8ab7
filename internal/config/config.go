package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"htmxtodo/internal/constants"
)

// Config is the process configuration. Every field is bound from an environment variable.
type Config struct {
	Env             string `env:"NODE_ENV" envDefault:"development"`
	DBHost          string `env:"DB_HOST,required,notEmpty"`
	DBUser          string `env:"DB_USER,required,notEmpty"`
	DBPassword      string `env:"DB_PASSWORD,required,notEmpty"`
	DBName          string `env:"DB_NAME,required,notEmpty"`
	DBPort          int    `env:"DB_PORT" envDefault:"5432"`
	DatabaseUrl     string `env:"DATABASE_URL,required,notEmpty"`
	TestDatabaseUrl string `env:"TEST_DATABASE_URL"`
	DBMigrating     bool   `env:"DB_MIGRATING" envDefault:"false"`
	DBSeeding       bool   `env:"DB_SEEDING" envDefault:"false"`
	Host            string `env:"HOST"`
	Port            string `env:"PORT" envDefault:"3000"`
}

// InvalidEnvError lists every environment variable that was missing or could not be parsed.
type InvalidEnvError struct {
	Keys []string
}

func (e *InvalidEnvError) Error() string {
	return "missing/invalid env vars: " + strings.Join(e.Keys, ", ")
}

// Load reads the given dotenv files (".env" if none are given), overlays the process environment
// and binds the result. Missing files are ignored. Process values win over file values, including
// when file values are expanded: ${VAR} resolves against the process environment first.
func Load(filenames ...string) (*Config, error) {
	fileValues, err := readEnvFiles(filenames...)
	if err != nil {
		return nil, err
	}

	processValues := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		processValues[key] = value
	}

	return FromMap(expandEnv(fileValues, processValues))
}

// FromMap binds and validates cfg from an explicit set of variables.
func FromMap(environ map[string]string) (*Config, error) {
	var cfg Config
	invalid := make(map[string]bool)

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		var aggErr env.AggregateError
		if !errors.As(err, &aggErr) {
			return nil, fmt.Errorf("parse env: %w", err)
		}
		for _, e := range aggErr.Errors {
			key, ok := offendingKey(e)
			if !ok {
				return nil, fmt.Errorf("parse env: %w", e)
			}
			invalid[key] = true
		}
	}

	for _, key := range cfg.validate() {
		invalid[key] = true
	}

	if len(invalid) > 0 {
		return nil, &InvalidEnvError{Keys: orderedKeys(invalid)}
	}

	return &cfg, nil
}

// DatabaseURL is the connection string for the current environment.
// The test environment prefers TEST_DATABASE_URL when it is set.
func (c *Config) DatabaseURL() string {
	if c.Env == constants.EnvTest && c.TestDatabaseUrl != "" {
		return c.TestDatabaseUrl
	}
	return c.DatabaseUrl
}

func (c *Config) IsProduction() bool {
	return c.Env == constants.EnvProduction
}

func (c *Config) IsDevelopment() bool {
	return c.Env == constants.EnvDevelopment
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// validate checks the constraints the struct tags cannot express and returns the offending keys.
func (c *Config) validate() []string {
	var keys []string

	switch c.Env {
	case constants.EnvDevelopment, constants.EnvProduction, constants.EnvTest:
	default:
		keys = append(keys, "NODE_ENV")
	}

	if c.DBPort <= 0 {
		keys = append(keys, "DB_PORT")
	}

	return keys
}

func readEnvFiles(filenames ...string) (map[string]string, error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	// Like godotenv.Load, the first file to define a key wins.
	merged := make(map[string]string)
	for _, filename := range filenames {
		values, err := readEnvFile(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filename, err)
		}
		for key, value := range values {
			if _, ok := merged[key]; !ok {
				merged[key] = value
			}
		}
	}

	return merged, nil
}

// readEnvFile parses filename without expanding references. godotenv only expands against
// keys defined earlier in the same file, so every $ is escaped before parsing and references
// are resolved later by expandEnv. In the result a bare $ starts a reference and $$ is a
// literal dollar sign (from single-quoted or escaped values).
func readEnvFile(filename string) (map[string]string, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	values, err := godotenv.UnmarshalBytes(bytes.ReplaceAll(src, []byte("$"), []byte(`\$`)))
	if err != nil {
		return nil, err
	}

	for key, value := range values {
		values[key] = strings.ReplaceAll(value, `\$`, "$$")
	}
	return values, nil
}

// expandEnv resolves references in file values and overlays the process environment.
func expandEnv(fileValues, processValues map[string]string) map[string]string {
	x := &expander{
		file:     fileValues,
		process:  processValues,
		resolved: make(map[string]string, len(fileValues)),
		visiting: make(map[string]bool),
	}

	environ := make(map[string]string, len(fileValues)+len(processValues))
	for key := range fileValues {
		environ[key] = x.lookup(key)
	}
	for key, value := range processValues {
		environ[key] = value
	}
	return environ
}

type expander struct {
	file     map[string]string
	process  map[string]string
	resolved map[string]string
	visiting map[string]bool
}

func (x *expander) lookup(key string) string {
	if key == "$" {
		return "$"
	}
	if value, ok := x.process[key]; ok {
		return value
	}
	if value, ok := x.resolved[key]; ok {
		return value
	}

	raw, ok := x.file[key]
	if !ok || x.visiting[key] {
		return ""
	}

	x.visiting[key] = true
	value := os.Expand(raw, x.lookup)
	delete(x.visiting, key)

	x.resolved[key] = value
	return value
}

func offendingKey(err error) (string, bool) {
	switch e := err.(type) {
	case env.EnvVarIsNotSetError:
		return e.Key, true
	case env.EmptyEnvVarError:
		return e.Key, true
	case env.ParseError:
		field, ok := reflect.TypeOf(Config{}).FieldByName(e.Name)
		if !ok {
			return "", false
		}
		return envKey(field), true
	}
	return "", false
}

// orderedKeys returns the keys of set in Config field order.
func orderedKeys(set map[string]bool) []string {
	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, len(set))
	for i := 0; i < t.NumField(); i++ {
		key := envKey(t.Field(i))
		if set[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

func envKey(field reflect.StructField) string {
	key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
	return key
}
