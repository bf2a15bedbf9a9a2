// Package config loads GeoReads configuration from flags, environment
// variables, a .env file and defaults, in that order of precedence.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/georeads/georeads/internal/validation"
)

// Environments.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Store backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// DevelopmentAPIBase is where the CLI finds a locally running API.
const DevelopmentAPIBase = "http://localhost:8000/api"

// Config holds the application configuration.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Server   ServerConfig
	Store    StoreConfig
	Wikidata WikidataConfig
	Lookup   LookupConfig
	Client   ClientConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `env:"ENV" validate:"oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// ServerConfig holds HTTP server configuration for the lookup API.
type ServerConfig struct {
	Port               int           `env:"SERVER_PORT" validate:"gte=1,lte=65535"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout        time.Duration `env:"SERVER_IDLE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout    time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" validate:"dive,required"`
	// RateLimitRPS bounds batch requests per client IP; 0 disables it.
	RateLimitRPS   float64 `env:"API_RATE_LIMIT_RPS" validate:"gte=0"`
	RateLimitBurst int     `env:"API_RATE_LIMIT_BURST" validate:"gte=1"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

// StoreConfig holds nationality cache configuration.
type StoreConfig struct {
	Backend  string `env:"STORE_BACKEND" validate:"oneof=badger sqlite"`
	DataPath string `env:"DATA_PATH" validate:"required"`
	// CacheTTL expires cached nationalities; 0 keeps them forever.
	CacheTTL time.Duration `env:"CACHE_TTL" validate:"gte=0"`
}

// WikidataConfig holds SPARQL endpoint configuration.
type WikidataConfig struct {
	Endpoint  string        `env:"WIKIDATA_ENDPOINT" validate:"required,http_url"`
	UserAgent string        `env:"WIKIDATA_USER_AGENT" validate:"required"`
	RPS       float64       `env:"WIKIDATA_RPS" validate:"gt=0"`
	Timeout   time.Duration `env:"WIKIDATA_TIMEOUT" validate:"gt=0"`
}

// LookupConfig bounds batch resolution.
type LookupConfig struct {
	MaxBatch    int `env:"LOOKUP_MAX_BATCH" validate:"gte=1"`
	Concurrency int `env:"LOOKUP_CONCURRENCY" validate:"gte=1"`
}

// ClientConfig tells the CLI where the lookup API lives.
type ClientConfig struct {
	APIBase      string `env:"API_BASE" validate:"omitempty,http_url"`
	PublicOrigin string `env:"PUBLIC_ORIGIN" validate:"omitempty,http_url"`
}

// ErrNoPublicOrigin is returned when a non-development environment has
// neither API_BASE nor PUBLIC_ORIGIN to locate the lookup API.
var ErrNoPublicOrigin = errors.New("config: PUBLIC_ORIGIN or API_BASE is required outside development")

// ResolveAPIBase returns the explicit API base if set, otherwise the
// environment default.
func (c ClientConfig) ResolveAPIBase(environment string) (string, error) {
	if c.APIBase != "" {
		return strings.TrimRight(c.APIBase, "/"), nil
	}
	return APIBase(environment, c.PublicOrigin)
}

// APIBase returns the lookup API root for an environment. Development talks
// to a local server; elsewhere the API is served under /api of the public
// origin, which must be known.
func APIBase(environment, origin string) (string, error) {
	if environment == EnvDevelopment || environment == "" {
		return DevelopmentAPIBase, nil
	}
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return "", fmt.Errorf("%w (environment %s)", ErrNoPublicOrigin, environment)
	}
	return origin + "/api", nil
}

type flagValues struct {
	env              *string
	logLevel         *string
	envFile          *string
	port             *string
	readTimeout      *string
	writeTimeout     *string
	idleTimeout      *string
	corsOrigins      *string
	storeBackend     *string
	dataPath         *string
	cacheTTL         *string
	wikidataEndpoint *string
	wikidataRPS      *string
	wikidataTimeout  *string
	maxBatch         *string
	concurrency      *string
	apiBase          *string
	publicURL        *string
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	return &flagValues{
		env:              fs.String("env", "", "Environment (development, staging, production)"),
		logLevel:         fs.String("log-level", "", "Log level (debug, info, warn, error)"),
		envFile:          fs.String("env-file", ".env", "Path to .env file"),
		port:             fs.String("port", "", "Server port (default: 8000)"),
		readTimeout:      fs.String("read-timeout", "", "HTTP read timeout (default: 15s)"),
		writeTimeout:     fs.String("write-timeout", "", "HTTP write timeout (default: 2m)"),
		idleTimeout:      fs.String("idle-timeout", "", "HTTP idle timeout (default: 60s)"),
		corsOrigins:      fs.String("cors-origins", "", "Comma-separated allowed CORS origins"),
		storeBackend:     fs.String("store", "", "Cache backend: badger or sqlite (default: badger)"),
		dataPath:         fs.String("data-path", "", "Directory for the nationality cache"),
		cacheTTL:         fs.String("cache-ttl", "", "Cached nationality lifetime, 0 for forever (default: 720h)"),
		wikidataEndpoint: fs.String("wikidata-endpoint", "", "Wikidata SPARQL endpoint"),
		wikidataRPS:      fs.String("wikidata-rps", "", "Wikidata requests per second (default: 2)"),
		wikidataTimeout:  fs.String("wikidata-timeout", "", "Wikidata request timeout (default: 10s)"),
		maxBatch:         fs.String("max-batch", "", "Maximum names per batch (default: 500)"),
		concurrency:      fs.String("lookup-concurrency", "", "Concurrent Wikidata lookups per batch (default: 4)"),
		apiBase:          fs.String("api-base", "", "Lookup API base URL used by the CLI"),
		publicURL:        fs.String("public-origin", "", "Public origin the API is served from"),
	}
}

// LoadConfig parses args as flags, loads the .env file and builds a
// validated configuration. Unset flags fall through to the environment, then
// the .env file, then defaults.
func LoadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("georeads", flag.ContinueOnError)
	f := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Missing .env is fine; a malformed one is not.
	if err := loadEnvFile(*f.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*f.env, "ENV", EnvDevelopment),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getConfigValue(*f.logLevel, "LOG_LEVEL", "info")),
		},
		Store: StoreConfig{
			Backend:  getConfigValue(*f.storeBackend, "STORE_BACKEND", BackendBadger),
			DataPath: getConfigValue(*f.dataPath, "DATA_PATH", ""),
		},
		Server: ServerConfig{
			CORSAllowedOrigins: splitList(getConfigValue(*f.corsOrigins, "CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Wikidata: WikidataConfig{
			Endpoint:  getConfigValue(*f.wikidataEndpoint, "WIKIDATA_ENDPOINT", "https://query.wikidata.org/sparql"),
			UserAgent: getConfigValue("", "WIKIDATA_USER_AGENT", "GeoReads/1.0 (https://github.com/georeads/georeads)"),
		},
		Client: ClientConfig{
			APIBase:      getConfigValue(*f.apiBase, "API_BASE", ""),
			PublicOrigin: getConfigValue(*f.publicURL, "PUBLIC_ORIGIN", ""),
		},
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	cfg.Server.Port, err = getIntConfigValue(*f.port, "SERVER_PORT", 8000)
	collect(err)
	cfg.Server.ReadTimeout, err = getDurationConfigValue(*f.readTimeout, "SERVER_READ_TIMEOUT", 15*time.Second)
	collect(err)
	cfg.Server.WriteTimeout, err = getDurationConfigValue(*f.writeTimeout, "SERVER_WRITE_TIMEOUT", 2*time.Minute)
	collect(err)
	cfg.Server.IdleTimeout, err = getDurationConfigValue(*f.idleTimeout, "SERVER_IDLE_TIMEOUT", 60*time.Second)
	collect(err)
	cfg.Server.ShutdownTimeout, err = getDurationConfigValue("", "SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	collect(err)
	cfg.Server.RateLimitRPS, err = getFloatConfigValue("", "API_RATE_LIMIT_RPS", 5)
	collect(err)
	cfg.Server.RateLimitBurst, err = getIntConfigValue("", "API_RATE_LIMIT_BURST", 10)
	collect(err)
	cfg.Store.CacheTTL, err = getDurationConfigValue(*f.cacheTTL, "CACHE_TTL", 720*time.Hour)
	collect(err)
	cfg.Wikidata.RPS, err = getFloatConfigValue(*f.wikidataRPS, "WIKIDATA_RPS", 2)
	collect(err)
	cfg.Wikidata.Timeout, err = getDurationConfigValue(*f.wikidataTimeout, "WIKIDATA_TIMEOUT", 10*time.Second)
	collect(err)
	cfg.Lookup.MaxBatch, err = getIntConfigValue(*f.maxBatch, "LOOKUP_MAX_BATCH", 500)
	collect(err)
	cfg.Lookup.Concurrency, err = getIntConfigValue(*f.concurrency, "LOOKUP_CONCURRENCY", 4)
	collect(err)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks every section against its struct tags.
func (c *Config) Validate() error {
	return validation.New().Validate(c)
}

// expandPath expands ~ and makes the path absolute, using defaultPath when
// path is empty.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}
	return filepath.Clean(path), nil
}

// expandDataPath defaults the cache directory to ~/GeoReads/data.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	expanded, err := expandPath(c.Store.DataPath, filepath.Join(homeDir, "GeoReads", "data"))
	if err != nil {
		return err
	}
	c.Store.DataPath = expanded
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envKey != "" {
		if envValue := os.Getenv(envKey); envValue != "" {
			return envValue
		}
	}
	return defaultValue
}

func getIntConfigValue(flagValue, envKey string, defaultValue int) (int, error) {
	s := getConfigValue(flagValue, envKey, "")
	if s == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", envKey, s, err)
	}
	return n, nil
}

func getFloatConfigValue(flagValue, envKey string, defaultValue float64) (float64, error) {
	s := getConfigValue(flagValue, envKey, "")
	if s == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", envKey, s, err)
	}
	return f, nil
}

func getDurationConfigValue(flagValue, envKey string, defaultValue time.Duration) (time.Duration, error) {
	s := getConfigValue(flagValue, envKey, "")
	if s == "" {
		return defaultValue, nil
	}
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", envKey, s, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadEnvFile loads KEY=value lines from path into the environment without
// overriding variables that already have a value. Lines starting with # are comments.
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- path comes from the operator
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}
