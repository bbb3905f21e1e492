// Package config loads the configuration of the backend from the
// environment, an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("configuration is invalid")

const (
	LogFormatHuman = "human"
	LogFormatJSON  = "json"
)

type Config struct {
	// HTTP
	GinMode          string
	APIURL           string
	Port             int
	CORSAllowOrigins []string
	EnablePprof      bool

	// Logging. Empty values are derived from the gin mode.
	LogFormat string
	LogLevel  string

	// Database. PostgreSQL is used when DBHost is set, SQLite otherwise.
	DBPath     string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// Periods and summaries
	CacheTTL                 time.Duration
	Timezone                 string
	TransferCategoryIDs      []string
	TransferCategoryPatterns []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gin_mode", "release")
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("port", 8080)
	v.SetDefault("enable_pprof", false)
	v.SetDefault("db_path", "data/fundflow.db")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_name", "fundflow")
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("timezone", "UTC")
}

// Load reads the configuration. Environment variables take precedence
// over the file, which is only read when file is not empty.
//
// A .env file in the working directory is loaded into the environment
// first if it exists. It never overrides variables that are already set.
func Load(file string) (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return Config{
		GinMode:          v.GetString("gin_mode"),
		APIURL:           v.GetString("api_url"),
		Port:             v.GetInt("port"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),

		LogFormat: v.GetString("log_format"),
		LogLevel:  v.GetString("log_level"),

		DBPath:     v.GetString("db_path"),
		DBHost:     v.GetString("db_host"),
		DBPort:     v.GetInt("db_port"),
		DBUser:     v.GetString("db_user"),
		DBPassword: v.GetString("db_password"),
		DBName:     v.GetString("db_name"),

		CacheTTL:                 v.GetDuration("cache_ttl"),
		Timezone:                 v.GetString("timezone"),
		TransferCategoryIDs:      list(v.GetString("transfer_category_ids")),
		TransferCategoryPatterns: list(v.GetString("transfer_category_patterns")),
	}, nil
}

// list splits a comma separated value. Empty elements are dropped.
func list(s string) []string {
	var l []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			l = append(l, e)
		}
	}
	return l
}

// Validate checks the configuration and reports all problems at once.
func (c Config) Validate() error {
	var problems []string

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("invalid gin mode '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", LogFormatHuman, LogFormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be human or json", c.LogFormat))
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
		}
	}

	if _, err := c.URL(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if c.UsePostgres() {
		if c.DBPort < 1 || c.DBPort > 65535 {
			problems = append(problems, fmt.Sprintf("invalid database port %d: must be between 1 and 65535", c.DBPort))
		}
		if c.DBName == "" {
			problems = append(problems, "the database name must be set when using PostgreSQL")
		}
	} else if c.DBPath == "" {
		problems = append(problems, "the database path must be set when using SQLite")
	}

	if c.CacheTTL <= 0 {
		problems = append(problems, fmt.Sprintf("invalid cache TTL %v: must be positive", c.CacheTTL))
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}

	if _, err := c.TransferIDs(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalid, strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL '%s': %w", c.APIURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL '%s': scheme and host must be set", c.APIURL)
	}

	return u, nil
}

// Location returns the time zone in which the current day is determined.
func (c Config) Location() (*time.Location, error) {
	l, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone '%s': %w", c.Timezone, err)
	}
	return l, nil
}

// TransferIDs returns the configured IDs of transfer categories.
func (c Config) TransferIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(c.TransferCategoryIDs))
	for _, s := range c.TransferCategoryIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid transfer category ID '%s': %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UsePostgres reports if PostgreSQL is configured as database.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}
