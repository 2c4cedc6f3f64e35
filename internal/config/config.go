package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Frontend origin allowed by CORS
	FrontendURL string

	// Transcript provider
	TranscriptLanguages []string

	// Connectivity probe
	ConnectivityURL     string
	ConnectivityTimeout time.Duration
}

// fileConfig mirrors Config for the optional YAML file. Zero values mean "not set".
type fileConfig struct {
	Port                       string   `yaml:"port"`
	Env                        string   `yaml:"env"`
	LogLevel                   string   `yaml:"log_level"`
	FrontendURL                string   `yaml:"frontend_url"`
	TranscriptLanguages        []string `yaml:"transcript_languages"`
	ConnectivityURL            string   `yaml:"connectivity_url"`
	ConnectivityTimeoutSeconds int      `yaml:"connectivity_timeout_seconds"`
}

func defaults() fileConfig {
	return fileConfig{
		Port:                       "8000",
		Env:                        "development",
		LogLevel:                   "info",
		FrontendURL:                "http://localhost:5173",
		TranscriptLanguages:        []string{"en"},
		ConnectivityURL:            "https://www.youtube.com",
		ConnectivityTimeoutSeconds: 10,
	}
}

// Load reads .env (if present), the optional CONFIG_FILE and the environment.
// Environment variables take precedence over the file.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	base := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := mergeFile(&base, path); err != nil {
			panic(fmt.Sprintf("invalid config file %s: %v", path, err))
		}
	}

	return fromEnv(base)
}

func fromEnv(base fileConfig) *Config {
	return &Config{
		Port:                getEnvOrDefault("PORT", base.Port),
		Env:                 getEnvOrDefault("ENV", base.Env),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", base.LogLevel),
		FrontendURL:         getEnvOrDefault("FRONTEND_URL", base.FrontendURL),
		TranscriptLanguages: getEnvAsListOrDefault("TRANSCRIPT_LANGUAGES", base.TranscriptLanguages),
		ConnectivityURL:     getEnvOrDefault("CONNECTIVITY_URL", base.ConnectivityURL),
		ConnectivityTimeout: time.Duration(getEnvAsIntOrDefault("CONNECTIVITY_TIMEOUT_SECONDS", base.ConnectivityTimeoutSeconds)) * time.Second,
	}
}

// mergeFile overlays non-zero values from the YAML file at path onto base.
func mergeFile(base *fileConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if fc.Port != "" {
		base.Port = fc.Port
	}
	if fc.Env != "" {
		base.Env = fc.Env
	}
	if fc.LogLevel != "" {
		base.LogLevel = fc.LogLevel
	}
	if fc.FrontendURL != "" {
		base.FrontendURL = fc.FrontendURL
	}
	if len(fc.TranscriptLanguages) > 0 {
		base.TranscriptLanguages = fc.TranscriptLanguages
	}
	if fc.ConnectivityURL != "" {
		base.ConnectivityURL = fc.ConnectivityURL
	}
	if fc.ConnectivityTimeoutSeconds > 0 {
		base.ConnectivityTimeoutSeconds = fc.ConnectivityTimeoutSeconds
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blanks.
func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
