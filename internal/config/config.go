package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Values come from an optional YAML file
// and are then overridden by environment variables.
type Config struct {
	DBPath         string `yaml:"db_path"`
	MigrationsPath string `yaml:"migrations_path"` // empty uses the embedded schema
	ServerPort     string `yaml:"server_port"`
	LogLevel       string `yaml:"log_level"`  // debug, info, warn, error
	MaxUpload      string `yaml:"max_upload"` // echo BodyLimit syntax, e.g. "2M"
}

func defaults() *Config {
	return &Config{
		DBPath:     "./data/xss-labs.db",
		ServerPort: ":8080",
		LogLevel:   "info",
		MaxUpload:  "2M",
	}
}

// Load reads filePath (if it exists) and applies the environment on top.
func Load(filePath string) (*Config, error) {
	cfg := defaults()

	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.DBPath = GetEnv("DB_PATH", cfg.DBPath)
	cfg.MigrationsPath = GetEnv("MIGRATIONS_PATH", cfg.MigrationsPath)
	cfg.ServerPort = normalizePort(GetEnv("SERVER_PORT", cfg.ServerPort))
	cfg.LogLevel = GetEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MaxUpload = GetEnv("MAX_UPLOAD", cfg.MaxUpload)

	return cfg, nil
}

// GetEnv devolve a variável de ambiente key, ou fallback se não estiver definida.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// normalizePort accepts "8080" as well as ":8080".
func normalizePort(p string) string {
	if _, err := strconv.Atoi(p); err == nil {
		return ":" + p
	}
	return p
}
