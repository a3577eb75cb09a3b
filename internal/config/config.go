package config

import (
	"errors"
	"fmt"
	"os"
)

// RootCertPath is where the database root CA certificate must live when
// DB_USE_SSL is enabled. The file has to exist before the server boots.
const RootCertPath = "./cert/root-ca.pem"

const (
	defaultSQLitePath = "./communify.db"
	defaultPort       = "8080"
	defaultLogLevel   = "info"
)

// Config holds everything the server reads from the environment. DBHost
// selects the engine: when it is set the server talks to PostgreSQL,
// otherwise it falls back to a local SQLite file.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	UseSSL     bool
	SQLitePath string
	Port       string
	LogLevel   string
}

// Load reads the environment once and validates it eagerly, so a broken
// configuration stops the process at boot instead of surfacing inside a
// request handler.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		UseSSL:     os.Getenv("DB_USE_SSL") == "true",
		SQLitePath: os.Getenv("DATABASE"),
		Port:       os.Getenv("PORT"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = defaultSQLitePath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if cfg.DBHost != "" {
		if cfg.DBPort == "" {
			return nil, errors.New("config: DB_HOST is set but DB_PORT is not")
		}
		if cfg.DBUser == "" {
			return nil, errors.New("config: DB_HOST is set but DB_USER is not")
		}
		if cfg.DBPassword == "" {
			return nil, errors.New("config: DB_HOST is set but DB_PASSWORD is not")
		}
		if cfg.DBName == "" {
			return nil, errors.New("config: DB_HOST is set but DB_NAME is not")
		}
	}
	if cfg.UseSSL && !fileExists(RootCertPath) {
		return nil, fmt.Errorf("config: DB_USE_SSL is enabled but %s does not exist", RootCertPath)
	}
	return cfg, nil
}

// UsePostgres reports whether the PostgreSQL engine is selected.
func (c *Config) UsePostgres() bool { return c.DBHost != "" }

// Addr is the address the HTTP server listens on.
func (c *Config) Addr() string { return ":" + c.Port }

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	if c.UseSSL {
		return dsn + " sslmode=verify-ca sslrootcert=" + RootCertPath
	}
	return dsn + " sslmode=disable"
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
