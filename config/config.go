package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Data source kinds accepted by DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataSource string
	DataPath   string
	ListenAddr string
	ThemePath  string
	Debug      bool

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	PostgresTable    string

	ChromeBin           string
	SnapshotDir         string
	SnapshotConcurrency int
	SnapshotRateMs      int
	SnapshotRetries     int
}

// Load reads the .env file (if any) and returns a populated Config.
// Variables already set in the environment take precedence over .env.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		DataSource: strings.ToLower(getEnv("DATA_SOURCE", SourceCSV)),
		DataPath:   getEnv("DATA_PATH", "./data/raw/spacex_launch_dash.csv"),
		ListenAddr: getEnv("LISTEN_ADDR", "127.0.0.1:8050"),
		ThemePath:  getEnv("THEME_PATH", ""),
		Debug:      getEnvBool("DEBUG", false),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "spacex"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "spacex"),
		PostgresDB:       getEnv("POSTGRES_DB", "launches"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTable:    getEnv("POSTGRES_TABLE", "spacex_launches"),

		ChromeBin:           getEnv("CHROME_BIN", ""),
		SnapshotDir:         getEnv("SNAPSHOT_DIR", "./output/snapshots"),
		SnapshotConcurrency: getEnvInt("SNAPSHOT_CONCURRENCY", 2),
		SnapshotRateMs:      getEnvInt("SNAPSHOT_RATE_MS", 250),
		SnapshotRetries:     getEnvInt("SNAPSHOT_RETRIES", 3),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
