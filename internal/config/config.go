package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultEnvFile = "configs/.env"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Tax      TaxConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
	GinMode     string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the postgres connection URL
func (d DatabaseConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

type TaxConfig struct {
	// AssessmentYear fixes the year used for vehicle age; 0 follows the calendar.
	AssessmentYear int
	RatesFile      string
	// StrictHSCode rejects unknown HS codes instead of falling back to "Other".
	StrictHSCode bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configs/.env (if present) and the environment
func Load() *Config {
	return LoadFrom(defaultEnvFile)
}

// LoadFrom is Load with an explicit dotenv path
func LoadFrom(envFile string) *Config {
	if err := godotenv.Load(envFile); err != nil {
		logrus.WithField("module", "config").Debugf("no %s file loaded: %v", envFile, err)
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnvString("PORT", "8080"),
			CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
			GinMode:     getEnvString("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvBool("DB_ENABLED", false),
			Host:     getEnvString("DB_HOST", "localhost"),
			Port:     getEnvString("DB_PORT", "5432"),
			User:     getEnvString("DB_USER", "postgres"),
			Password: getEnvString("DB_PASSWORD", "postgres"),
			Name:     getEnvString("DB_NAME", "postgres"),
			SSLMode:  getEnvString("DB_SSLMODE", "disable"),
		},
		Tax: TaxConfig{
			AssessmentYear: getEnvInt("ASSESSMENT_YEAR", 0),
			RatesFile:      getEnvString("RATES_FILE", ""),
			StrictHSCode:   getEnvBool("STRICT_HS_CODE", false),
		},
		Log: LogConfig{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "text"),
		},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
