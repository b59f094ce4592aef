package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	BasePath    string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	CognitoUserPoolID   string
	CognitoClientID     string
	CognitoClientSecret string
	CognitoAuthority    string

	JWTIssuer   string
	JWTAudience string
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are applied first; a missing file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		BasePath:    getEnv("API_BASE_PATH", "/api"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://localhost:3000")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),

		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "todouser"),
		DBPassword: getEnv("DB_PASSWORD", "todopassword"),
		DBName:     getEnv("DB_NAME", "dbtodolistapp"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AWSRegion:          getEnv("AWS_REGION", "ap-southeast-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),

		CognitoUserPoolID:   getEnv("COGNITO_USER_POOL_ID", ""),
		CognitoClientID:     getEnv("COGNITO_CLIENT_ID", ""),
		CognitoClientSecret: getEnv("COGNITO_CLIENT_SECRET", ""),
	}

	cfg.CognitoAuthority = getEnv("COGNITO_AUTHORITY", defaultAuthority(cfg.AWSRegion, cfg.CognitoUserPoolID))
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.CognitoAuthority)
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", cfg.CognitoClientID)

	return cfg
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var missing []string
	if c.CognitoUserPoolID == "" {
		missing = append(missing, "COGNITO_USER_POOL_ID")
	}
	if c.CognitoClientID == "" {
		missing = append(missing, "COGNITO_CLIENT_ID")
	}
	if c.CognitoClientSecret == "" {
		missing = append(missing, "COGNITO_CLIENT_SECRET")
	}
	if c.JWTIssuer == "" {
		missing = append(missing, "JWT_ISSUER")
	}
	if len(missing) > 0 {
		return fmt.Errorf("cognito configuration is incomplete: missing %s", strings.Join(missing, ", "))
	}

	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return errors.New("DB_DRIVER must be one of mysql, postgres, sqlite")
	}
	return nil
}

// DSN builds the connection string for the configured driver. For sqlite,
// DB_NAME is used as the file path.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
	case "sqlite":
		return c.DBName + "?_foreign_keys=on"
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	}
}

// JWKSURL is where Cognito publishes the pool's signing keys.
func (c *Config) JWKSURL() string {
	return strings.TrimSuffix(c.CognitoAuthority, "/") + "/.well-known/jwks.json"
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func defaultAuthority(region, poolID string) string {
	if poolID == "" {
		return ""
	}
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", region, poolID)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
