package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port        string
	Host        string
	CORSOrigins []string
	GinMode     string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
	// MaxPoolSize of 0 keeps the driver default.
	MaxPoolSize int
}

// Auth configuration
type AuthConfig struct {
	TokenSecret string
}

// Payment gateway configuration
type PaymentConfig struct {
	StripeSecretKey string
	Currency        string
	// InfoClearScope controls which pending payment info is removed when a
	// payment is finalized: "all" or "user".
	InfoClearScope string
}

// Logging configuration
type LogConfig struct {
	Level       string
	Format      string
	Development bool
}

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Auth    AuthConfig
	Payment PaymentConfig
	Log     LogConfig
}

// Payment info clear scopes
const (
	ClearScopeAll  = "all"
	ClearScopeUser = "user"
)

// Default configuration values
const (
	DefaultServerPort     = "5000"
	DefaultServerHost     = ""
	DefaultMongoURI       = "mongodb://localhost:27017"
	DefaultMongoDB        = "AppertmentDB"
	DefaultAtlasHost      = "cluster0.m73tovo.mongodb.net"
	DefaultCORSOrigins    = "http://localhost:5173,http://localhost:5174"
	DefaultCurrency       = "usd"
	DefaultInfoClearScope = ClearScopeAll
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultGinMode        = "release"
	// Pagination defaults
	MaxPageSize = 100
)

// New returns a new Config populated from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", DefaultServerPort),
			Host:        getEnv("SERVER_HOST", DefaultServerHost),
			CORSOrigins: getEnvList("CORS_ORIGINS", DefaultCORSOrigins),
			GinMode:     getEnv("GIN_MODE", DefaultGinMode),
		},
		Mongo: MongoConfig{
			URI:         mongoURI(),
			Database:    getEnv("MONGO_DB", DefaultMongoDB),
			MaxPoolSize: getEnvInt("MONGO_MAX_POOL_SIZE", 0),
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		},
		Payment: PaymentConfig{
			StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			Currency:        strings.ToLower(getEnv("PAYMENT_CURRENCY", DefaultCurrency)),
			InfoClearScope:  strings.ToLower(getEnv("PAYMENT_INFO_CLEAR_SCOPE", DefaultInfoClearScope)),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", DefaultLogLevel),
			Format:      getEnv("LOG_FORMAT", DefaultLogFormat),
			Development: getEnvBool("LOG_DEVELOPMENT", false),
		},
	}
}

// Validate reports settings the server cannot run without.
func (c *Config) Validate() error {
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	switch c.Payment.InfoClearScope {
	case ClearScopeAll, ClearScopeUser:
	default:
		return fmt.Errorf("PAYMENT_INFO_CLEAR_SCOPE must be %q or %q, got %q",
			ClearScopeAll, ClearScopeUser, c.Payment.InfoClearScope)
	}
	return nil
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// mongoURI prefers MONGO_URI; otherwise an Atlas SRV URI is composed from
// DB_USER/DB_PASS when both are set. DB_NAME is accepted in place of DB_USER
// for older deployments.
func mongoURI() string {
	if uri, ok := os.LookupEnv("MONGO_URI"); ok && uri != "" {
		return uri
	}
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" {
		user = os.Getenv("DB_NAME")
	}
	if user == "" || pass == "" {
		return DefaultMongoURI
	}
	host := getEnv("DB_HOST", DefaultAtlasHost)
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
