package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingDatabaseURI is returned when no MongoDB connection string is configured.
var ErrMissingDatabaseURI = errors.New("config: DB_URI is required")

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	MongoDB  MongoDBConfig `mapstructure:"mongodb"`
	JWT      JWTConfig     `mapstructure:"jwt"`
	Twilio   TwilioConfig  `mapstructure:"twilio"`
	Session  SessionConfig `mapstructure:"session"`
	LogLevel string        `mapstructure:"loglevel"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowedorigins"`
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// JWTConfig holds JWT-specific configuration. An empty Secret leaves the API open.
type JWTConfig struct {
	Secret    string `mapstructure:"secret"`
	ExpiresIn int    `mapstructure:"expiresin"`
}

// TwilioConfig holds inbound SMS webhook configuration. An empty AuthToken
// disables signature validation.
type TwilioConfig struct {
	AuthToken  string `mapstructure:"authtoken"`
	WebhookURL string `mapstructure:"webhookurl"`
}

// SessionConfig controls onboarding conversation state
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// envBindings maps config keys to the environment variables that feed them.
var envBindings = map[string][]string{
	"server.port":           {"PORT"},
	"server.allowedorigins": {"ALLOWED_ORIGINS"},
	"mongodb.uri":           {"DB_URI", "MONGODB_URI"},
	"mongodb.database":      {"MONGODB_DATABASE"},
	"jwt.secret":            {"JWT_SECRET"},
	"jwt.expiresin":         {"JWT_EXPIRES_IN"},
	"twilio.authtoken":      {"TWILIO_AUTH_TOKEN"},
	"twilio.webhookurl":     {"TWILIO_WEBHOOK_URL"},
	"session.ttl":           {"SESSION_TTL"},
	"loglevel":              {"LOG_LEVEL"},
}

// LoadConfig loads configuration from an optional config.yaml in path and the environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("./config")

	setDefaults(v)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.MongoDB.URI == "" {
		return nil, ErrMissingDatabaseURI
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.allowedorigins", []string{"*"})
	v.SetDefault("mongodb.database", "interactions")
	v.SetDefault("jwt.expiresin", 24*60*60) // 24 hours
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("loglevel", "info")
}
