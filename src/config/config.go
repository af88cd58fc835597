// src/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Model    ModelConfig    `mapstructure:"model"`
	Likert   LikertConfig   `mapstructure:"likert"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
	StaticDir      string `mapstructure:"static_dir"`
}

// DatasetConfig points at the labelled training CSV.
type DatasetConfig struct {
	Path        string `mapstructure:"path"`
	LabelColumn string `mapstructure:"label_column"`
}

type ModelConfig struct {
	Algorithm       string  `mapstructure:"algorithm"`
	TestSize        float64 `mapstructure:"test_size"`
	Seed            int64   `mapstructure:"seed"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds"`
}

// CacheTTL returns the prediction cache expiry.
func (m ModelConfig) CacheTTL() time.Duration {
	return time.Duration(m.CacheTTLSeconds) * time.Second
}

// LikertConfig lists the answer labels in scale order with their ordinals.
type LikertConfig struct {
	Levels []LikertLevel `mapstructure:"levels"`
}

type LikertLevel struct {
	Label string `mapstructure:"label"`
	Value int    `mapstructure:"value"`
}

type DatabaseConfig struct {
	Mongo MongoConfig `mapstructure:"mongo"`
	Redis RedisConfig `mapstructure:"redis"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// Enabled reports whether submission history goes to MongoDB.
func (m MongoConfig) Enabled() bool {
	return m.URI != ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"`
	AdminUsername     string `mapstructure:"admin_username"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
	TokenTTLHours     int    `mapstructure:"token_ttl_hours"`
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
