// src/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AlgorithmGaussianNB      = "gaussian_nb"
	AlgorithmNearestCentroid = "nearest_centroid"
)

// Load reads config.yaml (and config.<APP_ENVIRONMENT>.yaml when present)
// from the given directories, then applies environment overrides.
// With no directories it searches ./configs, ../configs and the working directory.
func Load(dirs ...string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(dirs) == 0 {
		dirs = []string{"./configs", "../configs", "."}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	setDefaults(v)
	bindLegacyEnv(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName("config." + env)
	_ = v.MergeInConfig() // overlay is optional

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "career-advisor")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", "8888")
	v.SetDefault("server.allowed_origins", "*")
	v.SetDefault("server.static_dir", "./web")

	v.SetDefault("dataset.path", "CleanedData.csv")
	v.SetDefault("dataset.label_column", "Role")

	v.SetDefault("model.algorithm", AlgorithmGaussianNB)
	v.SetDefault("model.test_size", 0.3)
	v.SetDefault("model.seed", 42)
	v.SetDefault("model.cache_ttl_seconds", 3600)

	v.SetDefault("database.mongo.uri", "")
	v.SetDefault("database.mongo.database", "CareerAdvisorDB")
	v.SetDefault("database.redis.address", "")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password_hash", "")
	v.SetDefault("auth.token_ttl_hours", 24)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// bindLegacyEnv keeps the short variable names used in deployment .env files.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("server.port", "SERVER_PORT", "APP_URI")
	_ = v.BindEnv("server.allowed_origins", "SERVER_ALLOWED_ORIGINS", "ALLOWED_ORIGINS")
	_ = v.BindEnv("dataset.path", "DATASET_PATH")
	_ = v.BindEnv("database.mongo.uri", "DATABASE_MONGO_URI", "MONGO_URI")
	_ = v.BindEnv("database.redis.address", "DATABASE_REDIS_ADDRESS", "REDIS_URI")
	_ = v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET", "JWT_SECRET")
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Dataset.Path) == "" {
		return errors.New("dataset.path is required")
	}
	if cfg.Dataset.LabelColumn == "" {
		return errors.New("dataset.label_column is required")
	}
	switch cfg.Model.Algorithm {
	case AlgorithmGaussianNB, AlgorithmNearestCentroid:
	default:
		return fmt.Errorf("unknown model.algorithm %q", cfg.Model.Algorithm)
	}
	if cfg.Model.TestSize < 0 || cfg.Model.TestSize >= 1 {
		return fmt.Errorf("model.test_size must be in [0, 1), got %v", cfg.Model.TestSize)
	}
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	return nil
}
