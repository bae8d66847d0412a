package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Detection DetectionConfig `mapstructure:"detection"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type StorageConfig struct {
	Bucket        string `mapstructure:"bucket"`
	Region        string `mapstructure:"region"`
	PresignExpiry int    `mapstructure:"presign_expiry_seconds"`
}

// DetectionConfig carries per-provider credentials and thresholds for the
// AI-content gate. A missing credential disables that modality only; the
// threshold is the AI-probability at or above which content is rejected.
type DetectionConfig struct {
	TimeoutSeconds int               `mapstructure:"timeout_seconds"`
	GPTZero        GPTZeroConfig     `mapstructure:"gptzero"`
	Sightengine    SightengineConfig `mapstructure:"sightengine"`
}

type GPTZeroConfig struct {
	APIKey    string  `mapstructure:"api_key"`
	Endpoint  string  `mapstructure:"endpoint"`
	Threshold float64 `mapstructure:"threshold"`
}

type SightengineConfig struct {
	APIUser   string  `mapstructure:"api_user"`
	APISecret string  `mapstructure:"api_secret"`
	Endpoint  string  `mapstructure:"endpoint"`
	Threshold float64 `mapstructure:"threshold"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}

	setDefaultValues()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Detection.TimeoutSeconds == 0 {
		globalConfig.Detection.TimeoutSeconds = 15
	}
	if globalConfig.Detection.GPTZero.Endpoint == "" {
		globalConfig.Detection.GPTZero.Endpoint = "https://api.gptzero.me/v2/predict/text"
	}
	if globalConfig.Detection.GPTZero.Threshold == 0 {
		globalConfig.Detection.GPTZero.Threshold = 0.65
	}
	if globalConfig.Detection.Sightengine.Endpoint == "" {
		globalConfig.Detection.Sightengine.Endpoint = "https://api.sightengine.com/1.0/check.json"
	}
	if globalConfig.Detection.Sightengine.Threshold == 0 {
		globalConfig.Detection.Sightengine.Threshold = 0.65
	}
	if globalConfig.Storage.PresignExpiry == 0 {
		globalConfig.Storage.PresignExpiry = 900
	}
}

func GetConfig() *Config {
	return &globalConfig
}
