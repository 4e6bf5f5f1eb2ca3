package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	S3       S3Config
	Email    EmailConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessExpiryHours  int
	RefreshExpiryHours int
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type NotifyConfig struct {
	// Schedule is a cron expression; default fires daily at 01:00 UTC.
	Schedule string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_ACCESS_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 48)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AWS_S3_ENDPOINT", "s3.amazonaws.com")
	viper.SetDefault("AWS_S3_USE_SSL", true)
	viper.SetDefault("SMTP_HOST", "127.0.0.1")
	viper.SetDefault("SMTP_PORT", 1025)
	viper.SetDefault("EMAIL_FROM", "no-reply@example.com")
	viper.SetDefault("NOTIFY_SCHEDULE", "0 1 * * *")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			AccessSecret:       viper.GetString("JWT_ACCESS_SECRET"),
			RefreshSecret:      viper.GetString("JWT_REFRESH_SECRET"),
			AccessExpiryHours:  viper.GetInt("JWT_ACCESS_EXPIRY_HOURS"),
			RefreshExpiryHours: viper.GetInt("JWT_REFRESH_EXPIRY_HOURS"),
		},
		S3: S3Config{
			Endpoint:  viper.GetString("AWS_S3_ENDPOINT"),
			Region:    viper.GetString("AWS_REGION"),
			Bucket:    viper.GetString("AWS_S3_BUCKET"),
			AccessKey: viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
			UseSSL:    viper.GetBool("AWS_S3_USE_SSL"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Notify: NotifyConfig{
			Schedule: viper.GetString("NOTIFY_SCHEDULE"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate fails fast at startup on missing required values instead of at
// first use.
func (c *Config) Validate() error {
	required := map[string]string{
		"DB_HOST":            c.Database.Host,
		"DB_NAME":            c.Database.Name,
		"DB_USER":            c.Database.User,
		"JWT_ACCESS_SECRET":  c.JWT.AccessSecret,
		"JWT_REFRESH_SECRET": c.JWT.RefreshSecret,
		"AWS_REGION":         c.S3.Region,
		"AWS_S3_BUCKET":      c.S3.Bucket,
	}

	for key, value := range required {
		if value == "" {
			return fmt.Errorf("missing required config %s", key)
		}
	}

	return nil
}
