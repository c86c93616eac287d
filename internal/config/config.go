// Package config loads and validates the insultari configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Insults   InsultsConfig   `mapstructure:"insults"`
	Server    ServerConfig    `mapstructure:"server"`
	Widget    WidgetConfig    `mapstructure:"widget"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

type InsultsConfig struct {
	// File is the JSON document holding the whole collection.
	File string `mapstructure:"file" validate:"required"`
}

type ServerConfig struct {
	Address       string `mapstructure:"address" validate:"required"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

type WidgetConfig struct {
	// BaseURL is where insults.json is fetched from.
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts" validate:"max=10"`
}

type TemplatesConfig struct {
	// Directory overrides the embedded page and export templates.
	Directory string `mapstructure:"directory" validate:"omitempty,dir"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

// Loader reads the configuration file with viper and validates the result.
type Loader struct {
	v *viper.Viper
}

func NewConfigLoader(configFile string) (*Loader, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/insultari")
	}

	v.SetDefault("insults.file", "insults.json")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("widget.base_url", "http://localhost:8080")
	v.SetDefault("widget.retry_attempts", 2)
	v.SetDefault("outputs.directory", "outputs")
	v.SetDefault("database.port", 3306)

	// Bind database credentials to environment variables only (not from config file)
	if err := v.BindEnv("database.username", "INSULTARI_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind INSULTARI_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "INSULTARI_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind INSULTARI_DB_PASSWORD environment variable: %w", err)
	}

	return &Loader{v: v}, nil
}

func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct() > %w", err)
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return nil
}
