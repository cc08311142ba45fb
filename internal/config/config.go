package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Embedded zone database.

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	SQLite   *SQLiteConfig   `mapstructure:"sqlite"`
	Canteen  *CanteenConfig  `mapstructure:"canteen"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`
	DatabaseDriver     string        `mapstructure:"database_driver"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type CanteenConfig struct {
	Timezone           string   `mapstructure:"timezone"`
	SuperadminUsername string   `mapstructure:"superadmin_username"`
	SuperadminPassword string   `mapstructure:"superadmin_password"`
	ReceiptTitle       string   `mapstructure:"receipt_title"`
	ReceiptSubtitle    string   `mapstructure:"receipt_subtitle"`
	ReceiptFooter      []string `mapstructure:"receipt_footer"`
}

// Location resolves the canteen time zone. An empty zone means UTC.
func (c *CanteenConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load reads the YAML file at path. Every key can be overridden by an
// environment variable, e.g. api.port -> API_PORT.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Warn("config file changed, restart to apply",
			zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func (c AppConfig) Validate() error {
	var postgresRules, sqliteRules []validation.Rule
	if c.API != nil {
		switch c.API.DatabaseDriver {
		case DriverPostgres:
			postgresRules = append(postgresRules, validation.Required)
		case DriverSQLite:
			sqliteRules = append(sqliteRules, validation.Required)
		}
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.API, validation.Required),
		validation.Field(&c.Gin, validation.Required),
		validation.Field(&c.Canteen, validation.Required),
		validation.Field(&c.Postgres, postgresRules...),
		validation.Field(&c.SQLite, sqliteRules...),
	)
}

func (c APIConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.JWTSigningKey, validation.Required),
		validation.Field(&c.JWTTTL, validation.Required),
		validation.Field(&c.DatabaseDriver, validation.Required, validation.In(DriverPostgres, DriverSQLite)),
	)
}

func (c GinConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Mode, validation.Required, validation.In("debug", "release", "test")),
	)
}

func (c SQLiteConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Required),
	)
}

func (c CanteenConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Timezone, validation.By(func(_ interface{}) error {
			_, err := c.Location()
			return err
		})),
		validation.Field(&c.SuperadminUsername, validation.Required),
		validation.Field(&c.SuperadminPassword, validation.Required),
	)
}
