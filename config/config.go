package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tapp-eng/campaign-core/model"
)

// ServerListen for one listening socket
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String ...
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ListenString ...
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// ServerConfig for configuring the HTTP server
type ServerConfig struct {
	HTTP ServerListen `mapstructure:"http"`
}

// CacheConfig for the in-process campaign cache
type CacheConfig struct {
	SizeMB     int `mapstructure:"size_mb"`
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// TTL ...
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// AMQPConfig for the notification broker. Disabled when URL is empty, in
// which case notifications fall back to the log.
type AMQPConfig struct {
	URL   string `mapstructure:"url"`
	Queue string `mapstructure:"queue"`
}

// Enabled ...
func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// LifecycleConfig for the status sweep loop
type LifecycleConfig struct {
	TickSeconds int `mapstructure:"tick_seconds"`
}

// TickInterval ...
func (c LifecycleConfig) TickInterval() time.Duration {
	if c.TickSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.TickSeconds) * time.Second
}

// AuditConfig for activity trail retention
type AuditConfig struct {
	RetentionDays int `mapstructure:"retention_days"`
}

// Retention ...
func (c AuditConfig) Retention() time.Duration {
	days := c.RetentionDays
	if days <= 0 {
		days = 90
	}
	return time.Duration(days) * 24 * time.Hour
}

// DefaultsConfig overrides the built-in campaign defaults. Zero values keep
// the built-in value.
type DefaultsConfig struct {
	SelectionLimit int    `mapstructure:"selection_limit"`
	SelectionMin   int    `mapstructure:"selection_min"`
	EditPolicy     string `mapstructure:"edit_policy"`
	MinQuantity    int    `mapstructure:"min_quantity"`
	MaxQuantity    int    `mapstructure:"max_quantity"`
	ReminderHours  int    `mapstructure:"reminder_hours"`
}

// CampaignDefaults ...
func (c DefaultsConfig) CampaignDefaults() model.CampaignDefaults {
	defaults := model.DefaultCampaignDefaults()
	if c.SelectionLimit > 0 {
		defaults.SelectionLimit = c.SelectionLimit
	}
	if c.SelectionMin > 0 {
		defaults.SelectionMin = c.SelectionMin
	}
	if c.EditPolicy != "" {
		defaults.EditPolicy = model.EditPolicy(c.EditPolicy)
	}
	if c.MinQuantity > 0 {
		defaults.MinQuantity = c.MinQuantity
	}
	if c.MaxQuantity > 0 {
		defaults.MaxQuantity = c.MaxQuantity
	}
	if c.ReminderHours > 0 {
		defaults.ReminderHours = c.ReminderHours
	}
	return defaults
}

// Config ...
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	MySQL     MySQLConfig     `mapstructure:"mysql"`
	Log       LogConfig       `mapstructure:"log"`
	Jaeger    JaegerConfig    `mapstructure:"jaeger"`
	Cache     CacheConfig     `mapstructure:"cache"`
	AMQP      AMQPConfig      `mapstructure:"amqp"`
	Lifecycle LifecycleConfig `mapstructure:"lifecycle"`
	Audit     AuditConfig     `mapstructure:"audit"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

func loadConfigFile(filename string) Config {
	vip := viper.New()
	vip.SetConfigFile(filename)
	vip.SetEnvPrefix("campaign")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory
func Load() Config {
	return loadConfigFile("config.yml")
}

// LoadTestConfig reads config.test.yml from the module root
func LoadTestConfig(rootDir string) Config {
	return loadConfigFile(filepath.Join(rootDir, "config.test.yml"))
}
