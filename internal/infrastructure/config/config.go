package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/libdough/openvolunteer/internal/shared/config"
)

type Config struct {
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Maintenance sharedConfig.MaintenanceConfig `mapstructure:"maintenance"`
	TagTickets  sharedConfig.TagTicketsConfig  `mapstructure:"tag_tickets"`
	Scheduler   sharedConfig.SchedulerConfig   `mapstructure:"scheduler"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("OPENVOLUNTEER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine; defaults plus env cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "openvolunteer_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Maintenance defaults
	viper.SetDefault("maintenance.stale_days", 10)
	viper.SetDefault("maintenance.stale_statuses", []string{"inprogress", "blocked"})
	viper.SetDefault("maintenance.cancel_buffer_days", 3)
	viper.SetDefault("maintenance.retention_days", 30)

	// Tag ticket job defaults (disabled until configured)
	viper.SetDefault("tag_tickets.enabled", false)
	viper.SetDefault("tag_tickets.tag_name", "")
	viper.SetDefault("tag_tickets.template_name", "")
	viper.SetDefault("tag_tickets.org_slugs", []string{})
	viper.SetDefault("tag_tickets.limit", 0)

	// Scheduler defaults
	viper.SetDefault("scheduler.maintenance_interval_hours", 24)
	viper.SetDefault("scheduler.tag_tickets_interval_minutes", 15)
}
