package config

import "fmt"

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	Debug      bool   `mapstructure:"debug"`
}

// MaintenanceConfig carries thresholds for the periodic ticket maintenance
// jobs. Supplied as configuration so operators can tune retention without a
// deploy.
type MaintenanceConfig struct {
	StaleDays        int      `mapstructure:"stale_days"`
	StaleStatuses    []string `mapstructure:"stale_statuses"`
	CancelBufferDays int      `mapstructure:"cancel_buffer_days"`
	RetentionDays    int      `mapstructure:"retention_days"`
}

// TagTicketsConfig configures the tag-driven bulk ticket creation job.
type TagTicketsConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	TagName      string   `mapstructure:"tag_name"`
	TemplateName string   `mapstructure:"template_name"`
	OrgSlugs     []string `mapstructure:"org_slugs"`
	Limit        int      `mapstructure:"limit"`
}

type SchedulerConfig struct {
	MaintenanceIntervalHours  int `mapstructure:"maintenance_interval_hours"`
	TagTicketsIntervalMinutes int `mapstructure:"tag_tickets_interval_minutes"`
}
