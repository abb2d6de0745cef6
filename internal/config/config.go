// Package config provides configuration management for the swimbase
// application.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Data    DataConfig    `mapstructure:"data" validate:"required"`
	Service ServiceConfig `mapstructure:"service"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// DataConfig points at the on-disk inputs: the meet result files and the
// time standard cutoff tables.
type DataConfig struct {
	MeetResultsDir   string `mapstructure:"meet_results_dir" validate:"required,dir"`
	TimeStandardsDir string `mapstructure:"time_standards_dir" validate:"omitempty,dir"`
}

// ServiceConfig represents query-layer tuning knobs
type ServiceConfig struct {
	BestTimeCacheTTLSeconds int `mapstructure:"best_time_cache_ttl_seconds" validate:"gte=0"`
	DefaultNumRelays        int `mapstructure:"default_num_relays" validate:"gt=0"`
}

// MetricsConfig represents Prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
