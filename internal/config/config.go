package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // Секунды
	WriteTimeout    int `toml:"write_timeout"`    // Секунды
	IdleTimeout     int `toml:"idle_timeout"`     // Секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // Секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // Секунды
}

// DSN возвращает строку подключения к базе
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политика бронирования
type BookingConfig struct {
	OpenHour  int    `toml:"open_hour"`  // Час открытия (0-23)
	CloseHour int    `toml:"close_hour"` // Час закрытия; последний бронируемый момент - CloseHour:00
	Timezone  string `toml:"timezone"`   // Зона по умолчанию для гражданского времени
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "brb-scheduling-service"
	}
	if c.Booking.OpenHour == 0 && c.Booking.CloseHour == 0 {
		c.Booking.OpenHour = domain.DefaultOpenHour
		c.Booking.CloseHour = domain.DefaultCloseHour
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = domain.DefaultTimezone
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Booking.OpenHour < 0 || c.Booking.OpenHour > 23 {
		return fmt.Errorf("config: booking.open_hour must be in [0, 23]")
	}
	if c.Booking.CloseHour < 0 || c.Booking.CloseHour > 23 {
		return fmt.Errorf("config: booking.close_hour must be in [0, 23]")
	}
	if c.Booking.OpenHour >= c.Booking.CloseHour {
		return fmt.Errorf("config: booking.open_hour must be before booking.close_hour")
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("config: unknown booking.timezone %q", c.Booking.Timezone)
	}
	return nil
}
