package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Database DatabaseConfig  `toml:"database"`
	Salon    SalonConfig     `toml:"salon"`
	Slots    SlotsConfig     `toml:"slots"`
	Services []ServiceConfig `toml:"services"`
	Stylists []StylistConfig `toml:"stylists"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки PostgreSQL
// Хранилище опционально: без него сохранение выбора пользователя отключено
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	MigrateOnStart  bool   `toml:"migrate_on_start"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq, значения в кавычках
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSN(d.Host), d.Port, quoteDSN(d.User), quoteDSN(d.Password), quoteDSN(d.DBName), quoteDSN(d.SSLMode))
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSN(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// SalonConfig данные салона, попадающие в экспорт календаря
type SalonConfig struct {
	Name        string `toml:"name"`
	Location    string `toml:"location"`
	Timezone    string `toml:"timezone"`
	ProductID   string `toml:"product_id"`
	ProviderURL string `toml:"provider_url"`
}

// LoadLocation возвращает часовой пояс салона
func (s SalonConfig) LoadLocation() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// SlotsConfig сетка временных слотов
type SlotsConfig struct {
	StartHour     int   `toml:"start_hour"`
	EndHour       int   `toml:"end_hour"`
	StepMinutes   int   `toml:"step_minutes"`
	ExcludedHours []int `toml:"excluded_hours"`
}

// ServiceConfig услуга каталога
type ServiceConfig struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	DurationMinutes int     `toml:"duration_minutes"`
	PriceEUR        float64 `toml:"price_eur"`
}

// StylistConfig мастер салона
type StylistConfig struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	AvatarURL string `toml:"avatar_url"`
}

// LoadDotEnv загружает переменные окружения из .env файлов
// Уже заданные переменные не перезаписываются, отсутствующий файл не является ошибкой
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	return finalize(&cfg)
}

// Parse разбирает конфигурацию из строки (используется в тестах и для встроенных конфигов)
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}

	return finalize(&cfg)
}

func finalize(cfg *Config) (*Config, error) {
	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv переопределяет секреты и адреса переменными окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc-salon-booking"
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Salon.Name == "" {
		cfg.Salon.Name = "Salon"
	}
	if cfg.Salon.Location == "" {
		cfg.Salon.Location = "Salon Downtown, Timișoara"
	}
	if cfg.Salon.ProductID == "" {
		cfg.Salon.ProductID = "-//Salon Demo//EN"
	}
	if cfg.Salon.ProviderURL == "" {
		cfg.Salon.ProviderURL = "https://calendar.google.com/calendar/render"
	}

	// Пустая секция slots означает стандартный график: 10:00-19:40 шагом 20 минут, обед в 13
	if cfg.Slots.StartHour == 0 && cfg.Slots.EndHour == 0 && cfg.Slots.StepMinutes == 0 {
		cfg.Slots = SlotsConfig{
			StartHour:     10,
			EndHour:       19,
			StepMinutes:   20,
			ExcludedHours: []int{13},
		}
	}

	if len(cfg.Services) == 0 {
		cfg.Services = []ServiceConfig{
			{ID: "cut", Name: "Haircut", DurationMinutes: 45, PriceEUR: 25},
			{ID: "color", Name: "Color", DurationMinutes: 90, PriceEUR: 55},
			{ID: "style", Name: "Blow-dry & Style", DurationMinutes: 40, PriceEUR: 20},
			{ID: "beard", Name: "Beard Trim", DurationMinutes: 20, PriceEUR: 12},
		}
	}
	if len(cfg.Stylists) == 0 {
		cfg.Stylists = []StylistConfig{
			{ID: "ana", Name: "Ana Pop", AvatarURL: "https://api.dicebear.com/9.x/thumbs/svg?seed=Ana"},
			{ID: "ion", Name: "Ion Ionescu", AvatarURL: "https://api.dicebear.com/9.x/thumbs/svg?seed=Ion"},
			{ID: "maria", Name: "Maria Luca", AvatarURL: "https://api.dicebear.com/9.x/thumbs/svg?seed=Maria"},
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := c.Salon.LoadLocation(); err != nil {
		return fmt.Errorf("%w: salon.timezone=%q: %v", ErrInvalidConfig, c.Salon.Timezone, err)
	}

	if c.Slots.StartHour < 0 || c.Slots.StartHour > 23 || c.Slots.EndHour < 0 || c.Slots.EndHour > 23 {
		return fmt.Errorf("%w: slots hours must be within 0..23", ErrInvalidConfig)
	}
	if c.Slots.StepMinutes <= 0 || c.Slots.StepMinutes > 60 {
		return fmt.Errorf("%w: slots.step_minutes=%d", ErrInvalidConfig, c.Slots.StepMinutes)
	}

	seen := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("%w: service id and name are required", ErrInvalidConfig)
		}
		if s.DurationMinutes <= 0 {
			return fmt.Errorf("%w: service %q duration must be positive", ErrInvalidConfig, s.ID)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.Stylists))
	for _, s := range c.Stylists {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("%w: stylist id and name are required", ErrInvalidConfig)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: duplicate stylist id %q", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required when database is enabled", ErrInvalidConfig)
	}

	return nil
}
