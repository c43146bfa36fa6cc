package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"db"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Attendance AttendanceConfig `mapstructure:"attendance"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
	MaxRetries      int    `mapstructure:"max_retries"`
	RunMigrations   bool   `mapstructure:"run_migrations"`
	// StatementTimeout is sent to PostgreSQL as statement_timeout; zero leaves
	// the server default.
	StatementTimeout time.Duration `mapstructure:"statement_timeout"`
}

// DSN is always built in UTC; calendar dates are computed in Go using
// AttendanceConfig.Timezone.
func (c *DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
	if c.StatementTimeout > 0 {
		dsn += fmt.Sprintf(" statement_timeout=%d", c.StatementTimeout.Milliseconds())
	}
	return dsn
}

type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	MaxRetries int    `mapstructure:"max_retries"`
	Enabled    bool   `mapstructure:"enabled"`
}

type KafkaConfig struct {
	Brokers       []string      `mapstructure:"brokers"`
	ConsumerGroup string        `mapstructure:"consumer_group"`
	OutboxPoll    time.Duration `mapstructure:"outbox_poll"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	KioskTTL  time.Duration `mapstructure:"kiosk_ttl"`
}

type AttendanceConfig struct {
	Timezone         string        `mapstructure:"timezone"`
	StaleAfter       time.Duration `mapstructure:"stale_after"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	SweepInterval    time.Duration `mapstructure:"sweep_interval"`
	DefaultPauseKind string        `mapstructure:"default_pause_kind"`
	ResolveCacheTTL  time.Duration `mapstructure:"resolve_cache_ttl"`
	// RequestTimeout bounds every state machine and report call.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Location resolves Timezone. Validate guarantees it loads.
func (c AttendanceConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads defaults, then the config file, then FICHAJE_* env vars.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "fichaje")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.max_retries", 5)
	v.SetDefault("db.run_migrations", true)
	v.SetDefault("db.statement_timeout", "15s")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.max_retries", 5)
	v.SetDefault("redis.enabled", true)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.consumer_group", "go-fichaje-audit")
	v.SetDefault("kafka.outbox_poll", "3s")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.kiosk_ttl", "12h")

	v.SetDefault("attendance.timezone", "Europe/Madrid")
	v.SetDefault("attendance.stale_after", "14h")
	v.SetDefault("attendance.poll_interval", "30s")
	v.SetDefault("attendance.sweep_interval", "15m")
	v.SetDefault("attendance.default_pause_kind", "descanso")
	v.SetDefault("attendance.resolve_cache_ttl", "10m")
	v.SetDefault("attendance.request_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FICHAJE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("invalid config: auth.jwt_secret must be at least 16 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535")
	}
	if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
		return fmt.Errorf("invalid config: attendance.timezone %q: %w", c.Attendance.Timezone, err)
	}
	if c.Attendance.StaleAfter <= 0 {
		return fmt.Errorf("invalid config: attendance.stale_after must be positive")
	}
	if c.Attendance.PollInterval <= 0 {
		return fmt.Errorf("invalid config: attendance.poll_interval must be positive")
	}
	if c.Attendance.RequestTimeout < 0 {
		return fmt.Errorf("invalid config: attendance.request_timeout must not be negative")
	}
	return nil
}
