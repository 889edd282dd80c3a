package store

import "fmt"

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	Driver   string         `mapstructure:"driver" yaml:"driver" default:"postgres" validate:"oneof=postgres redis memory"`
	Postgres PostgresConfig `mapstructure:"postgres" yaml:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis" yaml:"redis"`
}

type PostgresConfig struct {
	Host            string `mapstructure:"host" yaml:"host" default:"localhost"`
	User            string `mapstructure:"user" yaml:"user" default:"postgres"`
	Password        string `mapstructure:"password" yaml:"password" default:""`
	Name            string `mapstructure:"name" yaml:"name" default:"remark"`
	Port            string `mapstructure:"port" yaml:"port" default:"5432"`
	SslMode         string `mapstructure:"sslmode" yaml:"sslmode" default:"disable"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level" default:"info"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns" default:"20"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns" default:"5"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime" default:"30m"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SslMode)
}

// URL is the connection string accepted by the migration driver.
func (c PostgresConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SslMode)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr" default:"localhost:6379"`
	Username string `mapstructure:"username" yaml:"username" default:""`
	Password string `mapstructure:"password" yaml:"password" default:""`
	DB       int    `mapstructure:"db" yaml:"db" default:"0"`
	// KeyPrefix namespaces every key written by the service.
	KeyPrefix string `mapstructure:"key_prefix" yaml:"key_prefix" default:"remark"`
	// MaxRetries bounds optimistic transaction retries on contended threads.
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries" default:"16"`
}
