package config

import (
	"fmt"
	"time"

	"go-farmbook/internal/shared/connection"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       App
	DB        DB
	Redis     Redis
	Kafka     Kafka
	JWT       JWT
	Dashboard Dashboard
}

type App struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port string `envconfig:"PORT" default:"3000"`
}

type DB struct {
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD"`
	Name       string `envconfig:"DB_NAME" default:"farmbook"`
	SSLMode    string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxRetries int    `envconfig:"DB_MAX_RETRIES" default:"5"`
	// MigrateOnStart applies embedded migrations before the API serves.
	MigrateOnStart bool `envconfig:"DB_MIGRATE_ON_START" default:"true"`
}

type Redis struct {
	Addr       string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	MaxRetries int    `envconfig:"REDIS_MAX_RETRIES" default:"5"`
}

type Kafka struct {
	Broker       string        `envconfig:"KAFKA_BROKER"`
	GroupID      string        `envconfig:"KAFKA_GROUP_ID" default:"go-farmbook-dashboard-cache"`
	MaxRetries   int           `envconfig:"KAFKA_MAX_RETRIES" default:"5"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"3s"`
	// RetryBackoff is the first wait after a failed cache invalidation.
	RetryBackoff    time.Duration `envconfig:"KAFKA_RETRY_BACKOFF" default:"500ms"`
	OutboxRetention time.Duration `envconfig:"OUTBOX_RETENTION" default:"168h"`
}

type JWT struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type Dashboard struct {
	CacheTTL time.Duration `envconfig:"DASHBOARD_CACHE_TTL" default:"10m"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (d DB) Connection() connection.DBConfig {
	return connection.DBConfig{
		Host:       d.Host,
		Port:       d.Port,
		User:       d.User,
		Password:   d.Password,
		Name:       d.Name,
		SSLMode:    d.SSLMode,
		MaxRetries: d.MaxRetries,
	}
}
