package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	HTTP        HTTPConfig        `yaml:"http"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Fetch       FetchConfig       `yaml:"fetch"`
	Search      SearchConfig      `yaml:"search"`
	LogLevel    string            `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig configures the optional job-event publisher. An empty URL
// disables publishing entirely.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// CredentialsConfig holds the per-integration API keys. Every key is
// optional; an absent key turns the corresponding capability into a no-op.
type CredentialsConfig struct {
	RapidAPIKey string `yaml:"rapidapi_key"`
	JoobleKey   string `yaml:"jooble_key"`
	GroqKey     string `yaml:"groq_key"`
}

type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type SearchConfig struct {
	CheckInterval time.Duration `yaml:"check_interval"`
	SummaryBatch  int           `yaml:"summary_batch"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "jobradar"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "jobs"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "job_events"
		}
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Search.CheckInterval == 0 {
		c.Search.CheckInterval = 5 * time.Minute
	}
	if c.Search.SummaryBatch == 0 {
		c.Search.SummaryBatch = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
