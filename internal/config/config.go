package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	TDX       TDXConfig       `yaml:"tdx"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Server    ServerConfig    `yaml:"server"`
	Sync      SyncConfig      `yaml:"sync"`
	LogLevel  string          `yaml:"log_level"`
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

type TDXConfig struct {
	AuthURL      string `yaml:"auth_url"`
	BaseURL      string `yaml:"base_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

type GeocodingConfig struct {
	APIKey string `yaml:"api_key"`
}

// RabbitMQConfig configures the sync-event publisher. An empty URL
// disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type SyncConfig struct {
	Interval time.Duration `yaml:"interval"`
	APIKey   string        `yaml:"api_key"`
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
	if c.TDX.AuthURL == "" {
		c.TDX.AuthURL = "https://tdx.transportdata.tw/auth/realms/TDXConnect/protocol/openid-connect/token"
	}
	if c.TDX.BaseURL == "" {
		c.TDX.BaseURL = "https://tdx.transportdata.tw/api/basic"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "lifepic"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "facility_sync"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "facility_sync_events"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 30 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
