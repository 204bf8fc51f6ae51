package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Warehouse WarehouseConfig `yaml:"warehouse"`
	Sources   SourcesConfig   `yaml:"sources"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	LogLevel  string          `yaml:"log_level"`
}

type WarehouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (w WarehouseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		w.Host, w.Port, w.User, w.Password, w.DBName, w.SSLMode,
	)
}

// SourcesConfig wires the four ingestion sources. The pipeline always runs
// them in this order: document store, relational, JSON file, CSV file.
type SourcesConfig struct {
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
	Relational    RelationalConfig    `yaml:"relational"`
	JSONFile      FileConfig          `yaml:"json_file"`
	CSVFile       FileConfig          `yaml:"csv_file"`
}

type DocumentStoreConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type RelationalConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

type FileConfig struct {
	Path string `yaml:"path"`
}

// RabbitMQConfig configures the persisted-publication event stream. An empty
// URL disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type ReconcileConfig struct {
	Interval time.Duration `yaml:"interval"`
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
	if c.Warehouse.Port == 0 {
		c.Warehouse.Port = 5432
	}
	if c.Warehouse.SSLMode == "" {
		c.Warehouse.SSLMode = "disable"
	}
	if c.Sources.DocumentStore.Database == "" {
		c.Sources.DocumentStore.Database = "bigdata"
	}
	if c.Sources.DocumentStore.Collection == "" {
		c.Sources.DocumentStore.Collection = "journals"
	}
	if c.Sources.Relational.Table == "" {
		c.Sources.Relational.Table = "journals"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "biblio_reconciler"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "publications"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "warehouse_publications"
	}
	if c.Reconcile.Interval == 0 {
		c.Reconcile.Interval = 24 * time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
