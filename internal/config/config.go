package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres | mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`

	Notifications struct {
		QueueSize       int    `yaml:"queue_size"`
		Workers         int    `yaml:"workers"`
		ListLimit       int    `yaml:"list_limit"`
		AreaFanoutLimit int    `yaml:"area_fanout_limit"`
		JobTimeout      int    `yaml:"job_timeout_seconds"`
		RetentionDays   int    `yaml:"retention_days"`
		CleanupSchedule string `yaml:"cleanup_schedule"`
	} `yaml:"notifications"`

	Redis struct {
		Addr     string `yaml:"addr"` // пусто - кэш отключен
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      int    `yaml:"ttl_seconds"`
	} `yaml:"redis"`

	Kafka struct {
		Brokers []string `yaml:"brokers"` // пусто - публикация отключена
		Topic   string   `yaml:"topic"`
	} `yaml:"kafka"`

	RateLimit struct {
		MessagesPerMinute int `yaml:"messages_per_minute"`
		Burst             int `yaml:"burst"`
	} `yaml:"rate_limit"`

	Client struct {
		PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	} `yaml:"client"`
}

var AppConfig *Config

// Load читает .env, затем config.yaml (CONFIG_PATH), затем переменные окружения.
// Если DATABASE_URL задан и файла нет, конфигурация собирается только из окружения.
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist) && os.Getenv("DATABASE_URL") != "":
		log.Println("Конфигурация из переменных окружения (config.yaml не найден)")
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig - загрузка глобального конфига; ошибка завершает процесс
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// Defaults - конфигурация со значениями по умолчанию, без файла и окружения
func Defaults() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 7 * 24 * 60
	}

	n := &cfg.Notifications
	if n.QueueSize == 0 {
		n.QueueSize = 256
	}
	if n.Workers == 0 {
		n.Workers = 4
	}
	if n.ListLimit == 0 {
		n.ListLimit = 50
	}
	if n.AreaFanoutLimit == 0 {
		n.AreaFanoutLimit = 10
	}
	if n.JobTimeout == 0 {
		n.JobTimeout = 5
	}
	if n.RetentionDays == 0 {
		n.RetentionDays = 90
	}
	if n.CleanupSchedule == "" {
		n.CleanupSchedule = "@daily"
	}

	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = 60
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "notifications.created"
	}
	if cfg.RateLimit.MessagesPerMinute == 0 {
		cfg.RateLimit.MessagesPerMinute = 30
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.Client.PollIntervalSeconds == 0 {
		cfg.Client.PollIntervalSeconds = 30
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("config: database.url is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("config: jwt.secret is required")
	}
	if c.Notifications.QueueSize < 0 || c.Notifications.Workers < 0 {
		return errors.New("config: notifications.queue_size and notifications.workers must be positive")
	}
	return nil
}

// Address - адрес для http.Server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

func (c *Config) RetentionPeriod() time.Duration {
	return time.Duration(c.Notifications.RetentionDays) * 24 * time.Hour
}
