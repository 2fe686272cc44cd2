package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type (
	Tasks struct {
		StatsRefreshInterval time.Duration `env:"BACKGROUND_STATS_REFRESH_INTERVAL" envDefault:"30s"`
	}

	HTTPServer struct {
		Port               string        `env:"PORT"`
		RequestTimeout     time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT" envDefault:"10s"`
		RateLimiterQPS     int           `env:"MIDDLEWARE_RATE_LIMIT_QPS"`   // ёмкость ведра на клиента
		RateLimiterBurst   int           `env:"MIDDLEWARE_RATE_LIMIT_BURST"` // токенов в секунду
		RateLimiterIdleTTL time.Duration `env:"MIDDLEWARE_RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
		PprofEnabled       bool          `env:"PPROF_ENABLED"`
		PprofPort          string        `env:"PPROF_PORT"`
	}

	Database struct {
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT"`
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		DBName   string `env:"POSTGRES_DB"`
		SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	}

	Pricing struct {
		BaseFare        decimal.Decimal `env:"PRICING_BASE_FARE" envDefault:"30"`
		PricePerKm      decimal.Decimal `env:"PRICING_PRICE_PER_KM" envDefault:"8"`
		PricePerKg      decimal.Decimal `env:"PRICING_PRICE_PER_KG" envDefault:"5"`
		ExtraStopCharge decimal.Decimal `env:"PRICING_EXTRA_STOP_CHARGE" envDefault:"15"`
		FallbackLegKm   decimal.Decimal `env:"PRICING_FALLBACK_LEG_KM" envDefault:"5"`
	}

	Lifecycle struct {
		StrictTransitions bool `env:"LIFECYCLE_STRICT_TRANSITIONS"`
	}

	Distance struct {
		APIKey  string        `env:"GOOGLE_MAPS_API_KEY"`
		BaseURL string        `env:"GOOGLE_MAPS_BASE_URL" envDefault:"https://maps.googleapis.com"`
		Timeout time.Duration `env:"GOOGLE_MAPS_TIMEOUT" envDefault:"5s"`
	}

	Payment struct {
		KeyID     string        `env:"RAZORPAY_KEY_ID"`
		KeySecret string        `env:"RAZORPAY_KEY_SECRET"`
		BaseURL   string        `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
		Currency  string        `env:"RAZORPAY_CURRENCY" envDefault:"INR"`
		Timeout   time.Duration `env:"RAZORPAY_TIMEOUT" envDefault:"10s"`
	}

	Auth struct {
		JWTSecret         string        `env:"AUTH_JWT_SECRET"`
		TokenTTL          time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
		AdminEmail        string        `env:"ADMIN_EMAIL"`
		AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
		BcryptCost        int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	}

	Kafka struct {
		PortHealthcheck string   `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         []string `env:"KAFKA_BROKERS" envSeparator:","`
		Topic           string   `env:"KAFKA_TOPIC" envDefault:"delivery.status.changed"`
		ConsumerGroup   string   `env:"KAFKA_CONSUMER_GROUP"`
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string        `env:"KAFKA_SARAMA_VERSION"`
		ConsumerOffsetsAutocommit bool          `env:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"`
		ProducerEnqueueTimeout    time.Duration `env:"KAFKA_PRODUCER_ENQUEUE_TIMEOUT" envDefault:"1s"`
	}

	KafkaHandlers struct {
		DeliveryStatusChanged DeliveryStatusChanged
	}

	DeliveryStatusChanged struct {
		ProcessTimeout time.Duration `env:"KAFKA_HANDLER_DELIVERY_STATUS_CHANGED_PROCESS_TIMEOUT" envDefault:"15s"`
	}

	SMTP struct {
		Host     string        `env:"SMTP_HOST"`
		Port     string        `env:"SMTP_PORT" envDefault:"587"`
		Username string        `env:"SMTP_USERNAME"`
		Password string        `env:"SMTP_PASSWORD"`
		From     string        `env:"SMTP_FROM"`
		Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Pricing   Pricing
		Lifecycle Lifecycle
		Distance  Distance
		Payment   Payment
		Auth      Auth
		Kafka     Kafka
		SMTP      SMTP
		Log       Log
	}
)

// Load читает конфиг сервиса API.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker читает конфиг воркера уведомлений: HTTP API и платежи ему не нужны.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateKafka(cfg, true); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateSMTP(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase читает только настройки Postgres, для миграций.
func LoadDatabase() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(cfg); err != nil {
		return err
	}

	if cfg.Tasks.StatsRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STATS_REFRESH_INTERVAL is required")
	}

	if cfg.Pricing.BaseFare.IsNegative() || cfg.Pricing.PricePerKm.IsNegative() ||
		cfg.Pricing.PricePerKg.IsNegative() || cfg.Pricing.ExtraStopCharge.IsNegative() {
		return errors.New("PRICING_* tariffs must be non-negative")
	}
	if !cfg.Pricing.FallbackLegKm.IsPositive() {
		return errors.New("PRICING_FALLBACK_LEG_KM must be positive")
	}

	if cfg.Payment.KeyID == "" {
		return errors.New("RAZORPAY_KEY_ID is required")
	}
	if cfg.Payment.KeySecret == "" {
		return errors.New("RAZORPAY_KEY_SECRET is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}
	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPasswordHash == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required")
	}

	return validateKafka(cfg, false)
}

func validateDatabase(cfg *Config) error {
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(cfg *Config, consumer bool) error {
	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if !consumer {
		if cfg.Kafka.Sarama.ProducerEnqueueTimeout <= 0 {
			return errors.New("KAFKA_PRODUCER_ENQUEUE_TIMEOUT must be positive")
		}
		return nil
	}

	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.DeliveryStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DELIVERY_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func validateSMTP(cfg *Config) error {
	if cfg.SMTP.Host == "" {
		return errors.New("SMTP_HOST is required")
	}
	if cfg.SMTP.From == "" {
		return errors.New("SMTP_FROM is required")
	}
	return nil
}
