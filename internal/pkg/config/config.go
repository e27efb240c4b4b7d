package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type (
	Tasks struct {
		StallSweepInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Storage struct {
		Driver string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Routing struct {
		OSRMURL string
		Timeout time.Duration
	}

	Telemetry struct {
		JitterKm       float64
		RateLimitQPS   float64 // на один рейс
		RateLimitBurst int
		MaxClockSkew   time.Duration // 0 - значение движка по умолчанию
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PositionReported PositionReported
	}

	PositionReported struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel  string
		Tasks     Tasks
		Server    HTTPServer
		Storage   Storage
		Database  Database
		Routing   Routing
		Telemetry Telemetry
		Kafka     Kafka
	}
)

// Load конфигурация HTTP-сервиса.
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

// LoadWorker конфигурация kafka-воркера: HTTP-часть сервиса ему не нужна.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateStorage(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateKafka(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadStorage конфигурация только хранилища, для миграций.
func LoadStorage() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateStorage(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadProducer конфигурация симулятора: нужен только доступ к топику.
func LoadProducer() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if cfg.Kafka.Brokers == "" {
		return nil, errors.New("validation: KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return nil, errors.New("validation: KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return nil, errors.New("validation: KAFKA_SARAMA_VERSION is required")
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	stallSweepInterval, err := osGetEnvDuration("BACKGROUND_STALL_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	positionReportedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_POSITION_REPORTED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	routingTimeout, err := osGetEnvDuration("ROUTING_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	jitterKm, err := osGetFloat("TELEMETRY_JITTER_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	telemetryQPS, err := osGetFloat("TELEMETRY_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	telemetryBurst, err := osGetInt("TELEMETRY_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxClockSkew, err := osGetEnvDuration("TELEMETRY_MAX_CLOCK_SKEW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = StorageDriverPostgres
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		LogLevel: logLevel,
		Tasks: Tasks{
			StallSweepInterval: stallSweepInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Storage: Storage{
			Driver: driver,
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Routing: Routing{
			OSRMURL: os.Getenv("ROUTING_OSRM_URL"),
			Timeout: routingTimeout,
		},
		Telemetry: Telemetry{
			JitterKm:       jitterKm,
			RateLimitQPS:   telemetryQPS,
			RateLimitBurst: telemetryBurst,
			MaxClockSkew:   maxClockSkew,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PositionReported: PositionReported{
					ProcessTimeout: positionReportedTimeout,
				},
			},
		},
	}, nil
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

	if err := validateStorage(cfg); err != nil {
		return err
	}

	if cfg.Tasks.StallSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STALL_SWEEP_INTERVAL is required")
	}

	if cfg.Routing.OSRMURL == "" {
		return errors.New("ROUTING_OSRM_URL is required")
	}
	if cfg.Routing.Timeout == time.Duration(0) {
		return errors.New("ROUTING_TIMEOUT is required")
	}

	if cfg.Telemetry.JitterKm < 0 {
		return errors.New("TELEMETRY_JITTER_KM must not be negative")
	}
	if cfg.Telemetry.RateLimitQPS <= 0 {
		return errors.New("TELEMETRY_RATE_LIMIT_QPS is required")
	}
	if cfg.Telemetry.RateLimitBurst == 0 {
		return errors.New("TELEMETRY_RATE_LIMIT_BURST is required")
	}
	if cfg.Telemetry.MaxClockSkew < 0 {
		return errors.New("TELEMETRY_MAX_CLOCK_SKEW must not be negative")
	}

	return nil
}

func validateStorage(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverMemory:
		return nil
	case StorageDriverPostgres:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

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

func validateKafka(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PositionReported.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_POSITION_REPORTED_PROCESS_TIMEOUT is required")
	}

	if cfg.Telemetry.RateLimitQPS <= 0 {
		return errors.New("TELEMETRY_RATE_LIMIT_QPS is required")
	}
	if cfg.Telemetry.RateLimitBurst == 0 {
		return errors.New("TELEMETRY_RATE_LIMIT_BURST is required")
	}
	if cfg.Telemetry.MaxClockSkew < 0 {
		return errors.New("TELEMETRY_MAX_CLOCK_SKEW must not be negative")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
