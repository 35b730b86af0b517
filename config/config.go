package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DefaultEventHistorySize = 100
	DefaultHousekeepingRole = "housekeeping"
)

var DefaultPaymentMethods = []string{"cash", "card", "transfer"}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name         string `envconfig:"APP_NAME"`
		Timezone     string `envconfig:"TIMEZONE"`
		SeedDemoData bool   `envconfig:"SEED_DEMO_DATA"`
		CORS         struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Event struct {
		HistorySize int `envconfig:"HISTORY_SIZE"`
	} `envconfig:"EVENT"`

	Housekeeping struct {
		Role string `envconfig:"ROLE"`
	} `envconfig:"HOUSEKEEPING"`

	Checkout struct {
		PaymentMethods []string `envconfig:"PAYMENT_METHODS"`
	} `envconfig:"CHECKOUT"`

	Cache struct {
		Redis struct {
			Primary struct {
				Enable   bool   `envconfig:"ENABLE"`
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		Topic         string   `envconfig:"TOPIC"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// ApplyDefaults fills zero values that the domain services rely on.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "frontdesk"
	}

	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}

	if c.Event.HistorySize <= 0 {
		c.Event.HistorySize = DefaultEventHistorySize
	}

	if c.Housekeeping.Role == "" {
		c.Housekeeping.Role = DefaultHousekeepingRole
	}

	if len(c.Checkout.PaymentMethods) == 0 {
		c.Checkout.PaymentMethods = DefaultPaymentMethods
	}

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "frontdesk.events"
	}
}

// Default returns a configuration with defaults only, without touching the environment.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()

	return cfg
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf.ApplyDefaults()
		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
