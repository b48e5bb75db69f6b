package config

import (
	"fmt"
	"sync"

	"scaffold/shared/constant"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8000"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name      string `envconfig:"APP_NAME"   default:"scaffold-backend"`
		Timezone  string `envconfig:"TIMEZONE"   default:"UTC"`
		APIPrefix string `envconfig:"API_PREFIX" default:"/api"`
		CORS      struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"true"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"*"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001,http://localhost:5173,http://127.0.0.1:5173,http://localhost:8080,http://127.0.0.1:8080,http://localhost:5000,http://127.0.0.1:5000,http://localhost:4000,http://127.0.0.1:4000"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"600"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"         default:"false"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		Swagger struct {
			Enable bool `envconfig:"ENABLE" default:"true"`
		} `envconfig:"SWAGGER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	Events struct {
		BufferSize int64 `envconfig:"BUFFER_SIZE" default:"64"`
	} `envconfig:"EVENTS"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == constant.ServerEnvDevelopment
}

// RedisEnabled reports whether a primary Redis host is configured.
func (c *Config) RedisEnabled() bool {
	return c.Cache.Redis.Primary.Host != ""
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
