package configs

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
	// TrustedProxies lists the CIDRs or addresses whose X-Forwarded-For headers are believed.
	TrustedProxies []string
}

type Redis struct {
	Addr     string `default:"localhost:6379"`
	Password string
	DB       int
}

type Geocoder struct {
	APIKey   string
	BaseURL  string        `default:"https://maps.googleapis.com/maps/api"`
	Timeout  time.Duration `default:"5s"`
	CacheTTL time.Duration `default:"720h"`
}

type Search struct {
	RadiusMeters float64       `default:"1609"`
	PreviewCount int           `default:"4"`
	QueryTimeout time.Duration `default:"5s"`
}

type RateLimit struct {
	Requests int           `default:"10"`
	Window   time.Duration `default:"1m"`
}

type Integrations struct {
	Brewery []string `default:"untappd_web"`
}

type Config struct {
	DB           DB
	Server       Server
	Auth         Auth
	Redis        Redis
	Geocoder     Geocoder
	Search       Search
	RateLimit    RateLimit
	Integrations Integrations
}

type Auth struct {
	SecretKey string
	Audience  string
	Issuer    string
}

const envPrefix = "POURINGAT" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
