package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers accepted by Config.Storage.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config represents the application configuration structure.
// Every value can be set in the yaml file and overridden through the environment.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
	} `yaml:"http"`

	Storage struct {
		// Driver selects the document store backend: postgres or memory
		Driver string `env:"STORAGE_DRIVER" env-default:"postgres" yaml:"driver"`
	} `yaml:"storage"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"cookbook" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis backs the request rate limiter. An empty URL disables rate limiting.
	Redis struct {
		URL          string        `env:"REDIS_URL" env-default:"" yaml:"url"`
		PoolSize     int           `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
		DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s" yaml:"readTimeout"`
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s" yaml:"writeTimeout"`
	} `yaml:"redis"`

	RateLimit struct {
		// Window is the length of one fixed counting window
		Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m" yaml:"window"`
		// Limit is the number of requests a client may issue per window
		Limit int64 `env:"RATE_LIMIT_LIMIT" env-default:"120" yaml:"limit"`
		// RateLimit is the number of ratings a client may submit per window
		RateLimit int64 `env:"RATE_LIMIT_RATINGS" env-default:"10" yaml:"ratings"`
		// KeyPrefix namespaces the counters in redis
		KeyPrefix string `env:"RATE_LIMIT_KEY_PREFIX" env-default:"cookbook:ratelimit" yaml:"keyPrefix"`
	} `yaml:"rateLimit"`

	// JWT holds the RSA key pair used to sign and verify bearer tokens
	JWT struct {
		PrivateKey string        `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		PublicKey  string        `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		TTL        time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	Credential struct {
		// BcryptCost is the work factor of password hashes
		BcryptCost int `env:"CREDENTIAL_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
	} `yaml:"credential"`

	// Catalog tunes the catalog services
	Catalog struct {
		// TopRatedLimit is the number of recipes returned in the global stats
		TopRatedLimit uint `env:"CATALOG_TOP_RATED_LIMIT" env-default:"10" yaml:"topRatedLimit"`
		// RateMaxAttempts bounds the compare-and-set retries when applying a rating
		RateMaxAttempts int `env:"CATALOG_RATE_MAX_ATTEMPTS" env-default:"5" yaml:"rateMaxAttempts"`
		// DefaultListLimit is used when a capped listing is requested without a limit
		DefaultListLimit uint `env:"CATALOG_DEFAULT_LIST_LIMIT" env-default:"10" yaml:"defaultListLimit"`
	} `yaml:"catalog"`

	Worker struct {
		// MaxWorkers is the number of concurrent jobs on the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// FavoriteSyncInterval is how often favorite counters are reconciled
		FavoriteSyncInterval time.Duration `env:"WORKER_FAVORITE_SYNC_INTERVAL" env-default:"15m" yaml:"favoriteSyncInterval"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Default returns a Config filled from env-default tags and the environment only.
func Default() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
