package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type, LOCAL or SERVER
	EnvType string `env:"ENV_TYPE" envDefault:"LOCAL"`

	// Intranet database
	DBHost          string `env:"DB_HOST,required"`
	DBUser          string `env:"DB_USER,required"`
	DBPassword      string `env:"DB_PASSWORD,required"`
	DBName          string `env:"DB_NAME,required"`
	DBPort          string `env:"DB_PORT,required"`
	DBMigrationMode string `env:"DB_MIGRATION_MODE" envDefault:"auto"` // auto, alter or drop

	// OSWEBDB calendar database, same server as the intranet database
	CalendarDBName string `env:"CALENDAR_DB_NAME" envDefault:"oswebdb"`

	// Server
	ServerPort       string   `env:"SERVER_PORT" envDefault:"8080"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080"`

	// Redis backed data proxy cache; the in-memory cache is used when disabled
	RedisEnabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	RedisHost     string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// MQTT notifications
	MQTTEnabled   bool   `env:"MQTT_ENABLED" envDefault:"false"`
	MQTTBrokerURL string `env:"MQTT_BROKER_URL" envDefault:"tcp://localhost:1883"`
	MQTTClientID  string `env:"MQTT_CLIENT_ID" envDefault:"osintranet_server"`
	MQTTUsername  string `env:"MQTT_USERNAME"`
	MQTTPassword  string `env:"MQTT_PASSWORD"`
	MQTTQoS       int    `env:"MQTT_QOS" envDefault:"1"`
	MQTTRetained  bool   `env:"MQTT_RETAINED" envDefault:"false"`

	// JWT Authentication
	JWTSecretKey string        `env:"JWT_SECRET_KEY" envDefault:"osintranet-secret-key-change-in-production"`
	JWTTTL       time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Admin
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD,required"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR" envDefault:"logs"`

	// Bookkeeping
	PostingMaxAgeDays int `env:"POSTING_MAX_AGE_DAYS" envDefault:"30"`
}

// LoadConfig loads config from the process environment based on ENV_TYPE
func LoadConfig() (*Config, error) {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			environ[key] = value
		}
	}
	return LoadConfigFrom(environ)
}

// LoadConfigFrom loads config from the given variables. Variables carrying the
// environment prefix (LOCAL_ or SERVER_) override their unprefixed counterpart.
func LoadConfigFrom(environ map[string]string) (*Config, error) {
	envType := strings.ToUpper(environ["ENV_TYPE"])
	switch envType {
	case "LOCAL", "SERVER":
	case "":
		envType = "LOCAL"
	default:
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		envType = "LOCAL"
	}
	prefix := envType + "_"

	merged := make(map[string]string, len(environ))
	for key, value := range environ {
		merged[key] = value
	}
	for key, value := range environ {
		if stripped, ok := strings.CutPrefix(key, prefix); ok && stripped != "" {
			merged[stripped] = value
		}
	}
	merged["ENV_TYPE"] = envType

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: merged}); err != nil {
		return nil, fmt.Errorf("load %s configuration: %w", envType, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfig returns the application configuration as a singleton. It panics when
// required variables are missing, the service cannot start without them.
func GetConfig() *Config {
	configOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			panic(err)
		}
		config = cfg
	})
	return config
}

func (c *Config) validate() error {
	switch c.DBMigrationMode {
	case "auto", "alter", "drop":
	default:
		return fmt.Errorf("invalid DB_MIGRATION_MODE %q", c.DBMigrationMode)
	}
	if c.MQTTQoS < 0 || c.MQTTQoS > 2 {
		return fmt.Errorf("invalid MQTT_QOS %d", c.MQTTQoS)
	}
	if c.PostingMaxAgeDays < 0 {
		return fmt.Errorf("invalid POSTING_MAX_AGE_DAYS %d", c.PostingMaxAgeDays)
	}
	return nil
}

// GetDSN returns the intranet database connection string
func (c *Config) GetDSN() string {
	return c.dsn(c.DBName)
}

// GetCalendarDSN returns the OSWEBDB connection string
func (c *Config) GetCalendarDSN() string {
	return c.dsn(c.CalendarDBName)
}

func (c *Config) dsn(database string) string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + database + "?charset=utf8mb4&parseTime=True&loc=UTC&allowNativePasswords=true&multiStatements=true&clientFoundRows=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
