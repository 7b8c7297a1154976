package initializers

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	envLocal = "LOCAL"
	envProd  = "PROD"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"LOCAL"`
	Port        string `envconfig:"PORT" default:"8080"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9090"`
	LogLevel    string `envconfig:"LOG_LEVEL" required:"true"`

	PgDSN             string        `envconfig:"PG_DSN" required:"true"`
	PgMaxOpenConns    int           `envconfig:"PG_MAX_OPEN_CONNS" default:"20"`
	PgMaxIdleConns    int           `envconfig:"PG_MAX_IDLE_CONNS" default:"5"`
	PgConnMaxLifetime time.Duration `envconfig:"PG_CONN_MAX_LIFETIME" default:"30m"`

	JWTTTL            time.Duration `envconfig:"JWT_TTL" default:"2h"`
	JWTIssuer         string        `envconfig:"JWT_ISSUER" default:"self"`
	JWTPrivateKeyFile string        `envconfig:"JWT_PRIVATE_KEY_FILE"`
	JWTPublicKeyFile  string        `envconfig:"JWT_PUBLIC_KEY_FILE"`

	// первый администратор, иначе выдать роль ADMIN некому
	AdminUsername string `envconfig:"ADMIN_USERNAME"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	PprofEnabled       bool          `envconfig:"PPROF_ENABLED" default:"false"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

func startGetEnv() {
	if os.Getenv("ENVIRONMENT") == envProd {
		return
	}

	err := godotenv.Load("local.env")

	if err != nil {
		log.Fatalf("Error loading .env file")
	}
}

func loadConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Error reading config: %v", err)
	}

	return &cfg
}
