package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"golang.org/x/crypto/bcrypt" // bcrypt exposes the legal cost bounds
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable, read exactly once at process start. The signing
// secret and bcrypt cost are required: token issuing and password hashing
// must never fall back to an implicit default.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBDriver     string // database driver: "mysql" (default) or "sqlite"
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name (or sqlite DSN)
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
	AutoMigrate  bool   // create tables at startup (sqlite/dev convenience)
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values cause
// the program to exit with a fatal log message, so a misconfigured process
// never starts serving requests.
func Load() Config {
	cfg := Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBDriver:     getenv("DB_DRIVER", "mysql"),
		DBUser:       os.Getenv("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       must("DB_NAME"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),
		AutoMigrate:  getenv("AUTO_MIGRATE", "false") == "true",
	}

	// A cost outside bcrypt's legal range would either be rejected lazily on
	// the first hash or silently replaced by the library default. Both are
	// startup-time configuration errors here.
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		log.Fatalf("BCRYPT_COST %d out of range [%d,%d]", cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.AccessTTLMin <= 0 {
		log.Fatalf("ACCESS_TOKEN_TTL_MIN must be positive, got %d", cfg.AccessTTLMin)
	}
	if cfg.DBDriver == "mysql" {
		// The DSN cannot be built without these; sqlite only needs DB_NAME.
		must("DB_USER")
		must("DB_HOST")
		must("DB_PORT")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
