package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultStorageKey is the key the whole dataset is stored under
	DefaultStorageKey = "software-abogados-data"
	// DefaultStorageVersion is the document format version accepted on load
	DefaultStorageVersion = "1.0.0"
)

// Store driver names accepted in STORE_DRIVER
const (
	StoreDriverNone   = "none"
	StoreDriverMemory = "memory"
	StoreDriverFile   = "file"
	StoreDriverSQLite = "sqlite"
	StoreDriverR2     = "r2"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Persistence
	StoreDriver    string
	DataDir        string
	DBPath         string
	StorageKey     string
	StorageVersion string
	// Simulated transport
	SimulateLatency bool
	LatencyScale    float64
	FailureRate     float64
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Agenda digest
	AgendaInterval time.Duration
	AgendaCron     string // cron expression, takes precedence over AgendaInterval when set
	AgendaTimezone string
	// Other
	WriteRateLimit   int // mutating requests per minute per client, 0 disables
	AllowedOrigins   []string
	TursoDatabaseURL string
	TursoAuthToken   string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       environment,
		AppURL:            getEnv("APP_URL", "http://localhost:8080"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreDriverFile)),
		DataDir:           getEnv("DATA_DIR", "data"),
		DBPath:            getEnv("DB_PATH", "db/app.db"),
		StorageKey:        getEnv("STORAGE_KEY", DefaultStorageKey),
		StorageVersion:    getEnv("STORAGE_VERSION", DefaultStorageVersion),
		SimulateLatency:   getEnvBool("SIMULATE_LATENCY", environment != "production"),
		LatencyScale:      getEnvFloat("LATENCY_SCALE", 1.0),
		FailureRate:       getEnvFloat("FAILURE_RATE", 0.05),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@expedientes.local"),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "Expedientes"),
		EmailTestMode:     getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AgendaInterval:    getEnvDuration("AGENDA_INTERVAL", time.Hour),
		AgendaCron:        getEnv("AGENDA_CRON", ""),
		AgendaTimezone:    getEnv("AGENDA_TIMEZONE", "America/Argentina/Buenos_Aires"),
		WriteRateLimit:    getEnvInt("WRITE_RATE_LIMIT", 120),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		TursoDatabaseURL:  getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:    getEnv("TURSO_AUTH_TOKEN", ""),
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
	}

	if err := cfg.Validate(); err != nil {
		if environment == "production" {
			log.Fatalf("[CRITICAL] %v", err)
		}
		log.Printf("[WARNING] %v", err)
	}

	return cfg
}

// Validate checks the settings that would otherwise fail late at runtime
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverNone, StoreDriverMemory, StoreDriverFile, StoreDriverSQLite:
	case StoreDriverR2:
		if !c.R2Configured() {
			return errInvalid("STORE_DRIVER=r2 requires R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_BUCKET_NAME")
		}
	default:
		return errInvalid("unknown STORE_DRIVER " + strconv.Quote(c.StoreDriver))
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return errInvalid("FAILURE_RATE must be between 0 and 1")
	}
	if c.LatencyScale < 0 {
		return errInvalid("LATENCY_SCALE must not be negative")
	}
	return nil
}

// R2Configured reports whether every R2 credential is present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

type configError string

func (e configError) Error() string { return "invalid configuration: " + string(e) }

func errInvalid(msg string) error { return configError(msg) }

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("[WARNING] Invalid value for %s: %q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
