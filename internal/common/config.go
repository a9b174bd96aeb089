package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Gmail      GmailConfig
	OCR        OCRConfig
	Classifier ClassifierConfig
	Worker     WorkerConfig

	ExtractorVersion string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// RedisConfig holds the durable job queue configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	QueueName string
}

// StorageConfig holds blob storage configuration. When Bucket is empty the
// filesystem store rooted at LocalDir is used instead.
type StorageConfig struct {
	Bucket   string
	Prefix   string
	LocalDir string
}

// GmailConfig holds the inbox source configuration
type GmailConfig struct {
	CredentialsFile string
	TokenFile       string
	UserID          string
	ProcessedLabel  string
	MaxResults      int64
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm  string
	Tesseract string
	DPI       int
	MaxPages  int
}

// ClassifierConfig holds the item classifier (Ollama) configuration
type ClassifierConfig struct {
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// WorkerConfig holds worker loop configuration
type WorkerConfig struct {
	ExtractWorkers     int
	ProcessTimeout     time.Duration
	SyncInterval       time.Duration
	ReconcileInterval  time.Duration
	ReconcileBatchSize int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", ""),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			QueueName: getEnv("REDIS_QUEUE", "extraction_queue"),
		},
		Storage: StorageConfig{
			Bucket:   getEnv("STORAGE_BUCKET", ""),
			Prefix:   getEnv("STORAGE_PREFIX", "inbox"),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "./data"),
		},
		Gmail: GmailConfig{
			CredentialsFile: getEnv("GMAIL_CREDENTIALS_FILE", "credentials.json"),
			TokenFile:       getEnv("GMAIL_TOKEN_FILE", "token.json"),
			UserID:          getEnv("GMAIL_USER_ID", "me"),
			ProcessedLabel:  getEnv("GMAIL_PROCESSED_LABEL", "invoice-agent/processed"),
			MaxResults:      int64(getEnvAsInt("GMAIL_MAX_RESULTS", 50)),
		},
		OCR: OCRConfig{
			Pdftoppm:  getEnv("OCR_PDFTOPPM", "pdftoppm"),
			Tesseract: getEnv("OCR_TESSERACT", "tesseract"),
			DPI:       getEnvAsInt("OCR_DPI", 200),
			MaxPages:  getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Classifier: ClassifierConfig{
			BaseURL:     getEnv("OLLAMA_BASE_URL", ""),
			Model:       getEnv("OLLAMA_MODEL", "llama3.2"),
			Temperature: getEnvAsFloat32("OLLAMA_TEMPERATURE", 0.1),
			Timeout:     getEnvAsDuration("OLLAMA_TIMEOUT", 45*time.Second),
		},
		Worker: WorkerConfig{
			ExtractWorkers:     getEnvAsInt("EXTRACT_WORKERS", 1),
			ProcessTimeout:     getEnvAsDuration("PROCESS_TIMEOUT", 3*time.Minute),
			SyncInterval:       getEnvAsDuration("SYNC_INTERVAL", 5*time.Minute),
			ReconcileInterval:  getEnvAsDuration("RECONCILE_INTERVAL", 30*time.Second),
			ReconcileBatchSize: getEnvAsInt("RECONCILE_BATCH_SIZE", 50),
		},
		ExtractorVersion: getEnv("EXTRACTOR_VERSION", "v1"),
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Worker.ReconcileBatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "RECONCILE_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
