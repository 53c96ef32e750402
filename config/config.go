package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Providers ProvidersConfig
	Detection DetectionConfig
	Stripe    StripeConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Rewrite   RewriteConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

// ProvidersConfig holds the process-level LLM API keys. Callers may override
// these per session via /api/set-keys.
type ProvidersConfig struct {
	OpenAIKey     string
	AnthropicKey  string
	DeepSeekKey   string
	PerplexityKey string
}

type DetectionConfig struct {
	GPTZeroKey string
	BaseURL    string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

// RedisConfig is optional; with an empty Addr the API key store falls back to
// process memory.
type RedisConfig struct {
	Addr     string
	Password string
}

// StorageConfig is optional; with an empty Endpoint uploaded originals are not
// copied to object storage.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type RewriteConfig struct {
	ChunkWords     int // window size for long-text chunking
	ChunkThreshold int // word count above which chunking kicks in
	CreditsPerWord int64
}

func Load() *Config {
	// Missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8090"),
			Env:          getEnv("APP_ENV", "development"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 180 * time.Second, // LLM calls can be slow
			CORSOrigins:  []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DATABASE_URL", "host=localhost user=rescribe password=rescribe dbname=rescribe port=5432 sslmode=disable"),
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret:  getEnv("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  time.Hour,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "rescribe",
		},
		Providers: ProvidersConfig{
			OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
			AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
			DeepSeekKey:   os.Getenv("DEEPSEEK_API_KEY"),
			PerplexityKey: os.Getenv("PERPLEXITY_API_KEY"),
		},
		Detection: DetectionConfig{
			GPTZeroKey: os.Getenv("GPTZERO_API_KEY"),
			BaseURL:    getEnv("GPTZERO_BASE_URL", "https://api.gptzero.me"),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Storage: StorageConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnv("MINIO_BUCKET", "rescribe-documents"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Rewrite: RewriteConfig{
			ChunkWords:     getEnvInt("CHUNK_WORDS", 500),
			ChunkThreshold: getEnvInt("CHUNK_THRESHOLD", 500),
			CreditsPerWord: int64(getEnvInt("CREDITS_PER_WORD", 1)),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
