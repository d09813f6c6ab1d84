package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	URL             string
	DbHOST          string
	DbPORT          string
	DbUSER          string
	DbPASSWORD      string
	DbNAME          string
	DbSSLMODE       string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

// DSN returns DATABASE_URL, or a postgres URL built from the DB_* parts when only
// DB_HOST is given. Empty means no database is configured.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.DbHOST == "" {
		return ""
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.DbUSER, d.DbPASSWORD),
		Host:     d.DbHOST + ":" + d.DbPORT,
		Path:     "/" + d.DbNAME,
		RawQuery: "sslmode=" + d.DbSSLMODE,
	}
	return u.String()
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Cache struct {
	TTL        time.Duration
	MaxEntries int
}

type AI struct {
	Provider       string
	Model          string
	GeminiAPIKey   string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	Timeout        time.Duration
	MaxTokens      int
	Temperature    float64
	RatePerHour    int
	// TrustedProxies lists CIDR ranges whose X-Forwarded-For header is believed
	// when keying the assistant rate limit.
	TrustedProxies []string
}

// APIKey returns the key for the selected provider.
func (a AI) APIKey() string {
	switch a.ResolvedProvider() {
	case "gemini":
		return a.GeminiAPIKey
	case "openai":
		return a.OpenAIAPIKey
	}
	return ""
}

// ResolvedProvider picks AI_PROVIDER if set, otherwise whichever key is present,
// preferring Gemini.
func (a AI) ResolvedProvider() string {
	if a.Provider != "" {
		return strings.ToLower(a.Provider)
	}
	if a.GeminiAPIKey != "" {
		return "gemini"
	}
	if a.OpenAIAPIKey != "" {
		return "openai"
	}
	return ""
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	URLExpiry  time.Duration
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	ServerPort      int
	ShutdownTimeout time.Duration
	Log             Log
	DB              DB
	Redis           Redis
	Cache           Cache
	AI              AI
	MinIO           MinIO
	Kafka           Kafka
	MaxUploadSize   int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseDuration accepts Go durations plus a day suffix ("7d").
func parseDuration(value string, fallback time.Duration) time.Duration {
	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			return time.Duration(n) * 24 * time.Hour
		}
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		URL:             getEnv("DATABASE_URL", ""),
		DbHOST:          getEnv("DB_HOST", ""),
		DbPORT:          getEnv("DB_PORT", "5432"),
		DbUSER:          getEnv("DB_USER", "postgres"),
		DbPASSWORD:      getEnv("DB_PASSWORD", ""),
		DbNAME:          getEnv("DB_NAME", "womenhub"),
		DbSSLMODE:       getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: parseDuration(getEnv("DB_CONN_MAX_LIFETIME", "30m"), 30*time.Minute),
		QueryTimeout:    parseDuration(getEnv("DB_QUERY_TIMEOUT", "30s"), 30*time.Second),
	}
}

func LoadRedis() Redis {
	return Redis{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func LoadAI() AI {
	return AI{
		Provider:       getEnv("AI_PROVIDER", ""),
		Model:          getEnv("AI_MODEL", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Timeout:        parseDuration(getEnv("AI_TIMEOUT", "30s"), 30*time.Second),
		MaxTokens:      getEnvAsInt("AI_MAX_TOKENS", 300),
		Temperature:    getEnvAsFloat("AI_TEMPERATURE", 0.7),
		RatePerHour:    getEnvAsInt("AI_RATE_PER_HOUR", 50),
		TrustedProxies: getEnvList("TRUSTED_PROXIES"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "stories"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		URLExpiry:  parseDuration(getEnv("MINIO_URL_EXPIRY", "7d"), 7*24*time.Hour),
	}
}

func LoadKafka() Kafka {
	return Kafka{
		Brokers: getEnvList("KAFKA_BROKERS"),
		Topic:   getEnv("KAFKA_TOPIC", "womenhub.events"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		DB:    LoadDB(),
		Redis: LoadRedis(),
		Cache: Cache{
			TTL:        parseDuration(getEnv("CACHE_TTL", "5m"), 5*time.Minute),
			MaxEntries: getEnvAsInt("CACHE_MAX_ENTRIES", 1000),
		},
		AI:            LoadAI(),
		MinIO:         LoadMinIO(),
		Kafka:         LoadKafka(),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "5242880")),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 5 * 1024 * 1024
	}
	return size
}

// Credential is one entry of the credential presence report printed by hubctl.
type Credential struct {
	Name string
	Set  bool
}

// Credentials lists the optional secrets the platform reads, in display order.
func (c *Config) Credentials() []Credential {
	return []Credential{
		{Name: "DATABASE_URL", Set: c.DB.DSN() != ""},
		{Name: "GEMINI_API_KEY", Set: c.AI.GeminiAPIKey != ""},
		{Name: "OPENAI_API_KEY", Set: c.AI.OpenAIAPIKey != ""},
		{Name: "AI_MODEL", Set: c.AI.Model != ""},
		{Name: "REDIS_ADDR", Set: c.Redis.Addr != ""},
		{Name: "MINIO_ENDPOINT", Set: c.MinIO.Endpoint != ""},
		{Name: "KAFKA_BROKERS", Set: len(c.Kafka.Brokers) > 0},
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
