package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Retrieval Constants
const (
	// SearchTimeout bounds a single site search request
	SearchTimeout = 10 * time.Second

	// FeedTimeout bounds a single feed fetch
	FeedTimeout = 10 * time.Second

	// MaxResultsPerSite caps how many scraped elements one site contributes
	MaxResultsPerSite = 3

	// DefaultFeedLimit is the per-feed entry count used during aggregation
	DefaultFeedLimit = 2

	// UserAgent is sent on scraping requests; sites block obvious bots
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Prompt Constants
const (
	// HistoryWindow is the number of recent turns included in a prompt
	HistoryWindow = 6

	// MaxContextItems caps how many retrieved records reach the prompt
	MaxContextItems = 5

	// HistoryFetchLimit is how much history the chat flow loads per request
	HistoryFetchLimit = 20
)

// Config holds service configuration resolved from the environment.
type Config struct {
	Port           string
	CohereAPIKey   string
	CohereModel    string
	RedisAddr      string
	RedisPass      string
	FeedCacheTTL   time.Duration
	KafkaBrokers   []string
	ChatEventTopic string
	S3Bucket       string
	S3Region       string
	S3Prefix       string
}

// Load reads configuration from environment variables, applying defaults.
// Callers are expected to have run godotenv.Load() beforehand.
func Load() Config {
	cfg := Config{
		Port:           GetEnvOrDefault("PORT", "8080"),
		CohereAPIKey:   os.Getenv("COHERE_API_KEY"),
		CohereModel:    GetEnvOrDefault("COHERE_MODEL", "command-r-08-2024"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		FeedCacheTTL:   10 * time.Minute,
		ChatEventTopic: GetEnvOrDefault("CHAT_EVENTS_TOPIC", "lexbot.messages"),
		S3Bucket:       strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Prefix:       strings.TrimSpace(os.Getenv("S3_PREFIX")),
	}

	if t := os.Getenv("FEED_CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.FeedCacheTTL = time.Duration(secs) * time.Second
		}
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.S3Prefix != "" {
		cfg.S3Prefix = strings.Trim(cfg.S3Prefix, "/") + "/"
	}

	return cfg
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
