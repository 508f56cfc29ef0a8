package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"placesWs/internal/modules/places/application/usecase"
	"placesWs/internal/modules/places/domain"
	"placesWs/internal/modules/places/infrastructure"
)

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type ServerConfig struct {
	Port string
}

type KafkaConfig struct {
	Brokers           []string
	GroupID           string
	SearchEventsTopic string
	CatalogTopic      string
}

type SecurityConfig struct {
	JWTSecret    string
	JWTPublicKey string
}

type StoreConfig struct {
	CatalogFile  string
	FetchLatency time.Duration
}

type SessionConfig struct {
	StalePolicy     usecase.StalePolicy
	DefaultLocation string
}

type WebsocketConfig struct {
	SendBuffer     int
	CommandTimeout time.Duration
}

type Config struct {
	Logging   LoggingConfig
	Server    ServerConfig
	Kafka     KafkaConfig
	Security  SecurityConfig
	Store     StoreConfig
	Session   SessionConfig
	Websocket WebsocketConfig
}

// Load reads the configuration from the environment. Unset variables take defaults;
// set but malformed values are errors.
func Load() (*Config, error) {
	latency, err := getEnvDuration("FETCH_LATENCY", infrastructure.DefaultLatency)
	if err != nil {
		return nil, err
	}
	commandTimeout, err := getEnvDuration("WS_COMMAND_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	sendBuffer, err := getEnvInt("WS_SEND_BUFFER", 32)
	if err != nil {
		return nil, err
	}
	policy, err := usecase.ParseStalePolicy(os.Getenv("SESSION_STALE_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_STALE_POLICY: %w", err)
	}

	brokers := splitList(os.Getenv("KAFKA_BROKERS"))
	if len(brokers) == 0 {
		brokers = splitList(os.Getenv("KAFKA_BROKER"))
	}

	return &Config{
		Logging: LoggingConfig{
			Directory: getEnv("LOG_DIR", "./logs"),
			Level:     getEnv("LOG_LEVEL", "info"),
			Format:    getEnv("LOG_FORMAT", "text"),
		},
		Server: ServerConfig{Port: getEnv("PORT", "8080")},
		Kafka: KafkaConfig{
			Brokers:           brokers,
			GroupID:           getEnv("KAFKA_GROUP_ID", "places-ws"),
			SearchEventsTopic: getEnv("KAFKA_SEARCH_EVENTS_TOPIC", "places.search-events"),
			CatalogTopic:      getEnv("KAFKA_CATALOG_TOPIC", "places.catalog"),
		},
		Security: SecurityConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			JWTPublicKey: strings.ReplaceAll(os.Getenv("JWT_PUBLIC_KEY"), `\n`, "\n"),
		},
		Store: StoreConfig{
			CatalogFile:  strings.TrimSpace(os.Getenv("CATALOG_FILE")),
			FetchLatency: latency,
		},
		Session: SessionConfig{
			StalePolicy:     policy,
			DefaultLocation: getEnv("DEFAULT_LOCATION", domain.DefaultLocation),
		},
		Websocket: WebsocketConfig{
			SendBuffer:     sendBuffer,
			CommandTimeout: commandTimeout,
		},
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", key, val)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s: expected a duration such as 1s or 250ms, got %q", key, val)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
