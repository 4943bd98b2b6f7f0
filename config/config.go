package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. It is loaded once at startup
// and treated as read-only afterwards.
type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string // empty disables cover archiving
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioRegion    string
	MinioUseSSL    bool

	// External catalog endpoints. Overridable so tests can point the
	// resolver at local fakes.
	MusicBrainzURL string
	CoverArtURL    string
	UPCItemDBURL   string
	OMDbURL        string
	OMDbAPIKey     string
	ContactEmail   string        // embedded in the outbound User-Agent
	CourtesyDelay  time.Duration // pause between unsuccessful catalog attempts
	LookupCacheTTL time.Duration
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "discbox"),

		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "discbox"),
		MinioRegion:    getEnv("MINIO_REGION", "us-east-1"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),

		MusicBrainzURL: getEnv("MUSICBRAINZ_URL", "https://musicbrainz.org"),
		CoverArtURL:    getEnv("COVERART_URL", "https://coverartarchive.org"),
		UPCItemDBURL:   getEnv("UPCITEMDB_URL", "https://api.upcitemdb.com"),
		OMDbURL:        getEnv("OMDB_URL", "https://www.omdbapi.com"),
		OMDbAPIKey:     os.Getenv("OMDB_API_KEY"),
		ContactEmail:   getEnv("CONTACT_EMAIL", "admin@example.com"),
		CourtesyDelay:  time.Duration(getEnvInt("COURTESY_DELAY_MS", 1000)) * time.Millisecond,
		LookupCacheTTL: time.Duration(getEnvInt("LOOKUP_CACHE_TTL_HOURS", 24)) * time.Hour,
	}
}
