package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/matchlabs/resumerank/pkg/logx"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
	Corpus   CorpusConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	CacheTTL time.Duration
}

type OpenAIConfig struct {
	APIKey string
}

type CorpusConfig struct {
	// Path to the JD catalog CSV with Role and JD_Text columns
	Path string

	// Path to the classifier artifact JSON
	ClassifierPath string
}

type StorageConfig struct {
	AWSRegion string
	Bucket    string
}

// Load reads configuration from the environment, applying .env first when
// present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logx.Info("No .env file found, using environment values")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASS", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASS", ""),
			CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", "10m"),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
		Corpus: CorpusConfig{
			Path:           getEnv("JD_CORPUS_PATH", "job_descriptions.csv"),
			ClassifierPath: getEnv("CLASSIFIER_MODEL_PATH", "models/classifier.json"),
		},
		Storage: StorageConfig{
			AWSRegion: getEnv("AWS_REGION", "us-east-1"),
			Bucket:    getEnv("AWS_BUCKET", ""),
		},
	}
}

// DSN builds the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if duration, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
