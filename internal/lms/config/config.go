package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	PresignExpiry      time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	AssistantURL    string
	AssistantAPIKey string

	AutoGradeInterval time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "lms_db"),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),

		JWTSecret:          os.Getenv("LMS_JWT_SECRET"),
		AccessTokenExpiry:  getEnvDuration("LMS_JWT_ACCESS_EXPIRY", 24*time.Hour),
		RefreshTokenExpiry: getEnvDuration("LMS_JWT_REFRESH_EXPIRY", 7*24*time.Hour),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:           getEnv("S3_BUCKET", "lms-documents"),
		PresignExpiry:      getEnvDuration("S3_PRESIGN_EXPIRY", 15*time.Minute),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@lms.local"),

		AssistantURL:    os.Getenv("ASSISTANT_URL"),
		AssistantAPIKey: os.Getenv("ASSISTANT_API_KEY"),

		AutoGradeInterval: getEnvDuration("AUTO_GRADE_INTERVAL", 30*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("LMS_JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		if d, err := time.ParseDuration(valStr); err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
