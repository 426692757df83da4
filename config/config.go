package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type R2Config struct {
	AccountID       string
	Bucket          string
	PublicURL       string
	AccessKeyID     string
	SecretAccessKey string
}

// Enabled reports whether enough is set to talk to R2.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.Bucket != "" && c.PublicURL != ""
}

// LayoutConfig holds print geometry in CSS pixels.
type LayoutConfig struct {
	PageHeight   float64
	BodyHeader   float64
	BodyRow      float64
	SummaryRow   float64
	MeasureInDOM bool
}

type Config struct {
	PostgresURL        string
	MongoURL           string
	MongoDatabase      string
	MigrationsPath     string
	DBType             string
	Port               string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	PDFDir             string
	ChromeTimeout      time.Duration
	R2                 R2Config
	Layout             LayoutConfig
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		MongoURL:           os.Getenv("MONGO_URL"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "hariomtransport"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "file://db/migrations"),
		DBType:             getEnv("DB_TYPE", "postgres"),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PDFDir:             getEnv("PDF_DIR", "./pdfs"),
		ChromeTimeout:      getDuration("CHROME_TIMEOUT", 30*time.Second),
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			Bucket:          os.Getenv("R2_BUCKET"),
			PublicURL:       os.Getenv("R2_PUBLIC_URL"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		},
		Layout: LayoutConfig{
			PageHeight:   getFloat("PAGE_HEIGHT_PX", 1123),
			BodyHeader:   getFloat("BODY_HEADER_PX", 190),
			BodyRow:      getFloat("BODY_ROW_PX", 26),
			SummaryRow:   getFloat("SUMMARY_ROW_PX", 24),
			MeasureInDOM: getBool("MEASURE_IN_DOM", false),
		},
	}
}

// Validate checks that the selected database has a connection URL.
func (c *Config) Validate() error {
	switch c.DBType {
	case "postgres":
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL not set in environment")
		}
	case "mongo":
		if c.MongoURL == "" {
			return errors.New("MONGO_URL not set in environment")
		}
	default:
		return errors.New("DB_TYPE not supported: " + c.DBType)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
