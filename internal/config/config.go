package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Default seed categories; override with SEED_CATEGORIES.
var defaultSeedCategories = []string{
	"Editorial",
	"Beauty",
	"Portrait",
	"Fashion Campaign",
	"Motion",
	"Advertising",
}

// The layout tag set changed between deployment generations, so the cycle is
// configuration rather than code. Override with LAYOUT_CYCLE.
var defaultLayoutCycle = []string{"horizontal", "vertical", "double"}

const defaultMaxUploadMB = 50

// Config holds all configuration values from environment.
type Config struct {
	AppPort        string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSSL       bool

	// Domain settings
	SeedCategories []string // base categories created (protected) at startup
	LayoutCycle    []string // circular sequence CycleLayout steps through
	MaxUploadBytes int64    // per-file ceiling checked before any upload call
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	minioSSL := false
	if sslEnv := os.Getenv("MINIO_SSL"); sslEnv != "" {
		val, err := strconv.ParseBool(sslEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIO_SSL value: %v", err)
		}
		minioSSL = val
	}

	seedCategories := defaultSeedCategories
	if env := os.Getenv("SEED_CATEGORIES"); env != "" {
		seedCategories = splitList(env)
	}

	layoutCycle := defaultLayoutCycle
	if env := os.Getenv("LAYOUT_CYCLE"); env != "" {
		layoutCycle = splitList(env)
	}
	if len(layoutCycle) == 0 {
		return nil, fmt.Errorf("LAYOUT_CYCLE must name at least one layout")
	}

	maxUploadMB := int64(defaultMaxUploadMB)
	if env := os.Getenv("MAX_UPLOAD_MB"); env != "" {
		val, err := strconv.ParseInt(env, 10, 64)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_MB value: %q", env)
		}
		maxUploadMB = val
	}

	cfg := &Config{
		AppPort:        os.Getenv("PORTFOLIO_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioSSL:       minioSSL,

		SeedCategories: seedCategories,
		LayoutCycle:    layoutCycle,
		MaxUploadBytes: maxUploadMB * 1024 * 1024,
	}
	// Basic validation for required fields
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database configuration is incomplete")
	}
	if cfg.MinioEndpoint == "" || cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "" {
		return nil, fmt.Errorf("minio configuration is incomplete")
	}
	return cfg, nil
}

func splitList(env string) []string {
	var out []string
	for _, part := range strings.Split(env, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ConnectDatabase initializes a GORM database connection to PostgreSQL.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
