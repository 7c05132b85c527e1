package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"pharmacy-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type AppConfig struct {
	Port          string
	GinMode       string
	DBPath        string
	JWTSecret     string
	JWTExpiry     time.Duration
	AdminName     string
	AdminEmail    string
	AdminPassword string
	UploadDir     string
	SeedDir       string
	CORSOrigins   []string
	LogMode       string
	LogFile       string

	// Notes collects what Load observed before a logger existed
	Notes []string
}

var (
	App *AppConfig
	DB  *gorm.DB

	// JWTSecret signs and verifies bearer tokens
	JWTSecret []byte
)

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment, after merging a .env file when one is present.
// Anything worth logging ends up in Notes for the caller to report.
func Load() *AppConfig {
	var notes []string
	if err := godotenv.Load(); err == nil {
		notes = append(notes, "loaded environment from .env")
	}

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "1h"))
	if err != nil || expiry <= 0 {
		notes = append(notes, fmt.Sprintf("invalid JWT_EXPIRY %q, using 1h", os.Getenv("JWT_EXPIRY")))
		expiry = time.Hour
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBPath:        getEnv("DB_PATH", "pharmacy.db"),
		JWTSecret:     getEnv("JWT_SECRET", "pharmacy_dev_secret_change_me"),
		JWTExpiry:     expiry,
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    strings.ToLower(getEnv("ADMIN_EMAIL", "admin@pharmacy.local")),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		SeedDir:       getEnv("SEED_DIR", "assets"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		LogMode:       getEnv("LOG_MODE", "development"),
		LogFile:       getEnv("LOG_FILE", ""),
		Notes:         notes,
	}
	Use(cfg)
	return cfg
}

// Use installs cfg as the process configuration
func Use(cfg *AppConfig) {
	App = cfg
	JWTSecret = []byte(cfg.JWTSecret)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// InitDB opens the SQLite database at path and migrates every table
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.Tables...); err != nil {
		return nil, errors.Wrap(err, "migrate database")
	}

	DB = db
	zap.S().Infof("database %s connected and migrated", path)
	return db, nil
}
