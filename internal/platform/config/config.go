package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once at startup
// and passed by reference to every component that needs it.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	ClientURL    string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	TokenCookieName   string

	UploadsDir string

	// SMTP / backup settings. The scheduler skips runs when the SMTP
	// credentials are empty.
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	BackupEmail string
	BackupAt    string // daily wall-clock time, "15:04"

	// Seed admin, created only on a fresh database.
	AdminUsername string
	AdminPassword string
	AdminName     string
	AdminEmail    string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CLIENT_URL", "http://localhost:5173")
	viper.SetDefault("JWT_SECRET", "change-me-super-secret")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "malek-bookkeeping")
	viper.SetDefault("TOKEN_COOKIE_NAME", "token")
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("BACKUP_EMAIL", "")
	viper.SetDefault("BACKUP_AT", "03:00")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("ADMIN_NAME", "Administrator")
	viper.SetDefault("ADMIN_EMAIL", "admin@wallet.local")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.ClientURL = viper.GetString("CLIENT_URL")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "change-me-super-secret" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.TokenCookieName = viper.GetString("TOKEN_COOKIE_NAME")

	cfg.UploadsDir = viper.GetString("UPLOADS_DIR")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPass = viper.GetString("SMTP_PASS")
	cfg.BackupEmail = viper.GetString("BACKUP_EMAIL")
	cfg.BackupAt = viper.GetString("BACKUP_AT")
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Println("Warning: SMTP credentials not set. Scheduled backups will be skipped.")
	}

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.AdminName = viper.GetString("ADMIN_NAME")
	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")

	return cfg, nil
}
