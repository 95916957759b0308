package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AppPasswordHash   string
	AllowedUsers      []string

	// Local storage
	TrackerCSVPath    string
	TrackerConfigPath string

	// Remote sync target
	GitHubOwnerRepo    string
	GitHubToken        string
	GitHubTargetPath   string
	GitHubTargetBranch string

	// Outbound mail
	SMTPServer   string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	AccountsTo   []string
	AccountsCc   []string
	ECommerceTo  []string

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "transfer-tracker-app")
	viper.SetDefault("TRACKER_CSV_PATH", "data/orders_tracker.csv")
	viper.SetDefault("TRACKER_CONFIG_PATH", "data/config.json")
	viper.SetDefault("GITHUB_OWNER_REPO", "")
	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("GITHUB_TARGET_PATH", "data/orders_tracker.csv")
	viper.SetDefault("GITHUB_TARGET_BRANCH", "main")
	viper.SetDefault("SMTP_SERVER", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("FROM_EMAIL", "")
	viper.SetDefault("ACCOUNTS_TO", "")
	viper.SetDefault("ACCOUNTS_CC", "")
	viper.SetDefault("ECOMMERCE_TO", "")
	viper.SetDefault("APP_PASSWORD_HASH", "")
	viper.SetDefault("ALLOWED_USERS", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "12h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AppPasswordHash = viper.GetString("APP_PASSWORD_HASH")
	if cfg.AppPasswordHash == "" {
		log.Println("Warning: APP_PASSWORD_HASH not set. Login will be rejected until it is configured.")
	}
	cfg.AllowedUsers = splitList(viper.GetString("ALLOWED_USERS"))
	if len(cfg.AllowedUsers) == 0 {
		log.Println("Warning: ALLOWED_USERS not set. Any email with the correct password can log in.")
	}

	cfg.TrackerCSVPath = viper.GetString("TRACKER_CSV_PATH")
	cfg.TrackerConfigPath = viper.GetString("TRACKER_CONFIG_PATH")

	cfg.GitHubOwnerRepo = viper.GetString("GITHUB_OWNER_REPO")
	cfg.GitHubToken = viper.GetString("GITHUB_TOKEN")
	cfg.GitHubTargetPath = viper.GetString("GITHUB_TARGET_PATH")
	cfg.GitHubTargetBranch = viper.GetString("GITHUB_TARGET_BRANCH")
	if cfg.GitHubOwnerRepo == "" || cfg.GitHubToken == "" {
		log.Println("Warning: GITHUB_OWNER_REPO/GITHUB_TOKEN not set. Remote sync will be disabled.")
	}

	cfg.SMTPServer = viper.GetString("SMTP_SERVER")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.FromEmail = viper.GetString("FROM_EMAIL")
	if cfg.SMTPServer == "" {
		log.Println("Warning: SMTP_SERVER not set. Email delivery will fail until SMTP is configured.")
	}

	cfg.AccountsTo = splitList(viper.GetString("ACCOUNTS_TO"))
	cfg.AccountsCc = splitList(viper.GetString("ACCOUNTS_CC"))
	cfg.ECommerceTo = splitList(viper.GetString("ECOMMERCE_TO"))
	if len(cfg.AccountsTo) == 0 {
		log.Println("Warning: ACCOUNTS_TO not set. Credit-note emails have no default recipient.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}

// splitList parses a comma-separated env value into a cleaned slice.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
