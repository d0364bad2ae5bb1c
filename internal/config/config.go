package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // zone database for images without /usr/share/zoneinfo

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
	GST    GSTConfig
	Report ReportConfig
	S3     S3Config
	Email  EmailConfig
	Alerts AlertsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GSTConfig holds the distributor's own registration and return-filing defaults.
// Location is TimeZone resolved at load time; invoice dates and filing periods use it.
type GSTConfig struct {
	SellerGSTIN          string          `mapstructure:"seller_gstin"`
	HomeStateCode        string          `mapstructure:"home_state_code"`
	DefaultPlaceOfSupply string          `mapstructure:"default_place_of_supply"`
	B2CLargeThreshold    decimal.Decimal `mapstructure:"b2c_large_threshold"`
	DefaultUQC           string          `mapstructure:"default_uqc"`
	SchemaVersion        string          `mapstructure:"schema_version"`
	ReverseCharge        bool            `mapstructure:"reverse_charge"`
	TimeZone             string          `mapstructure:"time_zone"`
	Location             *time.Location  `mapstructure:"-"`
}

// ReportConfig holds GSTR-1 report settings.
type ReportConfig struct {
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// S3Config holds AWS S3 settings for archived return files.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Enabled reports whether return archiving has a bucket to write to.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// AlertsConfig holds stock alert worker settings.
type AlertsConfig struct {
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	ExpiryWindowDays int           `mapstructure:"expiry_window_days"`
	DigestRecipients []string      `mapstructure:"digest_recipients"`
}

// Load reads configuration from environment variables with the PHARMADIST_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PHARMADIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "pharmadist")
	v.SetDefault("db.password", "pharmadist_secret")
	v.SetDefault("db.name", "pharmadist_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// GST defaults
	v.SetDefault("gst.seller_gstin", "")
	v.SetDefault("gst.home_state_code", "29")
	v.SetDefault("gst.default_place_of_supply", "29")
	v.SetDefault("gst.b2c_large_threshold", "250000")
	v.SetDefault("gst.default_uqc", "NOS")
	v.SetDefault("gst.schema_version", "GST3.0.4")
	v.SetDefault("gst.reverse_charge", false)
	v.SetDefault("gst.time_zone", "Asia/Kolkata")

	// Report defaults
	v.SetDefault("report.query_timeout", "30s")

	// S3 defaults (archiving disabled until a bucket is set)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "alerts@pharmadist.local")
	v.SetDefault("email.from_name", "Pharmadist")

	// Alerts defaults
	v.SetDefault("alerts.poll_interval", "15m")
	v.SetDefault("alerts.expiry_window_days", 30)
	v.SetDefault("alerts.digest_recipients", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "PHARMADIST_SERVER_PORT",
		"server.read_timeout":         "PHARMADIST_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "PHARMADIST_SERVER_WRITE_TIMEOUT",
		"server.environment":          "PHARMADIST_SERVER_ENVIRONMENT",
		"db.host":                     "PHARMADIST_DB_HOST",
		"db.port":                     "PHARMADIST_DB_PORT",
		"db.user":                     "PHARMADIST_DB_USER",
		"db.password":                 "PHARMADIST_DB_PASSWORD",
		"db.name":                     "PHARMADIST_DB_NAME",
		"db.sslmode":                  "PHARMADIST_DB_SSLMODE",
		"db.max_open":                 "PHARMADIST_DB_MAX_OPEN",
		"db.max_idle":                 "PHARMADIST_DB_MAX_IDLE",
		"log.level":                   "PHARMADIST_LOG_LEVEL",
		"log.format":                  "PHARMADIST_LOG_FORMAT",
		"cors.allowed_origins":        "PHARMADIST_CORS_ALLOWED_ORIGINS",
		"gst.seller_gstin":            "PHARMADIST_GST_SELLER_GSTIN",
		"gst.home_state_code":         "PHARMADIST_GST_HOME_STATE_CODE",
		"gst.default_place_of_supply": "PHARMADIST_GST_DEFAULT_PLACE_OF_SUPPLY",
		"gst.b2c_large_threshold":     "PHARMADIST_GST_B2C_LARGE_THRESHOLD",
		"gst.default_uqc":             "PHARMADIST_GST_DEFAULT_UQC",
		"gst.schema_version":          "PHARMADIST_GST_SCHEMA_VERSION",
		"gst.reverse_charge":          "PHARMADIST_GST_REVERSE_CHARGE",
		"gst.time_zone":               "PHARMADIST_GST_TIME_ZONE",
		"report.query_timeout":        "PHARMADIST_REPORT_QUERY_TIMEOUT",
		"s3.region":                   "PHARMADIST_S3_REGION",
		"s3.bucket":                   "PHARMADIST_S3_BUCKET",
		"s3.endpoint":                 "PHARMADIST_S3_ENDPOINT",
		"s3.access_key":               "PHARMADIST_S3_ACCESS_KEY",
		"s3.secret_key":               "PHARMADIST_S3_SECRET_KEY",
		"s3.presign_expiry":           "PHARMADIST_S3_PRESIGN_EXPIRY",
		"email.provider":              "PHARMADIST_EMAIL_PROVIDER",
		"email.region":                "PHARMADIST_EMAIL_REGION",
		"email.from_address":          "PHARMADIST_EMAIL_FROM_ADDRESS",
		"email.from_name":             "PHARMADIST_EMAIL_FROM_NAME",
		"alerts.poll_interval":        "PHARMADIST_ALERTS_POLL_INTERVAL",
		"alerts.expiry_window_days":   "PHARMADIST_ALERTS_EXPIRY_WINDOW_DAYS",
		"alerts.digest_recipients":    "PHARMADIST_ALERTS_DIGEST_RECIPIENTS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PHARMADIST_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PHARMADIST_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	threshold, err := decimal.NewFromString(v.GetString("gst.b2c_large_threshold"))
	if err != nil {
		return nil, fmt.Errorf("invalid gst.b2c_large_threshold: %w", err)
	}
	tz := v.GetString("gst.time_zone")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid gst.time_zone %q: %w", tz, err)
	}
	cfg.GST = GSTConfig{
		SellerGSTIN:          strings.ToUpper(strings.TrimSpace(v.GetString("gst.seller_gstin"))),
		HomeStateCode:        v.GetString("gst.home_state_code"),
		DefaultPlaceOfSupply: v.GetString("gst.default_place_of_supply"),
		B2CLargeThreshold:    threshold,
		DefaultUQC:           v.GetString("gst.default_uqc"),
		SchemaVersion:        v.GetString("gst.schema_version"),
		ReverseCharge:        v.GetBool("gst.reverse_charge"),
		TimeZone:             tz,
		Location:             loc,
	}

	cfg.Report = ReportConfig{
		QueryTimeout: v.GetDuration("report.query_timeout"),
	}

	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Alerts = AlertsConfig{
		PollInterval:     v.GetDuration("alerts.poll_interval"),
		ExpiryWindowDays: v.GetInt("alerts.expiry_window_days"),
		DigestRecipients: splitList(v.GetString("alerts.digest_recipients")),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
