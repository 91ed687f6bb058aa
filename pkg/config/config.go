package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Razorpay  RazorpayConfig
	OpenAI    OpenAIConfig
	Sheets    SheetsConfig
	Sendgrid  SendgridConfig
	Report    ReportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VEDICWISDOM_APP_ENV" required:"true"`
	Port         string `envconfig:"VEDICWISDOM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VEDICWISDOM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VEDICWISDOM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"VEDICWISDOM_REDIS_URL" required:"true"`
	Address      string        `envconfig:"VEDICWISDOM_REDIS_ADDR"`
	Password     string        `envconfig:"VEDICWISDOM_REDIS_PASSWORD"`
	DB           int           `envconfig:"VEDICWISDOM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VEDICWISDOM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VEDICWISDOM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VEDICWISDOM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VEDICWISDOM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VEDICWISDOM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	Window   time.Duration `envconfig:"VEDICWISDOM_RATE_LIMIT_WINDOW" default:"1m"`
	OrderIP  int           `envconfig:"VEDICWISDOM_RATE_LIMIT_ORDER_IP" default:"10"`
	TarotIP  int           `envconfig:"VEDICWISDOM_RATE_LIMIT_TAROT_IP" default:"20"`
	Disabled bool          `envconfig:"VEDICWISDOM_RATE_LIMIT_DISABLED" default:"false"`
}

type RazorpayConfig struct {
	KeyID     string `envconfig:"VEDICWISDOM_RAZORPAY_KEY_ID" required:"true"`
	KeySecret string `envconfig:"VEDICWISDOM_RAZORPAY_KEY_SECRET" required:"true"`
}

type OpenAIConfig struct {
	APIKey string `envconfig:"VEDICWISDOM_OPENAI_API_KEY"`
	Model  string `envconfig:"VEDICWISDOM_OPENAI_MODEL" default:"gpt-4o-mini"`
}

type SheetsConfig struct {
	SpreadsheetID   string `envconfig:"VEDICWISDOM_SHEETS_SPREADSHEET_ID" required:"true"`
	SheetName       string `envconfig:"VEDICWISDOM_SHEETS_SHEET_NAME" default:"Sheet1"`
	CredentialsJSON string `envconfig:"VEDICWISDOM_SHEETS_CREDENTIALS_JSON"`
}

type SendgridConfig struct {
	APIKey      string `envconfig:"VEDICWISDOM_SENDGRID_API_KEY"`
	DefaultFrom string `envconfig:"VEDICWISDOM_SENDGRID_FROM_EMAIL" default:"reports@vedicwisdom.in"`
	FromName    string `envconfig:"VEDICWISDOM_SENDGRID_FROM_NAME" default:"Vedic Wisdom"`
}

type ReportConfig struct {
	Year  int    `envconfig:"VEDICWISDOM_REPORT_YEAR" default:"2026"`
	Brand string `envconfig:"VEDICWISDOM_REPORT_BRAND" default:"Vedic Wisdom"`
}
