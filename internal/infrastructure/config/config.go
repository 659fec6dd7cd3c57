package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	AWS       AWSConfig
	Tables    TablesConfig
	Redis     RedisConfig
	Payments  PaymentsConfig
	Documents DocumentsConfig
	Company   CompanyConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Timezone string
	// AutoCreateTables creates missing DynamoDB tables at startup (local runs).
	AutoCreateTables bool
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// AWSConfig keeps the plain AWS env names so DynamoDB Local and LocalStack
// setups keep working.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	S3Endpoint       string
}

type TablesConfig struct {
	Services       string
	Counters       string
	Sales          string
	Stock          string
	StockMovements string
	Transactions   string
	Payments       string
}

// RedisConfig backs the PDV carts. With Enabled false carts live in memory.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	CartTTL  time.Duration
}

type PaymentsConfig struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

type DocumentsConfig struct {
	PDFEnabled    bool
	ChromePath    string
	RenderTimeout time.Duration
	Bucket        string
}

// CompanyConfig is the header printed on service orders and receipts.
type CompanyConfig struct {
	Name    string
	Tagline string
	Phone   string
	Email   string
	Address string
}

// env maps config keys onto the environment variable names used in deployments.
var env = map[string][]string{
	"app.name":               {"APP_NAME"},
	"app.env":                {"APP_ENV"},
	"app.port":               {"PORT", "APP_PORT"},
	"app.timezone":           {"APP_TIMEZONE", "TZ"},
	"app.auto_create_tables": {"DYNAMODB_AUTO_CREATE"},
	"log.level":              {"LOG_LEVEL"},
	"log.format":             {"LOG_FORMAT"},
	"aws.region":             {"AWS_REGION"},
	"aws.access_key_id":      {"AWS_ACCESS_KEY_ID"},
	"aws.secret_access_key":  {"AWS_SECRET_ACCESS_KEY"},
	"aws.dynamodb_endpoint":  {"DYNAMODB_ENDPOINT"},
	"aws.s3_endpoint":        {"S3_ENDPOINT"},
	"tables.services":        {"SERVICES_TABLE"},
	"tables.counters":        {"COUNTERS_TABLE"},
	"tables.sales":           {"SALES_TABLE"},
	"tables.stock":           {"STOCK_TABLE"},
	"tables.stock_movements": {"STOCK_MOVEMENTS_TABLE"},
	"tables.transactions":    {"TRANSACTIONS_TABLE"},
	"tables.payments":        {"PAYMENTS_TABLE"},
	"redis.enabled":          {"REDIS_ENABLED"},
	"redis.addr":             {"REDIS_ADDR"},
	"redis.password":         {"REDIS_PASSWORD"},
	"redis.db":               {"REDIS_DB"},
	"redis.cart_ttl":         {"CART_TTL"},
	"payments.access_token":  {"MERCADOPAGO_ACCESS_TOKEN"},
	"payments.mock":          {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	"payments.test_email":    {"MERCADOPAGO_TEST_PAYER_EMAIL"},
	"payments.test_user_id":  {"MERCADOPAGO_TEST_PAYER_USER_ID"},
	"documents.pdf_enabled":  {"PDF_ENABLED"},
	"documents.chrome_path":  {"CHROME_PATH"},
	"documents.timeout":      {"PDF_RENDER_TIMEOUT"},
	"documents.bucket":       {"DOCUMENTS_BUCKET"},
	"company.name":           {"COMPANY_NAME"},
	"company.tagline":        {"COMPANY_TAGLINE"},
	"company.phone":          {"COMPANY_PHONE"},
	"company.email":          {"COMPANY_EMAIL"},
	"company.address":        {"COMPANY_ADDRESS"},
}

// Load reads config.yaml (optional) and the environment.
// Priority (highest to lowest):
// 1. Environment variables (DYNAMODB_ENDPOINT, MERCADOPAGO_ACCESS_TOKEN, ...)
// 2. config.yaml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	for key, names := range env {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	v.SetDefault("redis.enabled", false)
	v.SetDefault("documents.pdf_enabled", true)

	cfg := &Config{
		App: AppConfig{
			Name:             v.GetString("app.name"),
			Env:              v.GetString("app.env"),
			Port:             v.GetString("app.port"),
			Timezone:         v.GetString("app.timezone"),
			AutoCreateTables: flag(v.GetString("app.auto_create_tables")),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("aws.region"),
			AccessKeyID:      v.GetString("aws.access_key_id"),
			SecretAccessKey:  v.GetString("aws.secret_access_key"),
			DynamoDBEndpoint: v.GetString("aws.dynamodb_endpoint"),
			S3Endpoint:       v.GetString("aws.s3_endpoint"),
		},
		Tables: TablesConfig{
			Services:       v.GetString("tables.services"),
			Counters:       v.GetString("tables.counters"),
			Sales:          v.GetString("tables.sales"),
			Stock:          v.GetString("tables.stock"),
			StockMovements: v.GetString("tables.stock_movements"),
			Transactions:   v.GetString("tables.transactions"),
			Payments:       v.GetString("tables.payments"),
		},
		Redis: RedisConfig{
			Enabled:  flag(v.GetString("redis.enabled")),
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			CartTTL:  v.GetDuration("redis.cart_ttl"),
		},
		Payments: PaymentsConfig{
			AccessToken:     strings.TrimSpace(v.GetString("payments.access_token")),
			Mock:            flag(v.GetString("payments.mock")),
			TestPayerEmail:  strings.TrimSpace(v.GetString("payments.test_email")),
			TestPayerUserID: strings.TrimSpace(v.GetString("payments.test_user_id")),
		},
		Documents: DocumentsConfig{
			PDFEnabled:    flag(v.GetString("documents.pdf_enabled")),
			ChromePath:    v.GetString("documents.chrome_path"),
			RenderTimeout: v.GetDuration("documents.timeout"),
			Bucket:        v.GetString("documents.bucket"),
		},
		Company: CompanyConfig{
			Name:    v.GetString("company.name"),
			Tagline: v.GetString("company.tagline"),
			Phone:   v.GetString("company.phone"),
			Email:   v.GetString("company.email"),
			Address: v.GetString("company.address"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "assistencia-tecnica"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = "America/Sao_Paulo"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if cfg.AWS.AccessKeyID == "" {
		cfg.AWS.AccessKeyID = "local"
	}
	if cfg.AWS.SecretAccessKey == "" {
		cfg.AWS.SecretAccessKey = "local"
	}
	if cfg.Tables.Services == "" {
		cfg.Tables.Services = "services"
	}
	if cfg.Tables.Counters == "" {
		cfg.Tables.Counters = "counters"
	}
	if cfg.Tables.Sales == "" {
		cfg.Tables.Sales = "sales"
	}
	if cfg.Tables.Stock == "" {
		cfg.Tables.Stock = "stock"
	}
	if cfg.Tables.StockMovements == "" {
		cfg.Tables.StockMovements = "stock_movements"
	}
	if cfg.Tables.Transactions == "" {
		cfg.Tables.Transactions = "transactions"
	}
	if cfg.Tables.Payments == "" {
		cfg.Tables.Payments = "payments"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.CartTTL == 0 {
		cfg.Redis.CartTTL = 12 * time.Hour
	}
	if cfg.Documents.RenderTimeout == 0 {
		cfg.Documents.RenderTimeout = 30 * time.Second
	}
	if cfg.Company.Name == "" {
		cfg.Company.Name = "ASSISTÊNCIA TÉCNICA"
	}
	if cfg.Company.Tagline == "" {
		cfg.Company.Tagline = "Serviços especializados em smartphones"
	}
	if cfg.Company.Phone == "" {
		cfg.Company.Phone = "(27) 99999-9999"
	}
	if cfg.Company.Email == "" {
		cfg.Company.Email = "contato@assistencia.com"
	}
	if cfg.Company.Address == "" {
		cfg.Company.Address = "São Mateus - ES"
	}
}

func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.App.Timezone, err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Redis.Enabled && c.Redis.CartTTL < time.Minute {
		return fmt.Errorf("cart ttl too short: %s", c.Redis.CartTTL)
	}
	return nil
}

// Location returns the shop's time zone. Load has already validated it.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// flag accepts the switch spellings used in the env files (1, true, yes, on, mock).
func flag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
