package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TZ", "")
		t.Setenv("APP_TIMEZONE", "")
		for _, k := range []string{"PORT", "APP_PORT", "AWS_REGION", "AWS_ACCESS_KEY_ID", "REDIS_ENABLED", "CART_TTL", "PDF_ENABLED", "LOG_FORMAT"} {
			t.Setenv(k, "")
		}

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "us-east-1", cfg.AWS.Region)
		assert.Equal(t, "local", cfg.AWS.AccessKeyID)
		assert.Equal(t, "services", cfg.Tables.Services)
		assert.Equal(t, "stock_movements", cfg.Tables.StockMovements)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, 12*time.Hour, cfg.Redis.CartTTL)
		assert.True(t, cfg.Documents.PDFEnabled)
		assert.Equal(t, "ASSISTÊNCIA TÉCNICA", cfg.Company.Name)
		assert.Equal(t, "São Mateus - ES", cfg.Company.Address)
	})

	t.Run("plain env names", func(t *testing.T) {
		t.Setenv("TZ", "")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
		t.Setenv("SALES_TABLE", "vendas")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", " TEST-abc ")
		t.Setenv("MERCADOPAGO_MOCK", "yes")
		t.Setenv("REDIS_ENABLED", "1")
		t.Setenv("CART_TTL", "2h")
		t.Setenv("COMPANY_PHONE", "(27) 3333-0000")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://dynamodb:8000", cfg.AWS.DynamoDBEndpoint)
		assert.Equal(t, "vendas", cfg.Tables.Sales)
		assert.Equal(t, "TEST-abc", cfg.Payments.AccessToken)
		assert.True(t, cfg.Payments.Mock)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, 2*time.Hour, cfg.Redis.CartTTL)
		assert.Equal(t, "(27) 3333-0000", cfg.Company.Phone)
	})

	t.Run("invalid timezone", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid log format", func(t *testing.T) {
		t.Setenv("TZ", "")
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestFlag(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		assert.True(t, flag(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "no"} {
		assert.False(t, flag(v), v)
	}
}

func TestAppConfig_Location(t *testing.T) {
	loc := AppConfig{Timezone: "America/Sao_Paulo"}.Location()
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	assert.Equal(t, time.UTC, AppConfig{Timezone: "nowhere"}.Location())
}
