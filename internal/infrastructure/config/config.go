// Package config reads service settings from the environment. Values in a
// local .env file are loaded by godotenv/autoload in main before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port     int
	LogLevel string

	// VATRate is a percentage, 20 for 20%.
	VATRate decimal.Decimal

	DynamoDB DynamoDBConfig
	Tables   TableNames

	// RedisAddr empty disables distributed locking.
	RedisAddr     string
	RedisPassword string
	LockTTL       time.Duration

	// NATSURL empty disables event publishing.
	NATSURL string

	MercadoPagoAccessToken string
	// PaymentGatewayMock approves payments locally without calling Mercado Pago.
	PaymentGatewayMock bool
	// SandboxPayerEmail and SandboxPayerUserID fill the payer of TEST- token requests.
	SandboxPayerEmail  string
	SandboxPayerUserID string

	CORSAllowedOrigins []string
	DefaultPhoneRegion string

	// AuthorizationRatePerSecond and AuthorizationBurst bound customer submissions per client IP.
	AuthorizationRatePerSecond float64
	AuthorizationBurst         int
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type TableNames struct {
	HealthChecks   string
	RepairItems    string
	DeclineReasons string
	Payments       string
}

// Load builds a Config from the environment and rejects malformed numbers.
func Load() (Config, error) {
	cfg := Config{
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: TableNames{
			HealthChecks:   getenvDefault("DDB_TABLE_HEALTH_CHECKS", "vhc_health_checks"),
			RepairItems:    getenvDefault("DDB_TABLE_REPAIR_ITEMS", "vhc_repair_items"),
			DeclineReasons: getenvDefault("DDB_TABLE_DECLINE_REASONS", "vhc_decline_reasons"),
			Payments:       getenvDefault("DDB_TABLE_PAYMENTS", "vhc_payments"),
		},
		RedisAddr:              strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		NATSURL:                strings.TrimSpace(os.Getenv("NATS_URL")),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		SandboxPayerEmail:      strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		SandboxPayerUserID:     strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		CORSAllowedOrigins:     splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		DefaultPhoneRegion:     strings.ToUpper(getenvDefault("DEFAULT_PHONE_REGION", "GB")),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.VATRate, err = getenvDecimal("VAT_RATE", "20"); err != nil {
		return Config{}, err
	}
	if cfg.VATRate.IsNegative() {
		return Config{}, fmt.Errorf("VAT_RATE cannot be negative: %s", cfg.VATRate)
	}
	if cfg.LockTTL, err = getenvDuration("LOCK_TTL", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.AuthorizationRatePerSecond, err = getenvFloat("AUTH_RATE_LIMIT_PER_SECOND", 2); err != nil {
		return Config{}, err
	}
	if cfg.AuthorizationBurst, err = getenvInt("AUTH_RATE_LIMIT_BURST", 5); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDecimal(key, def string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getenvDefault(key, def))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
