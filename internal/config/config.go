package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// ModuleConfig carries the integration flags consulted by the reconciliation core.
type ModuleConfig struct {
	CreateOrderEnabled bool
	AntifraudEnabled   bool
	SaveCards          bool
}

// IsCreateOrderEnabled is the "force create order" override: the local order
// is created even when the gateway reports a failed charge.
func (m ModuleConfig) IsCreateOrderEnabled() bool { return m.CreateOrderEnabled }
func (m ModuleConfig) IsAntifraudEnabled() bool   { return m.AntifraudEnabled }
func (m ModuleConfig) IsSaveCards() bool          { return m.SaveCards }

// DynamoDBConfig locates the DynamoDB endpoint. Local DynamoDB does not
// validate credentials, but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Config struct {
	Env           string
	Port          int
	Locale        string
	StorageDriver string
	DatabaseURL   string
	JWTSecret     string

	DynamoDB DynamoDBConfig

	MercadoPagoAccessToken string

	KafkaBrokers            string
	KafkaOrderEventsTopic   string
	KafkaNotificationsTopic string

	Module ModuleConfig
}

func Default() Config {
	return Config{
		Env:                     "dev",
		Port:                    8080,
		Locale:                  "en_US",
		StorageDriver:           StorageDynamoDB,
		KafkaOrderEventsTopic:   "order-events",
		KafkaNotificationsTopic: "customer-notifications",
		DynamoDB: DynamoDBConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		},
	}
}

// Load reads the configuration from the environment on top of Default.
func Load() Config {
	return fromEnv(Default())
}

func fromEnv(c Config) Config {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("APP_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER"))); v != "" {
		c.StorageDriver = v
	}
	c.DatabaseURL = os.Getenv("DATABASE_URL")
	c.JWTSecret = os.Getenv("JWT_SECRET")
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.DynamoDB.Region = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		c.DynamoDB.AccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		c.DynamoDB.SecretAccessKey = v
	}
	c.DynamoDB.Endpoint = os.Getenv("DYNAMODB_ENDPOINT")
	c.MercadoPagoAccessToken = strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	c.KafkaBrokers = os.Getenv("KAFKA_BROKERS")
	if v := os.Getenv("KAFKA_ORDER_EVENTS_TOPIC"); v != "" {
		c.KafkaOrderEventsTopic = v
	}
	if v := os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"); v != "" {
		c.KafkaNotificationsTopic = v
	}

	c.Module.CreateOrderEnabled = envBool("CREATE_ORDER_ENABLED", c.Module.CreateOrderEnabled)
	c.Module.AntifraudEnabled = envBool("ANTIFRAUD_ENABLED", c.Module.AntifraudEnabled)
	c.Module.SaveCards = envBool("SAVE_CARDS", c.Module.SaveCards)
	return c
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

// IsPaymentGatewayMockEnabled reports whether the gateway runs in mock mode.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
