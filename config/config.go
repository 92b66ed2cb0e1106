package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	LogLevel       string
	MongoDBConfig  MongoDBConfig
	KafkaConfig    KafkaConfig
	JWTSecret      string
	TracingConfig  TracingConfig
	ShippingConfig ShippingConfig
	CompanionHost  string
	SMTPConfig     SMTPConfig
	AuditInterval  time.Duration
	HTTPTimeout    time.Duration
}

type MongoDBConfig struct {
	URI    string
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type ShippingConfig struct {
	BaseURL  string
	Email    string
	Password string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Sender     string
	Recipients []string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("DB_URI"),
			DBHost: getEnv("DB_HOST", "localhost"),
			DBPort: getEnv("DB_PORT", "27017"),
			DBName: getEnv("DB_NAME", "storefront"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		ShippingConfig: ShippingConfig{
			BaseURL:  getEnv("SHIPPING_BASE_URL", "https://apiv2.shiprocket.in/v1/external"),
			Email:    os.Getenv("SHIPPING_EMAIL"),
			Password: os.Getenv("SHIPPING_PASSWORD"),
		},
		CompanionHost: getEnv("COMPANION_HOST", "http://localhost:5000"),
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   os.Getenv("REPORT_SENDER"),
		},
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	for _, r := range strings.Split(os.Getenv("REPORT_RECIPIENTS"), ",") {
		if r = strings.TrimSpace(r); r != "" {
			conf.SMTPConfig.Recipients = append(conf.SMTPConfig.Recipients, r)
		}
	}

	conf.AuditInterval = parseDuration(os.Getenv("AUDIT_INTERVAL"), 15*time.Minute)
	conf.HTTPTimeout = parseDuration(os.Getenv("HTTP_TIMEOUT"), 10*time.Second)

	return &conf
}

// MongoURI prefers DB_URI and falls back to a host/port pair.
func (c MongoDBConfig) MongoURI() string {
	if c.URI != "" {
		return c.URI
	}

	return fmt.Sprintf("mongodb://%s:%s", c.DBHost, c.DBPort)
}

func (c KafkaConfig) Enabled() bool {
	return c.BrokerAddress != "" && c.BrokerTopic != ""
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Sender != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}
