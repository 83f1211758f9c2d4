package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	GRPCPort int
	HTTPPort int

	CORSOrigins []string
	SessionKey  string

	ScratchBackend string
	ScratchTTL     time.Duration
	RedisAddress   string
	RedisPassword  string
	RedisDB        int

	LedgerBackend   string
	SQLitePath      string
	MongoURI        string
	MongoDatabase   string
	NotifyBackend   string
	SQSQueueURL     string
	AWSRegion       string
	QRRenderer      string
	UPIPayeeID      string
	UPIPayeeName    string
	UPIMerchantCode string

	PaymentMode        string
	PaymentFailureRate float64
	PaymentTimeout     time.Duration
	SettlementDelay    time.Duration

	FreeShippingThreshold int64
	ShippingFee           int64
	TaxRate               string

	CheckoutMaxConcurrent int
}

// Load reads the process environment. A .env file in the working directory,
// when present, seeds variables that are not already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:    getEnv("APP_ENV", "dev"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		HTTPPort:  getEnvInt("HTTP_PORT", 8080),
		GRPCPort:  getEnvInt("GRPC_PORT", 8081),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		SessionKey:  getEnv("SESSION_KEY", ""),

		ScratchBackend: getEnv("SCRATCH_BACKEND", "memory"),
		ScratchTTL:     getEnvDuration("SCRATCH_TTL", 24*time.Hour),
		RedisAddress:   getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		LedgerBackend:   getEnv("LEDGER_BACKEND", "sqlite"),
		SQLitePath:      getEnv("SQLITE_PATH", "./zyno-orders.db"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "zyno"),
		NotifyBackend:   getEnv("NOTIFY_BACKEND", "log"),
		SQSQueueURL:     getEnv("SQS_QUEUE_URL", ""),
		AWSRegion:       getEnv("AWS_REGION", "ap-south-1"),
		QRRenderer:      getEnv("QR_RENDERER", "chart"),
		UPIPayeeID:      getEnv("UPI_PAYEE_ID", "shrinisha2005@okabi"),
		UPIPayeeName:    getEnv("UPI_PAYEE_NAME", "ZYNO Store"),
		UPIMerchantCode: getEnv("UPI_MERCHANT_CODE", "5411"),

		PaymentMode:        getEnv("PAYMENT_MODE", "manual"),
		PaymentFailureRate: getEnvFloat("PAYMENT_FAILURE_RATE", 0.1),
		PaymentTimeout:     getEnvDuration("PAYMENT_TIMEOUT", 600*time.Second),
		SettlementDelay:    getEnvDuration("SETTLEMENT_DELAY", 3*time.Second),

		FreeShippingThreshold: int64(getEnvInt("FREE_SHIPPING_THRESHOLD", 0)),
		ShippingFee:           int64(getEnvInt("SHIPPING_FEE", 0)),
		TaxRate:               getEnv("TAX_RATE", "0"),

		CheckoutMaxConcurrent: getEnvInt("CHECKOUT_MAX_CONCURRENT", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
