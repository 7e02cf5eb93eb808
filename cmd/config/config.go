package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvProduction = "production"

type Config struct {
	Environment     string `envconfig:"APP_ENV" default:"development"`
	Server          ServerConfig
	Database        DatabaseConfig
	Redis           RedisConfig
	Mongo           MongoConfig
	RabbitMQ        RabbitMQConfig
	SMTP            SMTPConfig
	Auth            AuthConfig
	Order           OrderConfig
	OTP             OTPConfig
	Checkout        CheckoutConfig
	Cart            CartConfig
	PaymentSettings PaymentSettingsConfig
	Image           ImageConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	BaseURL         string        `envconfig:"SERVER_BASE_URL" default:"http://localhost:8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"3306"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MongoConfig struct {
	URI         string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database    string        `envconfig:"MONGO_DATABASE" default:"storefront"`
	Bucket      string        `envconfig:"MONGO_IMAGE_BUCKET" default:"product-images"`
	PingTimeout time.Duration `envconfig:"MONGO_PING_TIMEOUT" default:"5s"`
}

type RabbitMQConfig struct {
	Enabled  bool   `envconfig:"RABBITMQ_ENABLED" default:"true"`
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

type SMTPConfig struct {
	Host     string        `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     int           `envconfig:"SMTP_PORT" default:"587"`
	User     string        `envconfig:"SMTP_USER"`
	Password string        `envconfig:"SMTP_PASSWORD"`
	From     string        `envconfig:"SMTP_FROM"`
	FromName string        `envconfig:"SMTP_FROM_NAME" default:"Storefront"`
	Timeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiration  time.Duration `envconfig:"JWT_EXPIRATION" default:"30m"`
	SessionExpTime time.Duration `envconfig:"SESSION_EXP_TIME" default:"30m"`
	AdminName      string        `envconfig:"ADMIN_NAME" default:"Admin"`
	AdminEmail     string        `envconfig:"ADMIN_EMAIL"`
	AdminPassword  string        `envconfig:"ADMIN_PASSWORD"`
	InternalAPIKey string        `envconfig:"CRON_SECRET" required:"true"`
}

type OrderConfig struct {
	IDPrefix        string        `envconfig:"ORDER_ID_PREFIX" default:"SDH"`
	IDPadding       int           `envconfig:"ORDER_ID_PADDING" default:"4"`
	RetentionWindow time.Duration `envconfig:"ORDER_RETENTION_WINDOW" default:"48h"`
	CleanupInterval time.Duration `envconfig:"ORDER_CLEANUP_INTERVAL" default:"1h"`
	Currency        string        `envconfig:"ORDER_CURRENCY" default:"INR"`
}

type OTPConfig struct {
	Validity   time.Duration `envconfig:"OTP_VALIDITY" default:"5m"`
	StoreGrace time.Duration `envconfig:"OTP_STORE_GRACE" default:"1h"`
	// ExposeInResponse returns the code in API responses. Never enabled in production.
	ExposeInResponse bool `envconfig:"OTP_EXPOSE_IN_RESPONSE" default:"false"`
}

type CheckoutConfig struct {
	SessionTTL time.Duration `envconfig:"CHECKOUT_SESSION_TTL" default:"1h"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"CART_TTL" default:"24h"`
}

type PaymentSettingsConfig struct {
	OTPEmail          string `envconfig:"PAYMENT_SETTINGS_OTP_EMAIL" required:"true"`
	SecretKey         string `envconfig:"PAYMENT_SETTINGS_SECRET_KEY" required:"true"`
	FallbackKeyID     string `envconfig:"RAZORPAY_KEY_ID"`
	FallbackKeySecret string `envconfig:"RAZORPAY_KEY_SECRET"`
}

type ImageConfig struct {
	MaxBytes int64 `envconfig:"IMAGE_MAX_BYTES" default:"5242880"`
}

// Load reads .env when present and parses the environment into Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func (r RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.User, r.Password, r.Host, r.Port)
}
