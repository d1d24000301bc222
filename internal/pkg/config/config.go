package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - provider credentials are optional: an empty key disables that checkout method
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Cookie   CookieConfig
	Catalog  CatalogConfig
	Storage  StorageConfig
	Checkout CheckoutConfig
	Notify   NotifyConfig
	Offers   OffersConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	// bcrypt hash; an empty value disables admin login
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type CatalogConfig struct {
	CacheTTL   time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"30s"`
	StreamPace time.Duration `envconfig:"CATALOG_STREAM_PACE" default:"120ms"`
}

type StorageConfig struct {
	PublicBaseURL        string `envconfig:"STORAGE_PUBLIC_BASE_URL" default:"http://localhost:9000/media"`
	PlaceholderThumbnail string `envconfig:"STORAGE_PLACEHOLDER_THUMBNAIL" default:"/static/placeholder.jpg"`
}

type CheckoutConfig struct {
	// SiteURL is the public origin used to build success/cancel URLs
	SiteURL    string `envconfig:"SITE_URL" default:"http://localhost:8080"`
	ReturnPath string `envconfig:"CHECKOUT_RETURN_PATH" default:"/payment/return"`
	Currency   string `envconfig:"CHECKOUT_CURRENCY" default:"usd"`

	Stripe StripeConfig
	PayPal PayPalConfig
	Whop   WhopConfig
	Crypto CryptoConfig
}

type StripeConfig struct {
	SecretKey  string `envconfig:"STRIPE_SECRET_KEY"`
	APIBaseURL string `envconfig:"STRIPE_API_BASE_URL" default:"https://api.stripe.com"`
}

type PayPalConfig struct {
	ClientID     string `envconfig:"PAYPAL_CLIENT_ID"`
	ClientSecret string `envconfig:"PAYPAL_CLIENT_SECRET"`
	APIBaseURL   string `envconfig:"PAYPAL_API_BASE_URL" default:"https://api-m.sandbox.paypal.com"`
}

type WhopConfig struct {
	APIKey     string `envconfig:"WHOP_API_KEY"`
	PlanID     string `envconfig:"WHOP_PLAN_ID"`
	APIBaseURL string `envconfig:"WHOP_API_BASE_URL" default:"https://api.whop.com"`
	ProxyPath  string `envconfig:"WHOP_PROXY_PATH" default:"/api/checkout/who/proxy"`
}

type CryptoConfig struct {
	// e.g. "BTC:bc1q...,USDT:TXy..."
	Wallets          map[string]string `envconfig:"CRYPTO_WALLETS"`
	TelegramUsername string            `envconfig:"CRYPTO_TELEGRAM_USERNAME"`
}

type NotifyConfig struct {
	TelegramBotToken string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string        `envconfig:"TELEGRAM_CHAT_ID"`
	TelegramAPIURL   string        `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org"`
	ResendAPIKey     string        `envconfig:"RESEND_API_KEY"`
	EmailFrom        string        `envconfig:"SALE_EMAIL_FROM" default:"sales@clipvault.local"`
	EmailTo          []string      `envconfig:"SALE_EMAIL_TO"`
	Timeout          time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
}

type OffersConfig struct {
	// BundleType is the offer_type value that buys the whole catalog
	BundleType        string `envconfig:"BUNDLE_TYPE" default:"bundle"`
	BundlePrice       string `envconfig:"BUNDLE_PRICE"`
	BundleTitle       string `envconfig:"BUNDLE_TITLE" default:"Full catalog access"`
	BundleProductLink string `envconfig:"BUNDLE_PRODUCT_LINK"`
	ManualContact     string `envconfig:"MANUAL_CONTACT" default:"Reply to your receipt e-mail and we will send your access link."`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Catalog: CatalogConfig{
			CacheTTL:   30 * time.Second,
			StreamPace: 0,
		},
		Storage: StorageConfig{
			PublicBaseURL:        "http://cdn.test/media",
			PlaceholderThumbnail: "/static/placeholder.jpg",
		},
		Checkout: CheckoutConfig{
			SiteURL:    "http://shop.test",
			ReturnPath: "/payment/return",
			Currency:   "usd",
			Whop:       WhopConfig{ProxyPath: "/api/checkout/who/proxy"},
		},
		Offers: OffersConfig{
			BundleType:    "bundle",
			BundlePrice:   "49.00",
			BundleTitle:   "Full catalog access",
			ManualContact: "Contact support for access.",
		},
	}
}
