package config

import "fmt"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port" validate:"gte=1,lte=65535"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the host:port address the HTTP server binds to.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string `mapstructure:"host" validate:"required"`
	Port            int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	Username        string `mapstructure:"username" validate:"required"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds boundary authentication configuration.
// Token issuance lives outside this service; we only verify.
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig holds JWT verification configuration
type JWTConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
}

// RedisConfig holds redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GetAddr returns the host:port address for the redis client.
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BillingConfig holds billing-specific settings
type BillingConfig struct {
	// SubscriptionNumberPrefix is the prefix for human-readable subscription numbers.
	SubscriptionNumberPrefix string `mapstructure:"subscription_number_prefix" validate:"required"`
	// InvoiceNumberPrefix is the prefix for human-readable invoice numbers.
	InvoiceNumberPrefix string `mapstructure:"invoice_number_prefix" validate:"required"`
	// DefaultDueDays is applied when a subscription has no payment term.
	DefaultDueDays int `mapstructure:"default_due_days" validate:"gte=0"`
	// ReportCacheTTLSeconds controls how long the reporting summary is cached.
	ReportCacheTTLSeconds int `mapstructure:"report_cache_ttl_seconds" validate:"gte=0"`
}
