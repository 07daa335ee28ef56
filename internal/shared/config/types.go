// Package config defines the configuration structures shared across the application.
package config

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds redis connection settings for the catalog cache.
type RedisConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	CatalogTTLSecs int    `mapstructure:"catalog_ttl_secs"`
}

// PaymentConfig holds payment gateway client settings.
type PaymentConfig struct {
	BaseURL     string `mapstructure:"base_url" validate:"required,url"`
	MerchantID  string `mapstructure:"merchant_id"`
	MerchantKey string `mapstructure:"merchant_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs" validate:"gt=0"`
}

// PricingConfig carries the contractual pricing thresholds. These mirror the
// reward-program contract and change between policy revisions, so they live in
// configuration rather than as scattered literals.
type PricingConfig struct {
	PolicyVersion           string `mapstructure:"policy_version"`
	LowerBreakpoint         int64  `mapstructure:"lower_breakpoint"`
	UpperBreakpoint         int64  `mapstructure:"upper_breakpoint"`
	ReviewProjectCommission int64  `mapstructure:"review_project_commission"`
	ServiceTermMonths       int    `mapstructure:"service_term_months"`
}

// CryptoConfig holds the key for the refund-account codec.
type CryptoConfig struct {
	// RefundAccountKey is a base64-encoded 32-byte key.
	RefundAccountKey string `mapstructure:"refund_account_key"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Mode     string `mapstructure:"mode" validate:"omitempty,oneof=debug release"`
	Timezone string `mapstructure:"timezone"`
}
