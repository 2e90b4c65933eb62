package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Lending      LendingConfig      `yaml:"lending"`
	Verification VerificationConfig `yaml:"verification"`
	Notification NotificationConfig `yaml:"notification"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Mail         MailConfig         `yaml:"mail"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Log          LogConfig          `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// PublicRateLimit caps unauthenticated registration and confirmation
	// requests per client IP per minute. Zero disables the limit.
	PublicRateLimit int `yaml:"public_rate_limit" env:"SERVER_PUBLIC_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds settings for verifying caller identity and hashing passwords.
// Tokens are issued elsewhere; this service only checks them.
type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"library"`
	PasswordHashCost int    `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LendingConfig holds loan period settings.
type LendingConfig struct {
	LoanPeriod    time.Duration `yaml:"loan_period"    env:"LENDING_LOAN_PERIOD"    env-default:"720h"`
	RenewalPeriod time.Duration `yaml:"renewal_period" env:"LENDING_RENEWAL_PERIOD" env-default:"720h"`
}

// VerificationConfig holds admin-approval token settings.
type VerificationConfig struct {
	TokenTTL       time.Duration `yaml:"token_ttl"        env:"VERIFICATION_TOKEN_TTL"        env-default:"12h"`
	OperatorEmail  string        `yaml:"operator_email"   env:"VERIFICATION_OPERATOR_EMAIL"   env-required:"true"`
	ConfirmBaseURL string        `yaml:"confirm_base_url" env:"VERIFICATION_CONFIRM_BASE_URL" env-default:"http://localhost:8080/confirm-registration"`
}

// NotificationConfig holds the email notification pipeline settings.
type NotificationConfig struct {
	Driver             string        `yaml:"driver"               env:"NOTIFICATION_DRIVER"               env-default:"postgres"`
	Topic              string        `yaml:"topic"                env:"NOTIFICATION_TOPIC"                env-default:"email-notifications"`
	GroupID            string        `yaml:"group_id"             env:"NOTIFICATION_GROUP_ID"             env-default:"email-group"`
	BufferSize         int           `yaml:"buffer_size"          env:"NOTIFICATION_BUFFER_SIZE"          env-default:"256"`
	FallbackDirectSend bool          `yaml:"fallback_direct_send" env:"NOTIFICATION_FALLBACK_DIRECT_SEND" env-default:"true"`
	RunConsumer        bool          `yaml:"run_consumer"         env:"NOTIFICATION_RUN_CONSUMER"         env-default:"false"`
	PollInterval       time.Duration `yaml:"poll_interval"        env:"NOTIFICATION_POLL_INTERVAL"        env-default:"1s"`
	// Consumed queue rows older than this are deleted by the postgres driver.
	Retention time.Duration `yaml:"retention" env:"NOTIFICATION_RETENTION" env-default:"24h"`
}

// KafkaConfig holds broker settings for the kafka notification driver.
type KafkaConfig struct {
	BrokersRaw   string        `yaml:"brokers"       env:"KAFKA_BROKERS"       env-default:"localhost:9092"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT" env-default:"10s"`
}

// Brokers returns the configured broker addresses.
func (c KafkaConfig) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.BrokersRaw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// MailConfig holds SMTP settings.
type MailConfig struct {
	Host      string `yaml:"host"       env:"MAIL_HOST"       env-default:"localhost"`
	Port      int    `yaml:"port"       env:"MAIL_PORT"       env-default:"587"`
	Username  string `yaml:"username"   env:"MAIL_USERNAME"`
	Password  string `yaml:"password"   env:"MAIL_PASSWORD"`
	From      string `yaml:"from"       env:"MAIL_FROM"       env-required:"true"`
	TLSPolicy string `yaml:"tls_policy" env:"MAIL_TLS_POLICY" env-default:"opportunistic"`
}

// MetricsConfig holds OpenTelemetry metrics export settings.
// An empty endpoint keeps metrics in-process only.
type MetricsConfig struct {
	OTLPEndpoint string        `yaml:"otlp_endpoint" env:"METRICS_OTLP_ENDPOINT"`
	Interval     time.Duration `yaml:"interval"      env:"METRICS_INTERVAL"      env-default:"15s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
