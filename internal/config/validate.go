package config

import (
	"fmt"
	"slices"
	"strings"
)

// Notification drivers.
const (
	DriverKafka    = "kafka"
	DriverPostgres = "postgres"
)

var tlsPolicies = []string{"opportunistic", "mandatory", "none"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.PublicRateLimit < 0 {
		return fmt.Errorf("server.public_rate_limit must be >= 0 (got %d)", c.Server.PublicRateLimit)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Lending.LoanPeriod <= 0 {
		return fmt.Errorf("lending.loan_period must be > 0 (got %v)", c.Lending.LoanPeriod)
	}
	if c.Lending.RenewalPeriod <= 0 {
		return fmt.Errorf("lending.renewal_period must be > 0 (got %v)", c.Lending.RenewalPeriod)
	}

	if c.Verification.TokenTTL <= 0 {
		return fmt.Errorf("verification.token_ttl must be > 0 (got %v)", c.Verification.TokenTTL)
	}
	if !strings.Contains(c.Verification.OperatorEmail, "@") {
		return fmt.Errorf("verification.operator_email must be an email address (got %q)", c.Verification.OperatorEmail)
	}

	if err := c.Notification.validate(); err != nil {
		return fmt.Errorf("notification: %w", err)
	}
	if c.Notification.Driver == DriverKafka && len(c.Kafka.Brokers()) == 0 {
		return fmt.Errorf("kafka.brokers must not be empty when notification.driver is %q", DriverKafka)
	}

	if !strings.Contains(c.Mail.From, "@") {
		return fmt.Errorf("mail.from must be an email address (got %q)", c.Mail.From)
	}
	if !slices.Contains(tlsPolicies, strings.ToLower(c.Mail.TLSPolicy)) {
		return fmt.Errorf("mail.tls_policy must be one of %v (got %q)", tlsPolicies, c.Mail.TLSPolicy)
	}

	return nil
}

func (n *NotificationConfig) validate() error {
	switch n.Driver {
	case DriverKafka, DriverPostgres:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverKafka, DriverPostgres, n.Driver)
	}
	if strings.TrimSpace(n.Topic) == "" {
		return fmt.Errorf("topic is required")
	}
	if strings.TrimSpace(n.GroupID) == "" {
		return fmt.Errorf("group_id is required")
	}
	if n.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be > 0 (got %d)", n.BufferSize)
	}
	if n.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be > 0 (got %v)", n.PollInterval)
	}
	if n.Retention < 0 {
		return fmt.Errorf("retention must be >= 0 (got %v)", n.Retention)
	}
	return nil
}
