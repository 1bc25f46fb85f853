package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
	SMTP         SMTPConfig
}

// SMTPConfig holds the outbound mail settings used by the flagged-claims
// digest. DigestTo is the recipient of the digest report.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	DigestTo string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
