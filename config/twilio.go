package config

// TwilioConfig for the approval authority and message transport. Empty
// credentials are allowed: the registry then runs purely on the local
// template cache.
type TwilioConfig struct {
	AccountSid string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	FromNumber string `mapstructure:"from_number"`

	ContentBaseURL   string `mapstructure:"content_base_url"`
	MessagingBaseURL string `mapstructure:"messaging_base_url"`

	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds"`
	StatusCacheTTLSeconds int `mapstructure:"status_cache_ttl_seconds"`
}

// Configured ...
func (c TwilioConfig) Configured() bool {
	return c.AccountSid != "" && c.AuthToken != ""
}
