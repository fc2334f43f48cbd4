package azure

import "time"

// Config holds connection settings for the Azure Image Analysis read endpoint.
type Config struct {
	Endpoint string // e.g. https://<resource>.cognitiveservices.azure.com
	APIKey   string
	Timeout  time.Duration // per-request; defaults to 30s
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}
