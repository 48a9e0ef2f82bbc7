// internal/workers/guidance/send-guidance-report/config.go
package sendguidancereport

import "time"

type Config struct {
	Timeout   time.Duration
	FromEmail string
	Region    string
	// Enabled gates actual delivery; disabled environments log and
	// complete without sending.
	Enabled bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		FromEmail: "guidance@example.com",
		Region:    "ap-south-1",
		Enabled:   true,
	}
}
