// internal/workers/guidance/retrieve-matches/config.go
package retrievematches

import "time"

type Config struct {
	// BaseURL of the matching service, e.g. http://localhost:5000.
	BaseURL string
	Timeout time.Duration
	// MinResults is the guaranteed minimum result count whenever the
	// candidate pool (remote or fallback) holds at least that many items.
	MinResults int
}

func LoadConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:5000",
		Timeout:    10 * time.Second,
		MinResults: 6,
	}
}
