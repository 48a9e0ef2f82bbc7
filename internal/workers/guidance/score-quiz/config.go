// internal/workers/guidance/score-quiz/config.go
package scorequiz

import "time"

type Config struct {
	Timeout time.Duration
	// MaxRecommendations caps the ranked labels surfaced for display.
	MaxRecommendations int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:            10 * time.Second,
		MaxRecommendations: 5,
	}
}
