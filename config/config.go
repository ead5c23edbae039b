package config

import (
	"os"
)

// Interview modes supported by the question endpoint.
const (
	ModeQuiz  = "quiz"
	ModeVoice = "voice"
)

type Config struct {
	Environment    string
	ServerPort     string
	SpeechKey      string
	SpeechRegion   string
	TavusAPIKey    string
	TavusPersonaID string
	TavusReplicaID string
	InterviewMode  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("PORT", "8080"),
		SpeechKey:      getEnv("SPEECH_KEY", ""),
		SpeechRegion:   getEnv("SPEECH_REGION", "eastus2"),
		TavusAPIKey:    getEnv("TAVUS_API_KEY", ""),
		TavusPersonaID: getEnv("TAVUS_PERSONA_ID", ""),
		TavusReplicaID: getEnv("TAVUS_REPLICA_ID", ""),
		InterviewMode:  getEnv("INTERVIEW_MODE", ModeQuiz),
	}
	if cfg.InterviewMode != ModeQuiz && cfg.InterviewMode != ModeVoice {
		cfg.InterviewMode = ModeQuiz
	}
	return cfg, nil
}

// SpeechConfigured reports whether the speech subscription key is set.
// The credential endpoints degrade to a configuration error without it.
func (c *Config) SpeechConfigured() bool {
	return c.SpeechKey != ""
}

func (c *Config) TavusConfigured() bool {
	return c.TavusAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
