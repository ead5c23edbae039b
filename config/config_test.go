package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SPEECH_KEY", "SPEECH_REGION", "TAVUS_API_KEY", "INTERVIEW_MODE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "eastus2", cfg.SpeechRegion)
	assert.Equal(t, ModeQuiz, cfg.InterviewMode)
	assert.False(t, cfg.SpeechConfigured())
	assert.False(t, cfg.TavusConfigured())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SPEECH_KEY", "abc123")
	t.Setenv("SPEECH_REGION", "westeurope")
	t.Setenv("TAVUS_API_KEY", "tavus")
	t.Setenv("INTERVIEW_MODE", "voice")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "westeurope", cfg.SpeechRegion)
	assert.Equal(t, ModeVoice, cfg.InterviewMode)
	assert.True(t, cfg.SpeechConfigured())
	assert.True(t, cfg.TavusConfigured())
}

func TestLoad_UnknownModeFallsBackToQuiz(t *testing.T) {
	t.Setenv("INTERVIEW_MODE", "karaoke")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeQuiz, cfg.InterviewMode)
}
