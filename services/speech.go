package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"avatar_interview_backend/config"

	"github.com/cenkalti/backoff/v4"
)

// ErrSpeechKeyNotConfigured is returned before any upstream call is made
// when the subscription key is missing.
var ErrSpeechKeyNotConfigured = errors.New("SPEECH_KEY not configured")

const (
	upstreamTimeout = 15 * time.Second
	// Two retries after the initial attempt: three attempts total.
	credentialRetries = 2
)

// SpeechService exchanges the long-lived subscription key for short-lived
// browser credentials. The key travels only on outbound requests and is
// never part of a response.
type SpeechService struct {
	Key       string
	TokenURL  string
	RelayURL  string
	Client    *http.Client
	RetryWait time.Duration
}

func NewSpeechService(cfg *config.Config) *SpeechService {
	return &SpeechService{
		Key:       cfg.SpeechKey,
		TokenURL:  fmt.Sprintf("https://%s.api.cognitive.microsoft.com/sts/v1.0/issueToken", cfg.SpeechRegion),
		RelayURL:  fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/avatar/relay/token/v1", cfg.SpeechRegion),
		Client:    &http.Client{Timeout: upstreamTimeout},
		RetryWait: 250 * time.Millisecond,
	}
}

// Credential is an opaque pass-through of the upstream response. One
// endpoint returns a bare token string, the other a JSON object; callers
// must forward both verbatim.
type Credential struct {
	Body        []byte
	ContentType string
}

// IssueSpeechToken mints a short-lived speech token.
func (s *SpeechService) IssueSpeechToken(ctx context.Context) (*Credential, error) {
	return s.fetch(ctx, http.MethodPost, s.TokenURL)
}

// IssueRelayCredentials fetches relay URLs plus a temporary username and
// password for the avatar media connection.
func (s *SpeechService) IssueRelayCredentials(ctx context.Context) (*Credential, error) {
	return s.fetch(ctx, http.MethodGet, s.RelayURL)
}

func (s *SpeechService) fetch(ctx context.Context, method, url string) (*Credential, error) {
	if s.Key == "" {
		return nil, ErrSpeechKeyNotConfigured
	}

	var cred *Credential
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", s.Key)

		resp, err := s.Client.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("upstream returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		cred = &Credential{Body: body, ContentType: resp.Header.Get("Content-Type")}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.RetryWait), credentialRetries)
	if err := backoff.Retry(attempt, policy); err != nil {
		return nil, err
	}
	return cred, nil
}
