package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"avatar_interview_backend/config"
	"avatar_interview_backend/models"
)

// ErrTavusKeyNotConfigured is returned before any upstream call is made
// when the conversation-provider key is missing.
var ErrTavusKeyNotConfigured = errors.New("TAVUS_API_KEY not configured")

const (
	tavusConversationsURL  = "https://tavusapi.com/v2/conversations"
	conversationName       = "AI Interview Session"
	maxCallDurationSeconds = 600
)

// TavusService creates avatar conversation sessions. A session is a single
// external call with no retry; a failed create is reported to the caller,
// who may simply request another.
type TavusService struct {
	APIKey    string
	PersonaID string
	ReplicaID string
	URL       string
	Client    *http.Client
}

func NewTavusService(cfg *config.Config) *TavusService {
	return &TavusService{
		APIKey:    cfg.TavusAPIKey,
		PersonaID: cfg.TavusPersonaID,
		ReplicaID: cfg.TavusReplicaID,
		URL:       tavusConversationsURL,
		Client:    &http.Client{Timeout: upstreamTimeout},
	}
}

type conversationRequest struct {
	PersonaID        string                 `json:"persona_id"`
	ReplicaID        string                 `json:"replica_id"`
	ConversationName string                 `json:"conversation_name"`
	Properties       conversationProperties `json:"properties"`
}

type conversationProperties struct {
	MaxCallDuration int  `json:"max_call_duration"`
	EnableRecording bool `json:"enable_recording"`
}

// StartConversation issues a single create call and relays the session URL
// and id from the provider's response.
func (s *TavusService) StartConversation(ctx context.Context) (*models.Conversation, error) {
	if s.APIKey == "" {
		return nil, ErrTavusKeyNotConfigured
	}

	payload, err := json.Marshal(conversationRequest{
		PersonaID:        s.PersonaID,
		ReplicaID:        s.ReplicaID,
		ConversationName: conversationName,
		Properties: conversationProperties{
			MaxCallDuration: maxCallDurationSeconds,
			EnableRecording: false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var conversation models.Conversation
	if err := json.Unmarshal(body, &conversation); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &conversation, nil
}
