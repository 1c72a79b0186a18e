// Package chat orchestrates session creation, turn appending, one-time
// topic summarization, and transcript retrieval.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"chatrelay/internal/models"
	"chatrelay/internal/prompt"
	"chatrelay/internal/store"
)

// Error kinds the HTTP boundary translates into status codes.
var (
	ErrNotFound      = errors.New("chat not found")
	ErrGeneration    = errors.New("completion generation failed")
	ErrSummarization = errors.New("topic summarization failed")
)

// Completer is the boundary over the third-party completion service.
type Completer interface {
	Complete(ctx context.Context, system string, history []models.Message, final string, maxTokens int, temperature float32) (string, error)
}

const (
	turnMaxTokens      = 100
	turnTemperature    = float32(0.7)
	summaryMaxTokens   = 50
	summaryTemperature = float32(0.5)
)

// Service is the session-management core.
type Service struct {
	store store.Store
	llm   Completer
}

func NewService(st store.Store, llm Completer) *Service {
	return &Service{store: st, llm: llm}
}

// CreateSession mints a fresh chat id and materializes an empty session, so
// fetching a chat that has never been submitted to returns an empty
// transcript rather than a miss.
func (s *Service) CreateSession() string {
	id := uuid.NewString()
	s.store.Create(id)
	return id
}

// SubmitPrompt runs one conversation turn: generate a reply from the full
// history plus the composed prompt, append the user and assistant messages,
// and derive the session topic the first time around. The session is created
// on the fly when the id is unseen. The whole sequence holds the session's
// lock, so concurrent submits against one chat cannot interleave.
func (s *Service) SubmitPrompt(ctx context.Context, chatID, text string) ([]models.Message, *string, error) {
	var (
		messages []models.Message
		topic    *string
	)
	err := s.store.Update(chatID, func(sess *models.Session) error {
		reply, err := s.llm.Complete(ctx, prompt.System, sess.Messages, prompt.Turn(text), turnMaxTokens, turnTemperature)
		if err != nil {
			// Nothing has been appended yet; the session is untouched.
			return fmt.Errorf("%w: %v", ErrGeneration, err)
		}

		n := len(sess.Messages)
		sess.Messages = append(sess.Messages,
			models.Message{No: n + 1, Timestamp: models.Now(), Sender: models.SenderUser, Content: text},
			models.Message{No: n + 2, Timestamp: models.Now(), Sender: models.SenderAssistant, Content: strings.TrimSpace(reply)},
		)

		if sess.Topic == nil {
			summary, err := s.llm.Complete(ctx, prompt.System, nil, prompt.Summary(text), summaryMaxTokens, summaryTemperature)
			if err != nil {
				// The turn above is already appended and stays; the
				// caller still sees the whole submit fail.
				return fmt.Errorf("%w: %v", ErrSummarization, err)
			}
			t := strings.TrimSpace(summary)
			sess.Topic = &t
		}

		snap := sess.Clone()
		messages = snap.Messages
		topic = snap.Topic
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return messages, topic, nil
}

// FetchSession returns the stored transcript for the id. Read-only.
func (s *Service) FetchSession(chatID string) ([]models.Message, error) {
	sess, ok := s.store.Get(chatID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, chatID)
	}
	return sess.Messages, nil
}
