// Package ai wraps the third-party completion API behind a single Complete
// call. The rest of the service treats it as a fallible function from
// (system role, ordered messages) to a response string.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"chatrelay/internal/config"
	"chatrelay/internal/models"
)

// Client adapts an eino chat model to the relay's completion contract.
type Client struct {
	chatModel model.BaseChatModel
}

// NewClient builds the chat model for the configured provider using the
// credential loaded at startup.
func NewClient(ctx context.Context, cfg *config.Config, apiKey string) (*Client, error) {
	provider := cfg.BasicConfig.Provider
	provCfg, ok := cfg.Providers[provider]
	if !ok {
		return nil, fmt.Errorf("provider %s not configured", provider)
	}

	var chatModel model.BaseChatModel
	var err error
	switch provider {
	case "openai":
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: provCfg.BaseURL,
			Model:   provCfg.Model,
			APIKey:  apiKey,
		})
	case "gemini":
		var client *genai.Client
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: apiKey,
		})
		if err != nil {
			return nil, fmt.Errorf("new gemini client: %w", err)
		}
		chatModel, err = gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  provCfg.Model,
		})
	case "claude":
		var baseURLPtr *string
		if provCfg.BaseURL != "" {
			baseURLPtr = &provCfg.BaseURL
		}
		chatModel, err = claude.NewChatModel(ctx, &claude.Config{
			APIKey:    apiKey,
			Model:     provCfg.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: 100,
		})
	default:
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", provider, err)
	}
	return &Client{chatModel: chatModel}, nil
}

// Complete sends the system message, the session's prior messages remapped
// to provider roles, and the composed prompt as the final user entry. Any
// provider failure is surfaced as one opaque error; no retries.
func (c *Client) Complete(ctx context.Context, system string, history []models.Message, final string, maxTokens int, temperature float32) (string, error) {
	msgs := make([]*schema.Message, 0, len(history)+2)
	msgs = append(msgs, &schema.Message{Role: schema.System, Content: system})
	for _, m := range history {
		role := schema.User
		if m.Sender == models.SenderAssistant {
			role = schema.Assistant
		}
		msgs = append(msgs, &schema.Message{Role: role, Content: m.Content})
	}
	msgs = append(msgs, &schema.Message{Role: schema.User, Content: final})

	resp, err := c.chatModel.Generate(ctx, msgs,
		model.WithMaxTokens(maxTokens),
		model.WithTemperature(temperature),
	)
	if err != nil {
		return "", fmt.Errorf("generate completion: %w", err)
	}
	if resp == nil {
		return "", errors.New("generate completion: empty response")
	}
	return resp.Content, nil
}
