package generation

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	perrors "github.com/docdraft/docdraft/internal/errors"
)

// Request is a single completion call: a system instruction, one user
// prompt, and the sampling temperature.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
}

// Provider is the remote text-generation capability.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ProviderSettings configures an OpenAI-compatible endpoint.
type ProviderSettings struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIProvider talks to any OpenAI-compatible chat-completion endpoint,
// including Gemini's compatibility layer.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	hasKey  bool
}

// NewOpenAIProvider creates a provider for the given settings. A missing API
// key is not an error here; every call fails with KindCredentialMissing so
// the service degrades to its offline drafts.
func NewOpenAIProvider(s ProviderSettings) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(s.APIKey)
	if s.BaseURL != "" {
		clientConfig.BaseURL = s.BaseURL
	}
	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   s.Model,
		timeout: s.Timeout,
		hasKey:  strings.TrimSpace(s.APIKey) != "",
	}
}

// Complete sends req as a system+user chat completion and returns the first choice.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	const op = perrors.Op("generation.OpenAIProvider.Complete")

	if !p.hasKey {
		return "", perrors.CredentialMissing(op)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", perrors.ProviderTimeout(op, err)
		}
		return "", perrors.ProviderFailed(op, err)
	}
	if len(resp.Choices) == 0 {
		return "", perrors.EmptyResponse(op)
	}
	return resp.Choices[0].Message.Content, nil
}
