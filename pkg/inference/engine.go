package inference

import (
	"RestoOps-Backend/internal/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

var ErrEmptyCompletion = errors.New("inference returned an empty completion")

type (
	// Engine is the single gateway to the external inference capability.
	// Callers describe what they want in the prompt and parse the structured
	// output themselves; the engine only owns transport, retries and cleanup.
	Engine interface {
		Complete(ctx context.Context, prompt string) (string, error)
		CompleteWithFile(ctx context.Context, prompt string, mimeType string, data []byte) (string, error)
	}

	engine struct {
		llm         llms.Model
		maxAttempts int
		retryDelay  time.Duration
	}
)

func NewEngine() (Engine, error) {
	provider := utils.GetConfig("LLM_PROVIDER")
	model := utils.GetConfig("LLM_MODEL")

	var llm llms.Model
	var err error

	switch provider {
	case "openai":
		llm, err = openai.New(
			openai.WithToken(utils.GetConfig("OPENAI_API_KEY")),
			openai.WithModel(model),
		)
	case "anthropic":
		llm, err = anthropic.New(
			anthropic.WithToken(utils.GetConfig("ANTHROPIC_API_KEY")),
			anthropic.WithModel(model),
		)
	case "ollama":
		llm, err = ollama.New(
			ollama.WithModel(model),
			ollama.WithServerURL(utils.GetConfig("OLLAMA_HOST")),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s model: %w", provider, err)
	}

	return &engine{
		llm:         llm,
		maxAttempts: 3,
		retryDelay:  2 * time.Second,
	}, nil
}

func (e *engine) Complete(ctx context.Context, prompt string) (string, error) {
	return e.generate(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	})
}

func (e *engine) CompleteWithFile(ctx context.Context, prompt string, mimeType string, data []byte) (string, error) {
	return e.generate(ctx, []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart(mimeType, data),
				llms.TextPart(prompt),
			},
		},
	})
}

// generate calls the model, retrying rate-limited requests with a linearly
// increasing delay. Any other error class fails immediately.
func (e *engine) generate(ctx context.Context, messages []llms.MessageContent) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		response, err := e.llm.GenerateContent(ctx, messages)
		if err == nil {
			if len(response.Choices) == 0 {
				return "", ErrEmptyCompletion
			}
			return response.Choices[0].Content, nil
		}

		if !IsRateLimited(err) {
			return "", err
		}
		lastErr = err

		select {
		case <-time.After(time.Duration(attempt) * e.retryDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("rate limited after %d attempts: %w", e.maxAttempts, lastErr)
}

// IsRateLimited reports whether the error is a throttling response from the
// inference provider, the only error class worth retrying.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"rate limit",
		"too many requests",
		"resource exhausted",
		"429",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
