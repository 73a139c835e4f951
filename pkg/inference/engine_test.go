package inference

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		limited bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("connection reset"), false},
		{"rate limit", errors.New("rate limit exceeded"), true},
		{"too many requests", errors.New("Too Many Requests"), true},
		{"resource exhausted", errors.New("RESOURCE EXHAUSTED: try later"), true},
		{"429 status", errors.New("HTTP 429 from upstream"), true},
		{"wrapped", fmt.Errorf("complete: %w", errors.New("rate limit hit")), true},
		{"auth failure not limited", errors.New("invalid api key"), false},
		{"timeout not limited", errors.New("context deadline exceeded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.limited, IsRateLimited(tt.err))
		})
	}
}

type stubModel struct {
	failures int
	calls    int
	err      error
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.calls++
	if m.calls <= m.failures {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "ok"}},
	}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func TestGenerateRetriesRateLimits(t *testing.T) {
	model := &stubModel{failures: 2, err: errors.New("rate limit exceeded")}
	e := &engine{llm: model, maxAttempts: 3, retryDelay: time.Millisecond}

	out, err := e.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 3, model.calls)
}

func TestGenerateGivesUpAfterMaxAttempts(t *testing.T) {
	model := &stubModel{failures: 10, err: errors.New("rate limit exceeded")}
	e := &engine{llm: model, maxAttempts: 3, retryDelay: time.Millisecond}

	_, err := e.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, 3, model.calls)
}

func TestGenerateDoesNotRetryPermanentErrors(t *testing.T) {
	model := &stubModel{failures: 10, err: errors.New("invalid api key")}
	e := &engine{llm: model, maxAttempts: 3, retryDelay: time.Millisecond}

	_, err := e.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, 1, model.calls)
}
