package llm

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicClient implements Client against the Anthropic Messages API.
// The static system block is sent with cache_control: ephemeral so the
// provider caches the state-invariant prompt prefix across turns.
type anthropicClient struct {
	cfg      Config
	client   anthropic.Client
	observer Observer
}

func newAnthropicClient(cfg Config, observer Observer) (*anthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &anthropicClient{
		cfg:      cfg,
		client:   anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		observer: observer,
	}, nil
}

// buildSystemBlocks assembles the system parameter: the cacheable static
// block first, then the dynamic block. Ordering matters: the provider
// caches a prefix, so the invariant block must come first.
func buildSystemBlocks(static, dynamic string) []anthropic.TextBlockParam {
	blocks := make([]anthropic.TextBlockParam, 0, 2)
	if static != "" {
		b := anthropic.TextBlockParam{Text: static, Type: "text"}
		b.CacheControl = anthropic.NewCacheControlEphemeralParam()
		blocks = append(blocks, b)
	}
	if dynamic != "" {
		blocks = append(blocks, anthropic.TextBlockParam{Text: dynamic, Type: "text"})
	}
	return blocks
}

func (c *anthropicClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, anthropic.MessageParam{
			Role:    anthropic.MessageParamRole(m.Role),
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(m.Content)},
		})
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model),
		Messages:    messages,
		MaxTokens:   int64(maxTok),
		Temperature: anthropic.Float(temp),
		System:      buildSystemBlocks(req.StaticSystem, req.DynamicSystem),
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		resp, err := c.client.Messages.New(ctx, params)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		var b strings.Builder
		for _, block := range resp.Content {
			if block.Type == "text" {
				b.WriteString(block.Text)
			}
		}
		text := b.String()
		if text == "" {
			lastErr = ErrEmptyResponse
			continue
		}

		latency := time.Since(start).Milliseconds()
		c.observer.OnCallComplete(CallEvent{
			Provider:  ProviderAnthropic,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   true,
		})
		return &ChatResponse{Text: text, Model: string(resp.Model), LatencyMs: latency}, nil
	}

	c.observer.OnCallComplete(CallEvent{
		Provider:  ProviderAnthropic,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: "request_failed",
	})
	if lastErr == nil {
		lastErr = ErrRetryExhausted
	}
	return nil, lastErr
}

func (c *anthropicClient) Available(_ context.Context) bool {
	return c.cfg.APIKey != ""
}
