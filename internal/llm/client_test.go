package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderSelection(t *testing.T) {
	_, err := New(Config{Provider: "bedrock"}, nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)

	_, err = New(Config{Provider: ProviderAnthropic}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	c, err := New(Config{Provider: ProviderAnthropic, APIKey: "sk-test"}, nil)
	require.NoError(t, err)
	assert.True(t, c.Available(context.Background()))

	c, err = New(Config{Provider: ProviderOllama, Endpoint: "http://localhost:11434"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestJoinSystem(t *testing.T) {
	assert.Equal(t, "a\n\nb", joinSystem("a", "b"))
	assert.Equal(t, "a", joinSystem("a", ""))
	assert.Equal(t, "b", joinSystem("", "b"))
	assert.Equal(t, "", joinSystem("", ""))
}

func TestBuildSystemBlocks(t *testing.T) {
	blocks := buildSystemBlocks("static part", "dynamic part")
	require.Len(t, blocks, 2)

	// Static block comes first and carries the cache marker; the provider
	// caches a prefix, so ordering is load-bearing.
	assert.Equal(t, "static part", blocks[0].Text)
	assert.Equal(t, anthropic.NewCacheControlEphemeralParam(), blocks[0].CacheControl)

	assert.Equal(t, "dynamic part", blocks[1].Text)
	assert.NotEqual(t, anthropic.NewCacheControlEphemeralParam(), blocks[1].CacheControl)
}

func TestBuildSystemBlocksEmptyHalves(t *testing.T) {
	assert.Empty(t, buildSystemBlocks("", ""))

	blocks := buildSystemBlocks("", "dynamic only")
	require.Len(t, blocks, 1)
	assert.Equal(t, "dynamic only", blocks[0].Text)
}

func TestOllamaChat(t *testing.T) {
	var got ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ollamaResponse{
			Model:   "llama3.2",
			Message: ollamaMessage{Role: "assistant", Content: "Let's start with the buyer."},
		})
	}))
	defer srv.Close()

	c := newOllamaClient(Config{
		Provider: ProviderOllama, Model: "llama3.2", Endpoint: srv.URL,
		TimeoutMs: 5000, MaxTokens: 512, Temperature: 0.5,
	}, NoopObserver{})

	resp, err := c.Chat(context.Background(), ChatRequest{
		StaticSystem:  "STATIC",
		DynamicSystem: "DYNAMIC",
		Messages:      []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Let's start with the buyer.", resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)

	// System prompt is the merged split, sent as the first message.
	require.NotEmpty(t, got.Messages)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "STATIC\n\nDYNAMIC", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.False(t, got.Stream)
}

func TestOllamaChatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newOllamaClient(Config{Endpoint: srv.URL, TimeoutMs: 5000, MaxRetries: 1}, NoopObserver{})
	_, err := c.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newOllamaClient(Config{Endpoint: srv.URL}, NoopObserver{})
	assert.True(t, c.Available(context.Background()))

	down := newOllamaClient(Config{Endpoint: "http://127.0.0.1:1"}, NoopObserver{})
	assert.False(t, down.Available(context.Background()))
}
