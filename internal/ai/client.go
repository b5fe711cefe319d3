// Package ai provides pluggable chat-completion clients for the
// language-understanding parts of the assistant.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Client is a chat-completion provider. Complete returns free text;
// CompleteJSON asks the model for a single JSON object.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// ErrUnavailable means no provider is configured. Callers treat it as
// "run without the capability", not as a failure.
var ErrUnavailable = errors.New("no ai provider configured")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- OpenAI-compatible provider ---

// OpenAIClient talks to any OpenAI-compatible chat completions API.
type OpenAIClient struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

type openaiChatReq struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type openaiChatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewOpenAIClient creates a client for an OpenAI-compatible API.
// OPENAI_BASE_URL and TRIPAGENT_AI_MODEL override the defaults.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	base := os.Getenv("OPENAI_BASE_URL")
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	model := os.Getenv("TRIPAGENT_AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		BaseURL: base,
		APIKey:  apiKey,
		Model:   model,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, false)
}

func (c *OpenAIClient) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, true)
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	payload := openaiChatReq{
		Model:       c.Model,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonMode {
		payload.Temperature = 0
		payload.ResponseFormat = map[string]any{"type": "json_object"}
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("openai error %d: %s", res.StatusCode, body)
	}

	var out openaiChatResp
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai: no choices")
	}

	log.Debug("openai completion", "model", c.Model, "json", jsonMode, "took", time.Since(start))
	return out.Choices[0].Message.Content, nil
}

// --- Ollama provider ---

// OllamaClient talks to a local Ollama instance.
type OllamaClient struct {
	BaseURL string
	Model   string
	HTTP    *http.Client
}

type ollamaChatReq struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type ollamaChatResp struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// NewOllamaClient creates a client for Ollama's chat API.
// OLLAMA_HOST overrides the default base URL.
func NewOllamaClient(model string) *OllamaClient {
	base := os.Getenv("OLLAMA_HOST")
	if base == "" {
		base = "http://localhost:11434"
	}
	return &OllamaClient{
		BaseURL: base,
		Model:   model,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OllamaClient) Complete(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, "")
}

func (c *OllamaClient) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, "json")
}

func (c *OllamaClient) complete(ctx context.Context, system, user, format string) (string, error) {
	body, _ := json.Marshal(ollamaChatReq{
		Model:  c.Model,
		Stream: false,
		Format: format,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		b, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("ollama error %d: %s", res.StatusCode, string(b))
	}

	var out ollamaChatResp
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}

	log.Debug("ollama completion", "model", c.Model, "took", time.Since(start))
	return out.Message.Content, nil
}

// --- Factory ---

// NewFromEnv creates a client from environment configuration.
// TRIPAGENT_AI_PROVIDER: "openai" | "ollama" | "" (auto: openai when a
// key can be found, otherwise ErrUnavailable).
// The OpenAI key comes from OPENAI_API_KEY or a key file
// (openai_api_key.txt, override with TRIPAGENT_KEY_FILE).
func NewFromEnv() (Client, error) {
	switch provider := os.Getenv("TRIPAGENT_AI_PROVIDER"); provider {
	case "ollama":
		model := os.Getenv("TRIPAGENT_AI_MODEL")
		if model == "" {
			model = "llama3.2"
		}
		return NewOllamaClient(model), nil
	case "openai", "":
		key := apiKey()
		if key == "" {
			return nil, ErrUnavailable
		}
		return NewOpenAIClient(key), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", provider)
	}
}

// apiKey looks for an OpenAI key in the environment, then in a key file.
func apiKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	path := os.Getenv("TRIPAGENT_KEY_FILE")
	if path == "" {
		path = "openai_api_key.txt"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// ExtractJSONObject returns the first balanced JSON object in s. Models
// sometimes wrap JSON replies in prose or code fences.
func ExtractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	for i, r := range s {
		if r == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if r == '}' {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], nil
				}
			}
		}
	}
	return "", errors.New("no balanced JSON object found")
}
