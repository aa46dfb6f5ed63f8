package assist

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Gemini is the hosted-model Generator.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini generator. An empty API key is an error; the
// caller decides whether to run without a generator instead.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("assist: API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("assist: create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate implements Generator with a single, fail-fast model call.
func (g *Gemini) Generate(ctx context.Context, prompt string, jsonOut bool) (string, error) {
	var config *genai.GenerateContentConfig
	if jsonOut {
		config = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("assist: generate: %w", err)
	}

	// An empty body is not an error here; each capability decides what an
	// empty response means.
	return strings.TrimSpace(resp.Text()), nil
}
