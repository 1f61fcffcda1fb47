// Package llm wraps the ADK model behind the one contract the pipelines need:
// submit a prompt string, receive a completion string or a failure.
package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"github.com/dataconv/alteryx2bq/internal/config"
)

// Gateway is the boundary to the external generative model. Implementations
// must treat every failure as non-fatal and return it as an error; callers
// convert errors into user-facing responses.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewModel creates the Gemini model for the configured backend: Vertex AI
// when the config selected it, the direct API-key backend otherwise.
func NewModel(ctx context.Context, cfg *config.Config) (model.LLM, error) {
	clientConfig := &genai.ClientConfig{}
	if cfg.UseVertexAI {
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = cfg.Project
		clientConfig.Location = cfg.Location
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
		clientConfig.APIKey = cfg.APIKey
	}

	llmModel, err := gemini.NewModel(ctx, cfg.ModelName, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return llmModel, nil
}

// GeminiGateway sends a single-turn request to the model and collects the
// streamed parts into one completion string.
type GeminiGateway struct {
	model     model.LLM
	modelName string
}

// NewGeminiGateway wraps an ADK model as a Gateway
func NewGeminiGateway(m model.LLM, modelName string) *GeminiGateway {
	return &GeminiGateway{model: m, modelName: modelName}
}

// Generate sends one prompt and returns the accumulated completion text
func (g *GeminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	request := model.LLMRequest{
		Model: g.modelName,
		Contents: []*genai.Content{
			{
				Role: "user",
				Parts: []*genai.Part{
					{Text: prompt},
				},
			},
		},
	}

	var completion strings.Builder
	for response, err := range g.model.GenerateContent(ctx, &request, false) {
		if err != nil {
			return "", err
		}
		if response == nil || response.Content == nil {
			continue
		}
		for _, part := range response.Content.Parts {
			if part.Text != "" {
				completion.WriteString(part.Text)
			}
		}
	}

	if completion.Len() == 0 {
		return "", fmt.Errorf("model returned an empty completion")
	}
	return completion.String(), nil
}
