package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	adkagent "google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/adk/tool"
	"google.golang.org/genai"

	"github.com/dataconv/alteryx2bq/internal/prompt"
)

const (
	appName     = "alteryx2bq"
	defaultUser = "default-user"
)

// Chatbot is the conversational pipeline: the raw message is delegated to the
// LLM agent with no templating beyond the system instruction. Sessions are
// kept in memory so a caller that sends a session_id gets conversational
// continuity; the conversion pipeline never touches them.
type Chatbot struct {
	runner   *runner.Runner
	sessions session.Service
}

// NewChatbot builds the chat agent and its runner. The toolsets slice may be
// empty; when an MCP endpoint is configured the server passes its toolset in.
func NewChatbot(llmModel model.LLM, toolsets []tool.Toolset) (*Chatbot, error) {
	chatAgent, err := llmagent.New(llmagent.Config{
		Name:        "chatbot_agent",
		Model:       llmModel,
		Description: "A friendly chatbot for general conversations and initiating Alteryx XML to BigQuery SQL conversions.",
		Instruction: prompt.ChatInstruction,
		Toolsets:    toolsets,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessionService := session.InMemoryService()

	agentRunner, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          chatAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &Chatbot{runner: agentRunner, sessions: sessionService}, nil
}

// Respond runs the agent for one message in the given session and returns the
// accumulated reply text.
func (c *Chatbot) Respond(ctx context.Context, sessionID, text string) (string, error) {
	if err := c.ensureSession(ctx, sessionID); err != nil {
		return "", err
	}

	userContent := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: text},
		},
	}

	var reply strings.Builder
	for event, err := range c.runner.Run(ctx, defaultUser, sessionID, userContent, adkagent.RunConfig{}) {
		if err != nil {
			log.Printf("Chatbot: error running agent: %v", err)
			return "", err
		}
		if event == nil || event.Content == nil {
			continue
		}
		for _, part := range event.Content.Parts {
			if part.Text != "" {
				reply.WriteString(part.Text)
			}
		}
	}

	if reply.Len() == 0 {
		return "The agent processed the message but did not return a response.", nil
	}
	return reply.String(), nil
}

// ensureSession creates the session in the ADK session service if it does not
// exist yet, tolerating concurrent creation.
func (c *Chatbot) ensureSession(ctx context.Context, sessionID string) error {
	_, err := c.sessions.Get(ctx, &session.GetRequest{
		AppName:   appName,
		SessionID: sessionID,
	})
	if err == nil {
		return nil
	}

	_, createErr := c.sessions.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		SessionID: sessionID,
		UserID:    defaultUser,
	})
	if createErr != nil && !strings.Contains(createErr.Error(), "already exists") {
		return fmt.Errorf("failed to create session: %w", createErr)
	}
	return nil
}
