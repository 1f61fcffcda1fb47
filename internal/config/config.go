package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the service reads from the environment. It is built
// once at startup and passed by reference into the components that need it;
// nothing reads env vars after Load returns.
type Config struct {
	Addr      string
	ModelName string

	// Backend selection: Vertex AI (project/location) or direct API key.
	UseVertexAI bool
	Project     string
	Location    string
	APIKey      string

	// Optional MCP toolset for the chat agent.
	MCPEndpoint string
	MCPToken    string
}

// Load reads the environment and validates the selected model backend.
// Missing credentials for the chosen mode are the only fatal condition in the
// whole service, so callers are expected to exit on error.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		ModelName:   getEnv("MODEL_NAME", "gemini-2.0-flash"),
		UseVertexAI: strings.EqualFold(getEnv("GOOGLE_GENAI_USE_VERTEXAI", "false"), "true"),
		Project:     os.Getenv("GOOGLE_CLOUD_PROJECT"),
		Location:    os.Getenv("GOOGLE_CLOUD_LOCATION"),
		APIKey:      os.Getenv("GOOGLE_API_KEY"),
		MCPEndpoint: os.Getenv("MCP_ENDPOINT"),
		MCPToken:    os.Getenv("MCP_TOKEN"),
	}

	if cfg.UseVertexAI {
		if cfg.Project == "" || cfg.Location == "" {
			return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT or GOOGLE_CLOUD_LOCATION not set for Vertex AI")
		}
	} else if cfg.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY not set")
	}

	return cfg, nil
}

// getEnv returns the value of the variable, or the default when unset
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
