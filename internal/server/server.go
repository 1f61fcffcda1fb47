package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/mcptoolset"

	"github.com/dataconv/alteryx2bq/internal/agent"
	"github.com/dataconv/alteryx2bq/internal/config"
	"github.com/dataconv/alteryx2bq/internal/llm"
)

// AuthenticatedTransport adds a bearer token to outgoing MCP requests
type AuthenticatedTransport struct {
	Base  http.RoundTripper
	Token string
}

func (t *AuthenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so the original request is not modified
	reqCopy := req.Clone(req.Context())

	if t.Token != "" {
		reqCopy.Header.Set("Authorization", "Bearer "+t.Token)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(reqCopy)
}

// Server holds the HTTP server and all its dependencies
type Server struct {
	Config     *config.Config
	Dispatcher *agent.Router
	Router     chi.Router
}

// NewServer creates the model, the two pipelines, and the router around them
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	llmModel, err := llm.NewModel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var toolsets []tool.Toolset
	if cfg.MCPEndpoint != "" {
		toolset, err := newMCPToolset(cfg)
		if err != nil {
			return nil, err
		}
		toolsets = append(toolsets, toolset)
		log.Printf("✅ MCP toolset initialized for %s", cfg.MCPEndpoint)
	}

	chatbot, err := agent.NewChatbot(llmModel, toolsets)
	if err != nil {
		return nil, err
	}
	converter := agent.NewConverter(llm.NewGeminiGateway(llmModel, cfg.ModelName))

	s := &Server{
		Config:     cfg,
		Dispatcher: agent.NewRouter(agent.DefaultPipelines(chatbot, converter)),
	}
	return s, nil
}

// newMCPToolset connects to the configured MCP endpoint, authenticating when
// a token was configured.
func newMCPToolset(cfg *config.Config) (tool.Toolset, error) {
	httpClient := &http.Client{
		Transport: &AuthenticatedTransport{
			Base:  http.DefaultTransport,
			Token: cfg.MCPToken,
		},
		Timeout: 30 * time.Second,
	}

	transport := &mcp.StreamableClientTransport{
		Endpoint:   cfg.MCPEndpoint,
		HTTPClient: httpClient,
	}

	toolset, err := mcptoolset.New(mcptoolset.Config{
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP tool set: %w", err)
	}
	return toolset, nil
}

// SetupRouter configures the Chi routes and middlewares
func (s *Server) SetupRouter(
	handleRoot func(http.ResponseWriter, *http.Request),
	handleHealth func(http.ResponseWriter, *http.Request),
	handleChat func(http.ResponseWriter, *http.Request),
) {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Routes
	r.Get("/", handleRoot)
	r.Get("/health", handleHealth)
	r.Post("/chat", handleChat)

	// Kept for callers that expect the /api prefix
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", handleChat)
	})

	s.Router = r
}

// Start runs the HTTP server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) {
	httpServer := &http.Server{
		Addr:         s.Config.Addr,
		Handler:      s.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Alteryx XML to BigQuery SQL agent listening on %s", s.Config.Addr)
		log.Printf("   • Chat API:  POST %s/chat", s.Config.Addr)
		log.Printf("   • Health:    GET  %s/health", s.Config.Addr)
		if s.Config.UseVertexAI {
			log.Printf("   • Backend:   Vertex AI (project %s, location %s)", s.Config.Project, s.Config.Location)
		} else {
			log.Printf("   • Backend:   Gemini API key")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
