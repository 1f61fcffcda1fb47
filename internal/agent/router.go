package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/dataconv/alteryx2bq/internal/model"
	"github.com/dataconv/alteryx2bq/internal/xmlval"
)

// Route names one of the two pipelines a message can take
type Route string

const (
	RouteChat    Route = "chat"
	RouteConvert Route = "convert"
)

// PipelineFunc runs one pipeline for a single message. Implementations must
// never panic; every failure comes back as an error-kind response.
type PipelineFunc func(ctx context.Context, sessionID, text string) model.ConversionResponse

// Router is the top-level dispatch for incoming messages. Pipelines are
// injected as an explicit function map at construction time; there is no
// dynamic tool registration. Each call is independent and keeps no state
// between requests.
type Router struct {
	pipelines map[Route]PipelineFunc
}

// NewRouter creates a router over the given pipeline map
func NewRouter(pipelines map[Route]PipelineFunc) *Router {
	return &Router{pipelines: pipelines}
}

// DefaultPipelines wires the two production pipelines. Chat failures are
// converted to user-facing errors here so the router itself stays oblivious
// to how each pipeline fails.
func DefaultPipelines(chatbot *Chatbot, converter *Converter) map[Route]PipelineFunc {
	return map[Route]PipelineFunc{
		RouteConvert: func(ctx context.Context, _, text string) model.ConversionResponse {
			return converter.Convert(ctx, text)
		},
		RouteChat: func(ctx context.Context, sessionID, text string) model.ConversionResponse {
			reply, err := chatbot.Respond(ctx, sessionID, text)
			if err != nil {
				return model.ErrorResponse(fmt.Sprintf(
					"Sorry, I encountered an internal error processing your message: %v", err))
			}
			return model.ChatReply(reply)
		},
	}
}

// Classify decides which pipeline a message takes. Anything that opens a tag
// goes to the conversion pipeline, where the strict parser has the final word;
// everything else is ordinary conversation.
func (r *Router) Classify(text string) Route {
	if xmlval.LooksLikeMarkup(text) {
		return RouteConvert
	}
	return RouteChat
}

// Respond dispatches one message and returns the outcome plus the session id
// it ran under (a fresh one when the caller did not send any).
func (r *Router) Respond(ctx context.Context, sessionID, text string) (model.ConversionResponse, string) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	route := r.Classify(text)
	log.Printf("Router: session %s routed to %s pipeline", sessionID, route)

	pipeline, ok := r.pipelines[route]
	if !ok {
		return model.ErrorResponse(fmt.Sprintf("no pipeline registered for route %q", route)), sessionID
	}
	return pipeline(ctx, sessionID, text), sessionID
}
