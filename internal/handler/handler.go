package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dataconv/alteryx2bq/internal/agent"
	"github.com/dataconv/alteryx2bq/internal/model"
)

// Handler holds the dependencies for the HTTP handlers
type Handler struct {
	router *agent.Router
}

// NewHandler creates a new Handler over the router
func NewHandler(router *agent.Router) *Handler {
	return &Handler{router: router}
}

// HandleRoot returns service information
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"service": "Alteryx XML to BigQuery SQL agent",
		"endpoints": map[string]interface{}{
			"chat": map[string]interface{}{
				"url":         "/chat",
				"method":      "POST",
				"description": "Send a message, or paste Alteryx XML to convert it to BigQuery SQL",
				"example": map[string]string{
					"message":    "<AlteryxWorkflow>...</AlteryxWorkflow>",
					"session_id": "optional-session-id",
				},
			},
			"health": map[string]interface{}{
				"url":         "/health",
				"method":      "GET",
				"description": "Health check endpoint",
			},
		},
	}

	json.NewEncoder(w).Encode(response)
}

// HandleHealth returns the server health status
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleChat routes one user message and writes the outcome
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		json.NewEncoder(w).Encode(model.ChatResponse{
			Error: "Invalid JSON format",
		})
		return
	}
	defer r.Body.Close()

	if req.Message == "" {
		json.NewEncoder(w).Encode(model.ChatResponse{
			Error: "Message is required",
		})
		return
	}

	resp, sessionID := h.router.Respond(r.Context(), req.SessionID, req.Message)

	log.Printf("Response kind %s in session %s", resp.Kind, sessionID)

	json.NewEncoder(w).Encode(model.ChatResponse{
		Response:  resp.Body,
		Kind:      string(resp.Kind),
		SessionID: sessionID,
	})
}
