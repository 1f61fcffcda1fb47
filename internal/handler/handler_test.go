package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dataconv/alteryx2bq/internal/agent"
	"github.com/dataconv/alteryx2bq/internal/model"
)

func newTestHandler() *Handler {
	router := agent.NewRouter(map[agent.Route]agent.PipelineFunc{
		agent.RouteChat: func(context.Context, string, string) model.ConversionResponse {
			return model.ChatReply("Hi! How can I help?")
		},
		agent.RouteConvert: func(_ context.Context, _, text string) model.ConversionResponse {
			return model.SQLResponse("SELECT * FROM t")
		},
	})
	return NewHandler(router)
}

func postChat(t *testing.T, h *Handler, body string) model.ChatResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var resp model.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestHandleChatConversation(t *testing.T) {
	resp := postChat(t, newTestHandler(), `{"message": "Hello there"}`)

	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.Kind != string(model.KindChat) {
		t.Errorf("kind = %q, expected %q", resp.Kind, model.KindChat)
	}
	if resp.Response != "Hi! How can I help?" {
		t.Errorf("response = %q, expected the chat reply", resp.Response)
	}
	if resp.SessionID == "" {
		t.Error("a session id should always be returned")
	}
}

func TestHandleChatConversion(t *testing.T) {
	resp := postChat(t, newTestHandler(), `{"message": "<AlteryxWorkflow><Nodes/></AlteryxWorkflow>"}`)

	if resp.Kind != string(model.KindSQL) {
		t.Errorf("kind = %q, expected %q", resp.Kind, model.KindSQL)
	}
	if resp.Response != "SELECT * FROM t" {
		t.Errorf("response = %q, expected the SQL", resp.Response)
	}
}

func TestHandleChatKeepsSessionID(t *testing.T) {
	resp := postChat(t, newTestHandler(), `{"message": "hi", "session_id": "abc-123"}`)
	if resp.SessionID != "abc-123" {
		t.Errorf("session_id = %q, expected the caller's id back", resp.SessionID)
	}
}

func TestHandleChatInvalidJSON(t *testing.T) {
	resp := postChat(t, newTestHandler(), `{"message": broken}`)
	if resp.Error != "Invalid JSON format" {
		t.Errorf("error = %q, expected the invalid-JSON message", resp.Error)
	}
}

func TestHandleChatEmptyMessage(t *testing.T) {
	resp := postChat(t, newTestHandler(), `{"message": ""}`)
	if resp.Error != "Message is required" {
		t.Errorf("error = %q, expected the missing-message error", resp.Error)
	}
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, expected OK", rec.Body.String())
	}
}

func TestHandleRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().HandleRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var info map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("failed to decode service info: %v", err)
	}
	if _, ok := info["endpoints"]; !ok {
		t.Error("service info should list the endpoints")
	}
}
