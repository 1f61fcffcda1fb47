package model

// ChatRequest is the payload for the chat endpoint
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the reply from the chat endpoint
type ChatResponse struct {
	Response  string `json:"response,omitempty"`
	Kind      string `json:"kind,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ResponseKind tells what the router produced for a message
type ResponseKind string

const (
	KindSQL   ResponseKind = "sql"
	KindChat  ResponseKind = "chat"
	KindError ResponseKind = "error"
)

// ConversionResponse is the outcome of one routed message. It lives for a
// single request/response cycle and is never stored.
type ConversionResponse struct {
	Kind ResponseKind
	Body string
}

// SQLResponse builds a successful conversion outcome
func SQLResponse(body string) ConversionResponse {
	return ConversionResponse{Kind: KindSQL, Body: body}
}

// ChatReply builds a conversational outcome
func ChatReply(body string) ConversionResponse {
	return ConversionResponse{Kind: KindChat, Body: body}
}

// ErrorResponse builds a user-facing failure outcome
func ErrorResponse(body string) ConversionResponse {
	return ConversionResponse{Kind: KindError, Body: body}
}
