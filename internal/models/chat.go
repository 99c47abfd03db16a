package models

import "encoding/json"

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ContextPack carries the caller-supplied coaching context.
type ContextPack struct {
	CoachPersona         string `json:"coachPersona"`
	PlayerProfile        string `json:"playerProfile"`
	RecentMatchesSummary string `json:"recentMatchesSummary"`
	Constraints          string `json:"constraints"`
}

// Turn is a single normalized message in a conversation.
type Turn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Thread is the conversation history supplied by the caller.
type Thread struct {
	Turns []Turn `json:"turns"`
}

// RawChatRequest is the chat endpoint body before validation. Fields stay
// raw so that type checks and coercion happen in one place.
type RawChatRequest struct {
	UserMessage json.RawMessage `json:"userMessage"`
	ContextPack json.RawMessage `json:"contextPack"`
	Thread      json.RawMessage `json:"thread"`
}

// ChatRequest is a validated chat request.
type ChatRequest struct {
	UserMessage string
	ContextPack ContextPack
	Thread      *Thread
}

// ChatReply is the response of the chat endpoint. Meta and Raw are only
// set in debug mode.
type ChatReply struct {
	Reply string     `json:"reply"`
	Meta  *ReplyMeta `json:"meta,omitempty"`
	Raw   any        `json:"raw,omitempty"`
}

type ReplyMeta struct {
	Model        string `json:"model"`
	FinishReason any    `json:"finishReason"`
	Usage        any    `json:"usage"`
}
