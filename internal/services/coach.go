package services

import (
	"context"
	"encoding/json"
	"log"

	"coach-relay/internal/models"
)

// generator is the upstream call CoachService depends on.
type generator interface {
	GenerateContent(ctx context.Context, payload models.GeminiPayload) (any, error)
	Model() string
}

type CoachService struct {
	gemini     generator
	credential bool
}

// NewCoachService wires the chat flow. hasCredential mirrors whether an API
// key is configured; without one every chat request fails with ConfigError.
func NewCoachService(gemini generator, hasCredential bool) *CoachService {
	return &CoachService{gemini: gemini, credential: hasCredential}
}

// CheckConfigured fails when no upstream credential is configured.
func (s *CoachService) CheckConfigured() error {
	if !s.credential {
		return errMissingCredential
	}
	return nil
}

// Validate checks the raw request in order (credential, userMessage,
// contextPack) and returns the first failure.
func (s *CoachService) Validate(raw models.RawChatRequest) (models.ChatRequest, error) {
	if err := s.CheckConfigured(); err != nil {
		return models.ChatRequest{}, err
	}

	var userMessage string
	if jsonKind(raw.UserMessage) != '"' || json.Unmarshal(raw.UserMessage, &userMessage) != nil || userMessage == "" {
		return models.ChatRequest{}, errInvalidUserMessage
	}

	if !isJSONObject(raw.ContextPack) {
		return models.ChatRequest{}, errInvalidContextPack
	}

	return models.ChatRequest{
		UserMessage: userMessage,
		ContextPack: ParseContextPack(raw.ContextPack),
		Thread:      ParseThread(raw.Thread),
	}, nil
}

// Chat validates the request, forwards it upstream and extracts the reply.
// With debug set, the reply also carries upstream metadata and the raw
// envelope.
func (s *CoachService) Chat(ctx context.Context, raw models.RawChatRequest, debug bool) (*models.ChatReply, error) {
	req, err := s.Validate(raw)
	if err != nil {
		return nil, err
	}

	envelope, err := s.gemini.GenerateContent(ctx, BuildPayload(req))
	if err != nil {
		return nil, err
	}

	reply := &models.ChatReply{Reply: ExtractReply(envelope)}
	if reply.Reply == FallbackReply {
		log.Printf("WARNING: Gemini returned no text (finishReason=%v). Using fallback.", ExtractFinishReason(envelope))
	}

	if debug {
		reply.Meta = &models.ReplyMeta{
			Model:        s.gemini.Model(),
			FinishReason: ExtractFinishReason(envelope),
			Usage:        ExtractUsage(envelope),
		}
		reply.Raw = envelope
	}

	return reply, nil
}
