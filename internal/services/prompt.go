package services

import (
	"encoding/json"
	"strings"

	"coach-relay/internal/models"
)

const (
	// MaxHistoryTurns is how many trailing thread turns reach the model.
	MaxHistoryTurns = 10

	temperature      = 0.7
	maxOutputTokens  = 1200
	responseMimeType = "text/plain"
)

// BuildSystemInstruction renders the context pack into the fixed
// instruction template. Empty fields leave their section blank.
func BuildSystemInstruction(pack models.ContextPack) string {
	var b strings.Builder

	b.WriteString(pack.CoachPersona)
	b.WriteString("\n\n")
	b.WriteString(pack.PlayerProfile)
	b.WriteString("\n\n")
	b.WriteString("Recent matches:\n")
	b.WriteString(pack.RecentMatchesSummary)
	b.WriteString("\n\n")
	b.WriteString("Constraints:\n")
	b.WriteString(pack.Constraints)

	return strings.TrimSpace(b.String())
}

// NormalizeThread returns the last MaxHistoryTurns turns in source order.
func NormalizeThread(thread *models.Thread) []models.Turn {
	if thread == nil || len(thread.Turns) == 0 {
		return []models.Turn{}
	}

	turns := thread.Turns
	if len(turns) > MaxHistoryTurns {
		turns = turns[len(turns)-MaxHistoryTurns:]
	}

	out := make([]models.Turn, len(turns))
	for i, t := range turns {
		out[i] = models.Turn{Role: normalizeRole(t.Role), Text: t.Text}
	}
	return out
}

// BuildPayload assembles the upstream request: system instruction, the
// normalized history and the new user message as the final turn.
func BuildPayload(req models.ChatRequest) models.GeminiPayload {
	history := NormalizeThread(req.Thread)

	contents := make([]models.GeminiContent, 0, len(history)+1)
	for _, t := range history {
		contents = append(contents, models.GeminiContent{
			Role:  t.Role,
			Parts: []models.GeminiPart{{Text: t.Text}},
		})
	}
	contents = append(contents, models.GeminiContent{
		Role:  models.RoleUser,
		Parts: []models.GeminiPart{{Text: req.UserMessage}},
	})

	return models.GeminiPayload{
		SystemInstruction: models.GeminiContent{
			Parts: []models.GeminiPart{{Text: BuildSystemInstruction(req.ContextPack)}},
		},
		Contents: contents,
		GenerationConfig: models.GenerationConfig{
			Temperature:      temperature,
			MaxOutputTokens:  maxOutputTokens,
			ResponseMimeType: responseMimeType,
		},
	}
}

func normalizeRole(role string) string {
	if role == models.RoleUser {
		return models.RoleUser
	}
	return models.RoleModel
}

// ParseContextPack reads the four context fields from untyped JSON.
// Missing or null fields are empty; other non-strings are stringified.
func ParseContextPack(raw json.RawMessage) models.ContextPack {
	var fields struct {
		CoachPersona         json.RawMessage `json:"coachPersona"`
		PlayerProfile        json.RawMessage `json:"playerProfile"`
		RecentMatchesSummary json.RawMessage `json:"recentMatchesSummary"`
		Constraints          json.RawMessage `json:"constraints"`
	}
	if !isJSONObject(raw) || json.Unmarshal(raw, &fields) != nil {
		return models.ContextPack{}
	}

	return models.ContextPack{
		CoachPersona:         stringifyRaw(fields.CoachPersona),
		PlayerProfile:        stringifyRaw(fields.PlayerProfile),
		RecentMatchesSummary: stringifyRaw(fields.RecentMatchesSummary),
		Constraints:          stringifyRaw(fields.Constraints),
	}
}

// ParseThread reads a thread from untyped JSON. It returns nil when no
// thread object is present; a thread whose turns is not an array has no
// turns.
func ParseThread(raw json.RawMessage) *models.Thread {
	var fields struct {
		Turns json.RawMessage `json:"turns"`
	}
	if !isJSONObject(raw) || json.Unmarshal(raw, &fields) != nil {
		return nil
	}

	thread := &models.Thread{Turns: []models.Turn{}}
	if jsonKind(fields.Turns) != '[' {
		return thread
	}

	var items []json.RawMessage
	if err := json.Unmarshal(fields.Turns, &items); err != nil {
		return thread
	}
	for _, item := range items {
		thread.Turns = append(thread.Turns, ParseTurn(item))
	}
	return thread
}

// ParseTurn converts one untyped turn. Role is "user" only for the exact
// string "user"; everything else is "model". Text never fails to convert.
func ParseTurn(raw json.RawMessage) models.Turn {
	var fields struct {
		Role json.RawMessage `json:"role"`
		Text json.RawMessage `json:"text"`
	}
	if !isJSONObject(raw) || json.Unmarshal(raw, &fields) != nil {
		return models.Turn{Role: models.RoleModel}
	}

	role := models.RoleModel
	if jsonKind(fields.Role) == '"' && stringifyRaw(fields.Role) == models.RoleUser {
		role = models.RoleUser
	}

	return models.Turn{Role: role, Text: stringifyRaw(fields.Text)}
}
