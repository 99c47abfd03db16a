package services

import "strings"

// FallbackReply is returned when the model produced no usable text.
const FallbackReply = "I'm here. Tell me what you want to improve today."

// ExtractReply joins the text parts of the first candidate. Any missing
// link in candidates[0].content.parts counts as no parts.
func ExtractReply(envelope any) string {
	content := field(first(field(envelope, "candidates")), "content")
	parts, _ := field(content, "parts").([]any)

	var text strings.Builder
	for _, part := range parts {
		text.WriteString(stringifyValue(field(part, "text")))
	}

	reply := strings.TrimSpace(text.String())
	if reply == "" {
		return FallbackReply
	}
	return reply
}

// ExtractFinishReason returns candidates[0].finishReason, or nil.
func ExtractFinishReason(envelope any) any {
	return field(first(field(envelope, "candidates")), "finishReason")
}

// ExtractUsage returns the usageMetadata object, or nil.
func ExtractUsage(envelope any) any {
	return field(envelope, "usageMetadata")
}
