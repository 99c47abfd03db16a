package services

import (
	"encoding/json"
	"testing"
)

func decodeEnvelope(t *testing.T, body string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"joins parts", `{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"world"}]}}]}`, "Hello world"},
		{"trims", `{"candidates":[{"content":{"parts":[{"text":"  spaced \n"}]}}]}`, "spaced"},
		{"missing text in a part", `{"candidates":[{"content":{"parts":[{"text":"a"},{},{"text":"b"}]}}]}`, "ab"},
		{"only first candidate", `{"candidates":[{"content":{"parts":[{"text":"one"}]}},{"content":{"parts":[{"text":"two"}]}}]}`, "one"},
		{"empty candidates", `{"candidates":[]}`, FallbackReply},
		{"no candidates", `{}`, FallbackReply},
		{"missing content", `{"candidates":[{"finishReason":"SAFETY"}]}`, FallbackReply},
		{"missing parts", `{"candidates":[{"content":{}}]}`, FallbackReply},
		{"whitespace only", `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`, FallbackReply},
		{"null envelope", `null`, FallbackReply},
		{"array envelope", `[]`, FallbackReply},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractReply(decodeEnvelope(t, tc.body))
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestExtractFinishReasonAndUsage(t *testing.T) {
	env := decodeEnvelope(t, `{"candidates":[{"finishReason":"STOP"}],"usageMetadata":{"totalTokenCount":12}}`)

	if got := ExtractFinishReason(env); got != "STOP" {
		t.Errorf("expected STOP, got %v", got)
	}
	usage, ok := ExtractUsage(env).(map[string]any)
	if !ok || usage["totalTokenCount"] != float64(12) {
		t.Errorf("unexpected usage %#v", ExtractUsage(env))
	}

	empty := decodeEnvelope(t, `{"candidates":[]}`)
	if ExtractFinishReason(empty) != nil {
		t.Error("expected nil finish reason")
	}
	if ExtractUsage(empty) != nil {
		t.Error("expected nil usage")
	}
}
