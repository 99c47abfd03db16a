package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Loose decoding helpers for caller-supplied and upstream JSON. None of
// them fail: unexpected shapes degrade to zero values.

func jsonKind(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func isJSONObject(raw json.RawMessage) bool {
	return jsonKind(raw) == '{'
}

// stringifyRaw converts any JSON value to text. Absent and null become "",
// strings are unquoted, numbers and booleans keep their literal form and
// objects or arrays become compact JSON.
func stringifyRaw(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	switch jsonKind(trimmed) {
	case 0, 'n':
		return ""
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed)
		}
		return s
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return string(trimmed)
		}
		return buf.String()
	default:
		return string(trimmed)
	}
}

// stringifyValue is stringifyRaw for values already decoded into any.
func stringifyValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

// field returns obj[key] when v is a JSON object.
func field(v any, key string) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}

// first returns the first element when v is a non-empty JSON array.
func first(v any) any {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}
	return arr[0]
}
