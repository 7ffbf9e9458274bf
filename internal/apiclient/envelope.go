package apiclient

import (
	"bytes"
	"encoding/json"
)

// The shared convention across every endpoint: the payload may sit under a
// "data" key (for lists, sometimes twice) or be the body itself. Unwrapping
// is centralized here instead of scattered per call site.

// unwrapData returns the payload of a response body, preferring the nested
// form under "data" when present.
func unwrapData(body []byte) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}

// unwrapList returns the array payload of a list response, descending one
// extra level when the unwrapped payload is still an object holding a
// "data" array.
func unwrapList(body []byte) json.RawMessage {
	payload := unwrapData(body)
	if isArray(payload) {
		return payload
	}
	inner := unwrapData(payload)
	if isArray(inner) {
		return inner
	}
	return payload
}

func isArray(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}
