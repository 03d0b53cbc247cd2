// Package tourapi is the client adapter for the remote tour API.
// It owns the HTTP plumbing and the tolerant decoding of the backend's
// inconsistent response shapes.
package tourapi

import "encoding/json"

// envelope mirrors the optional wrapper the backend puts around payloads.
// Some endpoints return bare arrays/objects, others return {"data": ..., "message": ...}.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// DecodeList decodes a response body that is either a bare JSON array or a
// {"data": [...]} envelope. Anything else decodes to an empty list: the
// backend shape is inconsistent across endpoints and a list render must not
// fail on it.
func DecodeList[T any](raw []byte) []T {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return list
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		var inner []T
		if err := json.Unmarshal(env.Data, &inner); err == nil && inner != nil {
			return inner
		}
	}

	return []T{}
}

// DecodeItem decodes a response body that is either a bare JSON object or a
// {"data": {...}} envelope. The second return value is false when neither
// shape could be decoded.
func DecodeItem[T any](raw []byte) (T, bool) {
	var zero T

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		var item T
		if err := json.Unmarshal(env.Data, &item); err == nil {
			return item, true
		}
	}

	var item T
	if err := json.Unmarshal(raw, &item); err == nil {
		return item, true
	}

	return zero, false
}

// decodeMessage extracts the server's error message from a failure payload,
// falling back to the given default when none is present.
func decodeMessage(raw []byte, fallback string) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return fallback
}
