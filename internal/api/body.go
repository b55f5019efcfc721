package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopdesk/client-go/internal/apierrors"
)

// bodyKind tags the shape a response body parsed into.
type bodyKind int

const (
	bodyEmpty bodyKind = iota
	bodyJSON
	bodyText
)

// parsedBody is the normalized form of an arbitrarily-shaped response body:
// valid JSON, plain text, or nothing. Parsing never fails; a body that
// resists every interpretation ends up as text.
type parsedBody struct {
	kind bodyKind
	raw  json.RawMessage // set when kind == bodyJSON
	text string          // set when kind == bodyText
}

// parseResponse reads and normalizes a response body. The fallback chain is
// mandatory: declared JSON is parsed as JSON; undeclared bodies are read as
// text and parsed as JSON anyway, because servers do not always declare
// content types correctly; anything else is kept as raw text.
func parseResponse(resp *http.Response) parsedBody {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return parsedBody{kind: bodyEmpty}
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return parsedBody{kind: bodyEmpty}
	}

	contentType := resp.Header.Get("Content-Type")
	declaredJSON := strings.Contains(contentType, "application/json")
	if declaredJSON && json.Valid(trimmed) {
		return parsedBody{kind: bodyJSON, raw: trimmed}
	}
	// Opportunistic parse regardless of the declared type.
	if json.Valid(trimmed) {
		return parsedBody{kind: bodyJSON, raw: trimmed}
	}
	return parsedBody{kind: bodyText, text: string(data)}
}

// payload returns the body in caller-facing form for error reporting.
func (pb parsedBody) payload() any {
	switch pb.kind {
	case bodyJSON:
		var v any
		if err := json.Unmarshal(pb.raw, &v); err == nil {
			return v
		}
		return string(pb.raw)
	case bodyText:
		return pb.text
	default:
		return nil
	}
}

// envelope is the conventional error shape the backend embeds in bodies.
type envelope struct {
	code     int
	errField string
	message  string
}

func extractEnvelope(raw json.RawMessage) (envelope, bool) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return envelope{}, false
	}

	var env envelope
	switch code := obj["code"].(type) {
	case float64:
		env.code = int(code)
	case string:
		if n, err := strconv.Atoi(code); err == nil {
			env.code = n
		}
	}
	if s, ok := obj["error"].(string); ok {
		env.errField = s
	}
	if s, ok := obj["message"].(string); ok {
		env.message = s
	}
	return env, true
}

// classifyResponse turns a status and parsed body into nil or a classified
// error. A 2xx status with an embedded 401/403 application code is still an
// authentication failure; the backend returns these "soft" failures with a
// 200 status.
func classifyResponse(status int, pb parsedBody, requestID string) error {
	var env envelope
	if pb.kind == bodyJSON {
		env, _ = extractEnvelope(pb.raw)
	}

	if status >= 200 && status < 300 {
		if env.code == 401 || env.code == 403 {
			msg := failureMessage(pb, env)
			if msg == genericFailure {
				msg = "authentication required"
			}
			return &apierrors.APIError{
				StatusCode: env.code,
				Message:    msg,
				RequestID:  requestID,
				RawPayload: pb.payload(),
			}
		}
		return nil
	}

	msg := failureMessage(pb, env)
	if status == http.StatusInternalServerError {
		msg = enrichServerError(msg)
	}
	return &apierrors.APIError{
		StatusCode: status,
		Message:    msg,
		RequestID:  requestID,
		RawPayload: pb.payload(),
	}
}

const genericFailure = "Request failed"

// failureMessage picks a human-readable message with fixed precedence:
// explicit error field, then message field, then a raw string body, then raw
// text, then a generic fallback.
func failureMessage(pb parsedBody, env envelope) string {
	if env.errField != "" {
		return env.errField
	}
	if env.message != "" {
		return env.message
	}
	if pb.kind == bodyJSON {
		var s string
		if err := json.Unmarshal(pb.raw, &s); err == nil && s != "" {
			return s
		}
	}
	if pb.kind == bodyText && strings.TrimSpace(pb.text) != "" {
		return pb.text
	}
	return genericFailure
}

// enrichServerError maps well-known internal error fragments to friendlier
// text. Cosmetic only; the raw payload stays on the error.
func enrichServerError(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "sqlstate"),
		strings.Contains(lower, "database"),
		strings.Contains(lower, "sql:"):
		return "The server had a database problem. Please try again shortly."
	case strings.Contains(lower, ".env"),
		strings.Contains(lower, "configuration"),
		strings.Contains(lower, "misconfigured"):
		return "The server is misconfigured. Please contact an administrator."
	default:
		return msg
	}
}

// deliver decodes a parsed body into the caller's result value. JSON bodies
// are unmarshalled; text bodies are handed over as-is when the caller asked
// for a string or an untyped value. A nil result discards the body.
func deliver(pb parsedBody, result any) error {
	if result == nil {
		return nil
	}
	switch pb.kind {
	case bodyEmpty:
		return nil
	case bodyJSON:
		if raw, ok := result.(*json.RawMessage); ok {
			*raw = append((*raw)[:0], pb.raw...)
			return nil
		}
		if err := json.Unmarshal(pb.raw, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case bodyText:
		switch r := result.(type) {
		case *string:
			*r = pb.text
		case *any:
			*r = pb.text
		}
		return nil
	}
	return nil
}
