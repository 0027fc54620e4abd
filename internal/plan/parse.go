package plan

import (
	"encoding/json"
	"strings"

	"leadlens/internal/model"
)

// ParseError reports a malformed plan response. It is returned, never
// panicked, so callers can surface "plan generation incomplete" without
// losing already-recorded assessment responses.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "plan parse failed: " + e.Reason + ": " + e.Err.Error()
	}
	return "plan parse failed: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// clean strips the escape artifacts the AI collaborator tends to wrap around
// its JSON: literal \n sequences, stray backslashes, and quotes hugging
// braces. Order matters; escaped newlines must go before lone backslashes.
func clean(raw string) string {
	s := strings.ReplaceAll(raw, `\n`, "")
	s = strings.ReplaceAll(s, `\`, "")
	s = strings.ReplaceAll(s, `"{`, "{")
	s = strings.ReplaceAll(s, `}"`, "}")
	return strings.TrimSpace(s)
}

// Parse attempts a strict JSON parse of the raw plan text after cleanup.
func Parse(raw string) (*model.PlanDocument, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Reason: "empty plan response"}
	}
	cleaned := clean(raw)

	var doc model.PlanDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	return &doc, nil
}
