// Package output provides the JSON output format for aicommit.
package output

import (
	"encoding/json"
	"io"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

// CommitMessage is the JSON output structure: a single flat object with one
// key, "message".
type CommitMessage struct {
	Message string `json:"message"`
}

// WriteJSON encodes {"message": <message>} to w, followed by a newline.
func WriteJSON(w io.Writer, message string) error {
	enc := json.NewEncoder(w)
	// Keep the message bytes verbatim, including any <, >, & characters.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(CommitMessage{Message: message}); err != nil {
		return apperrors.NewSerializationError(err)
	}
	return nil
}

// ParseJSON decodes a JSON document produced by WriteJSON. Used by tests and
// by tooling that consumes --json output.
func ParseJSON(data []byte) (*CommitMessage, error) {
	var msg CommitMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, apperrors.NewSerializationError(err)
	}
	return &msg, nil
}
