package output

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_JSONRoundTrip verifies that any generated message, including
// ones with newlines, quotes, and non-ASCII text, survives the JSON encode
// and decode unchanged.
func TestProperty_JSONRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("message round-trips through the JSON document", prop.ForAll(
		func(message string) bool {
			var buf bytes.Buffer
			if err := WriteJSON(&buf, message); err != nil {
				return false
			}
			decoded, err := ParseJSON(buf.Bytes())
			if err != nil {
				return false
			}
			return decoded.Message == message
		},
		gen.AnyString(),
	))

	properties.Property("document always ends with a single trailing newline", prop.ForAll(
		func(message string) bool {
			var buf bytes.Buffer
			if err := WriteJSON(&buf, message); err != nil {
				return false
			}
			out := buf.Bytes()
			return len(out) > 0 && out[len(out)-1] == '\n'
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
