package ai

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_PromptComposition verifies that for any prompt template and
// any diff, the generation request is exactly the template, a blank line,
// and the diff, with neither part altered.
func TestProperty_PromptComposition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("request is template + separator + diff, byte for byte", prop.ForAll(
		func(template, diff string) bool {
			prompt, err := BuildPrompt(template, diff, len(template)+len(diff)+len(PromptSeparator))
			if err != nil {
				return false
			}
			return prompt == template+"\n\n"+diff
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("template is a prefix and diff is a suffix of the request", prop.ForAll(
		func(template, diff string) bool {
			prompt, err := BuildPrompt(template, diff, PromptSize(template, diff))
			if err != nil {
				return false
			}
			return strings.HasPrefix(prompt, template) && strings.HasSuffix(prompt, diff)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("requests over the size limit are always rejected", prop.ForAll(
		func(template, diff string, slack int) bool {
			maxSize := PromptSize(template, diff) - 1 - slack
			_, err := BuildPrompt(template, diff, maxSize)
			return err != nil
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.IntRange(0, 100),
	))

	properties.Property("reported size equals the built request's length", prop.ForAll(
		func(template, diff string) bool {
			prompt, err := BuildPrompt(template, diff, PromptSize(template, diff))
			if err != nil {
				return false
			}
			return len(prompt) == PromptSize(template, diff)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
