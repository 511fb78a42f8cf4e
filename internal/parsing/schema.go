package parsing

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// requirementsSchema is the response contract for requirement extraction.
// Fields are optional but typed; the rule-based path covers anything the
// service leaves out or gets wrong.
const requirementsSchema = `{
  "type": "object",
  "properties": {
    "required_skills": {"type": "array", "items": {"type": "string"}},
    "preferred_skills": {"type": "array", "items": {"type": "string"}},
    "experience_required": {"type": "number"},
    "education_required": {"type": "string"},
    "key_responsibilities": {"type": "array", "items": {"type": "string"}}
  }
}`

func validateRequirementsJSON(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(requirementsSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return fmt.Errorf("response violates contract: %s", strings.Join(messages, "; "))
}
