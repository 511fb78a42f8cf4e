package judge

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// judgmentSchema is the response contract expected from the external
// service. Fields are optional (absent fields degrade to defaults) but
// present fields must carry the right type.
const judgmentSchema = `{
  "type": "object",
  "properties": {
    "semantic_score": {"type": "number"},
    "analysis": {"type": "string"},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "gaps": {"type": "array", "items": {"type": "string"}}
  }
}`

// suggestionsSchema is the response contract for suggestion generation.
const suggestionsSchema = `{
  "type": "object",
  "properties": {
    "suggestions": {"type": "array", "items": {"type": "string"}}
  }
}`

func validateJudgmentJSON(raw string) error {
	return validateAgainst(judgmentSchema, raw)
}

func validateSuggestionsJSON(raw string) error {
	return validateAgainst(suggestionsSchema, raw)
}

func validateAgainst(schema, raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
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
