package profile

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed quiz_responses.schema.json
var quizResponsesSchema string

// CheckSchema validates a raw quiz payload against the quiz-responses JSON
// Schema. The check is advisory: callers log the returned error and proceed
// with normalization, since out-of-shape answers still default cleanly.
func CheckSchema(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}

	schemaLoader := gojsonschema.NewStringLoader(quizResponsesSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("quiz schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("quiz payload does not match schema: %s", strings.Join(msgs, "; "))
}
