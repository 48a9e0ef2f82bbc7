// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Response schemas for the matching service. Records are deliberately loose:
// the filter pipeline only depends on the fields named required here, the
// rest is passed through opaquely.
const instituteResponseSchema = `{
	"type": "object",
	"properties": {
		"institutes": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id":   {"type": "string"},
					"name": {"type": "string"},
					"type": {"type": "string"}
				},
				"required": ["name"]
			}
		}
	},
	"required": ["institutes"]
}`

const scholarshipResponseSchema = `{
	"type": "object",
	"properties": {
		"scholarships": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id":       {"type": "string"},
					"name":     {"type": "string"},
					"type":     {"type": "string"},
					"provider": {"type": "string"}
				},
				"required": ["name"]
			}
		}
	},
	"required": ["scholarships"]
}`

var matchResponseSchemas = map[string]*gojsonschema.Schema{}

func init() {
	for kind, raw := range map[string]string{
		"institutes":   instituteResponseSchema,
		"scholarships": scholarshipResponseSchema,
	} {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("validation: bad %s schema: %v", kind, err))
		}
		matchResponseSchemas[kind] = schema
	}
}

// ValidateMatchResponse checks a raw matching-service payload against the
// schema for the given kind ("institutes" or "scholarships"). A non-nil
// error means the payload must be treated as an empty candidate pool.
func ValidateMatchResponse(kind string, payload []byte) error {
	schema, ok := matchResponseSchemas[kind]
	if !ok {
		return fmt.Errorf("unknown match kind %q", kind)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("response failed schema validation: %s", strings.Join(msgs, "; "))
	}

	return nil
}
