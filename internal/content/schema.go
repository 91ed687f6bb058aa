package content

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Model output must carry all ten sections as non-empty strings before it
// is trusted. Anything else falls back to the canned report.
const reportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": [
    "intro", "personality", "transits", "career", "finance",
    "health", "love", "lucky", "kundli", "conclusion"
  ],
  "properties": {
    "intro":       {"$ref": "#/$defs/section"},
    "personality": {"$ref": "#/$defs/section"},
    "transits":    {"$ref": "#/$defs/section"},
    "career":      {"$ref": "#/$defs/section"},
    "finance":     {"$ref": "#/$defs/section"},
    "health":      {"$ref": "#/$defs/section"},
    "love":        {"$ref": "#/$defs/section"},
    "lucky":       {"$ref": "#/$defs/section"},
    "kundli":      {"$ref": "#/$defs/section"},
    "conclusion":  {"$ref": "#/$defs/section"}
  },
  "$defs": {
    "section": {
      "anyOf": [
        {"type": "string", "minLength": 1},
        {"type": "object"}
      ]
    }
  }
}`

var reportValidator = jsonschema.MustCompileString("report.schema.json", reportSchema)

func validateReport(raw map[string]any) error {
	return reportValidator.Validate(raw)
}
