package progress

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	progressdomain "github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// Compile-time interface check.
var _ ports.ProgressDecoder = Decoder{}

// progressSchemaJSON describes the structural shape of a progress payload.
// Every count is optional and defaults to zero. Negative counts and sum
// mismatches are left to the domain validation, which distinguishes errors
// from warnings.
const progressSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "project_id": { "type": "integer" },
    "questions": {
      "type": ["object", "null"],
      "properties": {
        "total": { "type": "integer" },
        "by_status": {
          "type": "object",
          "properties": {
            "answered": { "type": "integer" },
            "partially_answered": { "type": "integer" },
            "unanswered": { "type": "integer" }
          }
        }
      }
    },
    "transcripts": {
      "type": "object",
      "properties": {
        "count": { "type": "integer", "minimum": 0 }
      }
    },
    "discovery_complete": { "type": "boolean" }
  }
}`

var progressSchemaLoader = gojsonschema.NewStringLoader(progressSchemaJSON)

// ValidateSchema checks payload against the progress schema and returns one
// message per violation. Malformed JSON is reported as a single message.
func ValidateSchema(payload []byte) []string {
	result, err := gojsonschema.Validate(progressSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return []string{fmt.Sprintf("invalid JSON: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return msgs
}

// Decoder implements [ports.ProgressDecoder] for raw progress payloads.
type Decoder struct{}

// NewDecoder returns a Decoder.
func NewDecoder() Decoder {
	return Decoder{}
}

// Decode validates payload against the schema and, when it is structurally
// sound, translates it and adds the domain consistency checks. A payload
// that fails the schema yields a nil report.
func (Decoder) Decode(payload []byte) (*progressdomain.Report, progressdomain.Validation) {
	if errs := ValidateSchema(payload); len(errs) > 0 {
		return nil, progressdomain.Validation{Errors: errs}
	}

	var dto ProgressDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, progressdomain.Validation{Errors: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}

	report := ToDomainReport(&dto, dto.ProjectID)
	return report, report.Validate()
}
