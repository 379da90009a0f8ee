package web

import (
	"github.com/xeipuuv/gojsonschema"
)

// simulateSchema gates the shape of the simulate body before decoding: both
// lists present, ids and kinds present, kind drawn from the closed enum. The
// engine itself stays permissive about config contents; this only rejects
// payloads that could not have come from the graph editor.
const simulateSchema = `{
  "type": "object",
  "required": ["workflow"],
  "properties": {
    "workflow": {
      "type": "object",
      "required": ["nodes", "edges"],
      "properties": {
        "nodes": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["id", "kind"],
            "properties": {
              "id": {"type": "string", "minLength": 1},
              "kind": {"enum": ["start", "task", "approval", "automated", "end"]},
              "label": {"type": "string"},
              "config": {"type": ["object", "null"]}
            }
          }
        },
        "edges": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["id", "source", "target"],
            "properties": {
              "id": {"type": "string", "minLength": 1},
              "source": {"type": "string", "minLength": 1},
              "target": {"type": "string", "minLength": 1}
            }
          }
        }
      }
    },
    "options": {
      "type": "object",
      "properties": {
        "autoApproveNodeId": {"type": "string"}
      }
    }
  }
}`

var simulateSchemaLoader = gojsonschema.NewStringLoader(simulateSchema)

// validateSimulateBody returns the schema violations for a raw simulate
// request body, or an error if the body is not JSON at all.
func validateSimulateBody(body []byte) ([]string, error) {
	result, err := gojsonschema.Validate(simulateSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		violations = append(violations, violation.String())
	}

	return violations, nil
}
