package todo

import (
	"fmt"

	"github.com/segmentio/encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "task-list.json"

// ListSchema describes the body of GET /api/todos.
const ListSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "task"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "task": {"type": "string", "minLength": 1}
    }
  }
}`

var listSchema = jsonschema.MustCompileString(schemaURL, ListSchema)

// ValidateList checks raw against ListSchema and that ids are unique.
func ValidateList(raw []byte) error {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode task list: %w", err)
	}
	if err := listSchema.Validate(doc); err != nil {
		return fmt.Errorf("task list schema: %w", err)
	}

	seen := make(map[float64]struct{})
	for _, item := range doc.([]interface{}) {
		id := item.(map[string]interface{})["id"].(float64)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("task list: duplicate id %v", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// CheckFixed validates the list served by GET /api/todos. The server refuses
// to start when it fails.
func CheckFixed() error {
	b, err := json.Marshal(Fixed())
	if err != nil {
		return fmt.Errorf("encode task list: %w", err)
	}
	return ValidateList(b)
}
