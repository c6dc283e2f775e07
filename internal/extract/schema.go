package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema requires the parsed value to be an object carrying all sixteen
// field keys. Value types are not constrained: the model may answer with a
// string or null per field.
var resultSchema = jsonschema.MustCompileString("result.schema.json", buildResultSchema())

func buildResultSchema() string {
	keys := make([]string, len(FieldKeys))
	for i, k := range FieldKeys {
		b, _ := json.Marshal(k)
		keys[i] = string(b)
	}
	return fmt.Sprintf(`{
		"type": "object",
		"required": [%s]
	}`, strings.Join(keys, ", "))
}

// ValidateResult checks a parsed model reply against the result schema.
func ValidateResult(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := resultSchema.Validate(v); err != nil {
		return fmt.Errorf("result missing expected fields: %w", err)
	}
	return nil
}
