package catalog

// catalogSchema is the JSON Schema every catalog file must satisfy.
// Validation happens before unmarshalling so a malformed entry is rejected
// with a schema path instead of surfacing later as a zero-valued question.
var catalogSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"grade": map[string]any{
				"type": "string",
				"enum": []any{"elementary", "middle", "high"},
			},
			"prompt": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"choices": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"a": map[string]any{"type": "string"},
					"b": map[string]any{"type": "string"},
					"c": map[string]any{"type": "string"},
					"d": map[string]any{"type": "string"},
				},
				"required":             []any{"a", "b", "c", "d"},
				"additionalProperties": false,
			},
			"correct": map[string]any{
				"type": "string",
				"enum": []any{"a", "b", "c", "d"},
			},
			"explanation": map[string]any{
				"type": "string",
			},
			"topic": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"id", "grade", "prompt", "choices", "correct"},
		"additionalProperties": false,
	},
}
