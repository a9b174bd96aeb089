package llm

// BuildCategoriesJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map constraining classifier output to the allowed category set.
func BuildCategoriesJSONSchema(allowedCategories []string) map[string]any {
	category := map[string]any{"type": "string", "minLength": 1}
	if len(allowedCategories) > 0 {
		category = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"item_index": map[string]any{"type": "integer", "minimum": 1},
				"category":   category,
			},
			"required": []string{"item_index", "category"},
		},
	}
}
