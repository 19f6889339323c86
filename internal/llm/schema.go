package llm

// Schema is a Gemini responseSchema object. The REST API expects
// uppercase type names (OBJECT, STRING, NUMBER, BOOLEAN, ARRAY).
type Schema map[string]any

// Object builds an OBJECT schema with the given properties and
// required field names.
func Object(properties map[string]Schema, required ...string) Schema {
	s := Schema{
		"type":       "OBJECT",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// Array builds an ARRAY schema with the given item schema.
func Array(items Schema) Schema {
	return Schema{"type": "ARRAY", "items": items}
}

// String builds a plain STRING schema.
func String() Schema {
	return Schema{"type": "STRING"}
}

// StringEnum builds a STRING schema constrained to the given values.
func StringEnum(values ...string) Schema {
	return Schema{"type": "STRING", "enum": values}
}

// StringDesc builds a STRING schema with a description hint.
func StringDesc(description string) Schema {
	return Schema{"type": "STRING", "description": description}
}

// Number builds a NUMBER schema.
func Number() Schema {
	return Schema{"type": "NUMBER"}
}

// Boolean builds a BOOLEAN schema.
func Boolean() Schema {
	return Schema{"type": "BOOLEAN"}
}
