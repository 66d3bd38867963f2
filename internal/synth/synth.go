// Package synth produces example arguments for a tool call from the tool's
// declared input schema. The mapping is fixed and deterministic so demo
// invocations are reproducible.
package synth

import "encoding/json"

// Example values per recognized JSON Schema type tag.
const (
	ExampleString  = "example"
	ExampleInteger = 42
	ExampleNumber  = 3.14
)

// schemaFragment is the subset of JSON Schema the synthesizer understands:
// an object with a "properties" section mapping parameter names to a type tag.
type schemaFragment struct {
	Properties map[string]propertyDef `json:"properties"`
}

type propertyDef struct {
	Type string `json:"type"`
}

// Arguments builds one example argument per declared property. Properties
// with an unrecognized or missing type tag are omitted entirely rather than
// defaulted to null. A nil, empty, or unparseable schema yields an empty map.
func Arguments(inputSchema json.RawMessage) map[string]interface{} {
	args := make(map[string]interface{})
	if len(inputSchema) == 0 {
		return args
	}

	var schema schemaFragment
	if err := json.Unmarshal(inputSchema, &schema); err != nil {
		return args
	}

	for name, prop := range schema.Properties {
		switch prop.Type {
		case "string":
			args[name] = ExampleString
		case "integer":
			args[name] = ExampleInteger
		case "number":
			args[name] = ExampleNumber
		}
	}
	return args
}
