package tools

// Tool names advertised to the model.
const (
	NameUpperCase = "convertToUpperCase"
	NameReverse   = "reverseString"
	NameDashes    = "replaceSpacesWithDashes"
)

// UnknownToolResult is returned by Dispatch for a tool name outside the
// catalogue. It is a value, not an error.
const UnknownToolResult = "Unable to perform task"

// Spec describes one callable tool: its name, a human-readable
// description and a JSON schema for its arguments.
type Spec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// contentSchema is the argument schema shared by every tool: an object with
// one required string property named content.
func contentSchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"content"},
	}
}

// Catalogue returns the three tools advertised on every completion request,
// in a fixed order. Each call returns a fresh copy.
func Catalogue() []Spec {
	return []Spec{
		{
			Name:        NameUpperCase,
			Description: "Converts the user content to uppercase.",
			Parameters:  contentSchema("The content to convert to uppercase."),
		},
		{
			Name:        NameReverse,
			Description: "Reverses the string.",
			Parameters:  contentSchema("The content to reverse."),
		},
		{
			Name:        NameDashes,
			Description: "Replaces spaces with dashes in the string.",
			Parameters:  contentSchema("The content to modify."),
		},
	}
}
