package server

// ToolDescriptor describes the analyze tool to a host runtime.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Endpoint    string         `json:"endpoint"`
	Parameters  map[string]any `json:"parameters"`
}

// Descriptor returns the tool definition served at GET /v1/tool.
func Descriptor() ToolDescriptor {
	return ToolDescriptor{
		Name:        "analyze_repository",
		Description: "Analyze a GitHub repository: metadata, language statistics and file count.",
		Endpoint:    "/v1/analyze",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"repository": map[string]any{
					"type":        "string",
					"description": "Repository in owner/repo form, e.g. octocat/hello-world",
				},
			},
			"required": []string{"repository"},
		},
	}
}
