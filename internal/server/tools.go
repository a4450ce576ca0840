package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// extractionProperties are the optional tuning arguments shared by the icon
// tools.
func extractionProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Path to the source image",
		},
		"preset": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"hands", "wave"},
			"description": "Starting settings: hands (threshold 200) or wave (threshold 100). Default hands",
			"default":     "hands",
		},
		"threshold": map[string]interface{}{
			"type":        "integer",
			"minimum":     0,
			"maximum":     255,
			"description": "Luminance level; pixels at or below it are content",
		},
		"noise_floor": map[string]interface{}{
			"type":        "integer",
			"minimum":     0,
			"description": "Components with fewer pixels are dropped as noise. Default 50",
		},
		"frame_coverage": map[string]interface{}{
			"type":        "number",
			"description": "Bounding-box coverage fraction above which a component is the frame. Default 0.5",
		},
		"mode": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"components", "threshold"},
			"description": "components removes frame and noise; threshold keeps every dark pixel",
			"default":     "components",
		},
		"dilate": map[string]interface{}{
			"type":        "number",
			"description": "Grow the kept artwork by this radius in pixels. Default 0",
		},
		"color": map[string]interface{}{
			"type":        "string",
			"description": "Foreground colour as hex. Default #FFFFFF",
		},
		"trim": map[string]interface{}{
			"type":        "boolean",
			"description": "Crop the result to the kept artwork",
		},
		"padding": map[string]interface{}{
			"type":        "integer",
			"description": "Padding in pixels kept around the artwork when trimming",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	extractProps := extractionProperties()
	extractProps["output"] = map[string]interface{}{
		"type":        "string",
		"description": "Output path (.png, .tif, .bmp). Default: source path with a _clean suffix",
	}
	extractProps["debug_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional path for an overlay image tinting each component by class",
	}

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, channel count and alpha presence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "icon_extract",
			Description: "Separate dark icon artwork from its background and enclosing frame, then write it as opaque white on a transparent background.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "icon_components",
			Description: "Report the connected components of an icon and how each would be classified (foreground, frame, noise) without writing any file.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractionProperties(),
				"required":   []string{"path"},
			},
		},
	}
}
