package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// sourceProperties describes the arguments shared by every tool that reads
// pixels from an image file.
func sourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Optional pixel rectangle to sample instead of the whole image",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
		},
		"quadrant": map[string]interface{}{
			"type":        "string",
			"description": "Optional named region, ignored when region is set",
			"enum": []string{
				"top-left", "top-right", "bottom-left", "bottom-right",
				"top-half", "bottom-half", "left-half", "right-half", "center",
			},
		},
		"max_dimension": map[string]interface{}{
			"type":        "integer",
			"description": "Downscale so neither side exceeds this many pixels before sampling (default: no downscale)",
		},
	}
}

// gridProperties adds the sampling cell size to the source arguments.
func gridProperties() map[string]interface{} {
	props := sourceProperties()
	props["grid_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Cell edge length in pixels (default: 10)",
	}
	return props
}

// pipelineProperties adds the selection and composition overrides.
func pipelineProperties() map[string]interface{} {
	props := gridProperties()
	props["palette_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of colors to keep under the top policy (default: 3)",
	}
	props["policy"] = map[string]interface{}{
		"type":        "string",
		"description": "Selection policy: top keeps the most frequent colors, brightest pairs the brightest color with a darkened shade (default: top)",
		"enum":        []string{"top", "brightest"},
	}
	props["hue_filter"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Drop colors too close in hue to a more frequent one (default: true)",
	}
	props["style"] = styleProperty()
	props["angle"] = angleProperty()
	props["seed"] = seedProperty()
	return props
}

func styleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Gradient style (default: linear)",
		"enum":        []string{"linear", "radial", "splotch"},
	}
}

func angleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Linear gradient direction in degrees (default: 315)",
	}
}

func seedProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Seed for splotch placement, for reproducible output",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for later palette calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "palette_extract",
			Description: "Sample an image on a grid of cells, rank the cell colors by frequency, select a palette and compose a CSS gradient from it. Low-colour or mostly grey images fall back to a neutral palette.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": withTopColors(pipelineProperties()),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "palette_gradient",
			Description: "Compose a CSS gradient from a list of colors given as rgb(), rgba() or #hex strings. Malformed entries are skipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"description": "Colors in gradient order",
						"items":       map[string]interface{}{"type": "string"},
					},
					"style": styleProperty(),
					"angle": angleProperty(),
					"seed":  seedProperty(),
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "palette_mosaic",
			Description: "Render the per-cell average colors of an image as a PNG the size of the sampled area. Useful to see what the palette was chosen from.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": gridProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "palette_set_image",
			Description: "Make an image the current background source. Decoding runs in the background; when several images are set in quick succession only the last one is kept.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "palette_current",
			Description: "Return the palette and gradient of the current background image, or the default gradient when none has been set.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"wait": map[string]interface{}{
						"type":        "boolean",
						"description": "Wait for pending decodes before answering (default: false)",
					},
					"timeout_ms": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum time to wait in milliseconds (default: 5000)",
					},
				},
			},
		},
	}
}

func withTopColors(props map[string]interface{}) map[string]interface{} {
	props["top_colors"] = map[string]interface{}{
		"type":        "integer",
		"description": "Limit the ranked color list in the response (default: 20, 0 for the default)",
	}
	return props
}
