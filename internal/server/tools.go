package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Operations accepted by mixer_adjust.
const (
	OpIncreaseValue  = "increase_value"
	OpDecreaseValue  = "decrease_value"
	OpIncreaseChroma = "increase_chroma"
	OpDecreaseChroma = "decrease_chroma"
	OpRotateHue      = "rotate_hue"
)

var sessionProperty = map[string]interface{}{
	"type":        "string",
	"description": "Mixer session name. Sessions are created on first use. Default \"default\"",
}

// colorProperties describes the ways a color can be given. Exactly one of
// rgb, hex or name must be present.
func colorProperties() map[string]interface{} {
	return map[string]interface{}{
		"rgb": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "number"},
			"minItems":    3,
			"maxItems":    3,
			"description": "Red, green and blue components in the channel kind given by kind",
		},
		"kind": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"8", "16", "proportion"},
			"description": "Channel kind of rgb: 8 (0-255), 16 (0-65535) or proportion (0-1). Default 8",
			"default":     "8",
		},
		"hex": map[string]interface{}{
			"type":        "string",
			"description": "Hex color: #RGB, #RRGGBB or #RRRRGGGGBBBB",
		},
		"name": map[string]interface{}{
			"type":        "string",
			"description": "CSS color name, e.g. \"teal\"",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	setProps := colorProperties()
	setProps["session"] = sessionProperty

	return []Tool{
		// Mixer Sessions
		{
			Name:        "mixer_set",
			Description: "Set the color held by a mixer session from RGB components, a hex string or a color name. Returns the color's value, chroma and hue.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": setProps,
			},
		},
		{
			Name:        "mixer_sample",
			Description: "Set a mixer session's color by sampling a swatch image, either at a single pixel or as the mean over a rectangular region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session": sessionProperty,
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate of the pixel to sample (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate of the pixel to sample (0-based)",
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Rectangle to average instead of a single pixel. (x2,y2) is exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-read the image from disk instead of using the cached copy",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mixer_state",
			Description: "Get the color held by a mixer session and its value, chroma and hue.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session": sessionProperty,
				},
			},
		},
		{
			Name:        "mixer_adjust",
			Description: "Adjust one attribute of a mixer session's color while keeping the others as fixed as possible. Returns changed=false, not an error, when the adjustment is impossible (e.g. more chroma on a saturated color).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session": sessionProperty,
					"operation": map[string]interface{}{
						"type": "string",
						"enum": []string{
							OpIncreaseValue, OpDecreaseValue,
							OpIncreaseChroma, OpDecreaseChroma,
							OpRotateHue,
						},
						"description": "Attribute change to make",
					},
					"delta": map[string]interface{}{
						"type":        "number",
						"description": "Amount of change: 0-1 for value and chroma, degrees for rotate_hue (positive turns red towards yellow). Defaults to the server step",
					},
				},
				"required": []string{"operation"},
			},
		},
		{
			Name:        "mixer_reset",
			Description: "Discard a mixer session, or all sessions and cached images.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session": sessionProperty,
					"all": map[string]interface{}{
						"type":        "boolean",
						"description": "Discard every session and clear the image cache",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "mixer_swatch",
			Description: "Render a mixer session's color as a PNG strip: the color, its hue at full chroma, and the grey of equal value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session": sessionProperty,
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Side of each square patch in pixels. Default 64",
						"default":     64,
					},
				},
			},
		},

		// Color Analysis
		{
			Name:        "color_analyze",
			Description: "Decompose a color into value, chroma and hue without touching any session.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": colorProperties(),
			},
		},
		{
			Name:        "color_names",
			Description: "List the known CSS color names, optionally filtered by substring.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"contains": map[string]interface{}{
						"type":        "string",
						"description": "Only list names containing this text",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
