package server

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorkit"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperties returns the schema properties shared by every tool that
// takes a single color: either a model with numeric values or a hex string.
func colorProperties() map[string]interface{} {
	return map[string]interface{}{
		"model": map[string]interface{}{
			"type":        "string",
			"enum":        modelNames(),
			"description": "Color model of the input. Defaults to hex when 'hex' is given.",
		},
		"values": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "number"},
			"description": "Components in model order: rgb [r,g,b] 0-255, hsv [h,s,v] and hsl [h,s,l] with hue 0-360 and percentages 0-100, cmyk [c,m,y,k] 0-100. Out-of-range values are clamped.",
		},
		"hex": map[string]interface{}{
			"type":        "string",
			"description": "Hex color such as '#FF8040' or 'f84'. Invalid digits are repaired to F; lengths other than 3 or 6 become 000000.",
		},
	}
}

// colorSchema describes a single color argument as a nested object.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties":  colorProperties(),
	}
}

func modelNames() []string {
	names := make([]string, 0, len(colorkit.Models))
	for _, m := range colorkit.Models {
		names = append(names, string(m))
	}
	return names
}

func schemeNames() []string {
	names := make([]string, 0, len(colorkit.SchemeKinds))
	for _, k := range colorkit.SchemeKinds {
		names = append(names, string(k))
	}
	return names
}

// withProperties merges extra properties into the shared color properties.
func withProperties(extra map[string]interface{}) map[string]interface{} {
	props := colorProperties()
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_convert",
			Description: "Convert a color to every supported model: hex, RGB, HSV, HSL and CMYK. All conversions go through RGB.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": colorProperties(),
			},
		},
		{
			Name:        "color_equal",
			Description: "Check whether two colors, possibly given in different models, are the same RGB color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorSchema("First color"),
					"b": colorSchema("Second color"),
				},
				"required": []string{"a", "b"},
			},
		},

		// Scheme Generation
		{
			Name:        "color_scheme",
			Description: "Generate a color scheme from a base color by rotating its HSV hue. The base color is always first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"kind": map[string]interface{}{
						"type":        "string",
						"enum":        schemeNames(),
						"description": "complementary (+180), triadic (+120, +240), tetradic (+90, +180, +270) or analogous (+30, +60, +90)",
					},
					"target": map[string]interface{}{
						"type":        "string",
						"enum":        modelNames(),
						"description": "Optional model to return the scheme in. When omitted every color is returned in all models.",
					},
				}),
				"required": []string{"kind"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a color, or a scheme generated from it, as a PNG strip of solid cells returned as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"kind": map[string]interface{}{
						"type":        "string",
						"enum":        schemeNames(),
						"description": "Optional scheme to render. When omitted only the input color is drawn.",
					},
					"cell": map[string]interface{}{
						"type":        "integer",
						"description": "Cell width in pixels. Defaults to the server setting.",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Strip height in pixels. Defaults to the cell width.",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": fmt.Sprintf("Optional scale factor. Default 1.0. The scaled strip may be at most %d pixels high and %d pixels wide per color.", imaging.MaxCellSize, imaging.MaxCellSize),
						"default":     1.0,
					},
				}),
			},
		},

		// Sampling
		{
			Name:        "color_random",
			Description: "Generate a uniformly random color in the given model. Pass a seed for a reproducible result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"model": map[string]interface{}{
						"type":        "string",
						"enum":        modelNames(),
						"description": "Model to sample in",
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional seed",
					},
				},
				"required": []string{"model"},
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
