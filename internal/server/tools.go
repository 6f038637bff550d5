package server

import "github.com/ironsheep/image-overlay-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// placementProperties returns the schema properties shared by the overlay
// tools for positioning a watermark and choosing where the result goes.
func placementProperties() map[string]interface{} {
	return map[string]interface{}{
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Watermark left edge in background pixels. May be negative. Ignored when anchor is set.",
			"default":     0,
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Watermark top edge in background pixels. May be negative. Ignored when anchor is set.",
			"default":     0,
		},
		"anchor": map[string]interface{}{
			"type":        "string",
			"enum":        imaging.Anchors,
			"description": "Named placement used instead of x/y",
		},
		"margin": map[string]interface{}{
			"type":        "integer",
			"description": "Distance from the edges for anchored placement",
			"default":     0,
		},
		"output_path": map[string]interface{}{
			"type":        "string",
			"description": "Optional file to write the result to (format from extension). If omitted, the image is returned base64-encoded.",
		},
		"format": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"png", "jpeg", "gif", "tiff", "bmp"},
			"description": "Encoding of the returned image when output_path is not set. Default png",
			"default":     "png",
		},
	}
}

// withProperties merges extra properties into base and returns base.
func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha information and the channel count it is blended with.",
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
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
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

		// Compositing
		{
			Name:        "image_overlay",
			Description: "Blend a watermark image onto a background image using the watermark's alpha channel. Only the part of the watermark that overlaps the background is applied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(placementProperties(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the background image",
					},
					"watermark_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the watermark image. Images without transparency are applied fully opaque.",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional watermark scale factor. Default 1.0",
						"default":     1.0,
					},
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Multiplier for the watermark alpha, in [0, 1]. 0 or omitted applies the watermark unchanged",
						"default":     1.0,
					},
				}),
				"required": []string{"path", "watermark_path"},
			},
		},
		{
			Name:        "image_overlay_color",
			Description: "Blend a solid color rectangle onto an image. The alpha part of the color (#RRGGBBAA) sets the blend opacity.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(placementProperties(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the background image",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color #RRGGBB or #RRGGBBAA",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Rectangle width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Rectangle height in pixels",
					},
				}),
				"required": []string{"path", "color", "width", "height"},
			},
		},
		{
			Name:        "image_overlay_text",
			Description: "Blend a single line of text onto an image, e.g. a copyright notice. The alpha part of the color (#RRGGBBAA) sets the blend opacity.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(placementProperties(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the background image",
					},
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text to render (single line, ASCII)",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Text color as hex with optional alpha (default #FFFFFFB0)",
						"default":     "#FFFFFFB0",
					},
					"text_scale": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel size multiplier for the 7x13 font (default 2)",
						"default":     2,
					},
				}),
				"required": []string{"path", "text"},
			},
		},
		{
			Name:        "image_grid_overlay",
			Description: "Blend a coordinate grid onto the image to help identify positions for watermark placement.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels between grid lines (default 50)",
						"default":     50,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid intersections with coordinates (default true)",
						"default":     true,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex with optional alpha (default #FF000080)",
						"default":     "#FF000080",
					},
				},
				"required": []string{"path"},
			},
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate, e.g. to verify a blended result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
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
