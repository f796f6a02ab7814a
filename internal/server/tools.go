package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// nameProperty is the schema shared by every tool that targets a stored image
var nameProperty = map[string]interface{}{
	"type":        "string",
	"description": "Name of a stored image",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Construction
		{
			Name:        "image_create",
			Description: "Create a new all-black image with the given number of rows and columns and store it under a name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the image under",
					},
					"rows": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rows (height), at least 1",
						"minimum":     1,
					},
					"cols": map[string]interface{}{
						"type":        "integer",
						"description": "Number of columns (width), at least 1",
						"minimum":     1,
					},
					"replace": map[string]interface{}{
						"type":        "boolean",
						"description": "Overwrite an existing image with the same name. Default false",
						"default":     false,
					},
				},
				"required": []string{"name", "rows", "cols"},
			},
		},
		{
			Name:        "image_from_pixels",
			Description: "Create an image from a rectangular grid of hex colors (rows of \"#rrggbb\" strings, all rows the same length).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name to store the image under",
					},
					"pixels": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":  "array",
							"items": map[string]interface{}{"type": "string"},
						},
						"description": "Row-major grid of \"#rrggbb\" colors",
					},
					"replace": map[string]interface{}{
						"type":        "boolean",
						"description": "Overwrite an existing image with the same name. Default false",
						"default":     false,
					},
				},
				"required": []string{"name", "pixels"},
			},
		},
		{
			Name:        "image_copy",
			Description: "Store an independent deep copy of an image under a new name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Name of the image to copy",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Name for the copy",
					},
				},
				"required": []string{"source", "name"},
			},
		},

		// Accessors
		{
			Name:        "image_info",
			Description: "Get the height (rows) and width (columns) of a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_get_pixel",
			Description: "Get the color at (row, col). Out-of-bounds coordinates return black with in_bounds=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
					"row":  map[string]interface{}{"type": "integer", "description": "Row index (0-based, from top)"},
					"col":  map[string]interface{}{"type": "integer", "description": "Column index (0-based, from left)"},
				},
				"required": []string{"name", "row", "col"},
			},
		},
		{
			Name:        "image_set_pixel",
			Description: "Set the color at (row, col). Out-of-bounds coordinates leave the image unchanged and report in_bounds=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":  nameProperty,
					"row":   map[string]interface{}{"type": "integer", "description": "Row index (0-based, from top)"},
					"col":   map[string]interface{}{"type": "integer", "description": "Column index (0-based, from left)"},
					"color": map[string]interface{}{"type": "string", "description": "Color as \"#rrggbb\""},
				},
				"required": []string{"name", "row", "col", "color"},
			},
		},

		// Geometric transforms
		{
			Name:        "image_flip",
			Description: "Mirror an image in place, left-right (horizontal) or top-bottom (vertical).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"horizontal", "vertical"},
						"description": "Flip direction",
					},
				},
				"required": []string{"name", "direction"},
			},
		},
		{
			Name:        "image_rotate",
			Description: "Rotate an image in place by quarter turns. Each turn swaps height and width.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"clockwise", "counterclockwise"},
						"description": "Rotation direction",
					},
					"turns": map[string]interface{}{
						"type":        "integer",
						"description": "Number of quarter turns (default 1)",
						"default":     1,
						"minimum":     1,
					},
				},
				"required": []string{"name", "direction"},
			},
		},
		{
			Name:        "image_shift",
			Description: "Translate image content along rows or columns. Uncovered cells become black; content moved past an edge is lost.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
					"axis": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"row", "col"},
						"description": "\"col\" moves content right (positive) or left (negative); \"row\" moves it down (positive) or up (negative)",
					},
					"offset": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rows or columns to move by",
					},
				},
				"required": []string{"name", "axis", "offset"},
			},
		},

		// Colorimetric transforms
		{
			Name:        "image_invert",
			Description: "Replace every color with its complement (255 minus each channel) in place.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
				},
				"required": []string{"name"},
			},
		},

		// Export
		{
			Name:        "image_grayscale",
			Description: "Return the luminance (0.299R + 0.587G + 0.114B) of every pixel as a grid of numbers. The image is not modified.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_pixels",
			Description: "Return the full pixel grid as rows of \"#rrggbb\" colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_render",
			Description: "Return the debug text rendering of an image: one line per row, pixels as (R,G,B) separated by spaces.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
				},
				"required": []string{"name"},
			},
		},

		// Comparison
		{
			Name:        "image_compare",
			Description: "Check whether two images are equal and report pixel difference statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": map[string]interface{}{"type": "string", "description": "First image name"},
					"b": map[string]interface{}{"type": "string", "description": "Second image name"},
				},
				"required": []string{"a", "b"},
			},
		},

		// Registry
		{
			Name:        "image_delete",
			Description: "Remove a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProperty,
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_list",
			Description: "List the names of all stored images.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
