package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/image-overlay-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_overlay").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.config.Debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Compositing
	case "image_overlay":
		return s.handleImageOverlay(args)
	case "image_overlay_color":
		return s.handleImageOverlayColor(args)
	case "image_overlay_text":
		return s.handleImageOverlayText(args)
	case "image_grid_overlay":
		return s.handleImageGridOverlay(args)

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Compositing Handlers ===

// placementArgs holds the arguments shared by the overlay tools.
type placementArgs struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Anchor     string `json:"anchor"`
	Margin     int    `json:"margin"`
	OutputPath string `json:"output_path"`
	Format     string `json:"format"`
}

type imageOverlayArgs struct {
	placementArgs
	Path          string  `json:"path"`
	WatermarkPath string  `json:"watermark_path"`
	Scale         float64 `json:"scale"`
	Opacity       float64 `json:"opacity"`
}

func (s *Server) handleImageOverlay(args json.RawMessage) (interface{}, error) {
	var a imageOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.WatermarkPath == "" {
		return nil, fmt.Errorf("watermark_path is required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Opacity == 0 {
		a.Opacity = 1.0
	}

	bg, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	wm, err := s.cache.Load(a.WatermarkPath)
	if err != nil {
		return nil, err
	}

	result, err := imaging.Composite(bg, wm, imaging.CompositeOptions{
		X:       a.X,
		Y:       a.Y,
		Anchor:  a.Anchor,
		Margin:  a.Margin,
		Scale:   a.Scale,
		Opacity: a.Opacity,
		Workers: s.config.Workers,
	})
	if err != nil {
		return nil, err
	}
	return s.deliver(result, a.placementArgs)
}

type imageOverlayColorArgs struct {
	placementArgs
	Path   string `json:"path"`
	Color  string `json:"color"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageOverlayColor(args json.RawMessage) (interface{}, error) {
	var a imageOverlayColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	c, err := imaging.ParseHexColor(a.Color)
	if err != nil {
		return nil, err
	}
	wm, err := imaging.SolidWatermark(a.Width, a.Height, c)
	if err != nil {
		return nil, err
	}

	bg, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.Composite(bg, wm, imaging.CompositeOptions{
		X:       a.X,
		Y:       a.Y,
		Anchor:  a.Anchor,
		Margin:  a.Margin,
		Workers: s.config.Workers,
	})
	if err != nil {
		return nil, err
	}
	return s.deliver(result, a.placementArgs)
}

type imageOverlayTextArgs struct {
	placementArgs
	Path      string `json:"path"`
	Text      string `json:"text"`
	Color     string `json:"color"`
	TextScale int    `json:"text_scale"`
}

func (s *Server) handleImageOverlayText(args json.RawMessage) (interface{}, error) {
	var a imageOverlayTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = "#FFFFFFB0"
	}
	if a.TextScale == 0 {
		a.TextScale = 2
	}

	c, err := imaging.ParseHexColor(a.Color)
	if err != nil {
		return nil, err
	}
	wm, err := imaging.TextWatermark(a.Text, c, a.TextScale)
	if err != nil {
		return nil, err
	}

	bg, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.Composite(bg, wm, imaging.CompositeOptions{
		X:       a.X,
		Y:       a.Y,
		Anchor:  a.Anchor,
		Margin:  a.Margin,
		Workers: s.config.Workers,
	})
	if err != nil {
		return nil, err
	}
	return s.deliver(result, a.placementArgs)
}

// deliver writes img to the requested output file, or encodes it for the
// response when no output path was given.
func (s *Server) deliver(img image.Image, a placementArgs) (interface{}, error) {
	if a.OutputPath != "" {
		saved, err := imaging.SaveImage(img, a.OutputPath)
		if err != nil {
			return nil, err
		}
		// A stale decoded copy of an overwritten file must not be served again.
		s.cache.Evict(a.OutputPath)
		return saved, nil
	}

	format, err := imaging.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	return imaging.EncodeResult(img, format)
}

type imageGridOverlayArgs struct {
	Path            string `json:"path"`
	GridSpacing     int    `json:"grid_spacing"`
	ShowCoordinates *bool  `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
}

func (s *Server) handleImageGridOverlay(args json.RawMessage) (interface{}, error) {
	var a imageGridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSpacing == 0 {
		a.GridSpacing = 50
	}
	if a.GridColor == "" {
		a.GridColor = "#FF000080"
	}
	showCoordinates := true
	if a.ShowCoordinates != nil {
		showCoordinates = *a.ShowCoordinates
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.GridOverlay(img, a.GridSpacing, showCoordinates, a.GridColor)
}

// === Inspection Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}
