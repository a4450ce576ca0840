package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/icon-cleaner/internal/extract"
	"github.com/ironsheep/icon-cleaner/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "icon_extract").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "icon_extract":
		return s.handleIconExtract(args)
	case "icon_components":
		return s.handleIconComponents(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is left out of the error object.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	mcpErr := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		mcpErr.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   mcpErr,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// iconArgs are shared by icon_extract and icon_components. Pointer fields
// distinguish "not given" from zero so the preset value survives.
type iconArgs struct {
	Path          string   `json:"path"`
	Output        string   `json:"output"`
	Preset        string   `json:"preset"`
	Threshold     *int     `json:"threshold"`
	NoiseFloor    *int     `json:"noise_floor"`
	FrameCoverage *float64 `json:"frame_coverage"`
	Mode          string   `json:"mode"`
	Dilate        float64  `json:"dilate"`
	Color         string   `json:"color"`
	Trim          bool     `json:"trim"`
	Padding       int      `json:"padding"`
	DebugPath     string   `json:"debug_path"`
}

// config builds the extraction config: preset first, explicit arguments on top.
func (a *iconArgs) config() (extract.Config, error) {
	cfg, err := extract.Preset(a.Preset)
	if err != nil {
		return cfg, err
	}
	if a.Threshold != nil {
		if *a.Threshold < 0 || *a.Threshold > 255 {
			return cfg, fmt.Errorf("threshold must be 0-255, got %d", *a.Threshold)
		}
		cfg.Threshold = uint8(*a.Threshold)
	}
	if a.NoiseFloor != nil {
		cfg.NoiseFloor = *a.NoiseFloor
	}
	if a.FrameCoverage != nil {
		cfg.FrameCoverage = *a.FrameCoverage
	}
	if a.Mode != "" {
		cfg.Mode = extract.Mode(a.Mode)
	}
	if a.Color != "" {
		cfg.Color = a.Color
	}
	cfg.Dilate = a.Dilate
	cfg.Trim = a.Trim
	cfg.Padding = a.Padding
	cfg.DebugPath = a.DebugPath
	return cfg, cfg.Validate()
}

func parseIconArgs(args json.RawMessage) (*iconArgs, extract.Config, error) {
	var a iconArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, extract.Config{}, err
	}
	if a.Path == "" {
		return nil, extract.Config{}, fmt.Errorf("path is required")
	}
	cfg, err := a.config()
	if err != nil {
		return nil, cfg, err
	}
	return &a, cfg, nil
}

// IconExtractResult is returned by the icon_extract tool.
type IconExtractResult struct {
	Output string          `json:"output"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Report *extract.Report `json:"report"`
}

func (s *Server) handleIconExtract(args json.RawMessage) (interface{}, error) {
	a, cfg, err := parseIconArgs(args)
	if err != nil {
		return nil, err
	}

	res, err := extract.ExtractFile(s.cache, a.Path, a.Output, cfg)
	if err != nil {
		return nil, err
	}
	// Written files may overwrite cached paths; drop them so later loads re-read.
	s.cache.Evict(res.OutputPath)
	if cfg.DebugPath != "" {
		s.cache.Evict(cfg.DebugPath)
	}

	b := res.Image.Bounds()
	return &IconExtractResult{
		Output: res.OutputPath,
		Width:  b.Dx(),
		Height: b.Dy(),
		Report: &res.Report,
	}, nil
}

func (s *Server) handleIconComponents(args json.RawMessage) (interface{}, error) {
	a, cfg, err := parseIconArgs(args)
	if err != nil {
		return nil, err
	}
	return extract.Inspect(s.cache, a.Path, cfg)
}
