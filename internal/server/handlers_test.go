package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/icon-cleaner/internal/extract"
	"github.com/ironsheep/icon-cleaner/internal/imaging"
)

// createIconFile writes a 200x200 white icon with a dark square outline and a
// dark disc in the middle, and returns its path.
func createIconFile(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			c := color.RGBA{255, 255, 255, 255}
			onFrame := x >= 10 && x <= 190 && y >= 10 && y <= 190 &&
				(x < 14 || x > 186 || y < 14 || y > 186)
			dx, dy := x-100, y-100
			if onFrame || dx*dx+dy*dy <= 400 {
				c = color.RGBA{20, 20, 20, 255}
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func toolRequest(t *testing.T, name string, args map[string]interface{}) *MCPRequest {
	t.Helper()
	params, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}
	return &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params}
}

// callTool runs a tools/call request and decodes the text content into out.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) {
	t.Helper()

	resp := s.handleRequest(toolRequest(t, name, args))
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	text, _ := content[0]["text"].(string)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		t.Fatalf("failed to decode tool result %q: %v", text, err)
	}
}

func toolError(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPError {
	t.Helper()
	resp := s.handleRequest(toolRequest(t, name, args))
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected error response, got %+v", resp)
	}
	return resp.Error
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	path := createIconFile(t)

	var info imaging.ImageInfo
	callTool(t, s, "image_load", map[string]interface{}{"path": path}, &info)

	if info.Width != 200 || info.Height != 200 {
		t.Errorf("dimensions: got %dx%d, want 200x200", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.Channels != 3 || info.HasAlpha {
		t.Errorf("channels: got %d alpha=%v, want 3 without alpha", info.Channels, info.HasAlpha)
	}
}

func TestHandleToolsCall_IconExtract(t *testing.T) {
	s := New()
	path := createIconFile(t)

	var got IconExtractResult
	callTool(t, s, "icon_extract", map[string]interface{}{"path": path}, &got)

	want := strings.TrimSuffix(path, ".png") + "_clean.png"
	if got.Output != want {
		t.Errorf("output: got %s, want %s", got.Output, want)
	}
	if got.Width != 200 || got.Height != 200 {
		t.Errorf("size: got %dx%d, want 200x200", got.Width, got.Height)
	}
	if got.Report == nil {
		t.Fatal("report missing")
	}
	if got.Report.Foreground != 1 || got.Report.Frames != 1 {
		t.Errorf("classes: got %d kept, %d frame; want 1 and 1", got.Report.Foreground, got.Report.Frames)
	}
	if got.Report.Threshold != 200 {
		t.Errorf("threshold: got %d, want 200", got.Report.Threshold)
	}

	// The written file is re-read rather than served from the cache.
	var info imaging.ImageInfo
	callTool(t, s, "image_load", map[string]interface{}{"path": got.Output}, &info)
	if !info.HasAlpha || info.Channels != 4 {
		t.Errorf("output should be 4-channel with alpha, got %d alpha=%v", info.Channels, info.HasAlpha)
	}
}

func TestHandleToolsCall_IconExtractOverrides(t *testing.T) {
	s := New()
	path := createIconFile(t)
	out := filepath.Join(t.TempDir(), "trimmed.png")

	var got IconExtractResult
	callTool(t, s, "icon_extract", map[string]interface{}{
		"path":      path,
		"output":    out,
		"preset":    "wave",
		"threshold": 150,
		"color":     "#000000",
		"trim":      true,
	}, &got)

	if got.Output != out {
		t.Errorf("output: got %s, want %s", got.Output, out)
	}
	if got.Report.Threshold != 150 {
		t.Errorf("explicit threshold should override preset, got %d", got.Report.Threshold)
	}
	// Disc of radius 20 trims to 41x41.
	if got.Width != 41 || got.Height != 41 {
		t.Errorf("trimmed size: got %dx%d, want 41x41", got.Width, got.Height)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestHandleToolsCall_IconExtractThresholdMode(t *testing.T) {
	s := New()
	path := createIconFile(t)

	var got IconExtractResult
	callTool(t, s, "icon_extract", map[string]interface{}{
		"path": path,
		"mode": "threshold",
	}, &got)

	if got.Report.Mode != extract.ModeThreshold {
		t.Errorf("mode: got %s, want threshold", got.Report.Mode)
	}
	if len(got.Report.Components) != 0 {
		t.Errorf("threshold mode should not classify, got %d rows", len(got.Report.Components))
	}
}

func TestHandleToolsCall_IconExtractRefreshesWrittenPaths(t *testing.T) {
	s := New()
	path := createIconFile(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	debug := filepath.Join(dir, "debug.png")

	// Prime the cache with stale images at both destinations.
	stale := createIconFile(t)
	for _, dst := range []string{out, debug} {
		data, err := os.ReadFile(stale)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			t.Fatal(err)
		}
		var info imaging.ImageInfo
		callTool(t, s, "image_load", map[string]interface{}{"path": dst}, &info)
		if info.HasAlpha {
			t.Fatalf("%s: stale copy should be opaque", dst)
		}
	}

	var got IconExtractResult
	callTool(t, s, "icon_extract", map[string]interface{}{
		"path":       path,
		"output":     out,
		"debug_path": debug,
		"trim":       true,
	}, &got)

	var info imaging.ImageInfo
	callTool(t, s, "image_load", map[string]interface{}{"path": out}, &info)
	if !info.HasAlpha || info.Width != 41 {
		t.Errorf("output served from a stale cache entry: %+v", info)
	}

	// (80,80) is white background in the stale copy and the outlined corner
	// of the disc's bounding box in the fresh overlay.
	cached, err := s.cache.Load(debug)
	if err != nil {
		t.Fatalf("load debug overlay: %v", err)
	}
	if c := cached.At(80, 80); c == (color.RGBA{255, 255, 255, 255}) {
		t.Error("debug overlay served from a stale cache entry")
	}
}

func TestHandleToolsCall_IconComponents(t *testing.T) {
	s := New()
	path := createIconFile(t)

	var got extract.Report
	callTool(t, s, "icon_components", map[string]interface{}{"path": path}, &got)

	if len(got.Components) != 2 {
		t.Fatalf("components: got %d, want 2", len(got.Components))
	}
	classes := map[string]bool{}
	for _, c := range got.Components {
		classes[c.Class.String()] = true
	}
	if !classes["frame"] || !classes["foreground"] {
		t.Errorf("classes: got %v, want frame and foreground", classes)
	}

	clean := strings.TrimSuffix(path, ".png") + "_clean.png"
	if _, err := os.Stat(clean); !os.IsNotExist(err) {
		t.Error("icon_components should not write output")
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New()
	path := createIconFile(t)

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{"unknown tool", "image_rotate", map[string]interface{}{"path": path}},
		{"missing path", "icon_extract", map[string]interface{}{}},
		{"missing path load", "image_load", map[string]interface{}{}},
		{"unknown preset", "icon_extract", map[string]interface{}{"path": path, "preset": "fist"}},
		{"threshold out of range", "icon_extract", map[string]interface{}{"path": path, "threshold": 300}},
		{"bad mode", "icon_components", map[string]interface{}{"path": path, "mode": "contours"}},
		{"bad colour", "icon_extract", map[string]interface{}{"path": path, "color": "#XYZXYZ"}},
		{"jpeg output", "icon_extract", map[string]interface{}{"path": path, "output": filepath.Join(t.TempDir(), "out.jpg")}},
		{"missing file", "icon_extract", map[string]interface{}{"path": filepath.Join(t.TempDir(), "nope.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mcpErr := toolError(t, s, tt.tool, tt.args)
			if mcpErr.Code != -32000 {
				t.Errorf("code: got %d, want -32000", mcpErr.Code)
			}
			if mcpErr.Data == nil {
				t.Error("error data should carry the cause")
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	}

	resp := s.handleRequest(req)
	if resp == nil || resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("code: got %d, want -32602", resp.Error.Code)
	}
}

func TestMustMarshalJSON(t *testing.T) {
	got := mustMarshalJSON(map[string]int{"width": 3})
	if got != "{\n  \"width\": 3\n}" {
		t.Errorf("got %q", got)
	}
	if mustMarshalJSON(make(chan int)) != "" {
		t.Error("unmarshalable value should give empty string")
	}
}
