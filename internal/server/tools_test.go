package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"icon_extract",
		"icon_components",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || props["path"] == nil {
				t.Error("InputSchema should describe a path property")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			if len(required) != 1 || required[0] != "path" {
				t.Errorf("required: got %v, want [path]", required)
			}
		})
	}
}

func TestToolDefinitions_ExtractionOptions(t *testing.T) {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	tests := []struct {
		tool     string
		param    string
		expected bool
	}{
		{"icon_extract", "preset", true},
		{"icon_extract", "threshold", true},
		{"icon_extract", "noise_floor", true},
		{"icon_extract", "frame_coverage", true},
		{"icon_extract", "mode", true},
		{"icon_extract", "dilate", true},
		{"icon_extract", "color", true},
		{"icon_extract", "trim", true},
		{"icon_extract", "output", true},
		{"icon_extract", "debug_path", true},
		{"icon_components", "threshold", true},
		{"icon_components", "output", false},
		{"icon_components", "debug_path", false},
	}

	for _, tt := range tests {
		t.Run(tt.tool+"."+tt.param, func(t *testing.T) {
			props := toolMap[tt.tool].InputSchema["properties"].(map[string]interface{})
			_, ok := props[tt.param]
			if ok != tt.expected {
				t.Errorf("has %s: got %v, want %v", tt.param, ok, tt.expected)
			}
		})
	}
}

func TestToolDefinitions_PresetEnum(t *testing.T) {
	var tool Tool
	for _, tt := range GetToolDefinitions() {
		if tt.Name == "icon_extract" {
			tool = tt
		}
	}

	props := tool.InputSchema["properties"].(map[string]interface{})
	preset, ok := props["preset"].(map[string]interface{})
	if !ok {
		t.Fatal("preset property should be a map")
	}
	enum, ok := preset["enum"].([]string)
	if !ok {
		t.Fatal("preset should have enum")
	}
	if len(enum) != 2 || enum[0] != "hands" || enum[1] != "wave" {
		t.Errorf("preset enum: got %v", enum)
	}
	if preset["default"] != "hands" {
		t.Errorf("preset default: got %v, want hands", preset["default"])
	}
}
