// Package server implements the MCP (Model Context Protocol) server for the
// icon extractor.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line:
//   - Input: JSON-RPC requests on stdin
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load an image and report size, format, channels and alpha
//   - icon_extract: Write the cleaned icon (artwork only, transparent background)
//   - icon_components: Report components and their classes without writing
//
// icon_extract and icon_components accept a preset ("hands" or "wave") plus
// optional overrides for threshold, noise_floor, frame_coverage, mode,
// dilate, color, trim and padding.
//
// # Image Caching
//
// Source images are cached by path for the lifetime of the server process.
// Paths written by icon_extract are evicted so a later load sees the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
