// Package server implements the MCP (Model Context Protocol) server for the
// palette tools.
//
// This package provides a JSON-RPC 2.0 server that exposes palette extraction
// and gradient composition through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
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
// Image information:
//   - image_load: Load image and get metadata
//
// Extraction:
//   - palette_extract: Grid sample, rank, select and compose in one call
//   - palette_gradient: Compose a gradient from caller-supplied colors
//   - palette_mosaic: Render the per-cell averages as a PNG
//
// Background source:
//   - palette_set_image: Submit the image backing the current gradient
//   - palette_current: Read the gradient for the newest committed image
//
// Per-call arguments override the configuration the server was created
// with; anything left out uses the server's value.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across tool calls for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	cfg, err := palette.ConfigFromEnv(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
