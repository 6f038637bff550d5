// Package server implements the MCP (Model Context Protocol) server for
// watermark compositing.
//
// This package provides a JSON-RPC 2.0 server that exposes alpha-blended image
// overlay through the MCP protocol, so MCP-compatible clients can stamp logos,
// color blocks and reference grids onto images and check the outcome.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Compositing:
//   - image_overlay: Blend a watermark image onto a background
//   - image_overlay_color: Blend a solid color rectangle
//   - image_overlay_text: Blend a line of text
//   - image_grid_overlay: Blend a coordinate grid for placement
//
// Inspection:
//   - image_sample_color: Get color at pixel
//
// The overlay tools either write the result to output_path or return it
// base64-encoded in the requested format.
//
// # Configuration
//
// ConfigFromEnv reads IMAGE_OVERLAY_LOG_LEVEL and IMAGE_OVERLAY_WORKERS. The
// worker count only changes how many rows are blended at once, never the
// resulting pixels.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images keyed by path, so a
// watermark used on many backgrounds is decoded once. Writing a result to a
// path evicts that path from the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "... invalid format: ..." or "... empty region: ..."
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.NewWithConfig(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
