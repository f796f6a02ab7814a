// Package server implements the MCP (Model Context Protocol) server for named RGB images.
//
// This package provides a JSON-RPC 2.0 server that exposes the raster package
// through the MCP protocol. Clients build images from pixel grids, transform
// them in place and read the results back, all by name.
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
// The server provides 16 tools organized into categories:
//
// Construction:
//   - image_create: New all-black image of a given size
//   - image_from_pixels: Image from a grid of "#rrggbb" colors
//   - image_copy: Deep copy under a new name
//
// Accessors:
//   - image_info: Height and width
//   - image_get_pixel: Color at (row, col)
//   - image_set_pixel: Overwrite the color at (row, col)
//
// Transforms (in place):
//   - image_flip: Mirror horizontally or vertically
//   - image_rotate: Quarter turns clockwise or counter-clockwise
//   - image_shift: Translate along rows or columns with black fill
//   - image_invert: Complement every channel
//
// Export:
//   - image_grayscale: Per-pixel luminance grid
//   - image_pixels: Full grid as hex colors
//   - image_render: Debug text rendering
//
// Analysis and registry:
//   - image_compare: Equality plus difference statistics
//   - image_delete: Remove an image
//   - image_list: Names of stored images
//
// # Image Store
//
// Images live in a store.Store keyed by name. The store is bounded by the
// configured capacity; when it is full the least recently used image is
// evicted and the eviction is logged. Images larger than max_pixels are
// rejected before any pixel buffer is allocated.
//
// Mutating tools report the image name and its dimensions after the change,
// so a client can follow height/width swaps caused by rotation.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Out-of-bounds pixel access is not an error. image_get_pixel returns black
// and image_set_pixel leaves the image unchanged; both report in_bounds=false.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
