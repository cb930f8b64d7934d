// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorkit
// conversions and scheme generators through the MCP protocol.
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
// Conversion:
//   - color_convert: Express one color in hex, RGB, HSV, HSL and CMYK
//   - color_equal: Compare two colors given in any models
//
// Scheme Generation:
//   - color_scheme: Complementary, triadic, tetradic or analogous scheme
//   - color_swatch: Render a color or scheme as a PNG strip
//
// Sampling:
//   - color_random: Uniform random color, optionally seeded
//
// # Color Input
//
// Every tool that takes a color accepts either a hex string:
//
//	{"hex": "#FF8040"}
//
// or a model name with its components in declaration order:
//
//	{"model": "hsl", "values": [20, 100, 62.5]}
//
// Components outside their range are clamped and malformed hex digits are
// repaired, so only an unknown model or a wrong component count fails.
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
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Load(), version)
//	if err := srv.Run(); err != nil {
//	    logrus.Fatal(err)
//	}
package server
