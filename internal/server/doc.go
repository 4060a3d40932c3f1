// Package server implements the MCP (Model Context Protocol) server for the
// paint color mixer.
//
// This package provides a JSON-RPC 2.0 server that lets an MCP client mix a
// target paint color interactively: pick a starting color, then nudge its
// value, chroma or hue one attribute at a time while the others stay put.
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
// Mixer Sessions:
//   - mixer_set: Set the color from RGB components, hex or a color name
//   - mixer_sample: Set the color from a pixel or region of a swatch image
//   - mixer_state: Get the color and its attributes
//   - mixer_adjust: Increase or decrease value or chroma, or rotate the hue
//   - mixer_reset: Discard one session, or all sessions and cached images
//   - mixer_swatch: Render the color, its full chroma hue and its grey as a PNG
//
// Color Analysis:
//   - color_analyze: Decompose a color without touching any session
//   - color_names: List CSS color names
//
// # Sessions
//
// Each session holds one color manipulator, created black on first use. A
// call without a session name uses the "default" session. Requests are
// served one at a time by a single loop, which is the only owner of the
// sessions.
//
// # Adjustments
//
// mixer_adjust deltas are fractions of the full range for value and chroma
// and degrees for hue rotation. When a call omits the delta, the server step
// is used (see Config.DefaultStep), and rotations turn by the same fraction
// of a full circle.
//
// An adjustment that the geometry does not allow, such as more chroma on a
// color that is already saturated, is not an error: the result reports
// changed=false with the unchanged state.
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
//	srv := server.New(server.Config{Version: version})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
