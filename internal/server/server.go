package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/paint-mix-mcp/internal/imaging"
	"github.com/ironsheep/paint-mix-mcp/internal/rgbh"
)

// DefaultStep is the adjustment delta used when a call omits one.
const DefaultStep = 0.05

// DefaultSession names the mixer used when a call omits a session.
const DefaultSession = "default"

// Config holds server settings. Zero fields take their defaults.
type Config struct {
	// Version is reported in the initialize handshake.
	Version string

	// DefaultStep is the value and chroma delta for mixer_adjust calls
	// without one. Hue rotations default to the same fraction of a turn.
	DefaultStep float64

	// Debug enables logging of every tool call and refused adjustment.
	Debug bool
}

// Server handles MCP protocol communication
type Server struct {
	cache    *imaging.ImageCache
	sessions map[string]*rgbh.Manipulator
	cfg      Config
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a new MCP server instance
func New(cfg Config) *Server {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if cfg.DefaultStep <= 0 {
		cfg.DefaultStep = DefaultStep
	}
	return &Server{
		cache:    imaging.NewImageCache(),
		sessions: make(map[string]*rgbh.Manipulator),
		cfg:      cfg,
	}
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to
// w until r is exhausted. Requests are handled one at a time, so sessions
// need no locking.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "paint-mix-mcp",
				"version": s.cfg.Version,
			},
		},
	}
}

// session returns the manipulator for name, creating a black one on first
// use.
func (s *Server) session(name string) *rgbh.Manipulator {
	if name == "" {
		name = DefaultSession
	}
	m, ok := s.sessions[name]
	if !ok {
		m = rgbh.NewManipulator(rgbh.RGB[rgbh.Proportion]{})
		s.sessions[name] = m
		if s.cfg.Debug {
			log.Printf("Created session %q", name)
		}
	}
	return m
}
