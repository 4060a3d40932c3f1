package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/ironsheep/paint-mix-mcp/internal/imaging"
	"github.com/ironsheep/paint-mix-mcp/internal/palette"
	"github.com/ironsheep/paint-mix-mcp/internal/rgbh"
)

// ForegroundThreshold is the luma fraction above which text on a color is
// drawn in black.
const ForegroundThreshold = 0.5

// DefaultSwatchSize is the patch side used by mixer_swatch.
const DefaultSwatchSize = 64

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mixer_set", "mixer_adjust").
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
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	if s.cfg.Debug {
		log.Printf("Tool call %s %s", params.Name, params.Arguments)
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up or creates the mixer session
//  4. Calls into the color packages
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Mixer Sessions
	case "mixer_set":
		return s.handleMixerSet(args)
	case "mixer_sample":
		return s.handleMixerSample(args)
	case "mixer_state":
		return s.handleMixerState(args)
	case "mixer_adjust":
		return s.handleMixerAdjust(args)
	case "mixer_reset":
		return s.handleMixerReset(args)
	case "mixer_swatch":
		return s.handleMixerSwatch(args)

	// Color Analysis
	case "color_analyze":
		return s.handleColorAnalyze(args)
	case "color_names":
		return s.handleColorNames(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string. The result
// types here always marshal; a failure yields an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Result Types ===

// HueState describes a defined hue.
type HueState struct {
	Degrees float64 `json:"degrees"`

	// Order names the components from dominant to weakest.
	Order [3]string `json:"order"`

	// Other is the secondary component of the full chroma color, 0 to 1.
	Other float64 `json:"other"`

	// MaxChromaValue is the value at which the hue reaches full chroma.
	MaxChromaValue float64 `json:"max_chroma_value"`

	// Hex is the full chroma color of the hue.
	Hex string `json:"hex"`
}

// ColorState is a color with its derived attributes in every form a client
// may want to display.
type ColorState struct {
	Hex        string                    `json:"hex"`
	Hex16      string                    `json:"hex16"`
	RGB8       rgbh.RGB[rgbh.Bits8]      `json:"rgb8"`
	RGB16      rgbh.RGB[rgbh.Bits16]     `json:"rgb16"`
	Proportion rgbh.RGB[rgbh.Proportion] `json:"proportion"`
	Value      float64                   `json:"value"`
	Chroma     float64                   `json:"chroma"`

	// MaxChroma is the most chroma reachable at the current hue and value.
	MaxChroma float64 `json:"max_chroma"`

	// Hue is null for greys.
	Hue *HueState `json:"hue"`

	NearestName     string  `json:"nearest_name"`
	NearestDistance float64 `json:"nearest_distance"`
	Foreground      string  `json:"foreground"`
}

var componentNames = [3]string{rgbh.Red: "red", rgbh.Green: "green", rgbh.Blue: "blue"}

func stateOf(m *rgbh.Manipulator) ColorState {
	rgb := m.RGB()
	nearest, dist := palette.Nearest(rgb)
	st := ColorState{
		Hex:             palette.Hex(rgb),
		Hex16:           palette.Hex16(rgb),
		RGB8:            rgbh.Convert[rgbh.Bits8](rgb),
		RGB16:           rgbh.Convert[rgbh.Bits16](rgb),
		Proportion:      rgb,
		Value:           m.Value(),
		Chroma:          m.Chroma(),
		MaxChroma:       m.MaxChroma(),
		NearestName:     nearest,
		NearestDistance: dist,
		Foreground:      palette.Hex(palette.BestForeground(rgb, ForegroundThreshold)),
	}
	if hue := m.Hue(); !hue.IsGrey() {
		st.Hue = &HueState{
			Degrees:        rgbh.Degrees(hue.Angle),
			Order:          [3]string{componentNames[hue.IO[0]], componentNames[hue.IO[1]], componentNames[hue.IO[2]]},
			Other:          float64(hue.Other),
			MaxChromaValue: hue.MaxChromaValue(),
			Hex:            palette.Hex(hue.RGB()),
		}
	}
	return st
}

// MixerResult is returned by the session tools.
type MixerResult struct {
	Session string     `json:"session"`
	State   ColorState `json:"state"`
}

// AdjustResult reports an adjustment. Changed is false when the adjustment
// was impossible and the color was left alone.
type AdjustResult struct {
	Session   string     `json:"session"`
	Operation string     `json:"operation"`
	Delta     float64    `json:"delta"`
	Changed   bool       `json:"changed"`
	State     ColorState `json:"state"`
}

// SampleResult reports a color taken from an image.
type SampleResult struct {
	Session string             `json:"session"`
	Image   *imaging.ImageInfo `json:"image"`
	Mode    string             `json:"mode"`
	State   ColorState         `json:"state"`
}

func sessionName(name string) string {
	if name == "" {
		return DefaultSession
	}
	return name
}

// === Color Arguments ===

type colorArgs struct {
	RGB  []float64 `json:"rgb"`
	Kind string    `json:"kind"`
	Hex  string    `json:"hex"`
	Name string    `json:"name"`
}

// resolve returns the color described by exactly one of RGB, Hex or Name.
func (a colorArgs) resolve() (rgbh.RGB[rgbh.Proportion], error) {
	given := 0
	if a.RGB != nil {
		given++
	}
	if a.Hex != "" {
		given++
	}
	if a.Name != "" {
		given++
	}
	if given != 1 {
		return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("exactly one of rgb, hex or name is required")
	}

	switch {
	case a.Hex != "":
		return palette.ParseHex(a.Hex)
	case a.Name != "":
		rgb, ok := palette.Named(a.Name)
		if !ok {
			return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("unknown color name: %s", a.Name)
		}
		return rgb, nil
	}

	if len(a.RGB) != 3 {
		return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("rgb needs 3 components, got %d", len(a.RGB))
	}
	switch a.Kind {
	case "", "8":
		return componentsAs[rgbh.Bits8](a.RGB)
	case "16":
		return componentsAs[rgbh.Bits16](a.RGB)
	case "proportion":
		return componentsAs[rgbh.Proportion](a.RGB)
	default:
		return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("unknown channel kind: %s (want 8, 16 or proportion)", a.Kind)
	}
}

// componentsAs reads c as components of kind C and converts them to
// proportions.
func componentsAs[C rgbh.Channel[C]](c []float64) (rgbh.RGB[rgbh.Proportion], error) {
	var rgb rgbh.RGB[C]
	one := float64(rgbh.One[C]())
	for i, v := range c {
		if v < 0 || v > one {
			return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("component %d (%v) outside [0, %v]", i, v, one)
		}
		if rgb[i].Integral() && v != math.Trunc(v) {
			return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("component %d (%v) must be an integer", i, v)
		}
		rgb[i] = C(v)
	}
	return rgbh.Convert[rgbh.Proportion](rgb), nil
}

// === Mixer Session Handlers ===

type mixerSetArgs struct {
	Session string `json:"session"`
	colorArgs
}

func (s *Server) handleMixerSet(args json.RawMessage) (interface{}, error) {
	var a mixerSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rgb, err := a.resolve()
	if err != nil {
		return nil, err
	}
	m := s.session(a.Session)
	rgbh.SetRGB(m, rgb)
	return &MixerResult{Session: sessionName(a.Session), State: stateOf(m)}, nil
}

type mixerSampleArgs struct {
	Session string          `json:"session"`
	Path    string          `json:"path"`
	X       *int            `json:"x"`
	Y       *int            `json:"y"`
	Region  *imaging.Region `json:"region"`
	Reload  bool            `json:"reload"`
}

func (s *Server) handleMixerSample(args json.RawMessage) (interface{}, error) {
	var a mixerSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Reload {
		s.cache.Evict(a.Path)
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	m := s.session(a.Session)
	result := &SampleResult{Session: sessionName(a.Session), Image: info}
	switch {
	case a.Region != nil:
		rgb, err := imaging.SampleRegion(img, *a.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to sample region: %w", err)
		}
		rgbh.SetRGB(m, rgb)
		result.Mode = "region"
	case a.X != nil && a.Y != nil:
		rgb, err := imaging.SampleColor(img, *a.X, *a.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point: %w", err)
		}
		rgbh.SetRGB(m, rgb)
		result.Mode = "point"
	default:
		return nil, fmt.Errorf("either x and y or region is required")
	}
	result.State = stateOf(m)
	return result, nil
}

type sessionArgs struct {
	Session string `json:"session"`
}

func (s *Server) handleMixerState(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &MixerResult{Session: sessionName(a.Session), State: stateOf(s.session(a.Session))}, nil
}

type mixerAdjustArgs struct {
	Session   string   `json:"session"`
	Operation string   `json:"operation"`
	Delta     *float64 `json:"delta"`
}

func (s *Server) handleMixerAdjust(args json.RawMessage) (interface{}, error) {
	var a mixerAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	delta := s.cfg.DefaultStep
	if a.Operation == OpRotateHue {
		delta *= 360
	}
	if a.Delta != nil {
		delta = *a.Delta
	}
	if a.Operation != OpRotateHue && delta < 0 {
		return nil, fmt.Errorf("delta for %s must not be negative", a.Operation)
	}

	var adjust func(*rgbh.Manipulator) bool
	switch a.Operation {
	case OpIncreaseValue:
		adjust = func(m *rgbh.Manipulator) bool { return m.IncreaseValue(delta) }
	case OpDecreaseValue:
		adjust = func(m *rgbh.Manipulator) bool { return m.DecreaseValue(delta) }
	case OpIncreaseChroma:
		adjust = func(m *rgbh.Manipulator) bool { return m.IncreaseChroma(delta) }
	case OpDecreaseChroma:
		adjust = func(m *rgbh.Manipulator) bool { return m.DecreaseChroma(delta) }
	case OpRotateHue:
		adjust = func(m *rgbh.Manipulator) bool { return m.RotateHue(rgbh.Radians(math.Mod(delta, 360))) }
	default:
		return nil, fmt.Errorf("unknown operation: %s", a.Operation)
	}

	m := s.session(a.Session)
	changed := adjust(m)
	if !changed && s.cfg.Debug {
		log.Printf("Session %q: %s by %v refused at %v", sessionName(a.Session), a.Operation, delta, m.RGB())
	}
	return &AdjustResult{
		Session:   sessionName(a.Session),
		Operation: a.Operation,
		Delta:     delta,
		Changed:   changed,
		State:     stateOf(m),
	}, nil
}

type mixerResetArgs struct {
	Session string `json:"session"`
	All     bool   `json:"all"`
}

func (s *Server) handleMixerReset(args json.RawMessage) (interface{}, error) {
	var a mixerResetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.All {
		n := len(s.sessions)
		s.sessions = make(map[string]*rgbh.Manipulator)
		s.cache.Clear()
		return map[string]interface{}{"reset": n > 0, "sessions": n}, nil
	}
	name := sessionName(a.Session)
	_, ok := s.sessions[name]
	delete(s.sessions, name)
	return map[string]interface{}{"reset": ok, "session": name}, nil
}

type mixerSwatchArgs struct {
	Session string `json:"session"`
	Size    int    `json:"size"`
}

func (s *Server) handleMixerSwatch(args json.RawMessage) (interface{}, error) {
	var a mixerSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = DefaultSwatchSize
	}
	m := s.session(a.Session)
	full := m.RGB()
	if hue := m.Hue(); !hue.IsGrey() {
		full = hue.RGB()
	}
	colors := []rgbh.RGB[rgbh.Bits16]{
		rgbh.RGBAs[rgbh.Bits16](m),
		rgbh.Convert[rgbh.Bits16](full),
		rgbh.Convert[rgbh.Bits16](rgbh.Grey(rgbh.Proportion(m.Value()))),
	}
	return imaging.RenderSwatch(colors, a.Size)
}

// === Color Analysis Handlers ===

func (s *Server) handleColorAnalyze(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rgb, err := a.resolve()
	if err != nil {
		return nil, err
	}
	state := stateOf(rgbh.NewManipulator(rgb))
	return &state, nil
}

type colorNamesArgs struct {
	Contains string `json:"contains"`
}

func (s *Server) handleColorNames(args json.RawMessage) (interface{}, error) {
	var a colorNamesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	filter := strings.ToLower(a.Contains)
	names := make([]string, 0)
	for _, name := range palette.Names() {
		if strings.Contains(name, filter) {
			names = append(names, name)
		}
	}
	return map[string]interface{}{"names": names, "count": len(names)}, nil
}
