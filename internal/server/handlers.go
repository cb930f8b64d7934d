package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorkit"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// errNoColor is returned when a tool call carries neither a hex string nor a
// numeric model.
var errNoColor = errors.New("no color given: set 'hex' or 'model' with 'values'")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "color_scheme").
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

	log := s.log.WithField("tool", params.Name)
	log.Debug("tool call")

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.WithError(err).Info("tool call failed")
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
//  2. Builds the input color(s), repairing out-of-range values
//  3. Applies default values for optional parameters
//  4. Calls the appropriate colorkit/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_equal":
		return s.handleColorEqual(args)

	// Scheme Generation
	case "color_scheme":
		return s.handleColorScheme(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Sampling
	case "color_random":
		return s.handleColorRandom(args)

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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("failed to marshal tool result")
	}
	return string(b)
}

// === Color Arguments ===

// colorArgs is the color input shared by every tool.
type colorArgs struct {
	Model  string    `json:"model"`
	Values []float64 `json:"values"`
	Hex    string    `json:"hex"`
}

// color builds the unified color value described by the arguments. A hex
// string wins when no model is named.
func (a colorArgs) color() (colorkit.Color, error) {
	if a.Model == "" {
		if a.Hex == "" {
			return colorkit.Color{}, errNoColor
		}
		return colorkit.New(colorkit.NewHex(a.Hex)), nil
	}

	model, err := colorkit.ParseModel(a.Model)
	if err != nil {
		return colorkit.Color{}, err
	}
	if model == colorkit.ModelHex {
		return colorkit.New(colorkit.NewHex(a.Hex)), nil
	}

	c, err := colorkit.FromComponents(model, a.Values)
	if err != nil {
		return colorkit.Color{}, err
	}
	return colorkit.New(c), nil
}

// optionalModel parses a model name that may be left empty.
func optionalModel(name string) (mo.Option[colorkit.Model], error) {
	if name == "" {
		return mo.None[colorkit.Model](), nil
	}
	m, err := colorkit.ParseModel(name)
	if err != nil {
		return mo.None[colorkit.Model](), err
	}
	return mo.Some(m), nil
}

// === Conversion Handlers ===

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.color()
	if err != nil {
		return nil, err
	}
	return colorkit.Describe(c), nil
}

type colorEqualArgs struct {
	A colorArgs `json:"a"`
	B colorArgs `json:"b"`
}

// ColorEqualResult reports whether two inputs are the same color.
type ColorEqualResult struct {
	Equal bool             `json:"equal"`
	A     colorkit.Summary `json:"a"`
	B     colorkit.Summary `json:"b"`
}

func (s *Server) handleColorEqual(args json.RawMessage) (interface{}, error) {
	var a colorEqualArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ca, err := a.A.color()
	if err != nil {
		return nil, fmt.Errorf("color a: %w", err)
	}
	cb, err := a.B.color()
	if err != nil {
		return nil, fmt.Errorf("color b: %w", err)
	}
	return &ColorEqualResult{
		Equal: ca.Equal(cb),
		A:     colorkit.Describe(ca),
		B:     colorkit.Describe(cb),
	}, nil
}

// === Scheme Handlers ===

type colorSchemeArgs struct {
	colorArgs
	Kind   string `json:"kind"`
	Target string `json:"target"`
}

// SchemeResult contains a generated scheme. Exactly one of Colors or Values
// is set: Colors when no target model was requested, Values otherwise.
type SchemeResult struct {
	Kind   colorkit.SchemeKind  `json:"kind"`
	Model  colorkit.Model       `json:"model,omitempty"`
	Colors []colorkit.Summary   `json:"colors,omitempty"`
	Values []colorkit.Converter `json:"values,omitempty"`
}

func (s *Server) handleColorScheme(args json.RawMessage) (interface{}, error) {
	var a colorSchemeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := a.color()
	if err != nil {
		return nil, err
	}
	kind, err := colorkit.ParseSchemeKind(a.Kind)
	if err != nil {
		return nil, err
	}
	target, err := optionalModel(a.Target)
	if err != nil {
		return nil, err
	}

	scheme, err := colorkit.Generate(kind, base)
	if err != nil {
		return nil, err
	}

	model, ok := target.Get()
	if !ok {
		return &SchemeResult{Kind: kind, Colors: scheme.Summaries()}, nil
	}
	values, err := scheme.Convert(model)
	if err != nil {
		return nil, err
	}
	return &SchemeResult{Kind: kind, Model: model, Values: values}, nil
}

type colorSwatchArgs struct {
	colorArgs
	Kind   string  `json:"kind"`
	Cell   int     `json:"cell"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := a.color()
	if err != nil {
		return nil, err
	}

	scheme := colorkit.NewScheme(base)
	if a.Kind != "" {
		kind, err := colorkit.ParseSchemeKind(a.Kind)
		if err != nil {
			return nil, err
		}
		if scheme, err = colorkit.Generate(kind, base); err != nil {
			return nil, err
		}
	}

	opts := s.swatch
	if a.Cell != 0 {
		opts.Cell = a.Cell
	}
	if a.Height != 0 {
		opts.Height = a.Height
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	opts.Scale = a.Scale

	return imaging.RenderSwatch(scheme, opts)
}

// === Sampling Handlers ===

type colorRandomArgs struct {
	Model string  `json:"model"`
	Seed  *uint64 `json:"seed,omitempty"`
}

// RandomResult contains a sampled color in its own model plus every other model.
type RandomResult struct {
	Model colorkit.Model     `json:"model"`
	Value colorkit.Converter `json:"value"`
	Color colorkit.Summary   `json:"color"`
}

func (s *Server) handleColorRandom(args json.RawMessage) (interface{}, error) {
	var a colorRandomArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	model, err := colorkit.ParseModel(a.Model)
	if err != nil {
		return nil, err
	}

	sampler := &colorkit.Sampler{}
	if seed, ok := mo.PointerToOption(a.Seed).Get(); ok {
		sampler = colorkit.NewSampler(seed)
	}

	v, err := sampler.Sample(model)
	if err != nil {
		return nil, err
	}
	return &RandomResult{Model: model, Value: v, Color: colorkit.Describe(v)}, nil
}
