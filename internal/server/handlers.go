package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ironsheep/gradient-mcp/internal/imaging"
	"github.com/ironsheep/gradient-mcp/internal/palette"
	"github.com/ironsheep/gradient-mcp/internal/refresh"
)

const (
	defaultTopColors     = 20
	defaultWaitTimeoutMs = 5000
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "palette_extract").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsList returns every tool definition.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
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
//  2. Applies the server configuration beneath any per-call overrides
//  3. Loads images from cache as needed
//  4. Calls the palette, imaging or refresh function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case "image_load":
		return s.handleImageLoad(args)

	// Extraction
	case "palette_extract":
		return s.handlePaletteExtract(args)
	case "palette_gradient":
		return s.handlePaletteGradient(args)
	case "palette_mosaic":
		return s.handlePaletteMosaic(args)

	// Background source
	case "palette_set_image":
		return s.handlePaletteSetImage(args)
	case "palette_current":
		return s.handlePaletteCurrent(args)

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
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

var errPathRequired = errors.New("path is required")

// === Shared Argument Handling ===

type sourceArgs struct {
	Path         string          `json:"path"`
	Region       *imaging.Region `json:"region"`
	Quadrant     string          `json:"quadrant"`
	MaxDimension int             `json:"max_dimension"`
}

func (a sourceArgs) options() (imaging.SourceOptions, error) {
	if a.Path == "" {
		return imaging.SourceOptions{}, errPathRequired
	}
	return imaging.SourceOptions{
		Region:       a.Region,
		Quadrant:     a.Quadrant,
		MaxDimension: a.MaxDimension,
	}, nil
}

type pipelineArgs struct {
	GridSize    int    `json:"grid_size"`
	PaletteSize int    `json:"palette_size"`
	Policy      string `json:"policy"`
	HueFilter   *bool  `json:"hue_filter"`
	Style       string `json:"style"`
	Angle       *int   `json:"angle"`
	Seed        *int64 `json:"seed"`
}

// config layers the per-call overrides over the server configuration.
func (s *Server) config(a pipelineArgs) (palette.Config, error) {
	cfg := s.cfg
	if a.GridSize != 0 {
		cfg.GridSize = a.GridSize
	}
	if a.PaletteSize != 0 {
		cfg.PaletteSize = a.PaletteSize
	}
	if a.Policy != "" {
		policy, err := palette.ParsePolicy(a.Policy)
		if err != nil {
			return palette.Config{}, err
		}
		cfg.Policy = policy
	}
	if a.HueFilter != nil {
		cfg.HueFilter = *a.HueFilter
	}
	if a.Style != "" {
		style, err := palette.ParseStyle(a.Style)
		if err != nil {
			return palette.Config{}, err
		}
		cfg.Style = style
	}
	if a.Angle != nil {
		cfg.Angle = *a.Angle
	}
	if err := cfg.Validate(); err != nil {
		return palette.Config{}, err
	}
	return cfg, nil
}

// seeded returns a source for splotch placement, or nil to let the
// pipeline seed from the clock.
func seeded(seed *int64) *rand.Rand {
	if seed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*seed))
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errPathRequired
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Extraction Handlers ===

type paletteExtractArgs struct {
	sourceArgs
	pipelineArgs
	TopColors int `json:"top_colors"`
}

type paletteExtractResult struct {
	palette.Result
	Image       string `json:"image"`
	TotalColors int    `json:"total_colors"`
}

func (s *Server) handlePaletteExtract(args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.TopColors <= 0 {
		a.TopColors = defaultTopColors
	}

	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	cfg, err := s.config(a.pipelineArgs)
	if err != nil {
		return nil, err
	}

	ras, err := imaging.LoadRaster(context.Background(), s.cache, a.Path, opts)
	if err != nil {
		return nil, err
	}
	res := palette.Extract(ras, cfg, seeded(a.Seed))
	s.debugf("extracted %d cells, %d distinct colors from %s (fallback=%v, padded=%d)",
		len(res.Cells), len(res.Ranked), a.Path, res.Fallback, res.Padded)

	out := paletteExtractResult{
		Result:      *res,
		Image:       a.Path,
		TotalColors: len(res.Ranked),
	}
	if len(out.Ranked) > a.TopColors {
		out.Ranked = out.Ranked[:a.TopColors]
	}
	return out, nil
}

type paletteGradientArgs struct {
	Colors []string `json:"colors"`
	Style  string   `json:"style"`
	Angle  *int     `json:"angle"`
	Seed   *int64   `json:"seed"`
}

type paletteGradientResult struct {
	Gradient palette.Gradient `json:"gradient"`
	CSS      string           `json:"css"`
	Rejected []string         `json:"rejected,omitempty"`
}

func (s *Server) handlePaletteGradient(args json.RawMessage) (interface{}, error) {
	var a paletteGradientArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	style := s.cfg.Style
	if a.Style != "" {
		parsed, err := palette.ParseStyle(a.Style)
		if err != nil {
			return nil, err
		}
		style = parsed
	}
	angle := s.cfg.Angle
	if a.Angle != nil {
		angle = *a.Angle
	}

	colors, rejected := palette.ParseColors(a.Colors)
	for _, entry := range rejected {
		s.debugf("skipping malformed color %q", entry)
	}

	grad := palette.Compose(colors, style, angle, seeded(a.Seed))
	return paletteGradientResult{
		Gradient: grad,
		CSS:      grad.CSS(),
		Rejected: rejected,
	}, nil
}

type paletteMosaicArgs struct {
	sourceArgs
	GridSize int `json:"grid_size"`
}

func (s *Server) handlePaletteMosaic(args json.RawMessage) (interface{}, error) {
	var a paletteMosaicArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSize == 0 {
		a.GridSize = s.cfg.GridSize
	}
	if a.GridSize < 1 {
		return nil, fmt.Errorf("grid size must be positive, got %d", a.GridSize)
	}

	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	ras, err := imaging.LoadRaster(context.Background(), s.cache, a.Path, opts)
	if err != nil {
		return nil, err
	}

	cols, rows := palette.GridDims(ras, a.GridSize)
	return imaging.Mosaic(palette.SampleGrid(ras, a.GridSize), cols, rows, a.GridSize)
}

// === Background Source Handlers ===

type paletteSetImageResult struct {
	Generation uint64 `json:"generation"`
	Image      string `json:"image"`
}

func (s *Server) handlePaletteSetImage(args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}

	path := a.Path
	gen := s.refresher.Submit(context.Background(), path, func(ctx context.Context) (*palette.Raster, error) {
		return imaging.LoadRaster(ctx, s.cache, path, opts)
	})
	s.debugf("submitted %s as generation %d", path, gen)

	return paletteSetImageResult{Generation: gen, Image: path}, nil
}

type paletteCurrentArgs struct {
	Wait      bool `json:"wait"`
	TimeoutMs int  `json:"timeout_ms"`
}

type paletteCurrentResult struct {
	LatestGeneration uint64            `json:"latest_generation"`
	Pending          bool              `json:"pending"`
	TimedOut         bool              `json:"timed_out,omitempty"`
	Dropped          uint64            `json:"dropped"`
	Default          bool              `json:"default"`
	Palette          []palette.Color   `json:"palette"`
	Gradient         palette.Gradient  `json:"gradient"`
	CSS              string            `json:"css"`
	Snapshot         *refresh.Snapshot `json:"snapshot,omitempty"`
}

func (s *Server) handlePaletteCurrent(args json.RawMessage) (interface{}, error) {
	var a paletteCurrentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.TimeoutMs <= 0 {
		a.TimeoutMs = defaultWaitTimeoutMs
	}

	var timedOut bool
	if a.Wait {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.TimeoutMs)*time.Millisecond)
		err := s.refresher.Wait(ctx)
		cancel()
		timedOut = err != nil
	}

	latest := s.refresher.Latest()
	snap := s.refresher.Current()
	out := paletteCurrentResult{
		LatestGeneration: latest,
		Pending:          snap == nil && latest > 0 || snap != nil && snap.Generation < latest,
		TimedOut:         timedOut,
		Dropped:          s.refresher.Dropped(),
		Snapshot:         snap,
	}

	if snap == nil || snap.Result == nil {
		grad := palette.DefaultGradient()
		out.Default = true
		out.Palette = palette.FallbackPalette()
		out.Gradient = grad
		out.CSS = grad.CSS()
		return out, nil
	}

	out.Palette = snap.Result.Palette
	out.Gradient = snap.Result.Gradient
	out.CSS = snap.Result.CSS
	return out, nil
}
