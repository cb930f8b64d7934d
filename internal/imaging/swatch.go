package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/colorkit"
)

// Swatch size limits in pixels.
const (
	DefaultCellSize = 64
	MaxCellSize     = 1024
)

// ErrEmptyScheme is returned when asked to render a scheme with no colors.
var ErrEmptyScheme = errors.New("scheme has no colors")

// SwatchOptions controls the layout of a rendered swatch.
type SwatchOptions struct {
	Cell   int     // Width of each color cell in pixels (0 = DefaultCellSize)
	Height int     // Height of the strip in pixels (0 = same as Cell)
	Scale  float64 // Optional scale factor applied after layout (0 or 1 = none)
}

// SwatchResult contains a rendered swatch strip.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Colors      []string `json:"colors"` // "#RRGGBB" for each cell, left to right
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// RenderSwatch draws the scheme as a horizontal strip of solid cells, one per
// color in scheme order, and returns it as a base64-encoded PNG.
//
// Parameters:
//   - scheme: The colors to draw. Must not be empty.
//   - opts: Cell and strip size. Zero values fall back to DefaultCellSize.
//
// Returns:
//   - *SwatchResult: The encoded image and the hex value of every cell.
//   - error: Non-nil if the scheme is empty or a size is out of range.
//
// # Scaling
//
// When opts.Scale is set the finished strip is resized with nearest-neighbor
// sampling so cell edges stay sharp. The scaled strip is held to the same limits
// as an unscaled one: MaxCellSize per cell across, MaxCellSize high.
func RenderSwatch(scheme colorkit.Scheme, opts SwatchOptions) (*SwatchResult, error) {
	if scheme.Len() == 0 {
		return nil, ErrEmptyScheme
	}

	cell := opts.Cell
	if cell == 0 {
		cell = DefaultCellSize
	}
	height := opts.Height
	if height == 0 {
		height = cell
	}
	if cell < 1 || cell > MaxCellSize || height < 1 || height > MaxCellSize {
		return nil, fmt.Errorf("swatch size %dx%d outside 1-%d", cell, height, MaxCellSize)
	}
	if opts.Scale < 0 {
		return nil, fmt.Errorf("invalid swatch scale: %v", opts.Scale)
	}

	canvas := imaging.New(cell*scheme.Len(), height, color.Transparent)
	hexes := make([]string, 0, scheme.Len())
	for i, c := range scheme.Colors() {
		tile := imaging.New(cell, height, c.ToRGB())
		canvas = imaging.Paste(canvas, tile, image.Pt(i*cell, 0))
		hexes = append(hexes, "#"+c.ToHex().Value())
	}

	var out image.Image = canvas
	if opts.Scale != 0 && opts.Scale != 1.0 {
		w := int(float64(canvas.Bounds().Dx()) * opts.Scale)
		h := int(float64(canvas.Bounds().Dy()) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("swatch scale %v leaves no pixels", opts.Scale)
		}
		if w > MaxCellSize*scheme.Len() || h > MaxCellSize {
			return nil, fmt.Errorf("scaled swatch %dx%d exceeds %dx%d", w, h, MaxCellSize*scheme.Len(), MaxCellSize)
		}
		out = imaging.Resize(canvas, w, h, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Colors:      hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
