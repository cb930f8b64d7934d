// Package imaging renders color schemes as images for the MCP server.
//
// Swatches are horizontal strips of solid cells, one per color, drawn with
// disintegration/imaging and encoded as PNG. The package only produces images;
// it never decodes them.
//
// # Coordinate System
//
// Cells are laid out left to right starting at (0,0), the top-left corner.
// Cell i covers X from i*Cell (inclusive) to (i+1)*Cell (exclusive).
//
// # Thread Safety
//
// RenderSwatch is stateless and safe for concurrent use.
package imaging
