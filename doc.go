// Package xicon paints the application icon procedurally and encodes it as
// PNG without an image library in the encode path.
//
// # Overview
//
// An icon is a square raster painted pixel by pixel from closed-form
// geometric predicates. Two designs exist, selected once per icon with a
// [Policy]:
//   - [PolicyGlyph]: a white X glyph and a folded document page with three
//     gray text lines, on a black disk
//   - [PolicyGradient]: a disk shaded radially between two fixed colors
//
// Pixels outside the disk of radius size/2-1 are fully transparent.
//
// # Quick Start
//
//	import "github.com/gogpu/xicon"
//
//	// PNG bytes of a 48x48 icon
//	data, err := xicon.Encode(48)
//
//	// icons/icon16.png, icons/icon48.png, icons/icon128.png
//	results, err := xicon.NewGenerator().Generate("icons", xicon.DefaultSizes)
//
// # Encoding
//
// The PNG stream holds exactly the signature, one IHDR (8-bit RGBA),
// one IDAT and IEND. Scanlines use filter type 0 and are compressed with
// zlib; see [Compressor] to substitute another deflate implementation.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package xicon

// Version is the current version of the library.
const Version = "0.1.0"
