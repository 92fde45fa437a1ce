// Package imaging decodes image files into rasters for the palette pipeline.
//
// It is the raster source of the gradient server: files are decoded once,
// cached by path, optionally narrowed to a region and shrunk, and then
// converted into a palette.Raster. It also renders the sampled grid back
// into a mosaic preview.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// image's top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Formats
//
// PNG, JPEG and GIF decoders come from the standard library; WebP, BMP and
// TIFF from golang.org/x/image. JPEG EXIF orientation is applied on decode.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Prepare, Crop and Mosaic
// are stateless.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions outside image bounds or with x1 >= x2 or y1 >= y2
//   - Unknown quadrant names
//   - File I/O and decode errors
//
// Decode failures belong to this package: the palette pipeline itself never
// fails.
package imaging
