// Package raster provides the pixel-level building blocks of the floor-plan
// analysis pipeline: grayscale intensity buffers, Sobel edge maps, and image
// loading with size normalization.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Buffers are stored row-major in contiguous slices; (x, y) maps to index
// y*Width + x.
//
// # Ownership
//
// Gray and EdgeMap values are created once per pipeline invocation and are
// read-only thereafter. Nothing in this package retains state between calls,
// so independent invocations are safe to run concurrently.
//
// # Bounds Handling
//
// Detection code samples freely around candidate geometry (perpendicular
// profiles, arc sweeps), so out-of-range reads are a normal occurrence, not
// an error. Gray.At and EdgeMap.At return the background value (white / no
// edge) for coordinates outside the buffer; callers that need to distinguish
// can test In first.
package raster
