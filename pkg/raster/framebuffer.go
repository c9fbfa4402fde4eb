// Package raster implements a CPU-only triangle rasterization pipeline:
// a homogeneous-clip-space clipper, an edge-function triangle rasterizer,
// and the generic varying-interpolation contract that connects a
// caller-supplied shader to both.
package raster

// Framebuffer is a width*height grid of T with its origin at the
// bottom-left. It is deliberately generic: the pipeline instantiates it once
// as a uint32 color buffer (packed 0x00RRGGBB) and once as a float64 depth
// buffer, and both share the same storage and indexing rules.
type Framebuffer[T any] struct {
	width, height int
	pixels        []T
}

// NewFramebuffer creates a framebuffer of the given dimensions, zero-valued
// (the Go zero value of T) in every cell.
func NewFramebuffer[T any](width, height int) *Framebuffer[T] {
	return &Framebuffer[T]{
		width:  width,
		height: height,
		pixels: make([]T, width*height),
	}
}

// Width returns the framebuffer width.
func (f *Framebuffer[T]) Width() int { return f.width }

// Height returns the framebuffer height.
func (f *Framebuffer[T]) Height() int { return f.height }

// Fill sets every cell to value.
func (f *Framebuffer[T]) Fill(value T) {
	for i := range f.pixels {
		f.pixels[i] = value
	}
}

// index maps a bottom-left-origin (x,y) to the physical row-major index,
// flipping y so row 0 of the backing slice is the top of the image.
func (f *Framebuffer[T]) index(x, y int) int {
	return (f.height-1-y)*f.width + x
}

// Plot writes value at (x,y). No bounds checking is performed: the
// rasterizer is the sole guarantor that (x,y) lies within the buffer.
func (f *Framebuffer[T]) Plot(x, y int, value T) {
	f.pixels[f.index(x, y)] = value
}

// At reads the value at (x,y). No bounds checking is performed.
func (f *Framebuffer[T]) At(x, y int) T {
	return f.pixels[f.index(x, y)]
}

// Resize replaces the backing storage with a width*height buffer filled
// with fill. Existing contents are discarded; callers always Fill before
// reuse, per the framebuffer's contract.
func (f *Framebuffer[T]) Resize(width, height int, fill T) {
	f.width = width
	f.height = height
	f.pixels = make([]T, width*height)
	f.Fill(fill)
}

// Raw returns the linear backing slice, row-major with the top-most screen
// row first (a consequence of the y-flip applied by Plot/At). An external
// presentation collaborator expecting top-left-origin bitmaps can hand this
// slice to a platform surface verbatim; one wanting bottom-left-origin data
// must reverse the rows itself.
func (f *Framebuffer[T]) Raw() []T {
	return f.pixels
}
