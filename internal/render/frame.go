// Package render owns the CPU-side pixel buffers the raycaster draws into and
// the top-down minimap of the disk.
package render

import (
	"image"
	"image/color"

	"hypermaze/pkg/hyper"
)

// Frame is an RGBA pixel buffer that implements raycast.PixelSink. The
// layout matches image.RGBA with a stride of 4*W so the buffer can be uploaded
// to a GPU texture or encoded without copying.
type Frame struct {
	w, h int
	buf  []byte
}

// NewFrame allocates an opaque black frame of size w*h.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Resize changes the frame dimensions, reusing the buffer when it is large
// enough. Contents are cleared to opaque black.
func (f *Frame) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := 4 * w * h
	if cap(f.buf) >= n {
		f.buf = f.buf[:n]
	} else {
		f.buf = make([]byte, n)
	}
	f.w, f.h = w, h
	f.Fill(color.Black)
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) { return f.w, f.h }

// DrawPixel writes one opaque pixel. Coordinates outside the frame are ignored.
func (f *Frame) DrawPixel(x, y int, c hyper.RGB) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	base := 4 * (y*f.w + x)
	f.buf[base+0] = c.R
	f.buf[base+1] = c.G
	f.buf[base+2] = c.B
	f.buf[base+3] = 0xff
}

// At returns the pixel at (x, y), or black outside the frame.
func (f *Frame) At(x, y int) hyper.RGB {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return hyper.RGB{}
	}
	base := 4 * (y*f.w + x)
	return hyper.RGB{R: f.buf[base], G: f.buf[base+1], B: f.buf[base+2]}
}

// Fill paints every pixel with c.
func (f *Frame) Fill(c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(f.buf); base += 4 {
		f.buf[base+0] = uint8(r >> 8)
		f.buf[base+1] = uint8(g >> 8)
		f.buf[base+2] = uint8(b >> 8)
		f.buf[base+3] = uint8(a >> 8)
	}
}

// Pix exposes the backing buffer in RGBA order.
func (f *Frame) Pix() []byte { return f.buf }

// Image wraps the buffer as an image.RGBA sharing the same memory.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{Pix: f.buf, Stride: 4 * f.w, Rect: image.Rect(0, 0, f.w, f.h)}
}
