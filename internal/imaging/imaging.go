// Package imaging implements the bounded-memory decode path: probe the
// image dimensions first, pick the smallest power-of-two downsampling
// factor that fits the target, then decode and scale. Decode failures are
// reported as a nil image, never as an error.
package imaging

import (
	"bytes"
	"image"
	"io"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// maxSourcePixels caps the full-resolution raster a decode is allowed to
// allocate. The dimension probe rejects larger sources before any pixel
// data is touched, so peak memory never scales with arbitrary inputs.
const maxSourcePixels = 64 << 20

// SampleSize returns the smallest power-of-two divisor f such that
// max(w, h) / f <= maxDim.
func SampleSize(w, h, maxDim int) int {
	if maxDim <= 0 {
		return 1
	}
	longest := w
	if h > longest {
		longest = h
	}
	f := 1
	for longest/f > maxDim {
		f *= 2
	}
	return f
}

// DecodeScaled decodes an image whose longest side does not exceed maxDim.
// It reads the dimensions first (metadata-only pass), computes the
// downsampling factor, then decodes and scales to the reduced size.
// Corrupt data, unsupported formats, oversized sources and read errors
// all yield nil.
func DecodeScaled(r io.Reader, maxDim int) image.Image {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}
	if cfg.Width*cfg.Height > maxSourcePixels {
		return nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	factor := SampleSize(cfg.Width, cfg.Height, maxDim)
	if factor == 1 {
		return src
	}

	w := cfg.Width / factor
	h := cfg.Height / factor
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// LoadScaled is DecodeScaled for a file path. Unreadable files yield nil.
func LoadScaled(path string, maxDim int) image.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return DecodeScaled(f, maxDim)
}

// Letterbox scales src to fit a size x size square, centered on black.
// A nil or degenerate source yields nil.
func Letterbox(src image.Image, size int) *image.RGBA {
	if src == nil || size <= 0 {
		return nil
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)

	ratio := float64(b.Dx()) / float64(b.Dy())
	var w, h int
	if ratio > 1 {
		w = size
		h = int(float64(size) / ratio)
	} else {
		h = size
		w = int(float64(size) * ratio)
	}
	x := (size - w) / 2
	y := (size - h) / 2
	draw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+w, y+h), src, b, draw.Over, nil)
	return dst
}
