// Package raster renders composed avatar SVGs to raster images for
// consumers that cannot display SVG directly.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Image rasterizes the SVG document to a square RGBA image of the given
// edge length.
func Image(svg string, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return rgba, nil
}

// PNG rasterizes the SVG document and encodes it as PNG bytes.
func PNG(svg string, size int) ([]byte, error) {
	img, err := Image(svg, size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
