package preview

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/gogpu/sdftext"
)

// draw strokes geom in white on black. The stroke width follows the shader
// radius (two radii, at least one pixel) and the margin is five percent of
// the shorter side.
func draw(geom sdftext.RenderGeometry, width, height int, params sdftext.ShaderParams) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	pad := 0.05 * math.Min(float64(width), float64(height))
	v := newViewport(float64(width), float64(height), pad)

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(math.Max(1, 2*params.Radius))
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, c := range geom {
		for _, s := range c {
			x0, y0 := v.project(s.From)
			x1, y1 := v.project(s.To)
			dc.DrawLine(x0, y0, x1, y1)
		}
		dc.Stroke()
	}
	return dc
}

// Image returns the raster preview of geom.
func Image(geom sdftext.RenderGeometry, width, height int, params sdftext.ShaderParams) image.Image {
	return draw(geom, width, height, params).Image()
}

// WritePNG encodes the raster preview of geom as PNG to w.
func WritePNG(w io.Writer, geom sdftext.RenderGeometry, width, height int, params sdftext.ShaderParams) error {
	return draw(geom, width, height, params).EncodePNG(w)
}

// SavePNG writes the raster preview of geom to a PNG file.
func SavePNG(path string, geom sdftext.RenderGeometry, width, height int, params sdftext.ShaderParams) error {
	return draw(geom, width, height, params).SavePNG(path)
}
