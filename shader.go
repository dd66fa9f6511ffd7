package sdftext

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/naga"
)

//go:embed shaders/sdf_lines.wgsl
var sdfLinesShaderWGSL string

// lineCountPlaceholder is substituted with the segment count.
const lineCountPlaceholder = "@LINE_COUNT@"

// uniformHeaderFloats is the number of float32 values in the uniform block
// before the line array: resolution, radius, smoothing, time and padding.
const uniformHeaderFloats = 8

// ShaderParams are the user-tunable shader uniforms. They pass through the
// pipeline unchanged.
type ShaderParams struct {
	Radius    float64 `toml:"radius" json:"radius"`
	Smoothing float64 `toml:"smoothing" json:"smoothing"`
}

// DefaultShaderParams returns radius 1.0 and smoothing 1.6.
func DefaultShaderParams() ShaderParams {
	return ShaderParams{Radius: 1.0, Smoothing: 1.6}
}

// ShaderSource returns the WGSL line shader sized for lineCount segments.
// WGSL has no zero-length fixed arrays, so counts below one are sized to one
// and the renderer uploads a single zero segment.
func ShaderSource(lineCount int) string {
	return strings.ReplaceAll(sdfLinesShaderWGSL, lineCountPlaceholder, strconv.Itoa(max(lineCount, 1)))
}

// CompileShader compiles the line shader for lineCount segments to SPIR-V
// words.
func CompileShader(lineCount int) ([]uint32, error) {
	spirvBytes, err := naga.Compile(ShaderSource(lineCount))
	if err != nil {
		return nil, fmt.Errorf("sdftext: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// Frame bundles everything the renderer needs for one draw: the geometry,
// the shader parameters and the shader sized for the geometry.
type Frame struct {
	Lines     RenderGeometry `json:"lines"`
	LineCount int            `json:"lineCount"`
	Params    ShaderParams   `json:"params"`
	Shader    string         `json:"shader,omitempty"`
}

// NewFrame builds a Frame for geom. The shader source is left empty; call
// WithShader to attach it.
func NewFrame(geom RenderGeometry, params ShaderParams) Frame {
	return Frame{
		Lines:     geom,
		LineCount: geom.SegmentCount(),
		Params:    params,
	}
}

// WithShader returns a copy of f carrying the substituted shader source.
func (f Frame) WithShader() Frame {
	f.Shader = ShaderSource(f.LineCount)
	return f
}

// Uniforms packs the uniform block of the line shader for a viewport of
// width×height pixels at the given time in seconds.
func (f Frame) Uniforms(width, height, seconds float32) []float32 {
	lines := f.Lines.Buffer()
	n := max(f.LineCount, 1) * LineStride
	buf := make([]float32, uniformHeaderFloats, uniformHeaderFloats+n)
	buf[0], buf[1] = width, height
	buf[2] = float32(f.Params.Radius)
	buf[3] = float32(f.Params.Smoothing)
	buf[4] = seconds
	buf = append(buf, lines...)
	for len(buf) < uniformHeaderFloats+n {
		buf = append(buf, 0)
	}
	return buf
}
