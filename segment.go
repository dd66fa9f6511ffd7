package sdftext

import "strings"

// moveTo is the absolute move-to command that starts every contour.
const moveTo = "M"

// SegmentPath splits path data into one independently parseable string per
// contour. Every fragment keeps its leading move-to command; blank fragments
// are dropped. Source order is preserved.
//
// Only the absolute "M" command starts a contour: a relative "m" depends on
// the previous point and cannot stand on its own.
func SegmentPath(d string) []string {
	parts := strings.Split(d, moveTo)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, moveTo+p)
	}
	return out
}
