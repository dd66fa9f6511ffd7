// Package preview draws normalized line geometry for humans: as braille
// text for the terminal, or as a PNG image.
//
// Both renderers undo the half turn applied by sdftext.Normalize so the
// text reads upright: screen column follows RangeMax-x and screen row
// follows y-RangeMin.
package preview
