package sdftext

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

var (
	pathTag  = []byte("path")
	dataAttr = []byte("d")
)

// ExtractPathData returns the path data of the first <path> element in an
// outline document, without its surrounding quotes.
//
// The document is walked with an XML tokenizer; only a "d" attribute that
// belongs to a path element counts. A path with an empty d attribute is
// valid and yields "". A document without path data fails with
// ErrMalformedOutline.
func ExtractPathData(doc string) (string, error) {
	l := xml.NewLexer(parse.NewInputString(doc))
	inPath := false
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return "", fmt.Errorf("%w: %v", ErrMalformedOutline, err)
			}
			return "", fmt.Errorf("%w: no path data attribute", ErrMalformedOutline)
		case xml.StartTagToken:
			inPath = bytes.Equal(l.Text(), pathTag)
		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			inPath = false
		case xml.AttributeToken:
			if inPath && bytes.Equal(l.Text(), dataAttr) {
				return unquote(l.AttrVal()), nil
			}
		}
	}
}

// unquote strips one pair of matching single or double quotes.
func unquote(v []byte) string {
	if n := len(v); n >= 2 && (v[0] == '"' || v[0] == '\'') && v[n-1] == v[0] {
		return string(v[1 : n-1])
	}
	return string(v)
}
