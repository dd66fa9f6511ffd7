package path

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// Parse errors.
var (
	// ErrSyntax is returned for path data that does not follow the SVG grammar.
	ErrSyntax = errors.New("path: syntax error")

	// ErrUnsupported is returned for commands outside the supported set (arcs).
	ErrUnsupported = errors.New("path: unsupported command")
)

// argCount is the number of numbers each command consumes per repetition.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'Q': 4, 'T': 2, 'C': 6, 'S': 4,
	'Z': 0,
}

// Parse converts SVG path data into absolute path elements.
//
// Supported commands are M L H V Q T C S Z in absolute and relative form.
// Implicit command repetition follows the SVG grammar: extra coordinate
// pairs after a move-to are line-tos. Smooth curves reflect the previous
// control point. Elliptical arcs fail with ErrUnsupported.
func Parse(d string) ([]PathElement, error) {
	p := parser{b: []byte(d)}
	return p.run()
}

type parser struct {
	b   []byte
	pos int

	elements []PathElement
	current  Point
	start    Point
	lastCtrl Point // last control point, for S and T reflection
	lastCmd  byte  // upper-case letter of the previous command
}

func (p *parser) run() ([]PathElement, error) {
	var cmd byte
	for {
		p.skipSeparators()
		if p.pos >= len(p.b) {
			return p.elements, nil
		}

		c := p.b[p.pos]
		switch {
		case isCommand(c):
			cmd = c
			p.pos++
		case c == 'A' || c == 'a':
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnsupported, c, p.pos)
		case cmd == 0:
			return nil, fmt.Errorf("%w: expected command at offset %d", ErrSyntax, p.pos)
		case upper(cmd) == 'Z':
			return nil, fmt.Errorf("%w: unexpected number after close at offset %d", ErrSyntax, p.pos)
		}

		if err := p.command(cmd); err != nil {
			return nil, err
		}
		// A move-to followed by bare coordinates continues as line-to.
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
	}
}

func (p *parser) command(cmd byte) error {
	op := upper(cmd)
	rel := cmd != op

	var args [6]float64
	n := argCount[op]
	for i := 0; i < n; i++ {
		v, err := p.number()
		if err != nil {
			return err
		}
		args[i] = v
	}

	var base Point
	if rel {
		base = p.current
	}
	pt := func(i int) Point {
		return Point{X: base.X + args[i], Y: base.Y + args[i+1]}
	}

	switch op {
	case 'M':
		p.current = pt(0)
		p.start = p.current
		p.elements = append(p.elements, MoveTo{Point: p.current})
	case 'L':
		p.lineTo(pt(0))
	case 'H':
		p.lineTo(Point{X: base.X + args[0], Y: p.current.Y})
	case 'V':
		p.lineTo(Point{X: p.current.X, Y: base.Y + args[0]})
	case 'Q':
		p.quadTo(pt(0), pt(2))
	case 'T':
		p.quadTo(p.reflect('Q', 'T'), pt(0))
	case 'C':
		p.cubicTo(pt(0), pt(2), pt(4))
	case 'S':
		p.cubicTo(p.reflect('C', 'S'), pt(0), pt(2))
	case 'Z':
		p.elements = append(p.elements, Close{})
		p.current = p.start
	}
	p.lastCmd = op
	return nil
}

func (p *parser) lineTo(to Point) {
	p.elements = append(p.elements, LineTo{Point: to})
	p.current = to
}

func (p *parser) quadTo(ctrl, to Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: to})
	p.lastCtrl = ctrl
	p.current = to
}

func (p *parser) cubicTo(c1, c2, to Point) {
	p.elements = append(p.elements, CubicTo{Control1: c1, Control2: c2, Point: to})
	p.lastCtrl = c2
	p.current = to
}

// reflect returns the implicit first control point of a smooth curve: the
// previous control point mirrored about the current point, or the current
// point itself when the previous command was not a curve of the same family.
func (p *parser) reflect(curve, smooth byte) Point {
	if p.lastCmd != curve && p.lastCmd != smooth {
		return p.current
	}
	return p.current.Mul(2).Sub(p.lastCtrl)
}

func (p *parser) number() (float64, error) {
	p.skipSeparators()
	v, n := strconv.ParseFloat(p.b[p.pos:])
	if n == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, p.pos)
	}
	p.pos += n
	return v, nil
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.b) {
		switch p.b[p.pos] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			p.pos++
		default:
			return
		}
	}
}

func isCommand(c byte) bool {
	_, ok := argCount[upper(c)]
	return ok
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
