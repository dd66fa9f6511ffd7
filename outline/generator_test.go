package outline

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdftext/internal/path"
)

var pathDataRe = regexp.MustCompile(` d="([^"]*)"`)

func pathData(t *testing.T, doc string) string {
	t.Helper()
	m := pathDataRe.FindStringSubmatch(doc)
	if m == nil {
		t.Fatalf("no d attribute in %q", doc)
	}
	return m[1]
}

func TestFetchOutlineContours(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"I", 1},
		{"o", 2},
		{"Hello", 7},
		{"", 0},
		{"   ", 0},
	}
	for _, backend := range []string{"sfnt", "gotext", "freetype"} {
		g := New(WithBackend(backend))
		for _, tt := range tests {
			t.Run(backend+"/"+tt.text, func(t *testing.T) {
				doc, err := g.FetchOutline(context.Background(), tt.text, "goregular")
				if err != nil {
					t.Fatalf("FetchOutline: %v", err)
				}
				d := pathData(t, doc)
				if got := strings.Count(d, "M"); got != tt.want {
					t.Errorf("contours = %d, want %d (d=%q)", got, tt.want, d)
				}
				if got := strings.Count(d, "Z"); got != tt.want {
					t.Errorf("closes = %d, want %d", got, tt.want)
				}
			})
		}
	}
}

func TestFetchOutlineDocument(t *testing.T) {
	doc, err := New().FetchOutline(context.Background(), "I", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`fill="red"`,
		`stroke="black"`,
		`"/></svg>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q: %s", want, doc)
		}
	}

	doc, err = New(WithPaint("", "")).FetchOutline(context.Background(), "I", "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(doc, "fill=") || strings.Contains(doc, "stroke=") {
		t.Errorf("empty paint should omit attributes: %s", doc)
	}
}

func TestFetchOutlineTopAnchored(t *testing.T) {
	g := New()
	doc, err := g.FetchOutline(context.Background(), "I", "goregular")
	if err != nil {
		t.Fatal(err)
	}
	elements, err := path.Parse(pathData(t, doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, e := range path.CollectEdges(elements, path.MeasureTolerance) {
		for _, p := range []path.Point{e.P0, e.P1} {
			// Glyph tops sit below the ascender line, bottoms at or above
			// the baseline for a capital letter.
			if p.Y < 0 || p.Y > g.FontSize() {
				t.Fatalf("point %v outside [0, %v]", p, g.FontSize())
			}
			if p.X < 0 {
				t.Fatalf("point %v left of origin", p)
			}
		}
	}
}

func TestFetchOutlineNormalizesText(t *testing.T) {
	g := New()
	ctx := context.Background()
	composed, err := g.FetchOutline(ctx, "\u00e9", "")
	if err != nil {
		t.Fatal(err)
	}
	decomposed, err := g.FetchOutline(ctx, "e\u0301", "")
	if err != nil {
		t.Fatal(err)
	}
	if composed != decomposed {
		t.Error("NFC-equivalent text should produce identical outlines")
	}

	plain, _ := g.FetchOutline(ctx, "I", "")
	withControl, _ := g.FetchOutline(ctx, "I\n\t", "")
	if plain != withControl {
		t.Error("control characters should be skipped")
	}
}

func TestFetchOutlineErrors(t *testing.T) {
	ctx := context.Background()

	_, err := New().FetchOutline(ctx, "I", "no-such-font")
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("unknown font: err = %v, want ErrFontNotFound", err)
	}
	var fe *FontError
	if !errors.As(err, &fe) || fe.FontID != "no-such-font" {
		t.Errorf("unknown font: err = %v, want *FontError", err)
	}

	_, err = New().FetchOutline(ctx, "I", "/nonexistent/font.ttf")
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("missing file: err = %v, want ErrFontNotFound", err)
	}

	_, err = New(WithBackend("nope")).FetchOutline(ctx, "I", "")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("unknown backend: err = %v, want ErrUnknownBackend", err)
	}

	if err := RegisterFont("broken-test-font", []byte("not a font")); err != nil {
		t.Fatal(err)
	}
	_, err = New().FetchOutline(ctx, "I", "broken-test-font")
	if !errors.Is(err, ErrOutlineGeneration) {
		t.Errorf("corrupt font: err = %v, want ErrOutlineGeneration", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = New().FetchOutline(cancelled, "I", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: err = %v, want context.Canceled", err)
	}
}

func TestRegisterFont(t *testing.T) {
	if err := RegisterFont("empty", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("RegisterFont(nil) = %v, want ErrEmptyFontData", err)
	}
	if err := RegisterFont("custom-regular", goregular.TTF); err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(Fonts(), "custom-regular") {
		t.Error("Fonts() missing registered name")
	}
	want, _ := New().FetchOutline(context.Background(), "Go", "goregular")
	got, err := New().FetchOutline(context.Background(), "Go", "custom-regular")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("registered copy should render like the original")
	}
}

func TestRegisterFontReplacesCachedParse(t *testing.T) {
	ctx := context.Background()
	if err := RegisterFont("custom-swap", goregular.TTF); err != nil {
		t.Fatal(err)
	}
	g := New()
	before, err := g.FetchOutline(ctx, "I", "custom-swap")
	if err != nil {
		t.Fatal(err)
	}

	if err := RegisterFont("custom-swap", gomono.TTF); err != nil {
		t.Fatal(err)
	}
	after, err := g.FetchOutline(ctx, "I", "custom-swap")
	if err != nil {
		t.Fatal(err)
	}
	want, err := New().FetchOutline(ctx, "I", "gomono")
	if err != nil {
		t.Fatal(err)
	}
	if after != want {
		t.Error("generator kept the font parsed before re-registration")
	}
	if after == before {
		t.Error("regular and mono outlines should differ")
	}
	if s := g.CacheStats(); s.Misses != 2 || s.Len != 1 {
		t.Errorf("Misses, Len = %d, %d; want 2, 1", s.Misses, s.Len)
	}
}

func TestBuiltinFonts(t *testing.T) {
	for _, id := range Fonts() {
		if strings.Contains(id, "test") || strings.HasPrefix(id, "custom-") {
			continue
		}
		t.Run(id, func(t *testing.T) {
			doc, err := New().FetchOutline(context.Background(), "o", id)
			if err != nil {
				t.Fatalf("FetchOutline: %v", err)
			}
			if strings.Count(pathData(t, doc), "M") != 2 {
				t.Errorf("%s: 'o' should have two contours", id)
			}
		})
	}
}

func TestBackends(t *testing.T) {
	got := Backends()
	for _, want := range []string{"freetype", "gotext", "sfnt"} {
		if !slices.Contains(got, want) {
			t.Errorf("Backends() = %v, missing %q", got, want)
		}
	}
}

func TestFontCache(t *testing.T) {
	g := New(WithCacheSize(1))
	ctx := context.Background()
	for range 3 {
		if _, err := g.FetchOutline(ctx, "a", "goregular"); err != nil {
			t.Fatal(err)
		}
	}
	s := g.CacheStats()
	if s.Misses != 1 || s.Hits != 2 {
		t.Errorf("Misses, Hits = %d, %d; want 1, 2", s.Misses, s.Hits)
	}
	if _, err := g.FetchOutline(ctx, "a", "gomono"); err != nil {
		t.Fatal(err)
	}
	if s := g.CacheStats(); s.Len != 1 || s.Evictions != 1 {
		t.Errorf("Len, Evictions = %d, %d; want 1, 1", s.Len, s.Evictions)
	}
}

func TestFetchOutlineConcurrent(t *testing.T) {
	g := New()
	want, err := g.FetchOutline(context.Background(), "Hello", "")
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := g.FetchOutline(context.Background(), "Hello", "")
			if err != nil || got != want {
				errs <- "concurrent result differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
