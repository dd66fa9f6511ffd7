package sdftext

import (
	"context"
	"errors"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/sdftext/outline"
)

func equalGeometry(a, b RenderGeometry) bool {
	return slices.EqualFunc(a, b, func(x, y []LineSegment) bool {
		return slices.Equal(x, y)
	})
}

func assertInRange(t *testing.T, geom RenderGeometry) {
	t.Helper()
	for i, c := range geom {
		for j, s := range c {
			for _, p := range []Point{s.From, s.To} {
				if p.X < RangeMin || p.X > RangeMax || p.Y < RangeMin || p.Y > RangeMax {
					t.Fatalf("segment [%d][%d] point %v outside range", i, j, p)
				}
			}
		}
	}
}

func assertStageError(t *testing.T, err error, stage string, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("error = %T, want *StageError", err)
	}
	if se.Stage != stage {
		t.Errorf("stage = %q, want %q", se.Stage, stage)
	}
}

// staticSource serves a fixed outline document.
type staticSource struct {
	doc string
	err error
}

func (s staticSource) FetchOutline(context.Context, string, string) (string, error) {
	return s.doc, s.err
}

func TestRunSingleContourGlyph(t *testing.T) {
	geom, err := New().Run(context.Background(), Request{
		Text:   "I",
		FontID: "default",
		Params: Params{DiscretizeCount: 20, SimplifyTolerance: 0.1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(geom) != 1 {
		t.Fatalf("got %d contours, want 1", len(geom))
	}
	if n := geom.SegmentCount(); n < 1 || n > 19 {
		t.Errorf("SegmentCount() = %d, want 1..19", n)
	}
	assertInRange(t, geom)

	b, _ := geom.Bounds()
	if b.MinX != RangeMin && b.MaxX != RangeMax && b.MinY != RangeMin && b.MaxY != RangeMax {
		t.Errorf("bounds %+v do not touch the range", b)
	}
}

func TestRunEmptyText(t *testing.T) {
	geom, err := New().Run(context.Background(), Request{Params: DefaultParams()})
	if err != nil {
		t.Fatal(err)
	}
	if geom == nil || len(geom) != 0 {
		t.Errorf("Run(\"\") = %v, want empty non-nil geometry", geom)
	}
}

func TestRunBudgetBelowContourCount(t *testing.T) {
	// "Hello" has seven contours in Go Regular.
	_, err := New().Run(context.Background(), Request{
		Text:   "Hello",
		Params: Params{DiscretizeCount: 3, SimplifyTolerance: 2.4},
	})
	assertStageError(t, err, StageDiscretize, ErrInvalidSampleBudget)
}

func TestRunZeroClusterPercentage(t *testing.T) {
	_, err := New().Run(context.Background(), Request{
		Text:   "Hello",
		Params: Params{DiscretizeCount: 100, SimplifyTolerance: 2.4, Cluster: true},
	})
	assertStageError(t, err, StageCluster, ErrInvalidClusterCount)
}

func TestTwoContourGlyphSharesBudget(t *testing.T) {
	doc, err := outline.New().FetchOutline(context.Background(), "o", "default")
	if err != nil {
		t.Fatal(err)
	}
	d, err := ExtractPathData(doc)
	if err != nil {
		t.Fatal(err)
	}
	contours := SegmentPath(d)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	pc, err := Discretize(contours, 40)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range pc {
		if len(c) != 20 {
			t.Errorf("contour %d has %d points, want 20", i, len(c))
		}
	}

	geom, err := Process(doc, Params{DiscretizeCount: 40})
	if err != nil {
		t.Fatal(err)
	}
	if len(geom) != 2 {
		t.Fatalf("got %d groups, want 2", len(geom))
	}
	for i, c := range geom {
		if len(c) != 19 {
			t.Errorf("group %d has %d segments, want 19", i, len(c))
		}
	}
}

func TestRunParamValidation(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		stage  string
		want   error
	}{
		{"zero count", Params{DiscretizeCount: 0}, StageDiscretize, ErrInvalidSampleBudget},
		{"negative count", Params{DiscretizeCount: -5}, StageDiscretize, ErrInvalidSampleBudget},
		{"negative tolerance", Params{DiscretizeCount: 10, SimplifyTolerance: -1}, StageSimplify, ErrInvalidTolerance},
		{"NaN tolerance", Params{DiscretizeCount: 10, SimplifyTolerance: math.NaN()}, StageSimplify, ErrInvalidTolerance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validation runs before the source is consulted.
			p := New(WithSource(staticSource{err: errors.New("unreachable")}))
			_, err := p.Run(context.Background(), Request{Text: "x", Params: tt.params})
			assertStageError(t, err, tt.stage, tt.want)
		})
	}
}

func TestProcessNaNClusterPercentage(t *testing.T) {
	doc := `<svg><path d="` + squarePath + `"/></svg>`
	_, err := Process(doc, Params{DiscretizeCount: 20, Cluster: true, ClusterPercentage: math.NaN()})
	assertStageError(t, err, StageCluster, ErrInvalidClusterCount)
}

func TestRunStageErrors(t *testing.T) {
	errDown := errors.New("outline service down")
	tests := []struct {
		name   string
		source outline.Source
		font   string
		stage  string
		want   error
	}{
		{"unknown font", nil, "no-such-font", StageFetch, outline.ErrFontNotFound},
		{"source failure", staticSource{err: errDown}, "", StageFetch, errDown},
		{"no path", staticSource{doc: "<svg></svg>"}, "", StageExtract, ErrMalformedOutline},
		{"bad path data", staticSource{doc: `<svg><path d="M0 0L"/></svg>`}, "", StageDiscretize, ErrMalformedOutline},
		{"flat outline", staticSource{doc: `<svg><path d="M0 0L10 0"/></svg>`}, "", StageNormalize, ErrDegenerateBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.source != nil {
				opts = append(opts, WithSource(tt.source))
			}
			_, err := New(opts...).Run(context.Background(), Request{
				Text:   "x",
				FontID: tt.font,
				Params: DefaultParams(),
			})
			assertStageError(t, err, tt.stage, tt.want)
		})
	}
}

func TestRunWithOutlineOptions(t *testing.T) {
	req := Request{Text: "Hello", Params: DefaultParams()}
	for _, backend := range []string{"sfnt", "gotext", "freetype"} {
		t.Run(backend, func(t *testing.T) {
			p := New(WithOutlineOptions(outline.WithBackend(backend)))
			geom, err := p.Run(context.Background(), req)
			if err != nil {
				t.Fatal(err)
			}
			if len(geom) != 7 {
				t.Errorf("got %d contours, want 7", len(geom))
			}
			assertInRange(t, geom)
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	p := New()
	for _, params := range []Params{
		DefaultParams(),
		{DiscretizeCount: 300, SimplifyTolerance: 0.5, Cluster: true, ClusterPercentage: 0.3},
	} {
		req := Request{Text: "Hello", Params: params}
		first, err := p.Run(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		assertInRange(t, first)
		for range 3 {
			again, err := p.Run(context.Background(), req)
			if err != nil {
				t.Fatal(err)
			}
			if !equalGeometry(first, again) {
				t.Fatalf("params %+v: repeated runs differ", params)
			}
		}
	}
}

func TestRunConcurrent(t *testing.T) {
	p := New()
	req := Request{Text: "Go SDF", Params: DefaultParams()}
	want, err := p.Run(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]RenderGeometry, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = p.Run(context.Background(), req)
		}()
	}
	wg.Wait()
	for i := range results {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
		if !equalGeometry(results[i], want) {
			t.Errorf("goroutine %d: geometry differs", i)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Run(ctx, Request{Text: "Hello", Params: DefaultParams()})
	assertStageError(t, err, StageFetch, context.Canceled)
}

func TestStageErrorMessage(t *testing.T) {
	err := &StageError{Stage: StageCluster, Err: ErrInvalidClusterCount}
	want := "sdftext: cluster: sdftext: invalid cluster count"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
