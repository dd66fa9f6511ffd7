package sdftext

import (
	"errors"
	"math"
	"testing"
)

func TestClusterTwoGroups(t *testing.T) {
	pc := PathCollection{
		{{0, 0}, {0, 1}},
		{{10, 0}, {10, 1}},
	}
	got, err := Cluster(pc, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want := PathCollection{
		{{0, 0.5}, {0, 0.5}},
		{{10, 0.5}, {10, 0.5}},
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("contour %d has %d points, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("point [%d][%d] = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestClusterFullPercentageIsIdentity(t *testing.T) {
	pc := PathCollection{{{0, 0}, {3, 1}, {7, 2}}, {{1, 9}, {4, 4}}}
	for _, pct := range []float64{1, 2.5} {
		got, err := Cluster(pc, pct)
		if err != nil {
			t.Fatal(err)
		}
		for i := range pc {
			for j := range pc[i] {
				if got[i][j] != pc[i][j] {
					t.Errorf("percentage %v: point [%d][%d] = %v, want %v", pct, i, j, got[i][j], pc[i][j])
				}
			}
		}
	}
}

func TestClusterSharedCentroids(t *testing.T) {
	pc := PathCollection{circleContour(40, 10), circleContour(20, 3)}
	got, err := Cluster(pc, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(pc) {
		t.Fatalf("contour count %d, want %d", len(got), len(pc))
	}
	distinct := map[Point]bool{}
	for i, c := range got {
		if len(c) != len(pc[i]) {
			t.Errorf("contour %d has %d points, want %d", i, len(c), len(pc[i]))
		}
		for _, p := range c {
			distinct[p] = true
		}
	}
	// k = floor(60 * 0.1) = 6 centroids at most.
	if len(distinct) > 6 {
		t.Errorf("%d distinct points, want at most 6", len(distinct))
	}
}

func TestClusterDeterministic(t *testing.T) {
	pc := PathCollection{circleContour(50, 10), circleContour(30, 4)}
	a, err := Cluster(pc, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		b, err := Cluster(pc, 0.2)
		if err != nil {
			t.Fatal(err)
		}
		for i := range a {
			for j := range a[i] {
				if a[i][j] != b[i][j] {
					t.Fatalf("run differs at [%d][%d]: %v vs %v", i, j, a[i][j], b[i][j])
				}
			}
		}
	}
}

func TestClusterErrors(t *testing.T) {
	pc := PathCollection{{{0, 0}, {1, 1}, {2, 2}}}
	for _, pct := range []float64{0, 0.2, -1, math.NaN()} {
		if _, err := Cluster(pc, pct); !errors.Is(err, ErrInvalidClusterCount) {
			t.Errorf("Cluster(%v) error = %v, want ErrInvalidClusterCount", pct, err)
		}
	}
}

func TestClusterEmpty(t *testing.T) {
	got, err := Cluster(PathCollection{}, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("Cluster(empty) = %v, %v; want empty, nil", got, err)
	}
}
