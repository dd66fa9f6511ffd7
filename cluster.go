package sdftext

import (
	"fmt"
	"math"
)

// MaxClusterIterations bounds the k-means refinement loop.
const MaxClusterIterations = 32

// Cluster snaps every point onto one of k shared centroids, where
// k = floor(totalPoints * percentage). percentage is clamped to [0, 1];
// NaN counts as 0.
//
// Contour structure and point counts are preserved; only coordinates change.
// Seeding is deterministic: centroid i starts at pool point floor(i*total/k).
// An empty collection is returned unchanged. Fails with
// ErrInvalidClusterCount when k would be zero.
func Cluster(pc PathCollection, percentage float64) (PathCollection, error) {
	pool := flatten(pc)
	if len(pool) == 0 {
		return pc.Clone(), nil
	}

	if math.IsNaN(percentage) {
		percentage = 0
	}
	percentage = math.Max(0, math.Min(1, percentage))
	k := int(math.Floor(float64(len(pool)) * percentage))
	if k == 0 {
		return nil, fmt.Errorf("%w: %d points at %g", ErrInvalidClusterCount, len(pool), percentage)
	}

	assign := kmeans(pool, k)

	out := make(PathCollection, len(pc))
	idx := 0
	for i, c := range pc {
		sc := make(Contour, len(c))
		for j := range c {
			sc[j] = assign.centroids[assign.labels[idx]]
			idx++
		}
		out[i] = sc
	}
	Logger().Debug("sdftext: clustered points",
		"points", len(pool), "clusters", k, "iterations", assign.iterations)
	return out, nil
}

// flatten collects every point of every contour, in order.
func flatten(pc PathCollection) []Point {
	pool := make([]Point, 0, pc.PointCount())
	for _, c := range pc {
		pool = append(pool, c...)
	}
	return pool
}

type clustering struct {
	centroids  []Point
	labels     []int // labels[i] is the centroid index of pool[i]
	iterations int
}

// kmeans runs Lloyd's algorithm with evenly strided seeds.
// State lives entirely in this call.
func kmeans(pool []Point, k int) clustering {
	c := clustering{
		centroids: make([]Point, k),
		labels:    make([]int, len(pool)),
	}
	for i := range c.centroids {
		c.centroids[i] = pool[i*len(pool)/k]
	}
	for i := range c.labels {
		c.labels[i] = -1
	}

	sums := make([]Point, k)
	counts := make([]int, k)
	for c.iterations < MaxClusterIterations {
		c.iterations++

		changed := false
		for i, p := range pool {
			best := nearest(c.centroids, p)
			if best != c.labels[i] {
				c.labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		clear(sums)
		clear(counts)
		for i, p := range pool {
			l := c.labels[i]
			sums[l].X += p.X
			sums[l].Y += p.Y
			counts[l]++
		}
		for j := range c.centroids {
			// An empty cluster keeps its previous centroid.
			if counts[j] > 0 {
				c.centroids[j] = Point{
					X: sums[j].X / float64(counts[j]),
					Y: sums[j].Y / float64(counts[j]),
				}
			}
		}
	}
	return c
}

// nearest returns the index of the closest centroid; ties go to the lowest index.
func nearest(centroids []Point, p Point) int {
	best, bestDist := 0, math.Inf(1)
	for j, c := range centroids {
		dx, dy := p.X-c.X, p.Y-c.Y
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}
