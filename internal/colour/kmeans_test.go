package colour

import (
	"math/rand"
	"testing"
)

func TestClusterCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{3, 3},
		{4, 4},
		{16, 4},
		{25, 5},
		{100, 10},
		{255, 16},
		{400, 16},
		{10000, 16},
	}

	for _, tt := range tests {
		if got := clusterCount(tt.n); got != tt.want {
			t.Errorf("clusterCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestRunKMeansFewPointsKeepsPoints(t *testing.T) {
	points := []Lab{
		{L: 20, A: 10, B: -10},
		{L: 50, A: -30, B: 40},
		{L: 80, A: 5, B: 60},
	}
	rng := rand.New(rand.NewSource(1))

	centroids := runKMeans(points, 3, rng)
	if len(centroids) != 3 {
		t.Fatalf("got %d centroids, want 3", len(centroids))
	}
	for i, p := range points {
		if centroids[i] != p {
			t.Errorf("centroids[%d] = %v, want the input point %v", i, centroids[i], p)
		}
	}
}

func TestRunKMeansSeparatedGroups(t *testing.T) {
	// Two tight groups far apart in Lab space; any seeding should
	// converge to one centroid per group.
	var points []Lab
	for i := 0; i < 10; i++ {
		d := float64(i) * 0.1
		points = append(points, Lab{L: 20 + d, A: 60 + d, B: 40 + d})
		points = append(points, Lab{L: 80 + d, A: -50 + d, B: -30 + d})
	}
	rng := rand.New(rand.NewSource(42))

	centroids := runKMeans(points, 2, rng)
	if len(centroids) != 2 {
		t.Fatalf("got %d centroids, want 2", len(centroids))
	}
	var near20, near80 bool
	for _, c := range centroids {
		if c.L > 19 && c.L < 22 {
			near20 = true
		}
		if c.L > 79 && c.L < 82 {
			near80 = true
		}
	}
	if !near20 || !near80 {
		t.Errorf("centroids %v do not cover both groups", centroids)
	}
}

func TestRunKMeansDeterministicWithSeed(t *testing.T) {
	var points []Lab
	src := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		points = append(points, Lab{
			L: src.Float64() * 100,
			A: src.Float64()*200 - 100,
			B: src.Float64()*200 - 100,
		})
	}

	first := runKMeans(points, 5, rand.New(rand.NewSource(99)))
	second := runKMeans(points, 5, rand.New(rand.NewSource(99)))
	if len(first) != len(second) {
		t.Fatalf("centroid counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("centroids[%d] differ: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestNearestCentroid(t *testing.T) {
	centroids := []Lab{
		{L: 10, A: 0, B: 0},
		{L: 50, A: 0, B: 0},
		{L: 90, A: 0, B: 0},
	}

	if got := nearestCentroid(Lab{L: 48, A: 2, B: -1}, centroids); got != 1 {
		t.Errorf("nearestCentroid() = %d, want 1", got)
	}
	if got := nearestCentroid(Lab{L: 95, A: 0, B: 0}, centroids); got != 2 {
		t.Errorf("nearestCentroid() = %d, want 2", got)
	}
}
