package colour

import (
	"math"
	"math/rand"
)

// Clustering parameters. k adapts to the number of unique colours;
// iteration stops early once no centroid moves by more than the
// convergence threshold (in DeltaE76).
const (
	minClusters   = 4
	maxClusters   = 16
	maxIterations = 20
	convergence   = 0.5
)

// clusterCount selects k = clamp(round(sqrt(n)), 4, 16), additionally capped
// at n so every centroid can own at least one point.
func clusterCount(n int) int {
	k := int(math.Round(math.Sqrt(float64(n))))
	if k < minClusters {
		k = minClusters
	}
	if k > maxClusters {
		k = maxClusters
	}
	if k > n {
		k = n
	}
	return k
}

// runKMeans clusters the unique Lab points and returns the final centroids.
// Assignment uses DeltaE76 throughout. When k covers every point, each point
// is its own centroid and no iteration is needed.
func runKMeans(points []Lab, k int, rng *rand.Rand) []Lab {
	if len(points) == 0 || k == 0 {
		return nil
	}
	if k >= len(points) {
		centroids := make([]Lab, len(points))
		copy(centroids, points)
		return centroids
	}

	centroids := seedCentroids(points, k, rng)

	for iter := 0; iter < maxIterations; iter++ {
		// Assign every point to its nearest centroid.
		sums := make([]Lab, k)
		counts := make([]int, k)
		for _, p := range points {
			nearest := nearestCentroid(p, centroids)
			sums[nearest].L += p.L
			sums[nearest].A += p.A
			sums[nearest].B += p.B
			counts[nearest]++
		}

		// Recompute each non-empty cluster's centroid as the member mean.
		// Empty clusters keep their previous centroid.
		maxMovement := 0.0
		for i := range centroids {
			if counts[i] == 0 {
				continue
			}
			next := Lab{
				L: sums[i].L / float64(counts[i]),
				A: sums[i].A / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
			if movement := DeltaE76(centroids[i], next); movement > maxMovement {
				maxMovement = movement
			}
			centroids[i] = next
		}

		if maxMovement <= convergence {
			break
		}
	}

	return centroids
}

// seedCentroids implements k-means++ seeding: the first centroid is uniform
// over the points, each subsequent one is drawn with probability
// proportional to the squared DeltaE76 distance to its nearest existing
// centroid.
func seedCentroids(points []Lab, k int, rng *rand.Rand) []Lab {
	centroids := make([]Lab, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := DeltaE76(p, centroids[0])
			for _, c := range centroids[1:] {
				if dc := DeltaE76(p, c); dc < d {
					d = dc
				}
			}
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			// Every point coincides with a centroid; nothing left to spread to.
			centroids = append(centroids, centroids[len(centroids)-1])
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		picked := len(points) - 1 // guard against rounding in the cumulative sum
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				picked = i
				break
			}
		}
		centroids = append(centroids, points[picked])
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p by DeltaE76.
func nearestCentroid(p Lab, centroids []Lab) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := DeltaE76(p, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}
