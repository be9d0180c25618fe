package colour

// mergeDeltaE is the centroid distance below which two clusters are
// considered the same perceptual colour.
const mergeDeltaE = 10.0

// noiseFloorShare drops clusters smaller than this share of all samples
// after merging. It is a noise floor, not a minimum-count guarantee.
const noiseFloorShare = 0.015

// sample pairs an original RGB triple with its derived Lab point.
type sample struct {
	rgb RGB
	lab Lab
}

// cluster is a centroid plus the samples assigned to it. Each sample belongs
// to exactly one cluster.
type cluster struct {
	centroid Lab
	members  []sample
}

// buildClusters assigns every sample to its nearest final centroid and drops
// centroids that end up with no members.
func buildClusters(samples []sample, centroids []Lab) []cluster {
	if len(centroids) == 0 {
		return nil
	}

	clusters := make([]cluster, len(centroids))
	for i, c := range centroids {
		clusters[i].centroid = c
	}
	for _, s := range samples {
		nearest := nearestCentroid(s.lab, centroids)
		clusters[nearest].members = append(clusters[nearest].members, s)
	}

	kept := clusters[:0]
	for _, c := range clusters {
		if len(c.members) > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

// mergeClusters folds perceptually close clusters together with a greedy
// single pass: each cluster joins the first already-accepted cluster whose
// centroid is within mergeDeltaE by DeltaE00, otherwise it starts a new one.
// The pass is order-sensitive; clusters arrive in assignment order.
func mergeClusters(clusters []cluster) []cluster {
	merged := make([]cluster, 0, len(clusters))

	for _, c := range clusters {
		absorbed := false
		for i := range merged {
			if DeltaE00(merged[i].centroid, c.centroid) < mergeDeltaE {
				merged[i].members = append(merged[i].members, c.members...)
				merged[i].centroid = membersMean(merged[i].members)
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, c)
		}
	}

	return merged
}

// applyNoiseFloor drops clusters whose member count falls below 1.5% of the
// total sample population (at least one member is always required).
func applyNoiseFloor(clusters []cluster) []cluster {
	total := 0
	for _, c := range clusters {
		total += len(c.members)
	}

	floor := int(float64(total) * noiseFloorShare)
	if floor < 1 {
		floor = 1
	}

	kept := make([]cluster, 0, len(clusters))
	for _, c := range clusters {
		if len(c.members) < floor {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// membersMean is the coordinate-wise Lab mean of a cluster's members.
func membersMean(members []sample) Lab {
	var sum Lab
	for _, m := range members {
		sum.L += m.lab.L
		sum.A += m.lab.A
		sum.B += m.lab.B
	}
	n := float64(len(members))
	return Lab{L: sum.L / n, A: sum.A / n, B: sum.B / n}
}
