package colour

import "testing"

func clusterOf(rgb RGB, n int) cluster {
	lab := RGBToLab(rgb)
	members := make([]sample, n)
	for i := range members {
		members[i] = sample{rgb: rgb, lab: lab}
	}
	return cluster{centroid: lab, members: members}
}

func TestMergeClustersCombinesNearPairs(t *testing.T) {
	clusters := []cluster{
		clusterOf(RGB{200, 30, 30}, 10),
		clusterOf(RGB{204, 34, 34}, 6), // perceptually close to the first
		clusterOf(RGB{30, 60, 200}, 8),
	}

	merged := mergeClusters(clusters)
	if len(merged) != 2 {
		t.Fatalf("got %d clusters, want 2: %+v", len(merged), merged)
	}
	if len(merged[0].members) != 16 {
		t.Errorf("merged cluster has %d members, want 16", len(merged[0].members))
	}
	if len(merged[1].members) != 8 {
		t.Errorf("blue cluster has %d members, want 8", len(merged[1].members))
	}
}

func TestMergeClustersRecomputesCentroid(t *testing.T) {
	a := clusterOf(RGB{200, 30, 30}, 4)
	b := clusterOf(RGB{206, 36, 36}, 4)

	merged := mergeClusters([]cluster{a, b})
	if len(merged) != 1 {
		t.Fatalf("got %d clusters, want 1", len(merged))
	}

	want := membersMean(merged[0].members)
	if merged[0].centroid != want {
		t.Errorf("centroid = %v, want the member mean %v", merged[0].centroid, want)
	}
}

func TestMergeClustersLeavesDistantAlone(t *testing.T) {
	clusters := []cluster{
		clusterOf(RGB{200, 30, 30}, 5),
		clusterOf(RGB{30, 200, 60}, 5),
		clusterOf(RGB{30, 60, 200}, 5),
		clusterOf(RGB{230, 220, 40}, 5),
	}

	merged := mergeClusters(clusters)
	if len(merged) != 4 {
		t.Errorf("got %d clusters, want 4 untouched", len(merged))
	}
}

func TestApplyNoiseFloor(t *testing.T) {
	// 200 samples total: floor(0.015 * 200) = 3, so clusters with fewer
	// than 3 members are dropped.
	clusters := []cluster{
		clusterOf(RGB{200, 30, 30}, 120),
		clusterOf(RGB{30, 60, 200}, 76),
		clusterOf(RGB{30, 200, 60}, 2),
		clusterOf(RGB{230, 220, 40}, 2),
	}

	kept := applyNoiseFloor(clusters)
	if len(kept) != 2 {
		t.Fatalf("got %d clusters, want 2: %+v", len(kept), kept)
	}
	for _, c := range kept {
		if len(c.members) < 3 {
			t.Errorf("kept a cluster with %d members", len(c.members))
		}
	}
}

func TestApplyNoiseFloorSmallTotals(t *testing.T) {
	// With very few samples the floor bottoms out at one member, so
	// nothing is dropped.
	clusters := []cluster{
		clusterOf(RGB{200, 30, 30}, 3),
		clusterOf(RGB{30, 60, 200}, 1),
	}

	kept := applyNoiseFloor(clusters)
	if len(kept) != 2 {
		t.Errorf("got %d clusters, want 2", len(kept))
	}
}
