package colour

import "testing"

func TestIsValidAlgorithm(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want bool
	}{
		{AlgorithmKMeans, true},
		{AlgorithmDominant, true},
		{"median-cut", false},
		{"", false},
		{"KMEANS", false},
	}

	for _, tt := range tests {
		if got := IsValidAlgorithm(tt.alg); got != tt.want {
			t.Errorf("IsValidAlgorithm(%q) = %v, want %v", tt.alg, got, tt.want)
		}
	}
}

func TestExtractorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ExtractorConfig
		wantErr bool
	}{
		{"defaults", DefaultExtractorConfig(), false},
		{"dominant", ExtractorConfig{Algorithm: AlgorithmDominant, ColorCount: 16}, false},
		{"bad algorithm", ExtractorConfig{Algorithm: "octree", ColorCount: 8}, true},
		{"zero count", ExtractorConfig{Algorithm: AlgorithmKMeans, ColorCount: 0}, true},
		{"count too large", ExtractorConfig{Algorithm: AlgorithmKMeans, ColorCount: 65}, true},
		{"count at limit", ExtractorConfig{Algorithm: AlgorithmKMeans, ColorCount: 64}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewExtractor(t *testing.T) {
	kmeans, err := NewExtractor(ExtractorConfig{Algorithm: AlgorithmKMeans, ColorCount: 8})
	if err != nil {
		t.Fatalf("NewExtractor(kmeans) error = %v", err)
	}
	if _, ok := kmeans.(*Pipeline); !ok {
		t.Errorf("NewExtractor(kmeans) = %T, want *Pipeline", kmeans)
	}

	dominant, err := NewExtractor(ExtractorConfig{Algorithm: AlgorithmDominant, ColorCount: 8})
	if err != nil {
		t.Fatalf("NewExtractor(dominant) error = %v", err)
	}
	if _, ok := dominant.(*DominantExtractor); !ok {
		t.Errorf("NewExtractor(dominant) = %T, want *DominantExtractor", dominant)
	}

	if _, err := NewExtractor(ExtractorConfig{Algorithm: "octree"}); err == nil {
		t.Error("NewExtractor(octree) expected an error")
	}
}
