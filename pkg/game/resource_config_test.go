package game

import "testing"

// TestBuildFullPath tests path joining for resource definitions.
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		relPath  string
		want     string
	}{
		{"normal", "assets", "anim.png", "assets/anim.png"},
		{"leading slash", "assets", "/mus.mp3", "assets/mus.mp3"},
		{"empty base", "", "line.png", "line.png"},
		{"nested", "assets", "ui/media.png", "assets/ui/media.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildFullPath(tt.basePath, tt.relPath); got != tt.want {
				t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.basePath, tt.relPath, got, tt.want)
			}
		})
	}
}

// TestImageResourceIsSheet tests sprite sheet detection.
func TestImageResourceIsSheet(t *testing.T) {
	tests := []struct {
		res  ImageResource
		want bool
	}{
		{ImageResource{ID: "IMAGE_ANIM", Cols: 7, Rows: 9}, true},
		{ImageResource{ID: "IMAGE_MEDIA", Cols: 2, Rows: 1}, true},
		{ImageResource{ID: "IMAGE_BALL"}, false},
		{ImageResource{ID: "IMAGE_HALF", Cols: 3}, false},
	}

	for _, tt := range tests {
		if got := tt.res.IsSheet(); got != tt.want {
			t.Errorf("%s.IsSheet() = %v, want %v", tt.res.ID, got, tt.want)
		}
	}
}
