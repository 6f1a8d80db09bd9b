package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that are loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
	Sounds []SoundResource `yaml:"sounds"` // List of sound resources in this group
}

// ImageResource represents a single image resource definition.
// It can be a simple image or a sprite sheet with rows/cols.
//
// Examples:
//
//	Simple image:
//	  - id: IMAGE_BALL
//	    path: playerball
//
//	Sprite sheet:
//	  - id: IMAGE_ANIM
//	    path: anim.png
//	    cols: 7
//	    rows: 9
//	    frame_width: 498
//	    frame_height: 498
type ImageResource struct {
	ID          string `yaml:"id"`                     // Resource ID (unique identifier)
	Path        string `yaml:"path"`                   // Relative file path from base_path
	Cols        int    `yaml:"cols,omitempty"`         // Sprite sheet columns (0 if not a sprite sheet)
	Rows        int    `yaml:"rows,omitempty"`         // Sprite sheet rows (0 if not a sprite sheet)
	FrameWidth  int    `yaml:"frame_width,omitempty"`  // Expected frame width in pixels (0 = derive from image)
	FrameHeight int    `yaml:"frame_height,omitempty"` // Expected frame height in pixels (0 = derive from image)
}

// IsSheet reports whether the image is subdivided into a frame grid.
func (r ImageResource) IsSheet() bool {
	return r.Cols > 0 && r.Rows > 0
}

// SoundResource represents a single sound/audio resource definition.
//
// Example:
//   - id: SOUND_MUSIC
//     path: mus.mp3
type SoundResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Returns:
//   - The full file path (e.g., "assets/anim.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
