package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"gopkg.in/yaml.v3"
)

// ErrResourceNotFound is returned when a resource ID is not declared in the resource config.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images and music tracks,
// ensuring that resources are loaded only once and reused throughout the game.
//
// All files are read from a single fs.FS. In the application this is the
// router returned by embedded.FS(); tests pass an fstest.MapFS.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(embedded.FS(), audioContext)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImageByID("IMAGE_ANIM")
type ResourceManager struct {
	fsys         fs.FS                    // Root file system for all resources
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	trackCache   map[string]*Track        // Cache for loaded music: path -> Track
	audioContext *audio.Context           // Global audio context for audio decoding

	// YAML resource configuration
	config      *ResourceConfig          // Parsed YAML configuration
	resourceMap map[string]string        // Resource ID -> file path mapping for quick lookup
	imageDefs   map[string]ImageResource // Resource ID -> image definition (sheet grid)
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: The file system all resource paths are resolved against.
//   - audioContext: The global audio context used for decoding music.
func NewResourceManager(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:         fsys,
		imageCache:   make(map[string]*ebiten.Image),
		trackCache:   make(map[string]*Track),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
		imageDefs:    make(map[string]ImageResource),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := fs.ReadFile(rm.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// LoadTrack loads a music file and caches it for future use.
// The file is decoded once to validate it and to measure its duration.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be read.
//   - Returns an error if the audio format is not supported or the file is corrupted.
func (rm *ResourceManager) LoadTrack(path string) (*Track, error) {
	if cached, exists := rm.trackCache[path]; exists {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("failed to load audio %s: no audio context", path)
	}

	data, err := fs.ReadFile(rm.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	track, err := newTrack(rm.audioContext, path, data)
	if err != nil {
		return nil, err
	}

	rm.trackCache[path] = track
	return track, nil
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
//
// Example:
//
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    return fmt.Errorf("资源配置加载失败: %w", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_ANIM -> assets/anim.png
//	SOUND_MUSIC -> assets/mus.mp3
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.imageDefs = make(map[string]ImageResource)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
			rm.imageDefs[img.ID] = img
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".mp3" // Default to MP3 for music
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResolvePath returns the file path of a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	path, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrResourceNotFound, resourceID)
	}
	return path, nil
}

// ImageDef returns the sheet definition of an image resource ID.
func (rm *ResourceManager) ImageDef(resourceID string) (ImageResource, bool) {
	def, ok := rm.imageDefs[resourceID]
	return def, ok
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	path, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(path)
}

// LoadTrackByID loads a music resource using its resource ID.
func (rm *ResourceManager) LoadTrackByID(resourceID string) (*Track, error) {
	path, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadTrack(path)
}

// GroupSize returns the number of resources declared in a group.
func (rm *ResourceManager) GroupSize(groupName string) int {
	if rm.config == nil {
		return 0
	}
	group := rm.config.Groups[groupName]
	return len(group.Images) + len(group.Sounds)
}
