package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded source images.
//
// The cache stores decoded image.Image objects keyed by their file path. The
// MCP server keeps one cache for its lifetime so that inspecting an icon and
// then extracting it reads the file once.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("hand-point.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Evict("hand-point.png") // after the output has been written
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Supported formats are PNG, JPEG, GIF, BMP and TIFF. Alpha is preserved in
// the returned image when the file carries it (PNG with alpha decodes to
// *image.NRGBA).
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Open decodes the image at path without caching it.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ImageInfo contains metadata about a source image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format named by the file extension: "png", "jpeg", "gif",
	// "bmp", "tiff", or "unknown".
	Format string `json:"format"`

	// Channels is 1 for grayscale sources, 3 for colour without alpha and 4
	// for colour with alpha.
	Channels int `json:"channels"`

	// HasAlpha indicates whether the image carries transparency.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and reports its metadata.
//
// # Channel Detection
//
// Channel count follows the decoded Go image type:
//   - *image.Gray, *image.Gray16 -> 1
//   - *image.NRGBA, *image.NRGBA64 -> 4 (the file stored an alpha channel)
//   - *image.RGBA, *image.RGBA64, *image.Paletted -> 4 when any pixel is
//     translucent, else 3
//   - everything else (YCbCr, CMYK) -> 3
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	channels, hasAlpha := channelLayout(img)
	bounds := img.Bounds()

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatName(path),
		Channels:      channels,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

func channelLayout(img image.Image) (int, bool) {
	type opaquer interface{ Opaque() bool }

	switch im := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1, false
	case *image.NRGBA, *image.NRGBA64:
		return 4, true
	case *image.RGBA, *image.RGBA64, *image.Paletted:
		if !im.(opaquer).Opaque() {
			return 4, true
		}
		return 3, false
	default:
		return 3, false
	}
}

func formatName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "unknown"
}
