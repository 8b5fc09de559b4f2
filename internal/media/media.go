// Package media loads picture assets for embedding in a deck. Formats a
// presentation can store natively (PNG, JPEG, GIF) pass through unchanged;
// BMP, TIFF and WebP are decoded and re-encoded as PNG.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned by Load when the asset file does not exist.
var ErrNotFound = errors.New("media: asset not found")

// native lists formats that are embedded as-is, keyed by the name
// image.DecodeConfig reports, with the package extension to store them under.
var native = map[string]string{
	"png":  "png",
	"jpeg": "jpeg",
	"gif":  "gif",
}

// Asset is a picture ready to be embedded.
type Asset struct {
	// Source is the format the file was read as.
	Source string
	// Ext is the extension to store the picture under.
	Ext    string
	Width  int
	Height int
	Data   []byte
}

// Converted reports whether the asset was re-encoded on load.
func (a *Asset) Converted() bool {
	return a.Ext != native[a.Source]
}

// Load reads and, if needed, converts the image at path.
func Load(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	asset, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return asset, nil
}

// Decode identifies an in-memory image and converts it if the format cannot
// be embedded directly.
func Decode(data []byte) (*Asset, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unrecognised image data: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", cfg.Width, cfg.Height)
	}

	asset := &Asset{Source: format, Width: cfg.Width, Height: cfg.Height}
	if ext, ok := native[format]; ok {
		asset.Ext = ext
		asset.Data = data
		return asset, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s image: %w", format, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("re-encoding %s image as png: %w", format, err)
	}
	asset.Ext = "png"
	asset.Data = buf.Bytes()
	return asset, nil
}
