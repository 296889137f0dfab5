// © 2026 AuroraHeart Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icongen regenerates the AuroraHeart icon set from a single
source image.

One run resizes the source image (logo.png by default) with Lanczos
resampling and writes:

	crates/aurora-ui/icons          Tauri PNG icons (32, 128, 256, 512,
	                                and the 1024×1024 icon.png) plus the
	                                multi-resolution Windows icon.ico.
	crates/aurora-ui/src-ui/public  Web favicon assets: favicon.ico,
	                                apple-touch-icon.png and logo512.png.

Outputs from a previous run are overwritten in place.
*/
package icongen

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	"go.auroraheart.dev/icongen/internal/logger"

	"github.com/nfnt/resize"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Output directories, relative to [Config.Root].
const (
	IconsDir  = "crates/aurora-ui/icons"
	PublicDir = "crates/aurora-ui/src-ui/public"
)

// Icon sizes needed for Tauri.
var pngSizes = []int{32, 128, 256, 512}

// Renditions embedded in the Windows icon container.
var icoSizes = []int{16, 32, 48, 64, 128, 256}

// Renditions embedded in the web favicon container.
var faviconSizes = []int{16, 32}

// errSourceMissing is returned when the source image doesn't exist.
var errSourceMissing = errors.New("source image not found")

// Config represents a generation configuration.
type Config struct {
	// Src is the path of the source image. If empty, logo.png in the
	// current directory is used.
	Src string
	// Root is the directory the output tree is rooted at. If empty, the
	// current directory is used.
	Root string
	// Manifest determines whether a web app manifest is written
	// alongside the web icons.
	Manifest bool
	// Logf is a logger to use. If nil, log.Printf is used.
	Logf logger.Logf
}

func (c *Config) setDefaults() {
	if c.Src == "" {
		c.Src = "logo.png"
	}
	if c.Root == "" {
		c.Root = "."
	}
	if c.Logf == nil {
		c.Logf = logger.Logf(log.Printf)
	}
}

func (c *Config) iconsDir() string  { return filepath.Join(c.Root, filepath.FromSlash(IconsDir)) }
func (c *Config) publicDir() string { return filepath.Join(c.Root, filepath.FromSlash(PublicDir)) }

// Generate builds the full icon set based on the provided [Config].
//
// Generators run in a fixed order: PNG icons, the Windows icon, then
// the web icons. They share the decoded source image and are otherwise
// independent. The first failure aborts the run; files written before
// it remain on disk.
func Generate(c *Config) error {
	c.setDefaults()

	src, err := load(c)
	if err != nil {
		return err
	}

	if err := generatePNGIcons(c, src); err != nil {
		return err
	}
	if err := generateICO(c, src); err != nil {
		return err
	}
	return generateWebIcons(c, src)
}

// load decodes the source image and normalizes it to RGBA.
//
// The existence check runs before opening so that a missing source
// surfaces as a single clear error instead of a decode failure.
func load(c *Config) (*image.RGBA, error) {
	if _, err := os.Stat(c.Src); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", errSourceMissing, c.Src)
	}

	c.Logf("Loading %s...", c.Src)
	f, err := os.Open(c.Src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.Src, err)
	}

	rgba := toRGBA(img)
	c.Logf("Logo size: %dx%d", rgba.Bounds().Dx(), rgba.Bounds().Dy())
	c.Logf("")
	return rgba, nil
}

// toRGBA redraws img onto a fresh RGBA canvas, unless it already is
// one. Inputs without an alpha channel come out fully opaque.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// rescale returns a square rendition of src at the given size, using
// Lanczos resampling.
func rescale(src image.Image, size int) image.Image {
	return resize.Resize(uint(size), uint(size), src, resize.Lanczos3)
}

func generatePNGIcons(c *Config, src *image.RGBA) error {
	c.Logf("Generating PNG icons...")
	dir := c.iconsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, size := range pngSizes {
		path := filepath.Join(dir, fmt.Sprintf("%dx%d.png", size, size))
		if err := writePNG(path, rescale(src, size)); err != nil {
			return err
		}
		c.Logf("  ✓ Generated %s", path)
	}

	// Main high-resolution icon.
	path := filepath.Join(dir, "icon.png")
	if err := writePNG(path, rescale(src, 1024)); err != nil {
		return err
	}
	c.Logf("  ✓ Generated %s", path)

	return nil
}

func generateICO(c *Config, src *image.RGBA) error {
	c.Logf("Generating Windows .ico file...")
	dir := c.iconsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, "icon.ico")
	if err := writeICO(path, src, icoSizes); err != nil {
		return err
	}
	c.Logf("  ✓ Generated %s", path)

	return nil
}

func generateWebIcons(c *Config, src *image.RGBA) error {
	c.Logf("Generating web icons...")
	dir := c.publicDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Browsers still expect the legacy icon container format here, so
	// favicon.ico is packed the same way as the Windows icon.
	favicon := filepath.Join(dir, "favicon.ico")
	if err := writeICO(favicon, src, faviconSizes); err != nil {
		return err
	}
	c.Logf("  ✓ Generated %s", favicon)

	apple := filepath.Join(dir, "apple-touch-icon.png")
	if err := writePNG(apple, rescale(src, 180)); err != nil {
		return err
	}
	c.Logf("  ✓ Generated %s", apple)

	logo := filepath.Join(dir, "logo512.png")
	if err := writePNG(logo, rescale(src, 512)); err != nil {
		return err
	}
	c.Logf("  ✓ Generated %s", logo)

	if c.Manifest {
		return writeManifest(c, dir)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeICO packs one rendition per size into a single multi-resolution
// icon container.
func writeICO(path string, src image.Image, sizes []int) error {
	imgs := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		imgs = append(imgs, rescale(src, size))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ico.EncodeAll(f, imgs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
