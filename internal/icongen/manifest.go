// © 2026 AuroraHeart Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icongen

import (
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// manifestJSON is the web app manifest the src-ui public directory
// expects. The icon entries mirror the files generateWebIcons writes.
const manifestJSON = `{
  "short_name": "AuroraHeart",
  "name": "AuroraHeart",
  "icons": [
    {
      "src": "favicon.ico",
      "sizes": "16x16 32x32",
      "type": "image/x-icon"
    },
    {
      "src": "apple-touch-icon.png",
      "sizes": "180x180",
      "type": "image/png"
    },
    {
      "src": "logo512.png",
      "sizes": "512x512",
      "type": "image/png"
    }
  ],
  "start_url": ".",
  "display": "standalone",
  "theme_color": "#0b0d17",
  "background_color": "#0b0d17"
}
`

func writeManifest(c *Config, dir string) error {
	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)

	b, err := m.Bytes("application/json", []byte(manifestJSON))
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	c.Logf("  ✓ Generated %s", path)

	return nil
}
