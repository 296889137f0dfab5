// © 2026 AuroraHeart Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Icongen regenerates the AuroraHeart icon set.

# Usage

	$ icongen [flags...] [source image]

Icongen reads logo.png from the current directory (or the image passed
as an argument; any common raster format works) and writes the Tauri
PNG icons and the Windows icon.ico into crates/aurora-ui/icons, and the
web favicon assets into crates/aurora-ui/src-ui/public. Output from a
previous run is overwritten.

With the -watch flag it keeps running and regenerates the icons
whenever the source image changes. With the -manifest flag it also
writes a web app manifest next to the favicon.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() {
	cli.SetDocComment(doc)
}
