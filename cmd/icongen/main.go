// © 2026 AuroraHeart Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"go.astrophena.name/base/cli"

	"go.auroraheart.dev/icongen/internal/icongen"
	"go.auroraheart.dev/icongen/internal/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	watch    bool
	manifest bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.watch, "watch", false, "Regenerate icons whenever the source image changes.")
	fs.BoolVar(&a.manifest, "manifest", false, "Also write a web app manifest.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	c := &icongen.Config{
		Manifest: a.manifest,
		Logf: logger.Logf(func(format string, args ...any) {
			fmt.Fprintf(env.Stdout, format+"\n", args...)
		}),
	}

	switch len(env.Args) {
	case 0:
	case 1:
		c.Src = env.Args[0]
	default:
		return fmt.Errorf("%w: want at most one source image", cli.ErrInvalidArgs)
	}

	if a.watch {
		return icongen.Watch(ctx, c)
	}

	c.Logf("AuroraHeart Icon Generator")
	c.Logf("%s", rule)

	if err := icongen.Generate(c); err != nil {
		return err
	}

	c.Logf("")
	c.Logf("%s", rule)
	c.Logf("✓ All icons generated successfully!")
	c.Logf("")
	c.Logf("Generated files:")
	c.Logf("  - %s/icon.ico (Windows)", icongen.IconsDir)
	c.Logf("  - %s/icon.png (Main icon)", icongen.IconsDir)
	c.Logf("  - %s/32x32.png through 512x512.png", icongen.IconsDir)
	c.Logf("  - %s/favicon.ico", icongen.PublicDir)
	c.Logf("  - %s/apple-touch-icon.png", icongen.PublicDir)
	c.Logf("  - %s/logo512.png", icongen.PublicDir)

	return nil
}

var rule = strings.Repeat("=", 50)
