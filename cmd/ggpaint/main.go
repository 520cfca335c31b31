// Command ggpaint replays a scripted editing session and writes the final
// canvas as PNG.
//
// Usage:
//
//	ggpaint -script session.yaml -output out.png
//	ggpaint -script - -compositor http://localhost:8088 < session.yaml
//
// A script looks like:
//
//	width: 400
//	height: 300
//	steps:
//	  - color: "#ff0000"
//	  - down: [10, 10]
//	  - move: [80, 40]
//	  - up: [80, 40]
//	  - tool: rect
//	  - down: [100, 100]
//	  - up: [200, 160]
//	  - undo: true
//	  - save: sketch
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/compositor"
	"github.com/gogpu/ggpaint/compositor/remote"
	"github.com/gogpu/ggpaint/history"
	"github.com/gogpu/ggpaint/session"
	"github.com/gogpu/ggpaint/storage"
	"github.com/gogpu/ggpaint/surface"
)

func main() {
	var (
		script    = flag.String("script", "-", "event script (YAML), - for stdin")
		output    = flag.String("output", "canvas.png", "output file")
		dir       = flag.String("dir", storage.DefaultDir, "directory for save/load steps")
		remoteURL = flag.String("compositor", "", "remote compositor URL (default: in-process)")
		timeout   = flag.Duration("timeout", remote.DefaultTimeout, "remote compositor timeout")
		limit     = flag.Int("history", history.DefaultLimit, "undo depth")
		backend   = flag.String("surface", "", "surface backend (default: preferred available)")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	sc, err := loadScript(*script)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	bg, err := paint.ParseColor(sc.Background)
	if err != nil {
		log.Fatalf("Bad background: %v", err)
	}

	var comp compositor.Compositor = compositor.NewRaster()
	if *remoteURL != "" {
		comp, err = remote.NewClient(*remoteURL, remote.WithTimeout(*timeout))
		if err != nil {
			log.Fatalf("Bad compositor URL: %v", err)
		}
	}

	canvas, err := surface.Open(*backend, sc.Width, sc.Height, surface.WithBackground(bg))
	if err != nil {
		log.Fatalf("Failed to open surface: %v (available: %v)", err, surface.Backends())
	}
	defer canvas.Close()

	palette := session.NewPalette()
	s, err := session.New(canvas, comp, palette,
		session.WithHistoryLimit(*limit),
		session.WithStorage(storage.New(*dir)),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	ctx := context.Background()
	start := time.Now()
	failed := play(ctx, s, palette, sc.Steps, func(i int, err error) {
		paint.Logger().Warn("step failed", "step", i, "error", err)
	})

	snap, err := canvas.Capture()
	if err != nil {
		log.Fatalf("Failed to capture: %v", err)
	}
	if err := os.WriteFile(*output, snap.Bytes(), 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	undo, redo := s.History()
	log.Printf("Canvas saved to %s (%dx%d), %d steps in %v, %d failed, history %d/%d\n",
		*output, snap.Width(), snap.Height(), len(sc.Steps), time.Since(start).Round(time.Millisecond),
		failed, len(undo), len(redo))
}
