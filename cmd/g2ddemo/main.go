// Command g2ddemo renders a scene file to a PNG image.
//
// Usage:
//
//	g2ddemo -scene scene.toml -output scene.png
//	g2ddemo -scene scene.yaml -watch -v
//
// With -watch the scene is rendered again whenever the scene file or one
// of the files next to it changes, until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/g2d"
	"github.com/gogpu/g2d/internal/texcache"
	"github.com/gogpu/g2d/scenefile"
	"github.com/gogpu/g2d/surface"
)

type config struct {
	scene   string
	output  string
	backend string
	width   int
	height  int
}

func main() {
	var (
		cfg     config
		watch   = flag.Bool("watch", false, "re-render when the scene changes")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.StringVar(&cfg.scene, "scene", "scene.toml", "scene file (.toml, .yaml, .yml)")
	flag.StringVar(&cfg.output, "output", "scene.png", "output file")
	flag.StringVar(&cfg.backend, "backend", "", "surface backend (default: best available)")
	flag.IntVar(&cfg.width, "width", 0, "image width, overrides the scene canvas")
	flag.IntVar(&cfg.height, "height", 0, "image height, overrides the scene canvas")
	flag.Parse()

	if *verbose {
		g2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	textures := texcache.New(64)
	if err := render(cfg, textures); err != nil {
		if !*watch {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Failed to render: %v", err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchScene(ctx, cfg, textures); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

// render loads the scene, draws it and writes the PNG. Unchanged textures
// come from the cache.
func render(cfg config, textures *texcache.Cache) error {
	sc, err := scenefile.Load(cfg.scene)
	if err != nil {
		return err
	}
	d, err := sc.BuildWith(os.DirFS(filepath.Dir(cfg.scene)), textures)
	if err != nil {
		return err
	}

	opts := d.Options()
	if cfg.width > 0 {
		opts.Width = cfg.width
	}
	if cfg.height > 0 {
		opts.Height = cfg.height
	}

	var s surface.Surface
	if cfg.backend != "" {
		s, err = surface.DefaultRegistry().NewSurfaceByName(cfg.backend, opts)
	} else {
		s, err = surface.DefaultRegistry().NewSurface(opts)
	}
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	d.Render(s)
	if err := s.Flush(); err != nil {
		return err
	}
	if err := savePNG(s, cfg.output); err != nil {
		return err
	}

	log.Printf("Scene saved to %s (%dx%d)\n", cfg.output, s.Width(), s.Height())
	return nil
}

func savePNG(s surface.Surface, path string) error {
	switch s := s.(type) {
	case *surface.ImageSurface:
		return s.SavePNG(path)
	case *surface.Recorder:
		is := surface.NewImageSurface(s.Width(), s.Height())
		defer func() { _ = is.Close() }()
		if err := s.Finish().Playback(is); err != nil {
			return err
		}
		return is.SavePNG(path)
	}
	is := surface.NewImageSurfaceFromImage(s.Snapshot())
	defer func() { _ = is.Close() }()
	return is.SavePNG(path)
}

// watchDelay coalesces the bursts of events editors produce on save.
const watchDelay = 100 * time.Millisecond

// watchScene re-renders on changes in the scene's directory until ctx is
// done. The directory is watched rather than the file because editors
// often replace files on save.
func watchScene(ctx context.Context, cfg config, textures *texcache.Cache) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	dir := filepath.Dir(cfg.scene)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	output, _ := filepath.Abs(cfg.output)
	log.Printf("Watching %s", dir)

	timer := time.NewTimer(watchDelay)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !relevant(ev, output) {
				continue
			}
			g2d.Logger().Debug("g2ddemo: change", slog.String("event", ev.String()))
			timer.Reset(watchDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			log.Printf("Watch error: %v", err)
		case <-timer.C:
			if err := render(cfg, textures); err != nil {
				log.Printf("Failed to render: %v", err)
			}
		}
	}
}

// relevant reports whether ev can change the rendered image. Writes to the
// output file itself are ignored so rendering does not retrigger.
func relevant(ev fsnotify.Event, output string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if abs, err := filepath.Abs(ev.Name); err == nil && abs == output {
		return false
	}
	return true
}
