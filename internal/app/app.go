// Package app contains the polygon path widget: the selection controller,
// the control panel and the window that hosts them.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/philipparndt/polypath/internal/logging"
	"github.com/philipparndt/polypath/pkg/config"
	"github.com/philipparndt/polypath/pkg/surface"
	"github.com/philipparndt/polypath/pkg/viewer"
	"github.com/philipparndt/polypath/pkg/watcher"
	"github.com/philipparndt/polypath/version"
)

// reloadDebounce delays config reloads while an editor is still writing
const reloadDebounce = 200 * time.Millisecond

// Options configures Run
type Options struct {
	// ConfigPath is an optional TOML file, watched for changes
	ConfigPath string
	Log        *slog.Logger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	a := fyneapp.NewWithID("com.github.philipparndt.polypath")
	w := a.NewWindow(fmt.Sprintf("PolyPath %s", version.GetVersion()))

	drawing := viewer.NewCanvasWidget(cfg.Surface.Width, cfg.Surface.Height, config.MustColor(cfg.Surface.Background))
	session := NewSession(drawing, surface.StyleFromConfig(cfg.Style), log)
	drawing.SetOnTapped(session.Click)

	panel := NewControlPanel(session.Controller)

	panelScroll := container.NewVScroll(panel.Content())
	panelScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,                          // top
		nil,                          // bottom
		nil,                          // left
		panelScroll,                  // right
		container.NewCenter(drawing), // center
	)
	w.SetContent(content)

	if opts.ConfigPath != "" {
		fw, err := watchConfig(opts.ConfigPath, drawing, session, logging.WithComponent(log, "config"))
		if err != nil {
			log.Warn("config reload disabled", "err", err)
		} else {
			defer fw.Close()
		}
	}

	log.Info("starting", "version", version.GetFullVersion(), "width", cfg.Surface.Width, "height", cfg.Surface.Height)
	w.ShowAndRun()
	return nil
}

// watchConfig restyles the surface whenever the config file changes.
// A size change only takes effect after a restart.
func watchConfig(path string, drawing *viewer.CanvasWidget, session *Session, log *slog.Logger) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(reloadDebounce, log)
	if err != nil {
		return nil, err
	}

	err = fw.Watch(path, func(string) {
		cfg, err := config.Load(path)
		if err != nil {
			log.Warn("ignoring config change", "err", err)
			return
		}

		fyne.Do(func() {
			drawing.SetBackground(config.MustColor(cfg.Surface.Background))
			session.Surface.SetStyle(surface.StyleFromConfig(cfg.Style))
		})
		log.Info("config reloaded", "path", path)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start()
	return fw, nil
}
