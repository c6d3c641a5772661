package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"

	"palinview/cmd/palinview/internal/theme"
	"palinview/cmd/palinview/internal/ui"
	"palinview/internal/config"
	"palinview/internal/logging"
	"palinview/internal/metrics"
	"palinview/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: platform config dir)")
	flag.Parse()

	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		log.Fatalf("load config %s: %v", loader.Path(), err)
	}

	lc, err := cfg.LoggerConfig("gui")
	if err != nil {
		log.Fatalf("logger config: %v", err)
	}
	logger, err := logging.New(lc)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	logging.SetDefault(logger)
	crashes := logging.NewCrashHandler(&logging.CrashHandlerConfig{
		CrashDir:  cfg.Logging.CrashDir,
		Component: "gui",
		Logger:    logger,
	})
	if retention := cfg.CrashRetention(); retention > 0 {
		if err := crashes.CleanupOldCrashReports(retention); err != nil {
			logger.Warn("crash report cleanup failed", "dir", crashes.Dir(), "error", err)
		}
	}
	if reports, err := crashes.CrashReports(); err == nil && len(reports) > 0 {
		last := reports[len(reports)-1]
		logger.Warn("previous crash reports found",
			"dir", crashes.Dir(),
			"count", len(reports),
			"last_panic", last.PanicValue,
		)
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title(cfg.Window.Title))
		w.Option(app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)))

		var err error
		crashed := crashes.Recover(nil, func() { err = loop(w, loader, cfg, logger, crashes) })
		logger.Close()
		if crashed {
			os.Exit(2)
		}
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, loader *config.Loader, cfg *config.Config, logger *logging.Logger, crashes *logging.CrashHandler) error {
	picker, err := cfg.NewPicker()
	if err != nil {
		return fmt.Errorf("example picker: %w", err)
	}

	m := metrics.NewPalinviewMetrics(nil)
	sess := session.New(logger)
	crashes.SetSessionID(sess.ID())
	sess.OnChange(func(_, next session.Snapshot) {
		m.RecordCheck(next.Verdict, next.Epoch)
	})

	// Reloads arrive on watcher goroutines; the frame loop applies them.
	var reloads config.Latest
	loader.OnChange(func(c *config.Config) {
		reloads.Put(c)
		w.Invalidate()
	})
	if err := loader.Watch(); err != nil {
		logger.Warn("config watch disabled", "error", err)
	}
	defer loader.Close()

	go func() {
		for err := range loader.Errors() {
			logger.Warn("config reload rejected", "error", err)
		}
	}()

	t := theme.NewTheme(cfg.Theme.Mode)
	vis := ui.NewVisualizer(t, cfg, sess, picker, m, logger)
	logger.Info("window opened", "session_id", sess.ID(), "config", loader.Path())

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			logger.Info("window closed", "metrics", m.Registry().Snapshot())
			return e.Err
		case app.FrameEvent:
			if c := reloads.Take(); c != nil {
				vis.SetConfig(c)
			}

			gtx := app.NewContext(&ops, e)
			vis.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
