package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/neomatrix/internal/app"
	"github.com/rook-computer/neomatrix/internal/canvas"
	"github.com/rook-computer/neomatrix/internal/render"
	"github.com/rook-computer/neomatrix/internal/system"
)

const EnvStdioLog = "NEOMATRIX_STDIO_LOG"

func main() { os.Exit(run()) }

func run() int {
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Flags
	app.RegisterFlags(flag.CommandLine, &cfg)
	debug := flag.Bool("debug", false, "enable debug logging to ./neomatrix-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+EnvStdioLog)
	sinkName := flag.String("sink", "fb", "display sink: fb | png | term")
	fbDevice := flag.String("fb-device", render.DefaultFBDevice, "framebuffer device for the fb sink")
	keepConsole := flag.Bool("keep-console", false, "leave the console in text mode while drawing to the framebuffer")
	outDir := flag.String("out", "frames", "output directory for the png sink")
	flat := flag.Bool("flat", false, "draw square cells instead of round LEDs")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(EnvStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./neomatrix-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	style := render.StyleDots
	if *flat {
		style = render.StyleFlat
	}

	var sink canvas.Sink
	switch *sinkName {
	case "fb":
		fb := render.NewFBSink(cfg.Width, cfg.Height)
		fb.Device, fb.Style, fb.Logger, fb.KeepConsole = *fbDevice, style, logger, *keepConsole
		if err := fb.Start(); err != nil {
			fmt.Println("framebuffer start error:", err)
			return 1
		}
		defer fb.Stop()
		sink = fb
	case "png":
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fmt.Println("output dir error:", err)
			return 1
		}
		png := render.NewPNGSink(*outDir, cfg.Width, cfg.Height)
		png.Style, png.Logger = style, logger
		sink = png
	case "term":
		term := render.NewTermSink(os.Stdout, cfg.Width, cfg.Height)
		_ = term.Clear()
		defer term.Restore()
		sink = term
	default:
		fmt.Printf("unknown sink %q\n", *sinkName)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, sink)
	a.Logger = logger

	system.WatchKeys(ctx, logger, map[uint16]func(){
		system.KeyEsc:   func() { a.Exit(nil) },
		system.KeyF4:    func() { a.Exit(nil) },
		system.KeySpace: func() { logError(logger, a.NextScene()) },
		system.KeyRight: func() { logError(logger, a.NextScene()) },
		system.KeyUp:    func() { logError(logger, a.AdjustBrightness(10)) },
		system.KeyDown:  func() { logError(logger, a.AdjustBrightness(-10)) },
	})

	fmt.Printf("neomatrix %dx%d, scene %s, sink %s\n", cfg.Width, cfg.Height, cfg.Scene, *sinkName)
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		return 1
	}
	return 0
}

func logError(l app.Logger, err error) {
	if err != nil {
		l.Errorf("main", "%v", err)
	}
}
