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
	"github.com/rook-computer/neomatrix/internal/render"
	"github.com/rook-computer/neomatrix/internal/render/window"
)

func main() { os.Exit(run()) }

func run() int {
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	app.RegisterFlags(flag.CommandLine, &cfg)
	sinkName := flag.String("sink", "window", "simulator sink: window | term | png")
	outDir := flag.String("out", "/tmp/neomatrix-sim", "output directory for the png sink")
	cellPx := flag.Int("cell", render.DefaultCellPx, "LED pitch in pixels for the window and png sinks")
	flat := flag.Bool("flat", false, "draw square cells instead of round LEDs")
	cycle := flag.Duration("cycle", 0, "advance to the next scene at this interval (0 disables)")
	failAfter := flag.Int64("fail-after", 0, "make the sink fail after this many frames (0 disables)")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewFileLogger(os.Stderr)
	}

	style := render.StyleDots
	if *flat {
		style = render.StyleFlat
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		sink sizedSink
		win  *window.Window
	)
	switch *sinkName {
	case "window":
		win = window.New(cfg.Width, cfg.Height)
		win.CellPx, win.Style, win.Logger = *cellPx, style, logger
		sink = win
	case "term":
		term := render.NewTermSink(os.Stdout, cfg.Width, cfg.Height)
		_ = term.Clear()
		defer term.Restore()
		sink = term
	case "png":
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fmt.Println("output dir error:", err)
			return 1
		}
		png := render.NewPNGSink(*outDir, cfg.Width, cfg.Height)
		png.CellPx, png.Style, png.Logger = *cellPx, style, logger
		sink = png
		fmt.Println("Writing frames to", *outDir)
	default:
		fmt.Printf("unknown sink %q\n", *sinkName)
		return 2
	}
	if *failAfter > 0 {
		sink = newFaultySink(sink, SimFaults{FailAfterFrames: *failAfter})
	}

	a := app.New(cfg, sink)
	a.Logger = logger
	go cycleScenes(processCtx, a, *cycle, logger)

	if win != nil {
		// The window owns the main goroutine and drives the ticks.
		if err := a.Init(processCtx); err != nil {
			fmt.Println("app init error:", err)
			return 1
		}
		defer a.Stop()
		if err := win.Run(processCtx, cfg.FPS, a.Step); err != nil {
			fmt.Println("window error:", err)
			return 1
		}
		return 0
	}

	fmt.Printf("neomatrix simulator %dx%d, scene %s\n", cfg.Width, cfg.Height, cfg.Scene)
	if err := a.Run(processCtx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		return 1
	}
	return 0
}
