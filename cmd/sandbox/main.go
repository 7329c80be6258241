package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/winkel/engine/core"
	glbackend "github.com/hubastard/winkel/engine/gfx/gl"
	"github.com/hubastard/winkel/engine/gfx/paint"
	"github.com/hubastard/winkel/engine/platform"
	"github.com/hubastard/winkel/engine/ui"
)

func main() {
	configPath := flag.String("config", "winkel.toml", "path to the TOML config")
	dump := flag.Bool("dump", false, "write the computed layout as YAML to stdout and exit")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tree := demoTree(func(button uint8) {
		fmt.Println("Clicked!")
		slog.Info("button pressed", "button", button)
	})

	if *dump {
		l := ui.Compute(tree, float64(cfg.Width), float64(cfg.Height))
		if err := l.WriteYAML(os.Stdout); err != nil {
			slog.Error("dump layout", "err", err)
			os.Exit(1)
		}
		return
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(_ core.Window, cfg core.Config) (core.Renderer, error) {
		dev, err := glbackend.NewDevice()
		if err != nil {
			return nil, err
		}
		info := dev.Info()
		slog.Info("gl device", "vendor", info.Vendor, "renderer", info.Renderer, "version", info.Version)
		return paint.New(dev, paint.Options{FontDir: cfg.FontDir, MaxQuads: cfg.MaxQuads}, slog.Default())
	}

	if err := core.Run(tree, cfg, newWindow, newRenderer); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
