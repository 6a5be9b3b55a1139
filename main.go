package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"

	"go.uber.org/zap"

	"LineSketch/internal/config"
	"LineSketch/internal/export"
	"LineSketch/internal/render"
	"LineSketch/internal/replay"
	"LineSketch/internal/state"
	"LineSketch/internal/ui"
)

const defaultConfigPath = "linesketch.yaml"

func main() {
	args := os.Args[1:]
	var err error
	if len(args) > 0 && args[0] == "replay" {
		err = runReplay(args[1:])
	} else {
		err = runApp(args)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "linesketch:", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runApp(args []string) error {
	fs := flag.NewFlagSet("linesketch", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "YAML settings file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting", zap.Float64("width", cfg.Width), zap.Float64("height", cfg.Height))
	return ui.RunApp(cfg, logger)
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("linesketch replay", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "YAML settings file")
	pngPath := fs.String("png", "", "write a PNG rendering to this file")
	pdfPath := fs.String("pdf", "", "write a PDF rendering to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: linesketch replay [-config file] [-png file] [-pdf file] script.yaml")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	script, err := replay.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	c, err := replay.NewCanvas(cfg, script, nil, logger)
	if err != nil {
		return err
	}
	if err := replay.Run(c, script); err != nil {
		return err
	}
	text, err := c.Export()
	if err != nil {
		return err
	}
	fmt.Println(text)
	logger.Info("replay finished",
		zap.Int("steps", len(script.Steps)),
		zap.Int("lines", len(c.Lines())),
		zap.Int("undone", len(c.History())))

	if *pngPath != "" {
		size := c.DisplaySize()
		raster := render.NewRaster(int(size.Width+0.5), int(size.Height+0.5), color.White)
		c.SetSurface(raster)
		if err := writeFile(*pngPath, raster.WritePNG); err != nil {
			return err
		}
	}
	if *pdfPath != "" {
		s := c.Settings()
		bounds := state.Size{Width: s.Width, Height: s.Height}
		err := writeFile(*pdfPath, func(w io.Writer) error {
			return export.WritePDF(w, c.Lines(), bounds, c.Scale())
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
