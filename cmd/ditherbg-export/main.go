package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"ditherbg/internal/app"
	"ditherbg/internal/core"
	"ditherbg/internal/export"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 320
	cfg.Height = 180
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "ditherbg.png", "output file")
	frames := flag.Int("frames", 120, "number of ticks to render")
	format := flag.String("format", "apng", "output format: apng, or png for the last frame only")
	transparent := flag.Bool("transparent", false, "keep frames transparent instead of compositing over the background")
	scrollTo := flag.Float64("scroll", 0, "virtual scroll position reached on the last frame, in viewport heights")
	flag.Parse()

	if err := run(cfg, *out, *frames, *format, *transparent, *scrollTo); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, out string, frames int, format string, transparent bool, scrollTo float64) error {
	if err := cfg.ApplyOverrides(); err != nil {
		return err
	}
	rc, err := cfg.RenderConfig()
	if err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	images, err := export.Render(export.Options{
		Size:        core.Size{W: cfg.Width, H: cfg.Height},
		Frames:      frames,
		Config:      rc,
		Background:  bg,
		Transparent: transparent,
		ScrollEnd:   scrollTo * float64(cfg.Height),
	})
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "apng":
		err = export.SaveAPNG(out, images)
	case "png":
		err = export.SavePNG(out, images[len(images)-1])
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("wrote %d frame(s) of %dx%d to %s", len(images), cfg.Width, cfg.Height, out)
	}
	return nil
}
