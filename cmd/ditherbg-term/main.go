package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"ditherbg/internal/app"
	"ditherbg/internal/dither"
	"ditherbg/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Background = "#101010"
	cfg.Color = "#e0e0e0"
	cfg.Opacity = 255
	cfg.PixelSize = 1
	cfg.WheelStep = 4
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append logs to this file (the screen owns stdout)")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.New(os.Stderr, "", 0).Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(cfg); err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := term.New(screen, dither.New(rc), term.Options{
		TPS:        cfg.TPS,
		Background: bg,
		WheelStep:  cfg.WheelStep,
		Page:       cfg.Page,
	})
	cols, rows := screen.Size()
	log.Printf("terminal %dx%d, viewport %+v", cols, rows, driver.Size())

	err = driver.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
