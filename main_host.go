//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/physic"

	"shimmer/app"
	"shimmer/hal"
	"shimmer/internal/buildinfo"
	"shimmer/internal/config"
	"shimmer/preview"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to a YAML config file.")
		headless    = flag.Bool("headless", false, "Run without a window.")
		ticks       = flag.Uint64("ticks", 0, "Stop after N clock ticks (0 = run until interrupted).")
		seed        = flag.Uint64("seed", 0, "Seed for the brightness jitter (0 = random).")
		scale       = flag.Int("scale", 0, "Window scale factor.")
		previewAddr = flag.String("preview", "", "Serve the websocket frame feed on this address.")
		logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error.")
		version     = flag.Bool("version", false, "Print the build version and exit.")
		writeConfig = flag.String("write-config", "", "Write the effective settings to this YAML file and exit.")
		tickRate    physic.Frequency
		refreshRate physic.Frequency
	)
	flag.Var(&tickRate, "tick-rate", "Clock tick rate, e.g. 100Hz (default ~99.9Hz).")
	flag.Var(&refreshRate, "refresh-rate", "Display refresh rate, e.g. 4.5kHz.")
	flag.Parse()

	if *version {
		fmt.Println("shimmer", buildinfo.String())
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = c
	}

	// Flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless = *headless
		case "ticks":
			cfg.Ticks = *ticks
		case "seed":
			cfg.Seed = *seed
		case "scale":
			cfg.Window.Scale = *scale
		case "preview":
			cfg.Preview.Addr = *previewAddr
		case "log-level":
			cfg.LogLevel = *logLevel
		case "tick-rate":
			cfg.TickRate.Frequency = tickRate
		case "refresh-rate":
			cfg.RefreshRate.Frequency = refreshRate
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			log.Fatal().Err(err).Str("path", *writeConfig).Msg("config save failed")
		}
		log.Info().Str("path", *writeConfig).Msg("config written")
		return
	}

	if cfg.LogLevel != "" {
		lvl, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
		}
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("shimmer stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw := log.With().Str("src", "firmware").Logger()
	h := hal.NewHost(hal.HostConfig{Seed: cfg.Seed, Log: &fw})
	boot := func(h hal.HAL) { app.New(h, app.Config{}) }
	hc := hal.HeadlessConfig{
		Enabled:     cfg.Headless,
		TickRate:    cfg.TickRate.Frequency,
		RefreshRate: cfg.RefreshRate.Frequency,
		Ticks:       cfg.Ticks,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	if cfg.Preview.Addr != "" {
		srv := preview.New(h, preview.Config{FPS: cfg.Preview.FPS, Log: &log.Logger})
		g.Go(func() error {
			err := srv.ListenAndServe(runCtx, cfg.Preview.Addr)
			if err != nil {
				cancel()
			}
			return err
		})
	}

	log.Info().
		Str("version", buildinfo.Short()).
		Bool("headless", cfg.Headless).
		Uint64("ticks", cfg.Ticks).
		Msg("starting")

	var err error
	if cfg.Headless {
		err = hal.RunHeadless(runCtx, h, boot, hc)
	} else {
		err = hal.RunWindow(runCtx, h, boot, hal.WindowConfig{
			HeadlessConfig: hc,
			Title:          cfg.Window.Title,
			Caption:        "shimmer " + buildinfo.Short(),
			Scale:          cfg.Window.Scale,
		})
	}
	cancel()
	perr := g.Wait()

	_, frames := h.Frame()
	log.Info().Uint64("ticks", h.Ticks()).Uint64("frames", frames).Msg("stopped")

	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err == nil && perr != nil {
		err = fmt.Errorf("preview: %w", perr)
	}
	return err
}
