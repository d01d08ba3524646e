package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsbreeze/pkg/cache"
	"github.com/umputun/newsbreeze/pkg/config"
	"github.com/umputun/newsbreeze/pkg/feed"
	"github.com/umputun/newsbreeze/pkg/service"
	"github.com/umputun/newsbreeze/pkg/summary"
	"github.com/umputun/newsbreeze/pkg/voice"
	"github.com/umputun/newsbreeze/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"newsbreeze.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config %s: %v", opts.Config, err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Summary.APIKey)

	log.Printf("[INFO] starting newsbreeze version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	srv, err := makeServer(cfg, opts.Debug)
	if err != nil {
		log.Printf("[ERROR] failed to initialize: %v", err)
		os.Exit(1)
	}

	err = srv.Run(ctx)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// makeServer wires the cache store, feed collector, summarization and voice
// engines into the orchestrator and returns the HTTP server around it
func makeServer(cfg *config.Config, debug bool) (*server.Server, error) {
	store, err := cache.NewStore(cache.Config{
		Dir:      cfg.Cache.Dir,
		AudioDir: cfg.Cache.AudioDir,
		Expiry:   cfg.Cache.Expiry,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create cache store: %w", err)
	}

	collector := feed.NewCollector(cfg.GetNewsConfig())

	llm := summary.NewLLM(cfg.GetSummaryConfig())
	summarizers := []service.Summarizer{llm, summary.NewExtractive(0)}

	catalog := voice.NewCatalog(cfg.GetVoiceConfig(), cfg.Cache.VoicesDir)
	synthesizer := voice.NewSynthesizer(cfg.GetVoiceConfig())

	// warm the engines up front so the first request doesn't pay for it,
	// failures here degrade to lazy initialization on request
	go func() {
		llm.EnsureReady()
		synthesizer.EnsureReady()
	}()

	orchestrator := service.NewOrchestrator(service.Params{
		Collector:       collector,
		Summarizers:     summarizers,
		Synthesizer:     synthesizer,
		Voices:          catalog,
		Store:           store,
		RefreshInterval: cfg.News.RefreshInterval,
	})

	return server.New(cfg, orchestrator, store.AudioDir(), revision, debug), nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	// keep the api key out of logs
	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
