package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goreceipts/internal/app"
	"github.com/hyperifyio/goreceipts/internal/receipt"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outputPath string
		timeout    time.Duration
		insecure   bool
		userAgent  string
		configPath string
		verbose    bool
	)

	flag.StringVar(&outputPath, "output", "", "Path to write the JSON result (default stdout)")
	flag.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Per-request timeout for document acquisition")
	flag.BoolVar(&insecure, "insecure", true, "Skip TLS certificate verification (several receipt hosts use self-signed certificates)")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "Custom User-Agent for receipt requests")
	flag.StringVar(&configPath, "config", os.Getenv("GORECEIPTS_CONFIG"), "Path to optional YAML/JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	cfg := app.Config{
		Source:     flag.Arg(0),
		Location:   flag.Arg(1),
		OutputPath: outputPath,
		Timeout:    timeout,
		Insecure:   insecure,
		UserAgent:  userAgent,
		Verbose:    verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("extraction failed")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <bank> <url-or-path>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Supported banks:")
	for _, src := range receipt.Sources() {
		fmt.Fprintf(os.Stderr, " %s", src)
	}
	fmt.Fprintf(os.Stderr, "\n\nThe document argument is a receipt URL, a local file holding the\nacquired document, or a bare receipt ID for TELEBIRR.\n\nFlags:\n")
	flag.PrintDefaults()
}
