// Package main provides the convert-powers binary, which renders a directory
// of power YAML files as Roll20 roll-template macros.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cory-johannsen/powerconv/internal/config"
	"github.com/cory-johannsen/powerconv/internal/converter"
	"github.com/cory-johannsen/powerconv/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "optional path to configuration file")
	sourceDir := flag.String("source", "", "directory of power YAML files (overrides convert.source_dir)")
	onError := flag.String("on-error", "", "per-file failure policy: abort or skip (overrides convert.on_error)")
	flag.Parse()

	v := config.NewViper()
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	if *sourceDir != "" {
		v.Set("convert.source_dir", *sourceDir)
	}
	if *onError != "" {
		v.Set("convert.on_error", *onError)
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	conv := converter.New(afero.NewOsFs(), cfg.Convert, logger)
	res, err := conv.Run(cfg.Convert.SourceDir)
	if err != nil {
		logger.Error("conversion failed",
			zap.String("dir", cfg.Convert.SourceDir),
			zap.Int("written", len(res.Written)),
			zap.Error(err),
		)
		logger.Sync()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("converted %d file(s) in %s\n", len(res.Written), time.Since(start).Round(time.Millisecond))
}
