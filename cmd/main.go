// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"logsift/internal/config"
	"logsift/internal/core"
	"logsift/internal/detector"
	"logsift/internal/help"
	"logsift/internal/logger"
	"logsift/internal/validators/nationalid"
	"logsift/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	configFile  string
	outputDir   string
	workers     int
	checks      string
	noColor     bool
	debug       bool
	explain     string
	showVersion bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	outputDir string
	workers   int
	checks    string
	suffix    string
	noColor   bool
	debug     bool
	logLevel  string
	logFormat string
}

func main() {
	flags := &configFlags{}
	flag.StringVar(&flags.configFile, "config", "", "configuration file (YAML)")
	flag.StringVar(&flags.outputDir, "output-dir", "", "output root for per-file reports")
	flag.IntVar(&flags.workers, "workers", 0, "worker pool capacity")
	flag.StringVar(&flags.checks, "checks", "", "comma-separated detector names, or 'all'")
	flag.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	flag.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	flag.StringVar(&flags.explain, "explain", "", "show detailed help for one check")
	flag.BoolVar(&flags.showVersion, "version", false, "print version and exit")
	flag.Usage = showUsage
	flag.Parse()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	if flags.explain != "" {
		helpSystem := help.NewSystem(flags.noColor)
		helpSystem.RegisterProvider(nationalid.NewValidator())
		if !helpSystem.ShowCheckHelp(flags.explain) {
			fmt.Fprintf(os.Stderr, "Error: no detailed help for check '%s'\n", flags.explain)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() < 1 {
		showUsage()
		os.Exit(2)
	}
	inputDir := flag.Arg(0)

	cfg := loadConfiguration(flags.configFile)
	final := resolveConfiguration(cfg, flags)

	log, err := logger.New(logger.Config{Level: final.logLevel, Format: final.logFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid logging configuration: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Color only makes sense on a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		final.noColor = true
	}

	if _, err := core.RunScan(core.ScanConfig{
		InputDir:  inputDir,
		OutputDir: final.outputDir,
		Workers:   final.workers,
		Suffix:    final.suffix,
		Checks:    splitChecks(final.checks),
		NoColor:   final.noColor,
		Log:       log.WithComponent("scanner"),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	return config.LoadConfigOrDefault(configPath)
}

// resolveConfiguration resolves final values from the config file and
// command line flags; flags that were explicitly set win.
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{
		outputDir: cfg.Defaults.OutputDir,
		workers:   cfg.Defaults.Workers,
		checks:    cfg.Defaults.Checks,
		suffix:    cfg.Defaults.CompressedSuffix,
		noColor:   cfg.Defaults.NoColor,
		debug:     cfg.Defaults.Debug,
		logLevel:  cfg.Logging.Level,
		logFormat: cfg.Logging.Format,
	}

	if isFlagSet("output-dir") && flags.outputDir != "" {
		final.outputDir = flags.outputDir
	}
	if isFlagSet("workers") && flags.workers > 0 {
		final.workers = flags.workers
	}
	if isFlagSet("checks") && flags.checks != "" {
		final.checks = flags.checks
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}
	if final.debug {
		final.logLevel = "debug"
	}

	return final
}

// isFlagSet checks whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func splitChecks(checks string) []string {
	if checks == "" {
		return nil
	}
	return strings.Split(checks, ",")
}

func showUsage() {
	helpSystem := help.NewSystem(false)
	helpSystem.ShowGeneralHelp(detector.NewRegistry(nil).Names())
}
