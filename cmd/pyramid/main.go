package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"pyramid/internal/config"
	"pyramid/internal/layout"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "play":
		if err := cmdPlay(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "play failed:", err)
			os.Exit(1)
		}
	case "validate":
		if err := cmdValidate(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "validate failed:", err)
			os.Exit(1)
		}
	case "layouts":
		for _, n := range layout.Names() {
			fmt.Println(n)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to config file (yaml)")
	layoutRef := fs.String("layout", "", "embedded layout name or layout file path")
	seed := fs.Int64("seed", 0, "shuffle seed (0 = random)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *layoutRef != "" {
		cfg.Layout = *layoutRef
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return play(os.Stdin, os.Stdout, cfg, logger)
}

func cmdValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	path := fs.String("layout", "", "layout file to check (yaml or json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("layout is required")
	}
	l, err := layout.Load(*path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d slots ok\n", *path, len(l.Slots))
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  pyramid play     [--config pyramid.yml] [--layout pyramid] [--seed 42]")
	fmt.Println("  pyramid validate --layout layouts/custom.yaml")
	fmt.Println("  pyramid layouts")
}
