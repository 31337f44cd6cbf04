package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"interaction3d/internal/config"
	"interaction3d/internal/game"
	"interaction3d/internal/logging"
)

func main() {
	configPath := flag.String("config", "assets/demo/config.yaml", "config file")
	flag.Parse()

	// Deployed builds run from the executable's directory; "go run" binaries
	// live in a go-build temp dir and keep the caller's working directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(*configPath) {
			if _, err := os.Stat(filepath.Join(execDir, *configPath)); err == nil {
				_ = os.Chdir(execDir)
			}
		}
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "interactdemo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LoggerOptions())
	if err != nil {
		return err
	}
	defer log.Sync()
	defer log.Install()()

	g, err := game.New(configPath, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		return err
	}
	return g.Run()
}
