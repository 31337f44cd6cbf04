// Command interactsim runs a scenario against a scene without a window and
// prints every tracker callback. It exits non-zero when loading fails or the
// scenario's expectations are not met.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"interaction3d/internal/config"
	"interaction3d/internal/engine"
	"interaction3d/internal/game"
	"interaction3d/internal/input"
	_ "interaction3d/internal/interactables"
	"interaction3d/internal/logging"
)

func main() {
	configPath := flag.String("config", "assets/demo/config.yaml", "config file")
	scenarioPath := flag.String("scenario", "assets/demo/walkthrough.yaml", "scenario file")
	level := flag.String("level", "", "log level, overrides the config")
	kinds := flag.Bool("kinds", false, "list the behaviours scene files may name and exit")
	flag.Parse()

	if *kinds {
		for _, name := range engine.RegisteredScripts() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*configPath, *scenarioPath, *level); err != nil {
		fmt.Fprintln(os.Stderr, "interactsim:", err)
		os.Exit(1)
	}
}

func run(configPath, scenarioPath, level string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := cfg.LoggerOptions()
	if level != "" {
		opts.Level = level
	}
	log, err := logging.New(opts)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer log.Install()()

	sc, err := game.LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	in := input.NewState()
	s, err := game.NewSession(cfg, game.SessionOptions{
		Input:  in,
		Prompt: logPrompt{log.Named("prompt")},
		Log:    log.Logger,
	})
	if err != nil {
		return err
	}

	records, err := s.RunScenario(sc, in)
	for _, r := range records {
		fmt.Println(r)
	}
	if err != nil {
		return err
	}
	log.Info("scenario passed", zap.String("name", sc.Name), zap.Int("callbacks", len(records)))
	return nil
}

type logPrompt struct{ log *zap.Logger }

func (p logPrompt) Show(text string) { p.log.Debug("show", zap.String("text", text)) }
func (p logPrompt) Hide()            { p.log.Debug("hide") }
