package game

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"interaction3d/internal/components"
	"interaction3d/internal/config"
	"interaction3d/internal/engine"
	"interaction3d/internal/input"
	"interaction3d/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Game is the windowed demo: a Session driven by the keyboard, drawn with a HUD,
// and reconfigured when its config file changes.
type Game struct {
	*Session

	HUD       *HUD
	Keyboard  *input.Keyboard
	DebugMode bool

	configPath string
	log        *logging.Logger
	watcher    *config.Watcher

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads the config at configPath and builds the session and HUD.
func New(configPath string, log *logging.Logger) (*Game, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}

	g := &Game{
		Keyboard:   input.NewKeyboard(bindings),
		configPath: configPath,
		log:        log,
	}
	g.HUD = NewHUD(nil)

	g.Session, err = NewSession(cfg, SessionOptions{
		Input:    g.Keyboard,
		Prompt:   g.HUD.Prompt,
		Progress: g.HUD.Progress,
		Log:      log.Logger,
		Controls: true,
	})
	if err != nil {
		return nil, err
	}
	g.HUD.Inventory.Items = g.Inventory.DisplayNames
	return g, nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Interaction Demo")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()
	applyHUDStyle()

	w, err := config.Watch(g.configPath, g.log.Logger)
	if err != nil {
		g.log.Warn("config hot reload disabled", zap.Error(err))
	} else {
		g.watcher = w
		defer w.Close()
	}

	for !rl.WindowShouldClose() {
		g.pollConfig()
		g.Update()
		g.Draw()
	}
	return nil
}

// pollConfig applies at most one reloaded config between steps.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if ok {
			g.applyConfig(cfg)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config reload rejected", zap.Error(err))
		}
	default:
	}
}

func (g *Game) applyConfig(cfg *config.Config) {
	if err := g.Apply(cfg); err != nil {
		g.log.Warn("config reload rejected", zap.Error(err))
		return
	}
	if err := g.log.SetLevel(cfg.Logging.Level); err != nil {
		g.log.Warn("log level unchanged", zap.Error(err))
	}
	if b, err := cfg.Bindings(); err == nil {
		g.Keyboard.Bindings = b
	}
	g.log.Info("config reloaded", zap.String("path", g.configPath))
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.saveSnapshot()
	}

	g.Step(deltaTime)
	g.HUD.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// saveSnapshot writes the current scene state next to the scene file.
func (g *Game) saveSnapshot() {
	path := g.Config.ScenePath()
	if path == "" {
		path = "scene.json"
	}
	path = strings.TrimSuffix(path, ".json") + ".snapshot.json"
	if err := g.World.SaveScene(path); err != nil {
		g.log.Error("snapshot failed", zap.Error(err))
		return
	}
	g.log.Info("snapshot saved", zap.String("path", path))
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	rl.DrawGrid(40, 1)
	g.World.Draw()
	if g.DebugMode {
		g.drawDebug3D()
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.HUD.Draw()
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Mouse to look, E to interact", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 debug view, F5 save snapshot", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if !g.DebugMode {
		return
	}
	cfg := g.Tracker.Config()
	focus := g.FocusName()
	if focus == "" {
		focus = "-"
	}
	lines := []string{
		fmt.Sprintf("Mode: %s  Range: %.2f  Radius: %.2f", cfg.Mode, cfg.Range, cfg.Radius),
		fmt.Sprintf("Hold cancel: %s", cfg.HoldCancel),
		fmt.Sprintf("Focus: %s  Holding: %t", focus, g.Tracker.Holding()),
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs),
	}
	for i, l := range lines {
		rl.DrawText(l, 10, int32(85+20*i), 16, rl.Green)
	}
}

// drawDebug3D shows the scan and every collider it touches.
func (g *Game) drawDebug3D() {
	q := g.Query()
	end := rl.Vector3Add(q.Origin, rl.Vector3Scale(q.Direction, q.Range))
	rl.DrawLine3D(q.Origin, end, rl.Yellow)
	for _, hit := range g.Space.Hits(q) {
		rl.DrawSphere(hit.Point, 0.05, rl.Red)
	}
}
