package game

import (
	"fmt"

	"go.uber.org/zap"

	"interaction3d/internal/components"
	"interaction3d/internal/config"
	"interaction3d/internal/engine"
	_ "interaction3d/internal/interactables"
	"interaction3d/internal/interaction"
	"interaction3d/internal/inventory"
	"interaction3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpawnName is the scene object whose position the player starts at.
const SpawnName = "PlayerSpawn"

// PlayerTag marks the runtime player so scene saves skip it.
const PlayerTag = "Player"

// SessionOptions are the host-side collaborators of a session. Nil Prompt and
// Progress mean nothing is displayed.
type SessionOptions struct {
	Input    interaction.Input
	Prompt   interaction.Prompt
	Progress interaction.ProgressBar
	Log      *zap.Logger
	// Controls enables keyboard and mouse movement on the player.
	Controls bool
}

// Session is a loaded scene with a player able to interact with it. It has no
// window of its own; the demo draws it and the simulator steps it headless.
type Session struct {
	Config    *config.Config
	World     *world.World
	Space     *world.Space
	Player    *engine.GameObject
	FPS       *components.FPSController
	Inventory *inventory.Inventory
	Tracker   *interaction.Tracker

	log *zap.Logger
}

// NewSession loads the catalog and scene named by cfg and spawns the player.
func NewSession(cfg *config.Config, opts SessionOptions) (*Session, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	catalog := inventory.NewCatalog()
	if cfg.Items != "" {
		c, err := inventory.LoadCatalog(cfg.ItemsPath())
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		catalog = c
	}

	w := world.New("Session")
	w.Log = log.Named("world")
	if cfg.Scene != "" {
		if err := w.LoadScene(cfg.ScenePath()); err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}

	ic, err := cfg.Interaction()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		Config: cfg,
		World:  w,
		Space:  world.NewSpace(w),
		log:    log,
	}

	player := engine.NewGameObject("Player")
	player.Tags = []string{PlayerTag}
	s.FPS = components.NewFPSController()
	s.FPS.Enabled = opts.Controls
	if spawn := w.Scene.FindByName(SpawnName); spawn != nil {
		player.Transform.Position = spawn.WorldPosition()
		// Spawn Y rotation turns the default -Z view.
		s.FPS.Yaw += spawn.WorldRotation().Y
	}
	player.AddComponent(s.FPS)
	player.AddComponent(components.NewCamera())
	player.AddComponent(world.NewPlayerCollision())

	s.Inventory = inventory.New(catalog)
	s.Inventory.Log = log.Named("inventory")
	player.AddComponent(s.Inventory)

	s.Tracker, err = interaction.NewTracker(ic, s.Space, opts.Input,
		interaction.WithPrompt(opts.Prompt),
		interaction.WithOrigin(interaction.ObjectOrigin(player)),
		interaction.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	player.AddComponent(s.Tracker)
	s.Player = player

	if opts.Progress != nil {
		bindProgress(w.Scene.GameObjects, opts.Progress)
	}

	w.Add(player)
	w.Start()

	log.Info("session ready",
		zap.String("scene", cfg.ScenePath()),
		zap.Int("objects", len(w.Scene.GameObjects)),
		zap.Int("items", len(catalog.Items())),
		zap.Stringer("mode", ic.Mode),
	)
	return s, nil
}

type progressUser interface {
	UseProgress(interaction.ProgressBar)
}

// bindProgress hands bar to every hold interactable that has none.
func bindProgress(objects []*engine.GameObject, bar interaction.ProgressBar) {
	for _, g := range objects {
		for _, c := range g.Components() {
			if p, ok := c.(progressUser); ok {
				p.UseProgress(bar)
			}
		}
	}
}

// Step advances the scene; the tracker runs as part of the player's update.
func (s *Session) Step(deltaTime float32) {
	s.World.Update(deltaTime)
}

// Apply switches to a reloaded config. Only the detector section takes effect;
// catalog and scene paths are read once.
func (s *Session) Apply(cfg *config.Config) error {
	ic, err := cfg.Interaction()
	if err != nil {
		return err
	}
	if err := s.Tracker.Configure(ic); err != nil {
		return err
	}
	s.Config = cfg
	return nil
}

// Place moves the player and sets its look angles.
func (s *Session) Place(pos rl.Vector3, yaw, pitch float32) {
	s.Player.Transform.Position = pos
	s.FPS.Yaw = yaw
	s.FPS.Pitch = 0
	s.FPS.Look(0, pitch)
}

// FocusName returns the name of the focused object, or "" when nothing is focused.
func (s *Session) FocusName() string {
	f, ok := s.Current()
	if !ok {
		return ""
	}
	if g := s.World.Scene.Resolve(f.Handle); g != nil {
		return g.Name
	}
	return ""
}

func (s *Session) Current() (interaction.Focus, bool) {
	return s.Tracker.Current()
}

// Query is the scan the tracker would make from the player's current pose.
func (s *Session) Query() interaction.Query {
	cfg := s.Tracker.Config()
	origin := interaction.ObjectOrigin(s.Player)
	return interaction.Query{
		Origin:    origin.Position(),
		Direction: origin.Forward(),
		Range:     cfg.Range,
		Radius:    cfg.Radius,
		Mode:      cfg.Mode,
	}
}
