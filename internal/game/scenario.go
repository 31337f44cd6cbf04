package game

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"interaction3d/internal/input"
	"interaction3d/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrExpectation is returned by RunScenario when the final state differs from
// the scenario's expectations.
var ErrExpectation = errors.New("scenario expectation failed")

const defaultScenarioStep = float32(1.0 / 60.0)

// Scenario is a scripted sequence of player poses and input samples.
type Scenario struct {
	Name string `yaml:"name"`
	// DeltaTime is the seconds simulated per step.
	DeltaTime float32        `yaml:"dt"`
	Steps     []ScenarioStep `yaml:"steps"`
	Expect    Expectation    `yaml:"expect"`
}

// ScenarioStep changes the pose and input, then runs Repeat steps. Fields left
// out keep their previous value; input actions stay down until released.
type ScenarioStep struct {
	Note     string      `yaml:"note"`
	Position *[3]float32 `yaml:"position"`
	// Target aims the player at a named scene object; LookAt at a point.
	Target string          `yaml:"target"`
	LookAt *[3]float32     `yaml:"look_at"`
	Yaw    *float32        `yaml:"yaw"`
	Pitch  *float32        `yaml:"pitch"`
	Input  map[string]bool `yaml:"input"`
	Repeat int             `yaml:"repeat"`
}

// Expectation is checked after the last step.
type Expectation struct {
	Items  []string        `yaml:"items"`
	Focus  *string         `yaml:"focus"`
	Active map[string]bool `yaml:"active"`
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return sc, nil
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if sc.DeltaTime < 0 {
		return nil, fmt.Errorf("dt must not be negative, got %v", sc.DeltaTime)
	}
	if sc.DeltaTime == 0 {
		sc.DeltaTime = defaultScenarioStep
	}
	for i, st := range sc.Steps {
		if st.Repeat < 0 {
			return nil, fmt.Errorf("step %d: repeat must not be negative", i)
		}
		if st.Target != "" && st.LookAt != nil {
			return nil, fmt.Errorf("step %d: target and look_at are exclusive", i)
		}
	}
	return &sc, nil
}

// Record is one tracker callback observed during a scenario run.
type Record struct {
	Step   int
	Kind   string
	Object string
}

func (r Record) String() string {
	return fmt.Sprintf("%d %s %s", r.Step, r.Kind, r.Object)
}

// RunScenario plays sc against the session, sampling input into in. It
// returns every tracker callback in order and fails when a step names an
// unknown object or the expectations are not met.
func (s *Session) RunScenario(sc *Scenario, in *input.State) ([]Record, error) {
	var (
		records []Record
		step    int
	)
	note := func(kind string) func(interaction.Focus) {
		return func(f interaction.Focus) {
			r := Record{Step: step, Kind: kind, Object: s.nameOf(f)}
			records = append(records, r)
			s.log.Info("callback", zap.Int("step", r.Step), zap.String("kind", r.Kind), zap.String("object", r.Object))
		}
	}
	s.Tracker.FocusChanged.AddListener(note("focus"))
	s.Tracker.HoldStarted.AddListener(note("hold-start"))
	s.Tracker.HoldCompleted.AddListener(note("hold-complete"))
	s.Tracker.HoldCancelled.AddListener(note("hold-cancel"))

	for i, st := range sc.Steps {
		if err := s.pose(st); err != nil {
			return records, fmt.Errorf("scenario step %d: %w", i, err)
		}
		for action, down := range st.Input {
			in.Set(action, down)
		}
		if st.Note != "" {
			s.log.Info(st.Note, zap.Int("step", step))
		}
		for n := max(st.Repeat, 1); n > 0; n-- {
			step++
			s.Step(sc.DeltaTime)
			in.Advance()
		}
	}
	return records, s.check(sc.Expect)
}

func (s *Session) nameOf(f interaction.Focus) string {
	if f.Interactable == nil {
		return "none"
	}
	if g := s.World.Scene.Resolve(f.Handle); g != nil {
		return g.Name
	}
	return f.Handle.String()
}

func (s *Session) pose(st ScenarioStep) error {
	if st.Position != nil {
		s.Player.Transform.Position = rl.Vector3{X: st.Position[0], Y: st.Position[1], Z: st.Position[2]}
	}
	switch {
	case st.Target != "":
		g := s.World.Scene.FindByName(st.Target)
		if g == nil {
			return fmt.Errorf("unknown target %q", st.Target)
		}
		s.Aim(s.Player.Transform.Position, g.WorldPosition())
	case st.LookAt != nil:
		s.Aim(s.Player.Transform.Position, rl.Vector3{X: st.LookAt[0], Y: st.LookAt[1], Z: st.LookAt[2]})
	}
	if st.Yaw != nil {
		s.FPS.Yaw = *st.Yaw
	}
	if st.Pitch != nil {
		s.FPS.Pitch = 0
		s.FPS.Look(0, *st.Pitch)
	}
	return nil
}

// Aim places the player's feet at feet and turns its eye toward target.
func (s *Session) Aim(feet, target rl.Vector3) {
	eye := feet
	eye.Y += s.FPS.EyeHeight
	d := rl.Vector3Subtract(target, eye)
	yaw := math.Atan2(float64(d.Z), float64(d.X)) * 180 / math.Pi
	pitch := math.Atan2(float64(d.Y), math.Hypot(float64(d.X), float64(d.Z))) * 180 / math.Pi
	s.Place(feet, float32(yaw), float32(pitch))
}

func (s *Session) check(want Expectation) error {
	var problems []string
	for _, id := range want.Items {
		if !s.Inventory.HasItem(id) {
			problems = append(problems, fmt.Sprintf("missing item %q", id))
		}
	}
	if want.Focus != nil {
		if got := s.FocusName(); got != *want.Focus {
			problems = append(problems, fmt.Sprintf("focus is %q, want %q", got, *want.Focus))
		}
	}
	names := make([]string, 0, len(want.Active))
	for name := range want.Active {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		g := s.World.Scene.FindByName(name)
		switch {
		case g == nil:
			problems = append(problems, fmt.Sprintf("no object %q", name))
		case g.ActiveInHierarchy() != want.Active[name]:
			problems = append(problems, fmt.Sprintf("%s active=%t, want %t", name, g.ActiveInHierarchy(), want.Active[name]))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrExpectation, strings.Join(problems, "; "))
	}
	return nil
}
