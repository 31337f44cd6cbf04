package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"interaction3d/internal/config"
	"interaction3d/internal/input"
)

func TestWalkthroughScenario(t *testing.T) {
	cfg, err := config.Load(demoConfig)
	require.NoError(t, err)
	in := input.NewState()
	s, err := NewSession(cfg, SessionOptions{Input: in, Log: zaptest.NewLogger(t)})
	require.NoError(t, err)

	sc, err := LoadScenario("../../assets/demo/walkthrough.yaml")
	require.NoError(t, err)

	records, err := s.RunScenario(sc, in)
	require.NoError(t, err)

	kinds := make([]string, 0, len(records))
	for _, r := range records {
		kinds = append(kinds, r.Kind+":"+r.Object)
	}
	assert.Contains(t, kinds, "focus:BrassKey")
	assert.Contains(t, kinds, "focus:Door")
	assert.Contains(t, kinds, "hold-complete:Chest")
	assert.Contains(t, kinds, "hold-complete:Lever")
	assert.NotContains(t, kinds, "hold-cancel:Chest")
}

func TestScenarioExpectationFailure(t *testing.T) {
	cfg, err := config.Load(demoConfig)
	require.NoError(t, err)
	in := input.NewState()
	s, err := NewSession(cfg, SessionOptions{Input: in})
	require.NoError(t, err)

	sc, err := ParseScenario([]byte(`
steps:
  - position: [0, 0, 5]
    repeat: 2
expect:
  items: [ruby]
  active: {Lamp: true}
`))
	require.NoError(t, err)
	assert.Equal(t, defaultScenarioStep, sc.DeltaTime)

	_, err = s.RunScenario(sc, in)
	require.ErrorIs(t, err, ErrExpectation)
	assert.Contains(t, err.Error(), `missing item "ruby"`)
	assert.Contains(t, err.Error(), "Lamp active=false")
}

func TestScenarioUnknownTarget(t *testing.T) {
	cfg, err := config.Load(demoConfig)
	require.NoError(t, err)
	in := input.NewState()
	s, err := NewSession(cfg, SessionOptions{Input: in})
	require.NoError(t, err)

	_, err = s.RunScenario(&Scenario{DeltaTime: 0.1, Steps: []ScenarioStep{{Target: "Nope"}}}, in)
	assert.ErrorContains(t, err, `unknown target "Nope"`)
}

func TestParseScenarioRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"negative dt":     "dt: -1\n",
		"negative repeat": "steps:\n  - repeat: -2\n",
		"both aims":       "steps:\n  - target: Chest\n    look_at: [0, 0, 0]\n",
		"not yaml":        "steps: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScenario([]byte(doc))
			assert.Error(t, err)
		})
	}
}
