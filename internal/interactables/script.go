package interactables

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"interaction3d/internal/engine"
)

// ScriptEffect runs a tengo script as an interaction side effect. The script
// sees these globals on every run:
//
//	event   "interact", "state", "hold_complete"
//	actor   name of the acting object, or ""
//	on      toggle state for "state" runs
//	emit(name)          fires Emitted on the effect
//	add_item(id)        adds id to the actor's inventory
//	set_active(bool)    activates or deactivates the owner
//	log(args...)        logs at info level
//
// Script failures are logged and otherwise ignored.
type ScriptEffect struct {
	Source string

	// Emitted fires for every emit() call made by the script.
	Emitted engine.EventWithArg[string]

	compiled *tengo.Compiled
	call     scriptCall
}

type scriptCall struct {
	owner *engine.GameObject
	actor *engine.GameObject
	log   *zap.Logger
}

// NewScriptEffect compiles src.
func NewScriptEffect(src string) (*ScriptEffect, error) {
	s := &ScriptEffect{Source: src}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ScriptEffect) compile() error {
	script := tengo.NewScript([]byte(s.Source))
	_ = script.Add("event", "")
	_ = script.Add("actor", "")
	_ = script.Add("on", false)
	_ = script.Add("emit", &tengo.UserFunction{Name: "emit", Value: s.emit})
	_ = script.Add("add_item", &tengo.UserFunction{Name: "add_item", Value: s.addItem})
	_ = script.Add("set_active", &tengo.UserFunction{Name: "set_active", Value: s.setActive})
	_ = script.Add("log", &tengo.UserFunction{Name: "log", Value: s.logLine})

	script.SetImports(stdlib.GetModuleMap("fmt", "math", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("compile interaction script: %w", err)
	}
	s.compiled = compiled
	return nil
}

// Run executes the script for one event.
func (s *ScriptEffect) Run(event string, owner, actor *engine.GameObject, on bool, log *zap.Logger) error {
	if s == nil {
		return nil
	}
	if s.compiled == nil {
		if err := s.compile(); err != nil {
			return err
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	s.call = scriptCall{owner: owner, actor: actor, log: log}
	defer func() { s.call = scriptCall{} }()

	if err := s.compiled.Set("event", event); err != nil {
		return err
	}
	if err := s.compiled.Set("actor", actorName(actor)); err != nil {
		return err
	}
	if err := s.compiled.Set("on", on); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("run interaction script (%s): %w", event, err)
	}
	return nil
}

// runLogged runs the script and logs instead of returning the error.
func (s *ScriptEffect) runLogged(event string, owner, actor *engine.GameObject, on bool, log *zap.Logger) {
	if s == nil {
		return
	}
	if err := s.Run(event, owner, actor, on, log); err != nil {
		log.Error("script effect failed", zap.String("event", event), zap.Error(err))
	}
}

func (s *ScriptEffect) emit(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 {
		return tengo.FalseValue, nil
	}
	name := strings.TrimSpace(objectString(args[0]))
	if name == "" {
		return tengo.FalseValue, nil
	}
	s.Emitted.Invoke(name)
	return tengo.TrueValue, nil
}

func (s *ScriptEffect) addItem(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 {
		return tengo.FalseValue, nil
	}
	id := strings.TrimSpace(objectString(args[0]))
	inv, ok := holderOf(s.call.actor)
	if id == "" || !ok {
		return tengo.FalseValue, nil
	}
	inv.AddItem(id)
	return tengo.TrueValue, nil
}

func (s *ScriptEffect) setActive(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 || s.call.owner == nil {
		return tengo.FalseValue, nil
	}
	s.call.owner.SetActive(!args[0].IsFalsy())
	return tengo.TrueValue, nil
}

func (s *ScriptEffect) logLine(args ...tengo.Object) (tengo.Object, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, objectString(a))
	}
	if s.call.log != nil {
		s.call.log.Info("script", zap.String("message", strings.Join(parts, " ")))
	}
	return tengo.UndefinedValue, nil
}

func objectString(o tengo.Object) string {
	if o == nil {
		return ""
	}
	if s, ok := o.(*tengo.String); ok {
		return s.Value
	}
	return o.String()
}
