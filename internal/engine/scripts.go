package engine

import (
	"fmt"
	"slices"
	"sync"
)

// ScriptFactory builds a component from the props stored in a scene file.
type ScriptFactory func(props map[string]any) Component

// ScriptSerializer returns the props for c, or nil when c is not the kind of
// component it handles.
type ScriptSerializer func(c Component) map[string]any

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
}

var (
	scriptMu       sync.RWMutex
	scriptRegistry = map[string]scriptEntry{}
)

// RegisterScript makes a component kind loadable from scene files under name.
// A nil serializer means the component is not written back on save. It panics
// on a duplicate name, so registration belongs in init.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	if factory == nil {
		panic(fmt.Sprintf("script %q registered without a factory", name))
	}
	scriptMu.Lock()
	defer scriptMu.Unlock()
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = scriptEntry{factory: factory, serializer: serializer}
}

// CreateScript returns nil for an unknown name.
func CreateScript(name string, props map[string]any) Component {
	scriptMu.RLock()
	entry, ok := scriptRegistry[name]
	scriptMu.RUnlock()
	if !ok {
		return nil
	}
	if props == nil {
		props = map[string]any{}
	}
	return entry.factory(props)
}

// SerializeScript finds the registered kind of c. Names are tried in sorted
// order so the result does not depend on map iteration.
func SerializeScript(c Component) (string, map[string]any, bool) {
	scriptMu.RLock()
	defer scriptMu.RUnlock()
	for _, name := range sortedScriptNames() {
		entry := scriptRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredScripts returns every registered name, sorted.
func RegisteredScripts() []string {
	scriptMu.RLock()
	defer scriptMu.RUnlock()
	return sortedScriptNames()
}

func sortedScriptNames() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
