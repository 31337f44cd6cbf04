package world

import (
	"encoding/json"
	"fmt"
	"os"

	"interaction3d/internal/components"
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type shapeDef struct {
	Type  string     `json:"type"`
	Mesh  string     `json:"mesh"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// LoadScene reads a scene file and adds its objects to the world. Unknown
// component types and unregistered scripts are skipped with a warning.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, objDef := range sf.Objects {
		g, err := w.buildObject(objDef)
		if err != nil {
			return err
		}
		objects = append(objects, g)
	}
	for _, g := range objects {
		w.Add(g)
	}
	w.Log.Info("scene loaded", zap.Int("objects", len(w.Scene.GameObjects)))
	return nil
}

func (w *World) buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec(def.Scale)
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, fmt.Errorf("parse component on %q: %w", def.Name, err)
		}

		var err error
		switch header.Type {
		case "Shape":
			err = loadShape(g, raw)
		case "BoxCollider":
			err = loadBoxCollider(g, raw)
		case "SphereCollider":
			err = loadSphereCollider(g, raw)
		case "Script":
			err = w.loadScript(g, raw)
		default:
			w.Log.Warn("unknown component type", zap.String("object", def.Name), zap.String("type", header.Type))
		}
		if err != nil {
			return nil, fmt.Errorf("load %s on %q: %w", header.Type, def.Name, err)
		}
	}

	for _, childDef := range def.Children {
		child, err := w.buildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func loadShape(g *engine.GameObject, raw json.RawMessage) error {
	var def shapeDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	kind := components.ShapeKind(def.Mesh)
	if kind != components.ShapeSphere {
		kind = components.ShapeCube
	}
	g.AddComponent(components.NewShape(kind, vec(def.Size), lookupColor(def.Color)))
	return nil
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewBoxCollider(vec(def.Size))
	col.Offset = vec(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec(def.Offset)
	g.AddComponent(col)
	return nil
}

func (w *World) loadScript(g *engine.GameObject, raw json.RawMessage) error {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		w.Log.Warn("unregistered script", zap.String("object", g.Name), zap.String("script", def.Name))
		return nil
	}
	g.AddComponent(comp)
	return nil
}

// --- Saving ---

// SaveScene writes the scene's root objects, skipping anything tagged
// "Player" (code-managed).
func (w *World) SaveScene(path string) error {
	var sf SceneFile
	for _, g := range w.Scene.GameObjects {
		if g.Parent != nil || g.HasTag("Player") {
			continue
		}
		sf.Objects = append(sf.Objects, objectDef(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func objectDef(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Position: arr(g.Transform.Position),
		Rotation: arr(g.Transform.Rotation),
		Scale:    arr(g.Transform.Scale),
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}
	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			def.Components = append(def.Components, raw)
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, objectDef(child))
	}
	return def
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.Shape:
		def = shapeDef{
			Type:  "Shape",
			Mesh:  string(comp.Kind),
			Size:  arr(comp.Size),
			Color: lookupColorName(comp.Color),
		}

	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr(comp.Size),
			Offset: arr(comp.Offset),
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Offset: arr(comp.Offset),
		}

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
