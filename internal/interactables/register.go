package interactables

import (
	"go.uber.org/zap"

	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"
)

var (
	_ interaction.Interactable = (*Instant)(nil)
	_ interaction.Interactable = (*Key)(nil)
	_ interaction.Interactable = (*Toggle)(nil)
	_ interaction.Interactable = (*Switch)(nil)
	_ interaction.Interactable = (*Door)(nil)
	_ interaction.Holdable     = (*Hold)(nil)
	_ interaction.Holdable     = (*Chest)(nil)
	_ interaction.Holdable     = (*HoldToggle)(nil)
	_ interaction.Tagged       = (*HoldToggle)(nil)
	_ Animator                 = (*ParamAnimator)(nil)
)

func init() {
	engine.RegisterScript("Instant", instantFactory, instantSerializer)
	engine.RegisterScript("Key", keyFactory, keySerializer)
	engine.RegisterScript("Toggle", toggleFactory, toggleSerializer)
	engine.RegisterScript("Switch", switchFactory, switchSerializer)
	engine.RegisterScript("Door", doorFactory, doorSerializer)
	engine.RegisterScript("Hold", holdFactory, holdSerializer)
	engine.RegisterScript("Chest", chestFactory, chestSerializer)
	engine.RegisterScript("HoldToggle", holdToggleFactory, holdToggleSerializer)
	engine.RegisterScript("Animator", func(map[string]any) engine.Component { return NewParamAnimator() }, nil)
}

type props map[string]any

func (p props) str(key, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

func (p props) float(key string, fallback float32) float32 {
	if v, ok := p[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func (p props) flag(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p props) base(b *Base) {
	b.Label = p.str("label", b.Label)
	b.PointName = p.str("point", "")
}

func (p props) script() *ScriptEffect {
	src := p.str("script", "")
	if src == "" {
		return nil
	}
	s, err := NewScriptEffect(src)
	if err != nil {
		zap.L().Named("interactables").Error("script effect disabled", zap.Error(err))
		return nil
	}
	return s
}

func (p props) labels() Labels {
	return Labels{WhenOn: p.str("onLabel", ""), WhenOff: p.str("offLabel", "")}
}

func (p props) lock() Lock {
	item := p.str("requiredItem", "")
	return Lock{
		Locked:       p.flag("locked", item != ""),
		RequiredItem: item,
		Prompt:       p.str("lockedPrompt", ""),
	}
}

func parseInstantMode(s string) InstantMode {
	switch s {
	case "button":
		return ModeButton
	case "custom":
		return ModeCustom
	default:
		return ModePickup
	}
}

func instantFactory(raw map[string]any) engine.Component {
	p := props(raw)
	i := NewInstant(parseInstantMode(p.str("mode", "pickup")))
	p.base(&i.Base)
	i.ItemID = p.str("item", "")
	i.DestroyOnPickup = p.flag("destroy", false)
	i.Trigger = p.str("trigger", i.Trigger)
	i.Script = p.script()
	return i
}

func instantSerializer(c engine.Component) map[string]any {
	i, ok := c.(*Instant)
	if !ok {
		return nil
	}
	out := map[string]any{
		"label":   i.Label,
		"mode":    i.Mode.String(),
		"item":    i.ItemID,
		"destroy": i.DestroyOnPickup,
		"trigger": i.Trigger,
	}
	if i.Script != nil {
		out["script"] = i.Script.Source
	}
	return out
}

func keyFactory(raw map[string]any) engine.Component {
	p := props(raw)
	k := NewKey(p.str("item", ""))
	p.base(&k.Base)
	return k
}

func keySerializer(c engine.Component) map[string]any {
	k, ok := c.(*Key)
	if !ok {
		return nil
	}
	return map[string]any{"label": k.Label, "item": k.ItemID}
}

func (p props) toggle(t *Toggle) {
	p.base(&t.Base)
	t.State.On = p.flag("on", false)
	t.Labels = p.labels()
	t.VisualName = p.str("visual", "")
	t.Script = p.script()
}

func toggleProps(t *Toggle) map[string]any {
	out := map[string]any{
		"label":    t.Label,
		"on":       t.State.On,
		"onLabel":  t.Labels.WhenOn,
		"offLabel": t.Labels.WhenOff,
		"visual":   t.VisualName,
	}
	if t.Script != nil {
		out["script"] = t.Script.Source
	}
	return out
}

func toggleFactory(raw map[string]any) engine.Component {
	t := NewToggle()
	props(raw).toggle(t)
	return t
}

func toggleSerializer(c engine.Component) map[string]any {
	t, ok := c.(*Toggle)
	if !ok {
		return nil
	}
	return toggleProps(t)
}

func switchFactory(raw map[string]any) engine.Component {
	s := NewSwitch()
	props(raw).toggle(&s.Toggle)
	return s
}

func switchSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Switch)
	if !ok {
		return nil
	}
	return toggleProps(&s.Toggle)
}

func doorFactory(raw map[string]any) engine.Component {
	p := props(raw)
	d := NewDoor()
	p.toggle(&d.Toggle)
	d.Lock = p.lock()
	d.PivotName = p.str("pivot", "")
	d.OpenAngle = p.float("openAngle", d.OpenAngle)
	d.SwingTime = p.float("swingTime", d.SwingTime)
	d.OpenParam = p.str("openParam", d.OpenParam)
	return d
}

func doorSerializer(c engine.Component) map[string]any {
	d, ok := c.(*Door)
	if !ok {
		return nil
	}
	out := toggleProps(&d.Toggle)
	out["locked"] = d.Lock.Locked
	out["requiredItem"] = d.Lock.RequiredItem
	out["lockedPrompt"] = d.Lock.Prompt
	out["pivot"] = d.PivotName
	out["openAngle"] = d.OpenAngle
	out["swingTime"] = d.SwingTime
	out["openParam"] = d.OpenParam
	return out
}

func (p props) hold(h *Hold) {
	p.base(&h.Base)
	h.Duration = p.float("duration", h.Duration)
	h.ActiveParam = p.str("activeParam", h.ActiveParam)
	h.Script = p.script()
}

func holdProps(h *Hold) map[string]any {
	out := map[string]any{
		"label":       h.Label,
		"duration":    h.Duration,
		"activeParam": h.ActiveParam,
	}
	if h.Script != nil {
		out["script"] = h.Script.Source
	}
	return out
}

func holdFactory(raw map[string]any) engine.Component {
	h := NewHold()
	props(raw).hold(h)
	return h
}

func holdSerializer(c engine.Component) map[string]any {
	h, ok := c.(*Hold)
	if !ok {
		return nil
	}
	return holdProps(h)
}

func chestFactory(raw map[string]any) engine.Component {
	p := props(raw)
	c := NewChest()
	p.hold(&c.Hold)
	c.RewardItem = p.str("reward", "")
	c.OpenTrigger = p.str("openTrigger", c.OpenTrigger)
	return c
}

func chestSerializer(c engine.Component) map[string]any {
	ch, ok := c.(*Chest)
	if !ok {
		return nil
	}
	out := holdProps(&ch.Hold)
	out["reward"] = ch.RewardItem
	out["openTrigger"] = ch.OpenTrigger
	return out
}

func holdToggleFactory(raw map[string]any) engine.Component {
	p := props(raw)
	h := NewHoldToggle()
	p.base(&h.Base)
	h.Duration = p.float("duration", h.Duration)
	h.State.On = p.flag("on", false)
	h.Labels = p.labels()
	h.Lock = p.lock()
	h.VisualName = p.str("visual", "")
	return h
}

func holdToggleSerializer(c engine.Component) map[string]any {
	h, ok := c.(*HoldToggle)
	if !ok {
		return nil
	}
	return map[string]any{
		"label":        h.Label,
		"duration":     h.Duration,
		"on":           h.State.On,
		"onLabel":      h.Labels.WhenOn,
		"offLabel":     h.Labels.WhenOff,
		"locked":       h.Lock.Locked,
		"requiredItem": h.Lock.RequiredItem,
		"lockedPrompt": h.Lock.Prompt,
		"visual":       h.VisualName,
	}
}
