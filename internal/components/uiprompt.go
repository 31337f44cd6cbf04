package components

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// UIPrompt shows the focused object's prompt text, fading in and out.
type UIPrompt struct {
	engine.BaseComponent

	FontSize int32
	Color    rl.Color
	FadeTime float32

	text    string
	visible bool
	alpha   float32
	fade    *gween.Tween
}

func NewUIPrompt() *UIPrompt {
	return &UIPrompt{
		FontSize: 22,
		Color:    rl.White,
		FadeTime: 0.15,
	}
}

// Show replaces the text and fades in if hidden.
func (p *UIPrompt) Show(text string) {
	p.text = text
	if p.visible {
		return
	}
	p.visible = true
	p.fadeTo(1, ease.OutQuad)
}

// Hide fades out. The text stays until the next Show so the fade has something to draw.
func (p *UIPrompt) Hide() {
	if !p.visible {
		return
	}
	p.visible = false
	p.fadeTo(0, ease.InQuad)
}

func (p *UIPrompt) fadeTo(target float32, fn ease.TweenFunc) {
	if p.FadeTime <= 0 {
		p.alpha = target
		p.fade = nil
		return
	}
	p.fade = gween.New(p.alpha, target, p.FadeTime, fn)
}

func (p *UIPrompt) Text() string   { return p.text }
func (p *UIPrompt) Visible() bool  { return p.visible }
func (p *UIPrompt) Alpha() float32 { return p.alpha }

func (p *UIPrompt) Update(deltaTime float32) {
	if p.fade == nil {
		return
	}
	v, done := p.fade.Update(deltaTime)
	p.alpha = v
	if done {
		p.fade = nil
	}
}

// Draw renders the text centered in rect.
func (p *UIPrompt) Draw(rect rl.Rectangle) {
	if p.alpha <= 0 || p.text == "" {
		return
	}
	width := float32(rl.MeasureText(p.text, p.FontSize))
	x := rect.X + (rect.Width-width)/2
	y := rect.Y + (rect.Height-float32(p.FontSize))/2

	rl.DrawText(p.text, int32(x)+2, int32(y)+2, p.FontSize, rl.Fade(rl.Black, p.alpha*0.6))
	rl.DrawText(p.text, int32(x), int32(y), p.FontSize, rl.Fade(p.Color, p.alpha))
}
