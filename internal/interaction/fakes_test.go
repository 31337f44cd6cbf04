package interaction

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeSpace struct {
	results []engine.Handle
	targets map[engine.Handle]Interactable
	owners  map[engine.Handle]engine.Handle
	queries []Query
}

func newFakeSpace() *fakeSpace {
	return &fakeSpace{
		targets: map[engine.Handle]Interactable{},
		owners:  map[engine.Handle]engine.Handle{},
	}
}

func (s *fakeSpace) add(h engine.Handle, i Interactable) {
	s.targets[h] = i
	s.results = append(s.results, h)
}

// alias makes h resolve to the owner's interactable, as a second collider would.
func (s *fakeSpace) alias(h, owner engine.Handle) {
	s.owners[h] = owner
	s.results = append(s.results, h)
}

func (s *fakeSpace) remove(h engine.Handle) {
	delete(s.targets, h)
	kept := s.results[:0]
	for _, r := range s.results {
		if r != h {
			kept = append(kept, r)
		}
	}
	s.results = kept
}

func (s *fakeSpace) Query(q Query) []engine.Handle {
	s.queries = append(s.queries, q)
	return append([]engine.Handle(nil), s.results...)
}

func (s *fakeSpace) Resolve(h engine.Handle) (Target, bool) {
	if owner, ok := s.owners[h]; ok {
		h = owner
	}
	i, ok := s.targets[h]
	if !ok {
		return Target{}, false
	}
	return Target{Handle: h, Interactable: i}, true
}

type fakeInput struct {
	pressed, held, released bool
}

func (in *fakeInput) Pressed(string) bool  { return in.pressed }
func (in *fakeInput) Held(string) bool     { return in.held }
func (in *fakeInput) Released(string) bool { return in.released }

func (in *fakeInput) press()   { *in = fakeInput{pressed: true, held: true} }
func (in *fakeInput) hold()    { *in = fakeInput{held: true} }
func (in *fakeInput) release() { *in = fakeInput{released: true} }
func (in *fakeInput) idle()    { *in = fakeInput{} }

type fakePrompt struct {
	shown []string
	hides int
}

func (p *fakePrompt) Show(text string) { p.shown = append(p.shown, text) }
func (p *fakePrompt) Hide()            { p.hides++ }

type fixedOrigin struct {
	pos, fwd rl.Vector3
}

func (o fixedOrigin) Position() rl.Vector3 { return o.pos }
func (o fixedOrigin) Forward() rl.Vector3  { return o.fwd }

var atOrigin = fixedOrigin{fwd: rl.Vector3{Z: -1}}

// recorder logs every callback in order, shared across interactables.
type recorder struct {
	events []string
}

func (r *recorder) add(e string) { r.events = append(r.events, e) }

type fakeInteractable struct {
	name      string
	point     rl.Vector3
	prompt    string
	rec       *recorder
	interacts int
	focuses   int
	defocuses int
}

func (f *fakeInteractable) InteractionPoint() rl.Vector3 { return f.point }
func (f *fakeInteractable) PromptText() string           { return f.prompt }
func (f *fakeInteractable) Interact(*engine.GameObject) {
	f.interacts++
	f.rec.add(f.name + ".interact")
}
func (f *fakeInteractable) OnFocus() {
	f.focuses++
	f.rec.add(f.name + ".focus")
}
func (f *fakeInteractable) OnDefocus() {
	f.defocuses++
	f.rec.add(f.name + ".defocus")
}

type fakeHoldable struct {
	fakeInteractable
	duration  float32
	starts    int
	progress  []float32
	completes int
	cancels   int
}

func (f *fakeHoldable) HoldDuration() float32 { return f.duration }
func (f *fakeHoldable) OnHoldStart(*engine.GameObject) {
	f.starts++
	f.rec.add(f.name + ".hold_start")
}
func (f *fakeHoldable) OnHoldProgress(p float32) { f.progress = append(f.progress, p) }
func (f *fakeHoldable) OnHoldComplete(*engine.GameObject) {
	f.completes++
	f.rec.add(f.name + ".hold_complete")
}
func (f *fakeHoldable) OnHoldCancelled() {
	f.cancels++
	f.rec.add(f.name + ".hold_cancel")
}

func at(z float32) rl.Vector3 { return rl.Vector3{Z: -z} }

func h(i uint32) engine.Handle { return engine.Handle{Index: i, Generation: 1} }
