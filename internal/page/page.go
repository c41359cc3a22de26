// Package page runs the proposal page: who is clicked, which phase the
// page is in and which simulations are running. Rendering and raw input
// are left to the host.
package page

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/confetti"
	"github.com/iburimskiy/valentine/internal/evasive"
	"github.com/iburimskiy/valentine/internal/frame"
	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/notify"
	"github.com/iburimskiy/valentine/internal/scene"
)

// Events receives the actions worth reporting.
type Events interface {
	Send(a notify.Action, detail string) bool
}

// Chime plays the celebration sound and reports its loudness.
type Chime interface {
	Play()
	Level() float64
}

type Page struct {
	events Events
	chime  Chime
	driver *frame.Driver

	viewport geom.Size
	cards    scene.Cards
	yes, no  *scene.Button
	phase    scene.Phase
	dodge    scene.Stopwatch

	control     *evasive.Control
	confettiCfg config.Confetti
	field       *confetti.Field
	hearts      *scene.Hearts
}

// New builds the page for a viewport and starts its loops. events and
// chime may be nil.
func New(viewport geom.Size, rng *rand.Rand, cc config.Confetti, events Events, chime Chime) *Page {
	p := &Page{
		events:      events,
		chime:       chime,
		driver:      frame.NewDriver(),
		yes:         scene.NewButton("Yes"),
		no:          scene.NewButton("No"),
		hearts:      scene.NewHearts(rng),
		confettiCfg: cc,
		field:       confetti.NewField(cc, rng),
	}

	p.control = evasive.New(p.no, config.ResolvePhysics(viewport, geom.Rect{}, false))
	p.control.OnDetach(func(evasive.State) {
		p.dodge.Start(time.Now())
		p.send(notify.ActionNoEscaped, "")
	})
	p.Relayout(viewport)

	p.driver.Schedule(p.hearts)
	p.driver.Schedule(p.control)
	p.driver.Start()

	p.send(notify.ActionOpened, "")
	return p
}

func (p *Page) send(a notify.Action, detail string) {
	if p.events != nil {
		p.events.Send(a, detail)
	}
}

// Relayout places the card for a new viewport and re-resolves the
// physics that depend on it.
func (p *Page) Relayout(viewport geom.Size) {
	p.viewport = viewport
	p.cards = scene.Layout(viewport)
	p.yes.Dock(p.cards.Yes)
	p.no.Dock(p.cards.No)
	p.control.SetPhysics(config.ResolvePhysics(viewport, p.cards.Card, true))
	p.field.Resize(viewport)
}

// Input applies one frame of pointer state to the buttons.
func (p *Page) Input(pointer geom.Vec, pressed, released bool, now time.Time) {
	if p.phase != scene.Proposal {
		return
	}
	if p.yes.Update(pointer, pressed, released) {
		p.Celebrate(now)
	} else if p.no.Update(pointer, pressed, released) {
		p.send(notify.ActionNoCaught, p.no.Label)
	}
}

// Step advances every running simulation by one frame.
func (p *Page) Step(pointer geom.Vec, now time.Time) {
	p.driver.Step(frame.Context{Now: now, Pointer: pointer, Viewport: p.viewport})
}

// Celebrate switches to the celebration card. It only takes effect once.
func (p *Page) Celebrate(now time.Time) {
	if p.phase == scene.Celebration {
		return
	}
	log.Printf("page: %s -> %s", p.phase, scene.Celebration)
	p.phase = scene.Celebration
	p.no.Hide()
	p.dodge.Stop(now)

	detail := ""
	if p.dodge.Started() {
		detail = fmt.Sprintf("after chasing No for %s", formatDuration(p.dodge.Elapsed(now)))
	}
	p.send(notify.ActionYes, detail)

	if p.chime != nil {
		p.chime.Play()
	}
	p.StartConfetti()
}

// StartConfetti launches a fresh burst and (re)starts the confetti loop.
func (p *Page) StartConfetti() {
	p.field.Resize(p.viewport)
	p.field.SpawnBurst(p.confettiCfg.Count)
	p.driver.Schedule(p.field)
}

func (p *Page) Viewport() geom.Size       { return p.viewport }
func (p *Page) Cards() scene.Cards        { return p.cards }
func (p *Page) Yes() *scene.Button        { return p.yes }
func (p *Page) No() *scene.Button         { return p.no }
func (p *Page) Phase() scene.Phase        { return p.phase }
func (p *Page) Hearts() []scene.Heart     { return p.hearts.All() }
func (p *Page) Confetti() *confetti.Field { return p.field }
func (p *Page) Control() *evasive.Control { return p.control }
func (p *Page) Frames() uint64            { return p.driver.Frames() }

// ConfettiRunning reports whether the confetti loop is scheduled.
func (p *Page) ConfettiRunning() bool { return p.driver.Scheduled(p.field) }

// Status is the line shown while the No button is on the run, empty
// otherwise.
func (p *Page) Status(now time.Time) string {
	if p.phase != scene.Proposal || !p.no.Detached() {
		return ""
	}
	return "No has been running for " + formatDuration(p.dodge.Elapsed(now))
}

// ChimeLevel is the current chime loudness, 0 without audio.
func (p *Page) ChimeLevel() float64 {
	if p.chime == nil {
		return 0
	}
	return p.chime.Level()
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
