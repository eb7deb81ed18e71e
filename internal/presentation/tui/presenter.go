package tui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/muesli/termenv"
)

var (
	slotOrder = []domain.Unit{domain.UnitDay, domain.UnitHour, domain.UnitMinute, domain.UnitSecond}

	confettiColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185", "#facc15"}
	confettiGlyphs = []string{"*", "+", "o", "~", "."}
)

var viewTitles = map[domain.StateName]string{
	domain.StatePending:    "Loading saved date...",
	domain.StateSelectDate: "Pick a target date (yyyy-mm-dd), or 'quit':",
	domain.StateCountdown:  "Counting down ('change' picks another date, 'finish' jumps ahead):",
	domain.StateArrived:    "The date has arrived!",
}

// Terminal is a ports.Presenter that writes to a terminal or any io.Writer.
type Terminal struct {
	mu      sync.Mutex
	out     *termenv.Output
	plain   bool
	render  func(string) (string, error)
	visible map[domain.StateName]bool

	frames     int
	frameDelay time.Duration
	wg         sync.WaitGroup
}

// Option configures the Terminal.
type Option func(*Terminal)

// WithPlain disables colour, markdown rendering and animation.
func WithPlain() Option {
	return func(t *Terminal) {
		t.plain = true
	}
}

// WithRenderer overrides the markdown renderer used for messages.
func WithRenderer(render func(string) (string, error)) Option {
	return func(t *Terminal) {
		t.render = render
	}
}

// WithConfetti sets the number of animation frames and the delay between them.
func WithConfetti(frames int, delay time.Duration) Option {
	return func(t *Terminal) {
		t.frames = frames
		t.frameDelay = delay
	}
}

// NewTerminal creates a presenter writing to w.
func NewTerminal(w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		visible:    make(map[domain.StateName]bool),
		frames:     12,
		frameDelay: 80 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.plain {
		t.out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	} else {
		t.out = termenv.NewOutput(w)
		if t.render == nil {
			t.render = NewRenderer(80)
		}
	}
	return t
}

// Profile returns the colour profile in use.
func (t *Terminal) Profile() termenv.Profile {
	return t.out.Profile
}

func (t *Terminal) Show(view domain.StateName) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.visible[view] = true
	title, ok := viewTitles[view]
	if !ok {
		title = string(view)
	}
	fmt.Fprintln(t.out, t.out.String(title).Bold())
}

func (t *Terminal) Hide(view domain.StateName) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.visible, view)
}

// RenderRemaining writes the four labelled slots. Units missing from parts
// render as zero.
func (t *Terminal) RenderRemaining(parts domain.Parts) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slots := make([]string, 0, len(slotOrder))
	for _, u := range slotOrder {
		n, _ := parts.Get(u)
		value := t.out.String(fmt.Sprintf("%02d", n)).Foreground(t.out.Color("#c084fc")).Bold()
		slots = append(slots, fmt.Sprintf("%s %s", value, slotLabel(u, n)))
	}
	fmt.Fprintln(t.out, "  "+strings.Join(slots, "  "))
}

func slotLabel(u domain.Unit, n int64) string {
	if n == 1 {
		return string(u)
	}
	return string(u) + "s"
}

func (t *Terminal) ShowError(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.render != nil {
		if rendered, err := t.render("> **" + message + "**"); err == nil {
			fmt.Fprint(t.out, rendered)
			return
		}
	}
	fmt.Fprintln(t.out, t.out.String("! "+message).Foreground(t.out.Color("#fb7185")))
}

// Celebrate starts the confetti animation and returns immediately.
func (t *Terminal) Celebrate() {
	if t.plain || t.frames <= 0 {
		t.mu.Lock()
		fmt.Fprintln(t.out, "* * * * *")
		t.mu.Unlock()
		return
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for i := 0; i < t.frames; i++ {
			t.mu.Lock()
			fmt.Fprintln(t.out, t.confettiRow(32))
			t.mu.Unlock()
			time.Sleep(t.frameDelay)
		}
	}()
}

func (t *Terminal) confettiRow(width int) string {
	var sb strings.Builder
	for i := 0; i < width; i++ {
		if rand.IntN(3) != 0 {
			sb.WriteByte(' ')
			continue
		}
		glyph := confettiGlyphs[rand.IntN(len(confettiGlyphs))]
		color := confettiColors[rand.IntN(len(confettiColors))]
		sb.WriteString(t.out.String(glyph).Foreground(t.out.Color(color)).String())
	}
	return sb.String()
}

// Wait blocks until running animations finish.
func (t *Terminal) Wait() {
	t.wg.Wait()
}

// Visible returns whether view is currently shown.
func (t *Terminal) Visible(view domain.StateName) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible[view]
}
