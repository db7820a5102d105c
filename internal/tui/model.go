// Package tui implements the demo pane host: a bubbletea program whose
// window tree exercises the centering engine end to end. Terminal resizes
// become frame.resized events, window keys drive splits and buffer swaps,
// and the view paints margins, gutters, minimap, and switch labels the way
// the engine left them.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/centerpane/centerpane/internal/classify"
	"github.com/centerpane/centerpane/internal/config"
	"github.com/centerpane/centerpane/internal/event"
	"github.com/centerpane/centerpane/internal/host"
	"github.com/centerpane/centerpane/internal/linenum"
	"github.com/centerpane/centerpane/internal/logging"
	"github.com/centerpane/centerpane/internal/minimap"
	"github.com/centerpane/centerpane/internal/mode"
	"github.com/centerpane/centerpane/internal/reconcile"
	"github.com/centerpane/centerpane/internal/switchlabel"
)

// ConfigReloadedMsg asks the model to re-read configuration. The config
// watcher sends it from outside the update loop; the snapshot swap itself
// happens here, between reconcile passes.
type ConfigReloadedMsg struct{}

// minSplitWidth keeps windows wide enough to stay selectable; narrower
// windows are also excluded from centering by the built-in predicate.
const minSplitWidth = 8

// Model is the bubbletea model for the demo host.
type Model struct {
	cfg *config.Config
	log *logging.Logger

	bus    *event.Bus
	frame  *host.Frame
	gutter *linenum.Renderer
	mmap   *minimap.Minimap
	labels *switchlabel.Labeler
	rec    *reconcile.Reconciler
	ctrl   *mode.Controller

	keys KeyMap
	help help.Model

	active  int // index of the focused window
	width   int
	height  int
	ready   bool
	nextBuf int
	status  string
}

// NewModel wires the host, collaborators, and centering engine together
// from a validated configuration.
func NewModel(cfg *config.Config, log *logging.Logger) (Model, error) {
	bus := event.NewBus()
	frame := host.NewFrame(80, scratchBuffer(), bus)

	gutter := linenum.NewRenderer()
	if cfg.Gutter.Enabled {
		gutter.Enable()
	}
	mmap := minimap.New(frame)
	labels := switchlabel.New(frame)

	classifier, err := buildClassifier(cfg, mmap)
	if err != nil {
		return Model{}, fmt.Errorf("invalid ignore rules: %w", err)
	}

	rec := reconcile.New(frame, classifier, cfg.Centering.VisibleWidth, gutter, log)
	ctrl := mode.NewController(bus, frame, rec, gutter, labels, log)

	m := Model{
		cfg:     cfg,
		log:     log.With("component", "tui"),
		bus:     bus,
		frame:   frame,
		gutter:  gutter,
		mmap:    mmap,
		labels:  labels,
		rec:     rec,
		ctrl:    ctrl,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		nextBuf: 1,
	}
	if cfg.Centering.Enabled {
		ctrl.Enable()
	}
	return m, nil
}

// buildClassifier compiles the configured ignore rules, adding the
// built-in too-narrow predicate, and pairs them with the minimap state.
func buildClassifier(cfg *config.Config, mmap *minimap.Minimap) (*classify.Classifier, error) {
	narrow := classify.PredicateFunc(func(w *host.Window) bool {
		return w.Width() < minSplitWidth
	})
	rules, err := classify.CompileRules(
		cfg.Centering.IgnoreNamePatterns,
		cfg.Centering.IgnoreModeTags,
		[]classify.Predicate{narrow},
	)
	if err != nil {
		return nil, err
	}
	return classify.NewClassifier(rules, mmap), nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		firstSize := !m.ready
		m.ready = true
		// The frame publishes frame.resized; the reconciler listens.
		m.frame.Resize(msg.Width)
		m.redrawGutters()
		if firstSize && m.cfg.Minimap.Enabled {
			m.attachMinimap()
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.reloadConfig(), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While switch labels are up, the next key selects a window.
	if m.labels.Active() {
		return m.selectByLabel(msg), nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Disable()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Split):
		m.splitActive()

	case key.Matches(msg, m.keys.Close):
		m.closeActive()

	case key.Matches(msg, m.keys.NextWindow):
		if n := len(m.frame.Windows()); n > 0 {
			m.active = (m.active + 1) % n
		}

	case key.Matches(msg, m.keys.ToggleCenter):
		m.ctrl.Toggle()
		m.redrawGutters()
		m.status = ""

	case key.Matches(msg, m.keys.ToggleGutter):
		if m.gutter.Active() {
			m.gutter.Disable()
		} else {
			m.gutter.Enable()
		}
		m.redrawGutters()
		if m.ctrl.Enabled() {
			// The fallback policy depends on gutter activity.
			m.rec.All()
		}

	case key.Matches(msg, m.keys.ToggleMinimap):
		if m.mmap.Active() {
			m.mmap.Detach()
		} else {
			m.attachMinimap()
		}

	case key.Matches(msg, m.keys.SwitchWindow):
		m.labels.ShowLabels()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// selectByLabel resolves a pending label selection: the pressed letter
// focuses the matching window, anything else just dismisses the labels.
func (m Model) selectByLabel(msg tea.KeyMsg) Model {
	if len(msg.Runes) == 1 {
		idx := int(msg.Runes[0] - 'a')
		if idx >= 0 && idx < len(m.frame.Windows()) {
			m.active = idx
		}
	}
	m.labels.ClearLabels()
	return m
}

func (m *Model) splitActive() {
	wins := m.frame.Windows()
	if m.active >= len(wins) {
		return
	}
	target := wins[m.active]
	if target.Width() < 2*minSplitWidth {
		m.status = "window too narrow to split"
		return
	}
	buf := sampleBuffer(m.nextBuf)
	m.nextBuf++
	if m.frame.SplitRight(target, buf) != nil {
		m.redrawGutters()
	}
}

func (m *Model) closeActive() {
	wins := m.frame.Windows()
	if m.active >= len(wins) {
		return
	}
	if m.mmap.Active() && wins[m.active] == m.mmap.Window() {
		m.mmap.Detach()
	} else {
		m.frame.Close(wins[m.active])
	}
	if m.active >= len(m.frame.Windows()) {
		m.active = len(m.frame.Windows()) - 1
	}
}

func (m *Model) attachMinimap() {
	wins := m.frame.Windows()
	if m.active < len(wins) {
		m.mmap.Attach(wins[m.active])
	}
}

// redrawGutters runs the line-number collaborator over the frame the way
// a display cycle would. With centering enabled the interception guard
// keeps the redraws from clobbering the computed margins.
func (m *Model) redrawGutters() {
	m.gutter.RedrawAll(m.frame)
}

// reloadConfig swaps in a freshly loaded configuration between passes.
func (m Model) reloadConfig() Model {
	cfg, err := config.Load()
	if err != nil {
		m.log.Warn("config reload rejected", "error", err)
		m.status = "config reload rejected"
		return m
	}
	classifier, err := buildClassifier(cfg, m.mmap)
	if err != nil {
		m.log.Warn("config reload rejected", "error", err)
		return m
	}
	m.cfg = cfg
	m.rec.Configure(classifier, cfg.Centering.VisibleWidth)
	if m.ctrl.Enabled() {
		m.rec.All()
	}
	m.log.Info("config reloaded", "visible_width", cfg.Centering.VisibleWidth)
	return m
}

// scratchBuffer is the initial buffer shown in the first window.
func scratchBuffer() *host.Buffer {
	b := host.NewBuffer("*scratch*", "lisp-interaction", "lisp", "prog")
	b.SetLines([]string{
		";; This buffer is for text that is not saved.",
		";; Press c to toggle centering, s to split, ? for help.",
		"",
	})
	return b
}

// sampleBuffer fabricates a numbered file-like buffer for splits.
func sampleBuffer(n int) *host.Buffer {
	b := host.NewBuffer(fmt.Sprintf("sample-%d.go", n), "go", "prog")
	lines := make([]string, 0, 24)
	lines = append(lines,
		"package sample",
		"",
		fmt.Sprintf("// Sample buffer %d.", n),
		"func main() {",
	)
	for i := 0; i < 18; i++ {
		lines = append(lines, fmt.Sprintf("\tstep(%d)", i))
	}
	lines = append(lines, "}")
	b.SetLines(lines)
	return b
}
