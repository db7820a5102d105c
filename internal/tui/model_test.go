package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/centerpane/centerpane/internal/config"
	"github.com/centerpane/centerpane/internal/logging"
	"github.com/centerpane/centerpane/internal/margin"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), logging.Discard())
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func sized(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model)
}

func press(t *testing.T, m Model, r rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func TestNewModel_EnablesCenteringFromConfig(t *testing.T) {
	m := newTestModel(t)
	if !m.ctrl.Enabled() {
		t.Fatal("centering should be on with the default config")
	}
	// The initial 80-cell frame is narrower than the 128-cell visible
	// column, so the default margin clamps to 0 and the full-width window
	// centers with feasible {0 0} margins.
	w := m.frame.Windows()[0]
	if got := w.Margins(); got != (margin.Pair{}) {
		t.Errorf("initial margins = %+v, want feasible {0 0}", got)
	}
}

func TestModel_WindowSizeResizesAndCenters(t *testing.T) {
	m := sized(t, newTestModel(t), 200, 40)
	if m.frame.Width() != 200 {
		t.Fatalf("frame width = %d, want 200", m.frame.Width())
	}
	w := m.frame.Windows()[0]
	if got := w.Margins(); got != (margin.Pair{Left: 36, Right: 36}) {
		t.Errorf("margins = %+v, want {36 36}", got)
	}
}

func TestModel_SplitKeyAddsWindow(t *testing.T) {
	m := press(t, sized(t, newTestModel(t), 200, 40), 's')
	if n := len(m.frame.Windows()); n != 2 {
		t.Fatalf("windows = %d, want 2", n)
	}
	// Neither 100-cell half can hold the 128 visible columns, so both
	// drop to the gutter fallback.
	for _, w := range m.frame.Windows() {
		if got := w.Margins(); got != (margin.Pair{Left: 3}) {
			t.Errorf("window %d margins = %+v, want fallback {3 0}", w.ID(), got)
		}
	}
}

func TestModel_SplitRefusedWhenTooNarrow(t *testing.T) {
	m := sized(t, newTestModel(t), 12, 40)
	m = press(t, m, 's')
	if n := len(m.frame.Windows()); n != 1 {
		t.Fatalf("windows = %d, want 1 after refused split", n)
	}
	if m.status == "" {
		t.Error("expected a status message explaining the refusal")
	}
}

func TestModel_ToggleCenterKey(t *testing.T) {
	m := press(t, sized(t, newTestModel(t), 200, 40), 'c')
	if m.ctrl.Enabled() {
		t.Fatal("centering should be off after toggle")
	}
	// With centering off the gutter redraw claims the left margin again.
	w := m.frame.Windows()[0]
	want := margin.Pair{Left: m.gutter.GutterWidth(w.Buffer())}
	if got := w.Margins(); got != want {
		t.Errorf("margins = %+v, want gutter-only %+v after disable", got, want)
	}

	m = press(t, m, 'c')
	if !m.ctrl.Enabled() {
		t.Fatal("centering should be back on")
	}
	if got := m.frame.Windows()[0].Margins(); got != (margin.Pair{Left: 36, Right: 36}) {
		t.Errorf("margins = %+v, want {36 36} after re-enable", got)
	}
}

func TestModel_GutterToggleKey(t *testing.T) {
	m := sized(t, newTestModel(t), 200, 40)
	if !m.gutter.Active() {
		t.Fatal("gutter should start active with the default config")
	}
	m = press(t, m, 'n')
	if m.gutter.Active() {
		t.Error("gutter should be off after toggle")
	}
	m = press(t, m, 'n')
	if !m.gutter.Active() {
		t.Error("gutter should be back on")
	}
}

func TestModel_LabelSelectionFlow(t *testing.T) {
	m := press(t, sized(t, newTestModel(t), 200, 40), 's')
	if m.active != 0 {
		t.Fatalf("active = %d, want 0", m.active)
	}

	m = press(t, m, 'w')
	if !m.labels.Active() {
		t.Fatal("labels should be up after the switch-window key")
	}

	// The next key is a selection, not a command.
	m = press(t, m, 'b')
	if m.labels.Active() {
		t.Error("labels should be cleared after selection")
	}
	if m.active != 1 {
		t.Errorf("active = %d, want 1", m.active)
	}
}

func TestModel_LabelDismissOnUnknownKey(t *testing.T) {
	m := press(t, sized(t, newTestModel(t), 200, 40), 'w')
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.labels.Active() {
		t.Error("labels should be dismissed by a non-letter key")
	}
	if m.active != 0 {
		t.Errorf("active = %d, want unchanged 0", m.active)
	}
}

func TestModel_MinimapToggleKey(t *testing.T) {
	m := press(t, sized(t, newTestModel(t), 200, 40), 'm')
	if !m.mmap.Active() {
		t.Fatal("minimap should attach")
	}
	if n := len(m.frame.Windows()); n != 2 {
		t.Fatalf("windows = %d, want 2 with minimap attached", n)
	}
	m = press(t, m, 'm')
	if m.mmap.Active() {
		t.Error("minimap should detach on second toggle")
	}
}

func TestModel_CloseKey(t *testing.T) {
	m := press(t, sized(t, newTestModel(t), 200, 40), 's')
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.active != 1 {
		t.Fatalf("active = %d, want 1 after tab", m.active)
	}
	m = press(t, m, 'x')
	if n := len(m.frame.Windows()); n != 1 {
		t.Fatalf("windows = %d, want 1 after close", n)
	}
	if m.active != 0 {
		t.Errorf("active = %d, want clamped to 0", m.active)
	}
}

func TestModel_ViewShowsBufferAndIndicator(t *testing.T) {
	m := sized(t, newTestModel(t), 200, 40)
	view := m.View()
	if !strings.Contains(view, "*scratch*") {
		t.Error("view should show the scratch buffer name")
	}
	if !strings.Contains(view, config.Default().Centering.Indicator) {
		t.Error("view should show the centering indicator while enabled")
	}
}

func TestModel_ConfigReloadRecenters(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	config.SetDefaults()
	viper.Set("centering.visible_width", 100)

	m := sized(t, newTestModel(t), 200, 40)
	next, _ := m.Update(ConfigReloadedMsg{})
	m = next.(Model)

	if got := m.cfg.Centering.VisibleWidth; got != 100 {
		t.Fatalf("visible width = %d, want 100 after reload", got)
	}
	if got := m.frame.Windows()[0].Margins(); got != (margin.Pair{Left: 50, Right: 50}) {
		t.Errorf("margins = %+v, want {50 50} for the reloaded width", got)
	}
}

func TestModel_ConfigReloadRejectsInvalidSnapshot(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	config.SetDefaults()
	viper.Set("centering.visible_width", 0)

	m := sized(t, newTestModel(t), 200, 40)
	before := m.cfg
	next, _ := m.Update(ConfigReloadedMsg{})
	m = next.(Model)

	if m.cfg != before {
		t.Error("rejected reload should keep the previous snapshot")
	}
	if got := m.frame.Windows()[0].Margins(); got != (margin.Pair{Left: 36, Right: 36}) {
		t.Errorf("margins = %+v, want untouched {36 36}", got)
	}
}
