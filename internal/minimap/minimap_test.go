package minimap

import (
	"strings"
	"testing"

	"github.com/centerpane/centerpane/internal/event"
	"github.com/centerpane/centerpane/internal/host"
)

func TestAttach_CreatesMinimapWindow(t *testing.T) {
	buf := host.NewBuffer("main.go", "go")
	buf.SetLines([]string{"package main", "", "func main() {}"})
	f := host.NewFrame(200, buf, nil)
	m := New(f)

	win := m.Attach(f.Windows()[0])
	if win == nil {
		t.Fatal("Attach should create a window")
	}
	if !m.Active() {
		t.Error("minimap should be active after Attach")
	}
	if !strings.HasPrefix(win.Buffer().Name(), BufferPrefix) {
		t.Errorf("minimap buffer name %q lacks prefix %q", win.Buffer().Name(), BufferPrefix)
	}
	if got := win.Buffer().LineCount(); got != 3 {
		t.Errorf("condensed buffer has %d lines, want 3", got)
	}
}

func TestAttach_TransientlyReusesTargetBuffer(t *testing.T) {
	// Between the split and the buffer swap the new window shows the
	// target's buffer. Observe the intermediate state via the
	// window.reconfigured events the two steps publish.
	bus := event.NewBus()
	buf := host.NewBuffer("main.go", "go")
	f := host.NewFrame(200, buf, bus)
	m := New(f)

	var names []string
	bus.Subscribe(event.TypeWindowReconfigured, func(e event.Event) {
		wins := f.Windows()
		names = append(names, wins[len(wins)-1].Buffer().Name())
	})

	m.Attach(f.Windows()[0])

	if len(names) != 2 {
		t.Fatalf("expected 2 reconfiguration events, got %d", len(names))
	}
	if names[0] != "main.go" {
		t.Errorf("after split the minimap window should show %q, got %q", "main.go", names[0])
	}
	if !strings.HasPrefix(names[1], BufferPrefix) {
		t.Errorf("after the swap the buffer should carry the minimap prefix, got %q", names[1])
	}
}

func TestAttach_SecondAttachRefused(t *testing.T) {
	f := host.NewFrame(200, host.NewBuffer("a", "text"), nil)
	m := New(f)
	m.Attach(f.Windows()[0])
	if win := m.Attach(f.Windows()[0]); win != nil {
		t.Error("second Attach should be refused")
	}
}

func TestDetach_ClosesWindow(t *testing.T) {
	f := host.NewFrame(200, host.NewBuffer("a", "text"), nil)
	m := New(f)
	win := m.Attach(f.Windows()[0])

	m.Detach()

	if m.Active() {
		t.Error("minimap should be inactive after Detach")
	}
	if win.Live() {
		t.Error("minimap window should be closed")
	}
	if len(f.Windows()) != 1 {
		t.Errorf("frame has %d windows, want 1", len(f.Windows()))
	}
}

func TestCondense(t *testing.T) {
	out := condense([]string{"12345678", "", "xy"})
	if out[0] != "▪▪" || out[1] != "" || out[2] != "▪" {
		t.Errorf("condense() = %q", out)
	}
}
