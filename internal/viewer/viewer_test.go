package viewer

import (
	"context"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/dungeon"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/report"
	"github.com/samdwyer/dungeongen/internal/ui"
)

var testCatalog = sync.OnceValue(gamedata.MustLoadCatalog)

func newTestViewer(t *testing.T) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	sim.SetSize(20, 12)

	tr, err := report.NewTranslator("en")
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}

	opts := dungeon.DefaultOptions()
	opts.Width, opts.Height = 30, 30
	opts.Seed = 99
	opts.MapType = dungeon.MapCave
	return New(screen, opts, testCatalog(), tr), sim
}

func key(k tcell.Key, r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, r, mod)
}

func TestHandleKeyEventScroll(t *testing.T) {
	v, sim := newTestViewer(t)
	t.Cleanup(sim.Fini)
	ctx := context.Background()
	if err := v.generate(ctx, v.opts); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// 20x12 screen leaves a 20x10 map viewport over a 30x30 grid.
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		wantX int
		wantY int
	}{
		{"up at origin is clamped", key(tcell.KeyUp, 0, tcell.ModNone), 0, 0},
		{"down", key(tcell.KeyDown, 0, tcell.ModNone), 0, 1},
		{"right", key(tcell.KeyRight, 0, tcell.ModNone), 1, 1},
		{"shift right", key(tcell.KeyRight, 0, tcell.ModShift), 10, 1},
		{"shift right past edge", key(tcell.KeyRight, 0, tcell.ModShift), 10, 1},
		{"shift down", key(tcell.KeyDown, 0, tcell.ModShift), 10, 11},
		{"shift down past edge", key(tcell.KeyDown, 0, tcell.ModShift), 10, 20},
		{"left", key(tcell.KeyLeft, 0, tcell.ModNone), 9, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.handleKeyEvent(ctx, tt.ev)
			x, y := v.Offset()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Offset() = %d,%d, want %d,%d", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestHandleKeyEventRegenerate(t *testing.T) {
	v, sim := newTestViewer(t)
	t.Cleanup(sim.Fini)
	ctx := context.Background()
	if err := v.generate(ctx, v.opts); err != nil {
		t.Fatalf("generate: %v", err)
	}
	v.handleKeyEvent(ctx, key(tcell.KeyDown, 0, tcell.ModNone))
	first := v.Dungeon()

	v.handleKeyEvent(ctx, key(tcell.KeyRune, 'r', tcell.ModNone))

	second := v.Dungeon()
	if second.Seed != first.Seed+1 {
		t.Errorf("regenerated seed = %d, want %d", second.Seed, first.Seed+1)
	}
	if second.ID == first.ID {
		t.Error("regenerated dungeon kept the previous ID")
	}
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Errorf("Offset() after regenerate = %d,%d, want 0,0", x, y)
	}
}

func TestHandleKeyEventQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"escape", key(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", key(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"q", key(tcell.KeyRune, 'q', tcell.ModNone)},
		{"Q", key(tcell.KeyRune, 'Q', tcell.ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, sim := newTestViewer(t)
			t.Cleanup(sim.Fini)
			v.handleKeyEvent(context.Background(), tt.ev)
			if v.running {
				t.Error("viewer still running after quit key")
			}
		})
	}
}

func TestRunDrawsUntilQuit(t *testing.T) {
	v, sim := newTestViewer(t)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Dungeon() == nil {
		t.Fatal("Run did not generate a dungeon")
	}
	if v.Dungeon().Seed != 99 {
		t.Errorf("Seed = %d, want 99", v.Dungeon().Seed)
	}
}

func TestRunRejectsUnknownTheme(t *testing.T) {
	v, _ := newTestViewer(t)
	v.opts.DungeonType = "no-such-theme"

	if err := v.Run(context.Background()); err == nil {
		t.Fatal("Run with unknown theme returned nil error")
	}
}
