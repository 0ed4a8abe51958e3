package snake

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(DefaultConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func frame(elapsed time.Duration, actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Elapsed = elapsed
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

func TestGameMetadata(t *testing.T) {
	g := New(Config{Cols: 30, Rows: 15})

	if g.ID() != "snake-30x15" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "snake-30x15")
	}
	if g.Title() != "Snake" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Snake")
	}
	if id := VariantID(DefaultConfig()); id != "snake-20x20" {
		t.Errorf("VariantID(default) = %q, expected %q", id, "snake-20x20")
	}
}

func TestGameStartsPaused(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(frame(time.Second))
	if !res.State.Paused {
		t.Error("game should start paused")
	}
	if res.Moved {
		t.Error("paused game should not move")
	}
}

func TestGameStepActions(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(frame(0, core.ActionPause))
	if res.State.Paused {
		t.Fatal("ActionPause should unpause")
	}

	g.Step(frame(0, core.ActionDown, core.ActionLeft))
	if got := g.World().Actor().Pending(); got != 2 {
		t.Errorf("Pending() = %d, expected 2", got)
	}

	res = g.Step(frame(DefaultMoveInterval))
	if !res.Moved {
		t.Fatal("expected a move after one interval")
	}
	if g.World().Actor().Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", g.World().Actor().Direction())
	}
	if g.World().Actor().Head() != (Point{X: 0, Y: 1}) {
		t.Errorf("Head() = %v, expected {0 1}", g.World().Actor().Head())
	}

	g.Step(frame(0, core.ActionRestart))
	if g.World().Actor().Head() != (Point{X: 0, Y: 0}) {
		t.Errorf("Head() after restart = %v, expected {0 0}", g.World().Actor().Head())
	}
	if g.World().Actor().Pending() != 0 {
		t.Errorf("Pending() after restart = %d, expected 0", g.World().Actor().Pending())
	}
}

func TestGameBoostFrame(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(0, core.ActionPause))

	f := frame(DefaultMoveInterval / 2)
	f.Boost = true
	if res := g.Step(f); !res.Moved {
		t.Error("boosted frame of half an interval should move")
	}

	if res := g.Step(frame(DefaultMoveInterval / 2)); res.Moved {
		t.Error("unboosted frame of half an interval should not move")
	}
}

func TestGameDeterminism(t *testing.T) {
	const seed = 42

	script := []core.Action{
		core.ActionNone, core.ActionDown, core.ActionNone, core.ActionLeft,
		core.ActionNone, core.ActionUp, core.ActionRight, core.ActionNone,
	}

	run := func() []Snapshot {
		g := newTestGame(seed)
		g.Step(frame(0, core.ActionPause))

		var snaps []Snapshot
		for i := 0; i < 400; i++ {
			g.Step(frame(DefaultMoveInterval/4, script[i%len(script)]))
			if g.World().Over() {
				g.Step(frame(0, core.ActionPause))
			}
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a := run()
	b := run()
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("frame %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestGameHighScoreAndNotifier(t *testing.T) {
	g := newTestGame(7)
	g.SetHighScore(1)

	n := &countingNotifier{}
	g.SetNotifier(n)

	w := g.World()
	w.TogglePause()
	w.score = 5
	w.GameOver()

	if n.calls != 1 || n.scores[0] != 5 {
		t.Errorf("notifier got %d calls %v, expected one call with 5", n.calls, n.scores)
	}
	if g.HighScore() != 5 {
		t.Errorf("HighScore() = %d, expected 5", g.HighScore())
	}
	if g.Snapshot().HighScore != 5 {
		t.Errorf("Snapshot().HighScore = %d, expected 5", g.Snapshot().HighScore)
	}

	w.NewGame()
	w.score = 2
	w.GameOver()
	if g.HighScore() != 5 {
		t.Errorf("HighScore() = %d, expected it to stay 5", g.HighScore())
	}
}

func TestGameResizeKeepsState(t *testing.T) {
	g := newTestGame(3)
	g.Step(frame(0, core.ActionPause))
	g.Step(frame(DefaultMoveInterval))
	before := g.Snapshot()

	g.Resize(120, 40)

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Resize() should not change game state")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 30)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Length: 2", "Paused", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.Step(frame(0, core.ActionPause))
	g.Render(screen)
	if strings.Contains(screen.String(), "Paused") {
		t.Error("running game should not show the pause overlay")
	}

	g.World().GameOver()
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("render missing game over overlay")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(30, 12)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}
}

func TestComputeLayout(t *testing.T) {
	g := Grid{Cols: 20, Rows: 20}

	tests := []struct {
		name  string
		w, h  int
		fits  bool
		cellW int
	}{
		{"wide", 80, 30, true, 2},
		{"narrow", 30, 30, true, 1},
		{"short", 80, 20, false, 0},
		{"tiny", 10, 5, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.w, tt.h, g)
			if l.fits != tt.fits {
				t.Errorf("fits = %v, expected %v", l.fits, tt.fits)
			}
			if l.cellW != tt.cellW {
				t.Errorf("cellW = %d, expected %d", l.cellW, tt.cellW)
			}
		})
	}
}

func TestDebugState(t *testing.T) {
	g := newTestGame(1)

	out := g.DebugState()
	for _, want := range []string{"Score: 0", "State: paused", "Snake len: 2", "Direction: right"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q in %q", want, out)
		}
	}
}
