package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

func sendBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected ScoreboardModel", next)
	}
	return sm
}

func TestBoardTabs(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(storage.GameResult{GameID: "snake-7x5", Score: 3, Length: 5, Player: "ann"}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	tabs := boardTabs(store, "snake-30x15")

	if tabs[0].variant != "snake-30x15" || tabs[0].label != "wide 30x15" {
		t.Errorf("tabs[0] = %+v, expected the current wide board first", tabs[0])
	}

	seen := make(map[string]int)
	for _, tab := range tabs {
		seen[tab.variant]++
	}
	for _, v := range []string{"snake-12x12", "snake-20x20", "snake-40x25", "snake-7x5"} {
		if seen[v] != 1 {
			t.Errorf("variant %q listed %d times, expected once", v, seen[v])
		}
	}
	if seen["snake-30x15"] != 1 {
		t.Errorf("current variant listed %d times, expected once", seen["snake-30x15"])
	}

	last := tabs[len(tabs)-1]
	if last.variant != "snake-7x5" || last.label != "7x5" {
		t.Errorf("last tab = %+v, expected the stored 7x5 board without a preset name", last)
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{4, 9} {
		if _, err := store.SaveResult(storage.GameResult{GameID: "snake-20x20", Score: score, Length: score + 2, Player: "ann"}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "snake-20x20", 100, 30)

	if len(m.scores) != 2 || m.scores[0].Score != 9 {
		t.Fatalf("scores = %+v, expected two entries led by 9", m.scores)
	}
	if got := m.statsLine(); !strings.Contains(got, "Games: 2") || !strings.Contains(got, "Best: 9") {
		t.Errorf("statsLine() = %q, expected games and best", got)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - snake-20x20", "classic 20x20", "ann"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardCycle(t *testing.T) {
	m := NewScoreboardModel(openTestStore(t), "snake-20x20", 100, 30)
	n := len(m.tabs)

	m = sendBoard(t, m, keyMsg("left"))
	if m.active != n-1 {
		t.Errorf("active after left = %d, expected wrap to %d", m.active, n-1)
	}

	m = sendBoard(t, m, keyMsg("right"))
	if m.active != 0 || m.Variant() != "snake-20x20" {
		t.Errorf("active after right = %d (%s), expected back to 0", m.active, m.Variant())
	}

	m = sendBoard(t, m, keyMsg("right"))
	if m.Variant() == "snake-20x20" {
		t.Error("right should move to another board")
	}
	if m.statsLine() != "No games played" {
		t.Errorf("statsLine() = %q, expected an empty board", m.statsLine())
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, "snake-9x9", 60, 20)

	if m.Variant() != "snake-9x9" {
		t.Errorf("Variant() = %q, expected %q", m.Variant(), "snake-9x9")
	}
	if !strings.Contains(m.View(), "No scores on this board yet.") {
		t.Error("empty board message missing")
	}
}

func TestScoreboardExit(t *testing.T) {
	tests := []struct {
		key      string
		back     bool
		quitting bool
	}{
		{"esc", true, false},
		{"q", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := NewScoreboardModel(nil, "snake-20x20", 80, 24)
			m = sendBoard(t, m, keyMsg(tt.key))

			if m.IsGoingBack() != tt.back || m.IsQuitting() != tt.quitting {
				t.Errorf("back = %v, quitting = %v, expected %v, %v", m.IsGoingBack(), m.IsQuitting(), tt.back, tt.quitting)
			}
			if m.View() != "" {
				t.Error("View() should be empty after leaving")
			}
		})
	}
}
