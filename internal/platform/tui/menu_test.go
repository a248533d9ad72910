package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/redblock/internal/core"
	"github.com/vovakirdan/redblock/internal/storage"
)

func openMemoryStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func menuKeys(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	tests := []struct {
		name     string
		keys     []string
		expected MenuChoice
	}{
		{"play is first", []string{"enter"}, MenuChoicePlay},
		{"scores", []string{"down", "enter"}, MenuChoiceScores},
		{"quit entry", []string{"j", "j", "enter"}, MenuChoiceQuit},
		{"cursor stops at bottom", []string{"down", "down", "down", "down", "enter"}, MenuChoiceQuit},
		{"cursor stops at top", []string{"up", "up", "enter"}, MenuChoicePlay},
		{"tab opens scores", []string{"tab"}, MenuChoiceScores},
		{"q quits", []string{"q"}, MenuChoiceQuit},
		{"esc quits", []string{"esc"}, MenuChoiceQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := menuKeys(NewMenuModel("Red Block Rescue", "redblock", nil, cfg), tc.keys...)
			if m.Choice() != tc.expected {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tc.expected)
			}
		})
	}
}

func TestMenuViewShowsBestScore(t *testing.T) {
	store := openMemoryStore(t)
	store.SaveScore("redblock", 640) //nolint:errcheck

	m := NewMenuModel("Red Block Rescue", "redblock", store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	for _, want := range []string{"RED BLOCK RESCUE", "Best: 640", "> Play", "High Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	m = menuKeys(m, "enter")
	if m.View() != "" {
		t.Error("menu should render nothing once a choice is made")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel("Red Block Rescue", "redblock", nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v, expected 120x40", cfg)
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openMemoryStore(t)
	store.RecordRound("redblock", core.RunSummary{Outcome: core.OutcomeWin, Score: 590, ElapsedMs: 11000}) //nolint:errcheck
	store.RecordRound("redblock", core.RunSummary{Outcome: core.OutcomeLose, ElapsedMs: 60016})            //nolint:errcheck

	sb := NewScoreboardModel("redblock", "Red Block Rescue", store, 100, 30)
	if len(sb.scores) != 1 || len(sb.runs) != 2 {
		t.Fatalf("loaded %d scores and %d runs", len(sb.scores), len(sb.runs))
	}
	view := sb.View()
	if !strings.Contains(view, "590") || !strings.Contains(view, "Rounds:") {
		t.Error("scores tab should list the score and the stats panel")
	}

	next, _ := sb.Update(keyMsg("tab"))
	sb = next.(ScoreboardModel)
	if sb.Tab() != TabRuns {
		t.Fatalf("tab should switch to runs, got %v", sb.Tab())
	}
	view = sb.View()
	if !strings.Contains(view, "WIN") || !strings.Contains(view, "LOSE") || !strings.Contains(view, "11.0s") {
		t.Error("runs tab should list both rounds")
	}

	next, _ = sb.Update(keyMsg("tab"))
	if next.(ScoreboardModel).Tab() != TabScores {
		t.Error("tab should wrap around")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboardModel("redblock", "Red Block Rescue", nil, 60, 20)
	if !strings.Contains(sb.View(), "Scores are unavailable") {
		t.Error("expected the unavailable message without a store")
	}

	next, cmd := sb.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openMemoryStore(t)
	games := 0
	factory := func() Game {
		games++
		return &fakeGame{}
	}

	var m tea.Model = NewSessionModel(factory, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "tester")
	send := func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		return cmd
	}

	// Menu -> scores -> back
	send(keyMsg("down"))
	send(keyMsg("enter"))
	if m.(SessionModel).current != screenScores {
		t.Fatal("expected the scoreboard")
	}
	send(keyMsg("b"))
	if m.(SessionModel).current != screenMenu {
		t.Fatal("back should return to the menu")
	}

	// Menu -> game -> back
	if cmd := send(keyMsg("enter")); cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	s := m.(SessionModel)
	if s.current != screenGame || s.gameModel == nil {
		t.Fatal("expected a running game")
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("session should render the game")
	}
	send(keyMsg("esc"))
	if m.(SessionModel).current != screenMenu || m.(SessionModel).quitting {
		t.Error("esc in game should return to the menu without quitting")
	}

	// Quit from the menu
	if cmd := send(keyMsg("q")); cmd == nil || !m.(SessionModel).quitting {
		t.Error("q should end the session")
	}
	if games < 2 {
		t.Errorf("factory should be probed once and called per round, called %d times", games)
	}
}
