package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

func TestMenuListsDrivers(t *testing.T) {
	m := NewMenuModel(testRuntime())

	require.Len(t, m.items, 2)
	assert.Equal(t, brawler.IDRealTime, m.items[0].GameID)
	assert.Equal(t, brawler.IDTurnBased, m.items[1].GameID)
	assert.Contains(t, m.View(), "Brawler (Turn-Based)")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testRuntime())

	next, _ := m.Update(keyDown)
	next, cmd := next.(MenuModel).Update(keyEnter)
	m = next.(MenuModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, brawler.IDTurnBased, m.Selected().GameID)
	assert.NotNil(t, cmd)
}

func TestMenuScoreboardAndResize(t *testing.T) {
	m := NewMenuModel(testRuntime())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(MenuModel)

	assert.True(t, m.WantsScoreboard())
	assert.Equal(t, 120, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}

func TestScoreboardShowsRuns(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveScore(storage.ScoreEntry{
		GameID: brawler.IDRealTime, Score: 1200, Character: "speed",
		Difficulty: "hard", Level: 3, Outcome: storage.OutcomeVictory,
	})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 120, 40)
	view := m.View()
	assert.Contains(t, view, "1200")
	assert.Contains(t, view, "speed")
	assert.Contains(t, view, "Runs: 1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Empty(t, m.scores)
	assert.Contains(t, m.View(), "No scores recorded yet")

	next, _ = m.Update(keyEsc)
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	assert.Contains(t, m.View(), "No runs yet")
}

func TestScoreboardReplayView(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveReplay(storage.ReplayRecord{
		ID: "0123456789abcdef", GameID: brawler.IDRealTime, Path: "/tmp/r.yaml",
		Character: "tank", Score: 300, Steps: 812,
	}))
	require.NoError(t, store.SaveReplay(storage.ReplayRecord{
		ID: "fedcba9876543210", GameID: brawler.IDTurnBased, Path: "/tmp/t.yaml",
	}))

	m := NewScoreboardModel(store, 120, 40)
	require.Len(t, m.replays, 1, "replays are filtered by mode")

	next, _ := m.Update(runes("v"))
	m = next.(ScoreboardModel)
	view := m.View()
	assert.Contains(t, view, "REPLAYS")
	assert.Contains(t, view, "01234567")
	assert.Contains(t, view, "812")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Contains(t, m.View(), "fedcba98")

	next, _ = m.Update(runes("v"))
	assert.Contains(t, next.(ScoreboardModel).View(), "HIGH SCORES")
}
