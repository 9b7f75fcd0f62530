package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

func send(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(SessionModel)
		require.True(t, ok)
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "alice", Options{})
	assert.Len(t, m.ID(), 36)
	assert.Equal(t, screenMenu, m.screen)

	// Menu -> character select
	m = send(t, m, keyEnter)
	require.Equal(t, screenSelect, m.screen)
	assert.Equal(t, brawler.IDRealTime, m.gameID)

	// Speed on hard
	m = send(t, m, keyDown, keyDown, keyEnter, keyDown, keyEnter)
	require.Equal(t, screenGame, m.screen)
	require.NotNil(t, m.gameModel)

	m = send(t, m, TickMsg{})
	state := m.gameModel.State()
	assert.Equal(t, config.ArchetypeSpeed, state.Character)
	assert.Equal(t, "hard", state.Difficulty)
	assert.NotEmpty(t, m.View())

	// Back only once paused
	m = send(t, m, keyEsc)
	assert.Equal(t, screenGame, m.screen)
	m = send(t, m, runes("p"), TickMsg{}, keyEsc)
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.gameModel)

	// The last pick is remembered
	m = send(t, m, keyEnter)
	assert.Equal(t, 2, m.selector.cursor)
	assert.Equal(t, 2, m.selector.difficultyCursor)
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(openTestStore(t), testRuntime(), "bob", Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = send(t, m, keyEsc)
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionSelectBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "carol", Options{})

	m = send(t, m, keyEnter, keyEsc)
	assert.Equal(t, screenMenu, m.screen)

	m = send(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}
