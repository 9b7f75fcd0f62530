package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-brawler/internal/registry"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the mode sidebar
	sidebarWidth       = 24
	maxScores          = 100
	maxReplays         = 50
)

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewScores boardView = iota
	viewReplays
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Toggle:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/replays")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs and saved replays of each mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	cursor    int
	view      boardView
	store     *storage.Store
	scores    []storage.ScoreEntry
	replays   []storage.ReplayRecord
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

// columns returns the table layout for the current view.
func (m ScoreboardModel) columns() []table.Column {
	if m.view == viewReplays {
		return []table.Column{
			{Title: "Replay", Width: 10},
			{Title: "Fighter", Width: 11},
			{Title: "Score", Width: 7},
			{Title: "Steps", Width: 7},
			{Title: "Date", Width: 13},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Fighter", Width: 11},
		{Title: "Diff", Width: 7},
		{Title: "Lvl", Width: 4},
		{Title: "Result", Width: 8},
		{Title: "Date", Width: 13},
	}
}

// rows formats the loaded records for the current view.
func (m ScoreboardModel) rows() []table.Row {
	if m.view == viewReplays {
		rows := make([]table.Row, len(m.replays))
		for i, r := range m.replays {
			rows[i] = table.Row{
				shortID(r.ID),
				r.Character,
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Steps),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.Character,
			s.Difficulty,
			fmt.Sprintf("%d", s.Level),
			s.Outcome,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// reload fetches the records of the current mode and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.replays, m.stats = nil, nil, nil
	if id := m.modeID(); m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
		if replays, err := m.store.RecentReplays(maxReplays); err == nil {
			for _, r := range replays {
				if r.GameID == id {
					m.replays = append(m.replays, r)
				}
			}
		}
	}
	m.rebuildTable()
}

func (m *ScoreboardModel) rebuildTable() {
	columns := m.columns()

	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := avail - used; spare > 0 {
		columns[len(columns)-1].Width += min(spare, 7)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	m.help.Width = m.width
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor + len(m.modes) - 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.view == viewScores {
				m.view = viewReplays
			} else {
				m.view = viewScores
			}
			m.rebuildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.view == viewReplays {
		title = "REPLAYS"
	}
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	content := panelStyle.Render(m.tableContent())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", content))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(content, m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists the modes vertically for wide terminals.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Modes\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, g := range m.modes {
		if i == m.cursor {
			sb.WriteString(pickStyle.Render("> " + g.Title))
		} else {
			sb.WriteString("  " + g.Title)
		}
		sb.WriteString("\n")
	}

	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

// tabs lists the modes on one line for narrow terminals.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = dimStyle.Render(" " + g.Title + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		line = fmt.Sprintf("< %s >", m.modes[m.cursor].Title)
	}
	return line
}

func (m ScoreboardModel) tableContent() string {
	switch {
	case m.view == viewReplays && len(m.replays) == 0:
		return emptyStyle.Render("No replays saved yet.\nPlay with --replay-dir set to record one.")
	case m.view == viewScores && len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nWin a fight to set a high score!")
	}
	return m.table.View()
}

// statsLine summarizes all runs of the current mode.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs: %d  |  Victories: %d  |  Best: %d  |  Average: %.0f",
		m.stats.GamesCount, m.stats.Victories, m.stats.HighScore, m.stats.AvgScore)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
