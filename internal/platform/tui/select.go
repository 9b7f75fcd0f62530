package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Selection holds the character and difficulty picked before a run.
type Selection struct {
	Archetype  string
	Difficulty config.DifficultyPreset
}

// SelectModel lets users choose a character, then a difficulty.
type SelectModel struct {
	archetypes       []config.ArchetypeConfig
	presets          []config.DifficultyPreset
	modifiers        config.DifficultyTable
	cursor           int
	difficultyCursor int
	inDifficulty     bool
	width            int
	height           int
	keyMapper        *KeyMapper
	selection        Selection
	choosing         bool
	quitting         bool
	back             bool
}

// NewSelectModel creates a selector over the configured archetypes.
// The cursors start on the given defaults when they are known.
func NewSelectModel(cfg config.BrawlerConfig, width, height int, defaults Selection) SelectModel {
	m := SelectModel{
		archetypes: cfg.Archetypes,
		presets:    config.Presets(),
		modifiers:  cfg.Difficulty,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
	for i, a := range m.archetypes {
		if a.ID == defaults.Archetype {
			m.cursor = i
		}
	}
	m.difficultyCursor = 1 // normal
	for i, p := range m.presets {
		if p == defaults.Difficulty {
			m.difficultyCursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDifficulty {
		return m.handleDifficultyKey(action)
	}
	return m.handleCharacterKey(action)
}

func (m SelectModel) handleCharacterKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.archetypes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.archetypes) > 0 {
			m.inDifficulty = true
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SelectModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionLeft:
		if m.difficultyCursor > 0 {
			m.difficultyCursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.difficultyCursor < len(m.presets)-1 {
			m.difficultyCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = Selection{
			Archetype:  m.archetypes[m.cursor].ID,
			Difficulty: m.presets[m.difficultyCursor],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inDifficulty = false
	}

	return m, nil
}

// View renders the character or difficulty list.
func (m SelectModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDifficulty {
		return m.viewDifficulty()
	}
	return m.viewCharacters()
}

func (m SelectModel) viewCharacters() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C H O O S E   Y O U R   F I G H T E R"), m.width))
	b.WriteString("\n\n")

	for i, a := range m.archetypes {
		cursor := "  "
		name := fmt.Sprintf("%-12s", a.Name)
		if i == m.cursor {
			cursor = "> "
			name = pickStyle.Render(name)
		}
		line := fmt.Sprintf("%s%s ATK %3d  SPD %2d  HP %3d", cursor, name, a.AttackPower, a.MoveSpeed, a.MaxHealth)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.cursor < len(m.archetypes) {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.archetypes[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func (m SelectModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT DIFFICULTY"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.archetypes[m.cursor].Name, m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		title := fmt.Sprintf("%-8s", p.Title())
		if i == m.difficultyCursor {
			cursor = "> "
			title = pickStyle.Render(title)
		}
		line := fmt.Sprintf("%s%s enemy damage x%.1f", cursor, title, m.modifiers.Modifier(p))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Fight!  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SelectModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SelectModel) WantsBack() bool {
	return m.back
}

// RunSelector runs the character selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunSelector(cfg config.BrawlerConfig, rt core.RuntimeConfig, defaults Selection) (*Selection, error) {
	model := NewSelectModel(cfg, rt.ScreenW, rt.ScreenH, defaults)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SelectModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
