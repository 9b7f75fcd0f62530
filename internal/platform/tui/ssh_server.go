package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/registry"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.brawler/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// ReplayDir is where finished runs are saved. Empty disables replays.
	ReplayDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every connection.
	TickRate int

	// LogLevel filters the server log.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.brawler/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		LogLevel:    log.InfoLevel,
	}
}

// SSHServer wraps a Wish SSH server for the brawler.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brawler-ssh",
		Level:           cfg.LogLevel,
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".brawler", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(s.store, cfg, sshSession.User(), Options{
		Logger:    s.logger,
		ReplayDir: s.config.ReplayDir,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// chooser is implemented by drivers that take a per-instance selection.
type chooser interface {
	Choose(archetype string, difficulty config.DifficultyPreset)
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenSelect
	screenScores
	screenGame
)

// SessionModel manages one connection's flow:
// menu -> character select -> game -> menu, with the scoreboard off the menu.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	username  string
	sessionID string
	screen    sessionScreen
	gameID    string
	last      Selection
	menu      MenuModel
	selector  SelectModel
	scores    ScoreboardModel
	gameModel *Model
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, opts Options) SessionModel {
	id := uuid.NewString()
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With("session", id[:8], "user", username)
	}

	return SessionModel{
		store:     store,
		config:    cfg,
		opts:      opts,
		username:  username,
		sessionID: id,
		menu:      NewMenuModel(cfg),
		last:      Selection{Difficulty: config.DifficultyNormal},
	}
}

// ID returns the unique session identifier.
func (m SessionModel) ID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenSelect:
		return m.updateSelect(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		if m.gameModel != nil {
			return m.updateGame(msg)
		}
	}
	return m.updateMenu(msg)
}

// toMenu resets the menu and shows it.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Handled choices drop cmd: the menu quits its own program, which
	// inside a session would end the connection.
	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		m.gameID = m.menu.Selected().GameID
		m.screen = screenSelect
		m.selector = NewSelectModel(brawler.LoadConfig(false), m.config.ScreenW, m.config.ScreenH, m.last)
		return m, m.selector.Init()
	}

	return m, cmd
}

// updateSelect handles the character and difficulty picker.
func (m SessionModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSel, cmd := m.selector.Update(msg)
	if sel, ok := newSel.(SelectModel); ok {
		m.selector = sel
	}

	switch {
	case m.selector.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.selector.WantsBack():
		return m.toMenu()

	case m.selector.Selected() != nil:
		m.last = *m.selector.Selected()
		return m.startGame()
	}

	return m, cmd
}

// updateScores handles the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if sb, ok := newScores.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// startGame creates the chosen driver and hands the screen to it.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered drivers
		return m.toMenu()
	}
	if c, ok := game.(chooser); ok {
		c.Choose(m.last.Archetype, m.last.Difficulty)
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()

	gameModel := NewModel(game, m.store, cfg, m.opts)
	m.gameModel = &gameModel
	m.screen = screenGame

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSelect:
		return m.selector.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	}
	return m.menu.View()
}
