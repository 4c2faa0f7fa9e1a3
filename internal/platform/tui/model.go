package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spike-runner/internal/config"
	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/game"
	"github.com/vovakirdan/spike-runner/internal/sched"
)

// chromeRows is the number of terminal rows used by the HUD and help line.
const chromeRows = 2

// Options configures a terminal model.
type Options struct {
	Config config.RunnerConfig
	Preset config.Preset // Reapplied to hot-reloaded configs
	Seed   int64         // 0 picks a time-based seed
	Theme  Theme
	Logger *log.Logger

	// Watcher, if set, delivers config file changes. The model does not
	// close it.
	Watcher *config.Watcher

	// Initial terminal size; updated by window size messages.
	Width, Height int
}

// ConfigChangedMsg is sent when the watched config file changes.
type ConfigChangedMsg struct {
	Path string
}

// watchErrMsg carries a watcher error.
type watchErrMsg struct {
	err error
}

// Model is the Bubble Tea model running one spike runner session.
type Model struct {
	session  *game.Session
	clock    *sched.Clock
	interval time.Duration
	screen   *core.Screen
	theme    Theme
	keys     KeyMap
	help     help.Model
	watcher  *config.Watcher
	preset   config.Preset
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model with a fresh session on a virtual clock.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Theme.Cells == nil {
		opts.Theme = DefaultTheme()
	}

	clock := sched.NewClock()
	session, err := game.NewSession(opts.Config, clock, game.Options{
		Seed:   opts.Seed,
		Logger: opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	screen := core.NewScreen(opts.Width, opts.Height-chromeRows)
	return Model{
		session:  session,
		clock:    clock,
		interval: opts.Config.TickInterval(),
		screen:   screen,
		theme:    opts.Theme,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		watcher:  opts.Watcher,
		preset:   opts.Preset,
		logger:   opts.Logger,
	}, nil
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tea.Batch(tickCmd(m.interval), m.waitForConfig())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-chromeRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.clock.Advance(m.interval)
		return m, tickCmd(m.interval)

	case ConfigChangedMsg:
		m.reload(msg.Path)
		return m, m.waitForConfig()

	case watchErrMsg:
		m.logger.Warn("config watcher error", "error", msg.err)
		return m, m.waitForConfig()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Jump):
		m.session.JumpOrConfirm()
	}
	return m, nil
}

// reload loads the changed config and queues it for the next reset.
func (m Model) reload(path string) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		m.logger.Warn("ignoring config change", "path", path, "error", err)
		return
	}
	config.ApplyPreset(&cfg, m.preset)
	if err := m.session.Reconfigure(cfg); err != nil {
		m.logger.Warn("ignoring config change", "path", path, "error", err)
		return
	}
	m.logger.Info("config reloaded, applies on next reset", "path", path)
}

// waitForConfig returns a command that blocks until the watcher reports.
func (m Model) waitForConfig() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// The canvas can change on reset when a reloaded config is applied.
	m.screen.Clear()
	m.session.Render(NewScreenSink(m.screen, m.session.Canvas()))
	if m.session.State() == game.StateStopped {
		drawOverlay(m.screen)
	}

	return renderHUD(m.session.Snapshot(), m.theme) + "\n" +
		RenderScreen(m.screen, m.theme) + "\n" +
		m.help.View(m.keys)
}

// Session returns the model's session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
