package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/loop"
)

// chromeRows is the number of rows below the playfield: status and help.
const chromeRows = 2

// sessionDoneMsg is sent when the game's runner has stopped.
type sessionDoneMsg struct {
	err error
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Game     config.InvadersConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Recorder invaders.RunRecorder

	// QuitToMenu makes the quit key end the game without quitting the
	// program, so a parent model can show its menu again.
	QuitToMenu bool
}

// GameModel is the Bubble Tea model for one game. The simulation runs on
// its own goroutine; the model forwards keys to it and displays the frames
// it publishes.
type GameModel struct {
	ctx       context.Context
	session   *loop.Session
	surface   *frameSurface
	prompts   chan string
	keyMapper *KeyMapper
	keys      KeyMap
	help      help.Model

	frame      FrameMsg
	prompt     string
	prompting  bool
	showHelp   bool
	width      int
	height     int
	quitToMenu bool
	quitting   bool
	backToMenu bool
	err        error
}

// NewGameModel creates a game bound to ctx. The game starts when the model
// is initialized and stops when ctx is cancelled or the player quits.
func NewGameModel(ctx context.Context, opts GameOptions) GameModel {
	width, height := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	if width <= 0 || height <= 0 {
		def := core.DefaultConfig()
		width, height = def.ScreenW, def.ScreenH
	}

	prompts := make(chan string, 1)
	surface := newFrameSurface(width, fieldRows(height), opts.Game.Playfield)
	session := loop.NewSession(loop.SessionConfig{
		Game:     opts.Game,
		TickRate: opts.Runtime.TickRate,
		Logger:   opts.Logger,
		Recorder: opts.Recorder,
	}, surface, func(message string) {
		select {
		case prompts <- message:
		default:
		}
	})
	surface.status = session.Status

	km := NewKeyMapper()
	h := help.New()
	h.Width = width

	return GameModel{
		ctx:        ctx,
		session:    session,
		surface:    surface,
		prompts:    prompts,
		keyMapper:  km,
		keys:       km.Keys(),
		help:       h,
		width:      width,
		height:     height,
		quitToMenu: opts.QuitToMenu,
	}
}

func fieldRows(height int) int {
	return max(height-chromeRows, 1)
}

// Init starts the runner and begins listening for frames and prompts.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(m.run(), m.waitForFrame(), m.waitForPrompt())
}

// run hosts the simulation for the lifetime of the game.
func (m GameModel) run() tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		return sessionDoneMsg{err: session.Run(ctx)}
	}
}

// waitForFrame returns a command that waits for the next rendered frame.
func (m GameModel) waitForFrame() tea.Cmd {
	frames, done := m.surface.frames, m.session.Done()
	return func() tea.Msg {
		select {
		case f := <-frames:
			return f
		case <-done:
			return nil
		}
	}
}

// waitForPrompt returns a command that waits for the next question.
func (m GameModel) waitForPrompt() tea.Cmd {
	prompts, done := m.prompts, m.session.Done()
	return func() tea.Msg {
		select {
		case msg := <-prompts:
			return PromptMsg{Message: msg}
		case <-done:
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		m.frame = msg
		return m, m.waitForFrame()

	case PromptMsg:
		m.prompting = true
		m.prompt = msg.Message
		return m, m.waitForPrompt()

	case sessionDoneMsg:
		m.err = msg.err
		if m.quitToMenu {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		switch m.keyMapper.MapPromptKey(msg) {
		case core.ActionConfirm:
			m.prompting = false
			m.session.Answer(true)
		case core.ActionDeny:
			m.prompting = false
			m.session.Answer(false)
		case core.ActionQuit:
			m.session.Stop()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.session.Stop()
	case core.ActionPause:
		m.session.TogglePause()
	case core.ActionRestart:
		m.session.Restart()
	case core.ActionLeft, core.ActionRight, core.ActionFire:
		m.session.Press(action)
	}

	return m, nil
}

// handleResize resizes the playfield and redraws it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	surface, session := m.surface, m.session
	w, h := msg.Width, fieldRows(msg.Height)
	session.Do(func() {
		surface.resize(w, h)
		session.Redraw()
	})

	return m, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	rows := fieldRows(m.height)
	var body, footer string
	switch {
	case m.prompting:
		box := promptStyle.Render(m.prompt + "\n\n" + "[y] yes    [n] no")
		body = lipgloss.Place(m.width, rows, lipgloss.Center, lipgloss.Center, box)
		footer = m.help.ShortHelpView(m.keys.PromptHelp())
	case m.showHelp:
		body = lipgloss.Place(m.width, rows, lipgloss.Center, lipgloss.Center,
			m.help.FullHelpView(m.keys.FullHelp()))
		footer = m.help.ShortHelpView([]key.Binding{m.keys.Help, m.keys.Quit})
	default:
		body = m.frame.View
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		renderStatus(m.frame.Status, m.width),
		helpStyle.Render(footer),
	)
}

// Err returns the error the runner stopped with, if any.
func (m GameModel) Err() error {
	return m.err
}

// BackToMenu returns true once the game ended and the parent should
// show its menu again.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Stop ends the game from outside the program.
func (m GameModel) Stop() {
	m.session.Stop()
}
