package tui

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
	"github.com/vovakirdan/rocket-arcade/internal/session"
)

// frameMsg carries a frame published by the session.
type frameMsg struct {
	frame core.Frame
}

// leaveMsg is sent when the player left the game, or the session ended.
type leaveMsg struct {
	err error
}

// gameLeftMsg tells the parent model that the game screen is done.
type gameLeftMsg struct {
	exit bool // leave the whole program, not just the game
	err  error
}

// leaveSignal is closed once by the session's game-over hook.
type leaveSignal struct {
	once sync.Once
	ch   chan struct{}
}

func newLeaveSignal() *leaveSignal {
	return &leaveSignal{ch: make(chan struct{})}
}

func (l *leaveSignal) fire() {
	l.once.Do(func() { close(l.ch) })
}

// GameOptions configures a game screen.
type GameOptions struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	// Context bounds the session; cancelling it ends the game.
	Context context.Context
}

// GameModel is the Bubble Tea model for a running game. The game itself lives
// inside a session; the model only forwards keys and renders frames.
type GameModel struct {
	sess   *session.Session
	ctx    context.Context
	leave  *leaveSignal
	keys   KeyMap
	help   help.Model
	hold   *HoldTracker
	screen *core.Screen
	frame  core.Frame
	clock  func() time.Time
	logger *log.Logger
	done   bool
}

// NewGameModel creates a game screen for game.
func NewGameModel(game registry.Game, opts GameOptions) GameModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	leave := newLeaveSignal()
	sess := session.New(game, session.Options{
		Runtime:    opts.Runtime,
		Logger:     logger,
		OnGameOver: leave.fire,
	})

	return GameModel{
		sess:   sess,
		ctx:    ctx,
		leave:  leave,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		hold:   NewHoldTracker(DefaultHoldDelay, DefaultHoldRepeat),
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		clock:  time.Now,
		logger: logger,
	}
}


// Init starts the session and begins listening for frames.
func (m GameModel) Init() tea.Cmd {
	if err := m.sess.Start(m.ctx); err != nil {
		return func() tea.Msg { return leaveMsg{err: err} }
	}
	return tea.Batch(m.waitFrame(), tickCmd(holdPollInterval))
}

// waitFrame blocks until the next frame, the closing of the feed or the
// game-over hook.
func (m GameModel) waitFrame() tea.Cmd {
	frames, leave := m.sess.Frames(), m.leave.ch
	return func() tea.Msg {
		select {
		case f, ok := <-frames:
			if !ok {
				return leaveMsg{}
			}
			return frameMsg{frame: f}
		case <-leave:
			return leaveMsg{}
		}
	}
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = msg.frame
		return m, m.waitFrame()

	case leaveMsg:
		return m.finish(false, msg.err)

	case TickMsg:
		for _, ev := range m.hold.Expire(time.Time(msg)) {
			m.forward(ev)
		}
		return m, tickCmd(holdPollInterval)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		return m.finish(true, nil)
	}

	switch a := m.keys.GameAction(msg, m.sess.Actions()); a {
	case core.ActionLeft, core.ActionRight:
		for _, ev := range m.hold.Press(a, m.clock()) {
			m.forward(ev)
		}

	case core.ActionJump:
		m.forward(core.Press(a))
		m.forward(core.Release(a))

	case core.ActionRetry:
		if err := m.sess.Retry(); err == nil {
			m.hold.ReleaseAll()
		}

	case core.ActionQuit:
		// Quit after game over runs the hook, which delivers leaveMsg. While
		// playing there is nothing to wait for.
		if err := m.sess.Quit(); err != nil {
			if !errors.Is(err, session.ErrNotOver) {
				m.logger.Debug("quit", "err", err)
			}
			return m.finish(false, nil)
		}
	}
	return m, nil
}

func (m GameModel) forward(ev core.KeyEvent) {
	if ev.Pressed {
		_ = m.sess.Press(ev.Action)
		return
	}
	_ = m.sess.Release(ev.Action)
}

// finish stops the session and reports to the parent.
func (m GameModel) finish(exit bool, err error) (tea.Model, tea.Cmd) {
	m.sess.Stop()
	m.done = true
	return m, func() tea.Msg { return gameLeftMsg{exit: exit, err: err} }
}

// View renders the latest frame and the key help.
func (m GameModel) View() string {
	if m.done {
		return ""
	}
	footer := m.help.View(m.keys.GameKeys(m.sess.Actions()))
	return RenderFrame(m.screen, m.frame) + "\n" + footer
}

// Session returns the session driving the game.
func (m GameModel) Session() *session.Session {
	return m.sess
}

// Done reports whether the game screen has finished.
func (m GameModel) Done() bool {
	return m.done
}
