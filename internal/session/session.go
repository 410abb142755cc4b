// Package session runs one play-through of a game: it owns the game state on a
// single goroutine, schedules the game's timers and guarantees that no timer
// mutates the game after game over, retry or teardown.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

var (
	ErrAlreadyStarted = errors.New("session: already started")
	ErrNotStarted     = errors.New("session: not started")
	ErrStopped        = errors.New("session: stopped")
	ErrNotOver        = errors.New("session: game is not over")
)

// Options configures a session.
type Options struct {
	// Runtime is passed to the game on every start and retry. A zero seed
	// picks a time-based seed each time.
	Runtime core.RuntimeConfig

	// Logger receives lifecycle events. Defaults to a discarding logger.
	Logger *log.Logger

	// OnGameOver is invoked when the player leaves after game over, either by
	// Quit or by the game's auto-exit timer.
	OnGameOver func()

	// FrameBuffer is the size of the frame feed buffer.
	FrameBuffer int
}

// Session drives a single game.
type Session struct {
	id    string
	game  registry.Game
	opts  Options
	log   *log.Logger
	inbox chan any
	fires chan fire
	feed  *Feed
	done  chan struct{} // closed when the loop exits

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	group   *errgroup.Group

	// Owned by the loop goroutine.
	ctx       context.Context
	gen       uint64
	over      bool
	playStop  context.CancelFunc // cancels periodic timers
	effectCtx context.Context
	effectEnd context.CancelFunc // cancels one-shot timers
}

// New creates a session for game. The game must not be used elsewhere.
func New(game registry.Game, opts Options) *Session {
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		id:    id,
		game:  game,
		opts:  opts,
		log:   logger.With("session", id[:8], "game", game.ID()),
		inbox: make(chan any, 64),
		fires: make(chan fire),
		feed:  NewFeed(opts.FrameBuffer),
		done:  make(chan struct{}),
	}
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// GameID returns the id of the game being played.
func (s *Session) GameID() string {
	return s.game.ID()
}

// Title returns the title of the game being played.
func (s *Session) Title() string {
	return s.game.Title()
}

// Actions returns the actions the game reacts to.
func (s *Session) Actions() []core.Action {
	return s.game.Actions()
}

// Start resets the game and begins running its timers. The session stops
// when ctx is cancelled or Stop is called.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.group, ctx = errgroup.WithContext(ctx)
	s.group.Go(func() error {
		defer close(s.done)
		return s.loop(ctx)
	})
	return nil
}

// Stop cancels all timers and waits until the loop and every timer goroutine
// have exited. No game mutation happens after Stop returns. Stop is idempotent
// and may be called before Start.
func (s *Session) Stop() {
	s.mu.Lock()
	first := !s.stopped
	s.stopped = true
	cancel, group := s.cancel, s.group
	s.mu.Unlock()

	if group == nil {
		if first {
			s.feed.Close()
		}
		return
	}
	cancel()
	_ = group.Wait()
}

// Done returns a channel that closes when the session loop has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Frames returns the frame feed. It is closed when the session stops.
func (s *Session) Frames() <-chan core.Frame {
	return s.feed.C()
}

// Press records a key press.
func (s *Session) Press(a core.Action) error {
	return s.send(keyCmd{Event: core.Press(a)})
}

// Release records a key release.
func (s *Session) Release(a core.Action) error {
	return s.send(keyCmd{Event: core.Release(a)})
}

// Retry restarts the game from a clean state. Only valid after game over.
func (s *Session) Retry() error {
	reply := make(chan error, 1)
	if err := s.send(retryCmd{Reply: reply}); err != nil {
		return err
	}
	err, ok := await(s, reply)
	if !ok {
		return ErrStopped
	}
	return err
}

// Quit leaves the game after game over and invokes OnGameOver on the
// calling goroutine.
func (s *Session) Quit() error {
	reply := make(chan error, 1)
	if err := s.send(quitCmd{Reply: reply}); err != nil {
		return err
	}
	err, ok := await(s, reply)
	if !ok {
		return ErrStopped
	}
	if err != nil {
		return err
	}
	if s.opts.OnGameOver != nil {
		s.opts.OnGameOver()
	}
	return nil
}

// Snapshot returns the current frame.
func (s *Session) Snapshot() (core.Frame, error) {
	reply := make(chan core.Frame, 1)
	if err := s.send(snapshotCmd{Reply: reply}); err != nil {
		return nil, err
	}
	frame, ok := await(s, reply)
	if !ok {
		return nil, ErrStopped
	}
	return frame, nil
}

// Status returns the current score and game-over flag.
func (s *Session) Status() (core.GameState, error) {
	reply := make(chan core.GameState, 1)
	if err := s.send(statusCmd{Reply: reply}); err != nil {
		return core.GameState{}, err
	}
	state, ok := await(s, reply)
	if !ok {
		return core.GameState{}, ErrStopped
	}
	return state, nil
}

func (s *Session) send(msg any) error {
	s.mu.Lock()
	started, stopped := s.started, s.stopped
	s.mu.Unlock()

	if stopped {
		return ErrStopped
	}
	if !started {
		return ErrNotStarted
	}

	select {
	case s.inbox <- msg:
		return nil
	case <-s.done:
		return ErrStopped
	}
}

// await waits for a reply, preferring it over a concurrent shutdown.
func await[T any](s *Session, reply <-chan T) (T, bool) {
	select {
	case v := <-reply:
		return v, true
	case <-s.done:
		select {
		case v := <-reply:
			return v, true
		default:
			var zero T
			return zero, false
		}
	}
}

func (s *Session) loop(ctx context.Context) error {
	defer s.feed.Close()

	s.ctx = ctx
	s.begin()
	s.log.Info("session started")

	for {
		select {
		case <-ctx.Done():
			s.cancelTimers()
			s.log.Info("session stopped", "score", s.game.State().Score)
			return nil
		case f := <-s.fires:
			s.handleFire(f)
		case msg := <-s.inbox:
			s.handleCommand(msg)
		}
	}
}

func (s *Session) handleCommand(msg any) {
	switch c := msg.(type) {
	case keyCmd:
		s.game.Apply(c.Event)
	case retryCmd:
		if !s.over {
			c.Reply <- ErrNotOver
			return
		}
		s.begin()
		s.log.Info("retry")
		c.Reply <- nil
	case quitCmd:
		if !s.over {
			c.Reply <- ErrNotOver
			return
		}
		s.log.Debug("quit after game over")
		c.Reply <- nil
	case snapshotCmd:
		c.Reply <- s.game.Snapshot()
	case statusCmd:
		c.Reply <- s.game.State()
	}
}

// begin resets the game and arms its periodic timers under a new generation.
func (s *Session) begin() {
	s.cancelTimers()
	s.gen++
	s.over = false

	rt := s.opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	s.game.Reset(rt)
	s.log.Debug("game reset", "generation", s.gen, "seed", rt.Seed)

	var playCtx context.Context
	playCtx, s.playStop = context.WithCancel(s.ctx)
	s.effectCtx, s.effectEnd = context.WithCancel(s.ctx)

	for _, t := range s.game.Timers() {
		s.arm(playCtx, t)
	}
	s.publish()
}

func (s *Session) cancelTimers() {
	if s.playStop != nil {
		s.playStop()
	}
	if s.effectEnd != nil {
		s.effectEnd()
	}
}

func (s *Session) handleFire(f fire) {
	// Drop fires that raced with a stop, a retry or a game over
	if s.ctx.Err() != nil || f.gen != s.gen {
		return
	}
	if s.over && !f.once {
		return
	}
	s.apply(s.game.Fire(f.name, f.at))
}

func (s *Session) apply(res core.StepResult) {
	if res.State.GameOver && !s.over {
		s.over = true
		s.playStop()
		s.log.Info("game over", "score", res.State.Score)
	}
	for _, t := range res.Schedule {
		s.arm(s.effectCtx, t)
	}
	s.publish()

	if res.Quit && s.over && s.opts.OnGameOver != nil {
		s.log.Debug("auto exit after game over")
		// The hook may call Stop, which waits for this goroutine
		go s.opts.OnGameOver()
	}
}

func (s *Session) publish() {
	s.feed.Send(s.game.Snapshot())
}

// arm starts a goroutine for t that lives until ctx is cancelled.
func (s *Session) arm(ctx context.Context, t core.Timer) {
	if t.Interval <= 0 {
		s.log.Warn("ignoring timer with non-positive interval", "timer", t.Name)
		return
	}
	gen := s.gen
	s.group.Go(func() error {
		runTimer(ctx, t, gen, s.fires)
		return nil
	})
}

func runTimer(ctx context.Context, t core.Timer, gen uint64, out chan<- fire) {
	if t.Once {
		timer := time.NewTimer(t.Interval)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case at := <-timer.C:
			deliver(ctx, out, fire{name: t.Name, gen: gen, once: true, at: at})
		}
		return
	}

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.C:
			if !deliver(ctx, out, fire{name: t.Name, gen: gen, at: at}) {
				return
			}
		}
	}
}

func deliver(ctx context.Context, out chan<- fire, f fire) bool {
	select {
	case out <- f:
		return true
	case <-ctx.Done():
		return false
	}
}
