package session

import (
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Commands accepted by the session loop.

type keyCmd struct {
	Event core.KeyEvent
}

type retryCmd struct {
	Reply chan error
}

type quitCmd struct {
	Reply chan error
}

type snapshotCmd struct {
	Reply chan core.Frame
}

type statusCmd struct {
	Reply chan core.GameState
}

// fire is sent by a timer goroutine when its timer is due. gen is the
// session generation the timer was armed in.
type fire struct {
	name string
	gen  uint64
	once bool
	at   time.Time
}
