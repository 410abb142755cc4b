// Package tui provides the Bubble Tea integration for the arcade platform.
// It renders session frames, maps keys to session input and serves the
// arcade over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// holdPollInterval is how often held keys are checked for an inferred release.
const holdPollInterval = 30 * time.Millisecond

// TickMsg is sent to check held keys for expiry.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
