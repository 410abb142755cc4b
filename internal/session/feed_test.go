package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

func frameWithScore(n int) core.Frame {
	return fakeFrame{state: core.GameState{Score: n}}
}

func TestFeedDropsOldest(t *testing.T) {
	f := NewFeed(2)
	for i := 1; i <= 5; i++ {
		f.Send(frameWithScore(i))
	}

	assert.Equal(t, 4, (<-f.C()).Status().Score)
	assert.Equal(t, 5, (<-f.C()).Status().Score)
}

func TestFeedCloseIsIdempotent(t *testing.T) {
	f := NewFeed(0)
	f.Send(frameWithScore(1))
	f.Close()
	f.Close()
	f.Send(frameWithScore(2)) // ignored after close

	got := []int{}
	for fr := range f.C() {
		got = append(got, fr.Status().Score)
	}
	assert.Equal(t, []int{1}, got)

	select {
	case <-f.Done():
	default:
		t.Fatal("done should be closed")
	}
}
