package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"samegame/game"
)

/**
Scoring and the best-score chase:
- Score: sum of size*(size-1) over the moves
- before any clearance, dead-end lines compete for the best
- the first clearance resets the best, later dead ends are ignored
- line scores above the ceiling are discarded, never taken as best
- target and patience end the chase; Stop ends it by hand
- the downstream handler hears the best line exactly once, when the chase ends
*/

func TestScore(t *testing.T) {
	require.Equal(t, 0, Score(game.NewMoveSequence(0)), "no moves, no points")
	require.Equal(t, 2+6+12, Score(sequenceOf(t, 2, 3, 4)))
}

func TestBestScoreDeadEnds(t *testing.T) {
	t.Run("dead ends compete until a clearance shows up", func(t *testing.T) {
		b := NewBestScore(&recordingHandler{})

		b.HandleDead(sequenceOf(t, 4))  // 12
		b.HandleDead(sequenceOf(t, 8))  // 56
		b.HandleDead(sequenceOf(t, 3))  // 6, worse, ignored
		b.HandleDead(sequenceOf(t, 10)) // 90

		best, score, solved := b.Best()
		require.Equal(t, 90, score)
		require.Equal(t, "a10@0,0", best.String())
		require.False(t, solved)
	})

	t.Run("a clearance resets the best and retires dead ends", func(t *testing.T) {
		b := NewBestScore(&recordingHandler{})
		b.HandleDead(sequenceOf(t, 8)) // 56

		b.Handle(sequenceOf(t, 6))      // 30, outranks the dead 56
		b.HandleDead(sequenceOf(t, 12)) // 132, too late to compete
		b.Handle(sequenceOf(t, 7))      // 42, better clearance

		best, score, solved := b.Best()
		require.Equal(t, 42, score)
		require.Equal(t, "a7@0,0", best.String())
		require.True(t, solved)
	})
}

func TestBestScoreCeiling(t *testing.T) {
	t.Run("default ceiling admits the perfect clearance", func(t *testing.T) {
		b := NewBestScore(&recordingHandler{})

		b.Handle(sequenceOf(t, 100)) // 9900, one move takes the whole board

		_, score, _ := b.Best()
		require.Equal(t, SCORE_CEILING, score)
	})

	t.Run("an aberrant clearance is discarded but still counts as solving", func(t *testing.T) {
		downstream := &recordingHandler{}
		b := NewBestScore(downstream, WithCeiling(50))

		b.Handle(sequenceOf(t, 8)) // 56, over the ceiling

		best, score, solved := b.Best()
		require.True(t, solved)
		require.Equal(t, 0, score)
		require.Equal(t, 0, best.Len())

		b.Stop()
		require.Empty(t, downstream.snapshot(), "nothing valid to forward")
	})

	t.Run("an aberrant dead end is discarded outright", func(t *testing.T) {
		b := NewBestScore(&recordingHandler{}, WithCeiling(50))

		b.HandleDead(sequenceOf(t, 8)) // 56, over the ceiling
		b.HandleDead(sequenceOf(t, 4)) // 12

		_, score, solved := b.Best()
		require.Equal(t, 12, score)
		require.False(t, solved)
	})
}

func TestBestScoreTriggers(t *testing.T) {
	t.Run("beating the target ends the chase and forwards once", func(t *testing.T) {
		downstream := &recordingHandler{}
		b := NewBestScore(downstream, WithTarget(50))

		b.Handle(sequenceOf(t, 8)) // 56 > 50
		b.Handle(sequenceOf(t, 9)) // chase already over

		require.False(t, b.Searching())
		select {
		case <-b.Done():
		default:
			t.Fatal("Done must be closed once the target is beaten")
		}
		require.Equal(t, []string{"solved a8@0,0"}, downstream.snapshot())
		_, score, _ := b.Best()
		require.Equal(t, 56, score, "the late better line must not sneak in")
	})

	t.Run("a matched target is not enough", func(t *testing.T) {
		b := NewBestScore(&recordingHandler{}, WithTarget(56))

		b.Handle(sequenceOf(t, 8)) // exactly 56

		require.True(t, b.Searching(), "the chase goes on until the target is beaten")
	})

	t.Run("stalling past the patience window ends the chase", func(t *testing.T) {
		downstream := &recordingHandler{}
		b := NewBestScore(downstream, WithPatience(10*time.Millisecond))

		b.Handle(sequenceOf(t, 2))
		time.Sleep(50 * time.Millisecond)
		b.Handle(sequenceOf(t, 10)) // arrives expired, never becomes best

		require.False(t, b.Searching())
		require.Equal(t, []string{"solved a2@0,0"}, downstream.snapshot())
		_, score, _ := b.Best()
		require.Equal(t, 2, score)
	})
}

func TestBestScoreStop(t *testing.T) {
	t.Run("flushes the best downstream exactly once", func(t *testing.T) {
		downstream := &recordingHandler{}
		b := NewBestScore(downstream)
		b.HandleDead(sequenceOf(t, 4))

		b.Stop()
		b.Stop()

		require.Equal(t, []string{"solved a4@0,0"}, downstream.snapshot())
		require.False(t, b.Searching())
	})

	t.Run("with nothing scored, forwards nothing", func(t *testing.T) {
		downstream := &recordingHandler{}
		b := NewBestScore(downstream)

		b.Stop()

		require.Empty(t, downstream.snapshot())
		select {
		case <-b.Done():
		default:
			t.Fatal("Done must be closed by Stop")
		}
	})

	t.Run("callbacks after Stop are ignored", func(t *testing.T) {
		b := NewBestScore(&recordingHandler{})
		b.Stop()

		b.Handle(sequenceOf(t, 8))
		b.HandleDead(sequenceOf(t, 4))

		_, score, solved := b.Best()
		require.Equal(t, 0, score)
		require.False(t, solved)
	})
}
