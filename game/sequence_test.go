package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testGroup(size int, x int) Group {
	return Group{Type: 1, Size: size, Origin: Point{X: x}}
}

func TestMoveSequencePush(t *testing.T) {
	t.Run("appends without touching the receiver", func(t *testing.T) {
		s0 := NewMoveSequence(5)

		s1, err := s0.Push(testGroup(2, 0))
		require.NoError(t, err)

		require.Equal(t, 0, s0.Len(), "the receiver must stay empty")
		require.Equal(t, 1, s1.Len())
		require.Equal(t, testGroup(2, 0), s1.At(0))
	})

	t.Run("divergent branches never share a backing array", func(t *testing.T) {
		s0 := NewMoveSequence(5)
		s1, err := s0.Push(testGroup(2, 0))
		require.NoError(t, err)

		// Two branches extend the same prefix.
		left, err := s1.Push(testGroup(3, 1))
		require.NoError(t, err)
		right, err := s1.Push(testGroup(4, 2))
		require.NoError(t, err)

		require.Equal(t, testGroup(3, 1), left.At(1))
		require.Equal(t, testGroup(4, 2), right.At(1), "the second branch must not clobber the first")
		require.Equal(t, 1, s1.Len())

		// Even direct mutation of one branch's array stays invisible.
		left.moves[0] = testGroup(9, 9)
		require.Equal(t, testGroup(2, 0), s1.At(0))
		require.Equal(t, testGroup(2, 0), right.At(0))
	})

	t.Run("returns ErrLengthExceeded at the limit", func(t *testing.T) {
		s := NewMoveSequence(2)
		var err error
		for i := 0; i < 2; i++ {
			s, err = s.Push(testGroup(2, i))
			require.NoError(t, err)
		}

		unchanged, err := s.Push(testGroup(2, 9))

		require.ErrorIs(t, err, ErrLengthExceeded)
		require.Equal(t, 2, unchanged.Len(), "a failed push returns the receiver unchanged")
		require.Equal(t, testGroup(2, 1), unchanged.At(1))
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		require.Equal(t, MOVE_LIMIT, NewMoveSequence(0).Limit())
		require.Equal(t, MOVE_LIMIT, NewMoveSequence(-3).Limit())
		require.Equal(t, 7, NewMoveSequence(7).Limit())
	})
}

func TestMoveSequenceGroups(t *testing.T) {
	s := NewMoveSequence(5)
	s, _ = s.Push(testGroup(2, 0))
	s, _ = s.Push(testGroup(3, 1))

	groups := s.Groups()
	groups[0] = testGroup(9, 9)

	require.Equal(t, testGroup(2, 0), s.At(0), "Groups must return a defensive copy")
	require.Equal(t, []Group{testGroup(2, 0), testGroup(3, 1)}, s.Groups())
}

func TestMoveSequenceClone(t *testing.T) {
	s := NewMoveSequence(5)
	s, _ = s.Push(testGroup(2, 0))

	clone := s.Clone()
	clone.moves[0] = testGroup(9, 9)

	require.Equal(t, testGroup(2, 0), s.At(0), "a clone owns its own backing array")
	require.Equal(t, s.Limit(), clone.Limit())
}

func TestMoveSequenceString(t *testing.T) {
	s := NewMoveSequence(5)
	require.Equal(t, "(no moves)", s.String())

	s, _ = s.Push(Group{Type: 1, Size: 2, Origin: Point{X: 0, Y: 1}})
	s, _ = s.Push(Group{Type: 2, Size: 4, Origin: Point{X: 3, Y: 0}})
	require.Equal(t, "a2@0,1 b4@3,0", s.String())
}
