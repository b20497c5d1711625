package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindGroups(t *testing.T) {
	t.Run("finds each connected region once, in scan order", func(t *testing.T) {
		b := testBoard(
			"aab",
			"cab",
			"ccb")

		groups := FindGroups(b)

		require.Len(t, groups, 3)
		// Scan order is columns left to right, cells bottom to top.
		require.Equal(t, Cell(3), groups[0].Type, "the c region seeds first at (0,0)")
		require.Equal(t, Point{X: 0, Y: 0}, groups[0].Origin)
		require.Equal(t, 3, groups[0].Size)
		require.Equal(t, Cell(1), groups[1].Type, "the a region seeds next at (0,2)")
		require.Equal(t, Point{X: 0, Y: 2}, groups[1].Origin)
		require.Equal(t, 3, groups[1].Size)
		require.Equal(t, Cell(2), groups[2].Type, "the b region seeds last at (2,0)")
		require.Equal(t, Point{X: 2, Y: 0}, groups[2].Origin)
		require.Equal(t, 3, groups[2].Size)
	})

	t.Run("lone blocks seed nothing", func(t *testing.T) {
		b := testBoard(
			"aab",
			"ccd")

		groups := FindGroups(b)

		require.Len(t, groups, 2, "b and d have no same-type neighbour")
		for _, g := range groups {
			require.GreaterOrEqual(t, g.Size, 2, "every group has at least two cells")
		}
	})

	t.Run("a board with no adjacency yields none", func(t *testing.T) {
		b := testBoard(
			"aba",
			"bab",
			"aba")

		require.Empty(t, FindGroups(b))
	})

	t.Run("an empty board yields none", func(t *testing.T) {
		require.Empty(t, FindGroups(NewBoard(3, 3)))
	})

	t.Run("diagonals do not connect", func(t *testing.T) {
		b := testBoard(
			".a",
			"a.")

		require.Empty(t, FindGroups(b))
	})

	t.Run("column seams do not connect", func(t *testing.T) {
		// (0,1) and (1,0) sit next to each other in the backing slice but
		// are diagonal on the board.
		b := testBoard(
			"a.",
			".a")

		require.Empty(t, FindGroups(b))
	})

	t.Run("masks are pairwise disjoint", func(t *testing.T) {
		b, err := LoadBenchmark("quad")
		require.NoError(t, err)

		groups := FindGroups(b)
		require.NotEmpty(t, groups)
		for i := range groups {
			for j := i + 1; j < len(groups); j++ {
				require.False(t, groups[i].Mask().Overlaps(groups[j].Mask()),
					"groups %v and %v must not share cells", groups[i], groups[j])
			}
		}
	})

	t.Run("masks cover exactly the cells with a same-type neighbour", func(t *testing.T) {
		b, err := LoadBenchmark("quad")
		require.NoError(t, err)

		covered := newMask(b.Cells())
		total := 0
		for _, g := range FindGroups(b) {
			for _, p := range g.Cells() {
				covered.set(b.index(p.X, p.Y))
			}
			total += g.Size
		}
		require.Equal(t, total, covered.Count(), "group sizes must match their masks")

		for x := 0; x < b.Width(); x++ {
			for y := 0; y < b.Height(); y++ {
				c := b.At(x, y)
				if c == 0 {
					continue
				}
				require.Equal(t, b.hasSameNeighbor(x, y, c), covered.has(b.index(x, y)),
					"cell (%d,%d) grouping disagrees with its adjacency", x, y)
			}
		}
	})

	t.Run("identical boards give identical results", func(t *testing.T) {
		b, err := LoadBenchmark("classic")
		require.NoError(t, err)

		require.Equal(t, FindGroups(b), FindGroups(b.Clone()),
			"the finder must be deterministic down to the ordering")
	})
}

func TestGroupCells(t *testing.T) {
	b := testBoard(
		"aa.",
		".a.")
	groups := FindGroups(b)
	require.Len(t, groups, 1)
	g := groups[0]

	require.Equal(t, 3, g.Size)
	require.Equal(t, []Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}, g.Cells(),
		"cells should come out in ascending scan order")
	require.True(t, g.Contains(1, 0))
	require.False(t, g.Contains(0, 0))
	require.False(t, g.Contains(2, 1))
	require.False(t, g.Contains(-1, 0))
	require.Equal(t, "a3@0,1", g.String())
}

func TestGroupMaskIsACopy(t *testing.T) {
	g := FindGroups(testBoard("aa"))[0]

	mask := g.Mask()
	mask[0] = 0

	require.Equal(t, 2, g.Mask().Count(), "mutating a returned mask must not touch the group")
}

func TestMask(t *testing.T) {
	m := newMask(130)
	require.Len(t, m, 3)

	m.set(0)
	m.set(64)
	m.set(129)

	require.Equal(t, 3, m.Count())
	require.True(t, m.has(64))
	require.False(t, m.has(1))

	other := newMask(130)
	other.set(64)
	require.True(t, m.Overlaps(other))

	disjoint := newMask(130)
	disjoint.set(2)
	require.False(t, m.Overlaps(disjoint))
}
