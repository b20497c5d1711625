package searcher

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"golang.org/x/exp/rand"

	"samegame/game"
)

// ScanOrder keeps moves exactly as the finder produced them: columns left to
// right, cells bottom to top.
func ScanOrder() Prioritizer { return scanOrder{} }

type scanOrder struct{}

func (scanOrder) Prioritize(moves []game.Group) []game.Group {
	return append([]game.Group(nil), moves...)
}

// LargestFirst tries big clearances first. The sort is stable, so equal
// sizes keep their scan order and the permutation stays deterministic.
func LargestFirst() Prioritizer { return largestFirst{} }

type largestFirst struct{}

func (largestFirst) Prioritize(moves []game.Group) []game.Group {
	ordered := append([]game.Group(nil), moves...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Size > ordered[j].Size
	})
	return ordered
}

// Reversed flips whatever order the wrapped prioritizer produces. The
// wrapped result is reversed in place, which is fine as long as it is a
// fresh slice - all prioritizers here return one.
func Reversed(inner Prioritizer) Prioritizer { return reversed{inner: inner} }

type reversed struct {
	inner Prioritizer
}

func (r reversed) Prioritize(moves []game.Group) []game.Group {
	ordered := r.inner.Prioritize(moves)
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered
}

// SmallestFirst chips away at small groups first, giving the big ones room
// to grow before they are taken.
func SmallestFirst() Prioritizer { return Reversed(LargestFirst()) }

// Shuffled permutes moves pseudo-randomly but reproducibly: the permutation
// is seeded by hashing the moves themselves together with the fixed seed, so
// the same position always branches in the same order while different
// positions decorrelate. Stateless, hence safe for concurrent use.
func Shuffled(seed uint64) Prioritizer { return shuffled{seed: seed} }

type shuffled struct {
	seed uint64
}

func (s shuffled) Prioritize(moves []game.Group) []game.Group {
	ordered := append([]game.Group(nil), moves...)
	hash := fnv.New64a()
	buf := make([]byte, 8)
	for _, g := range moves {
		key := uint64(g.Origin.X)<<40 | uint64(g.Origin.Y)<<24 | uint64(g.Size)<<8 | uint64(g.Type)
		binary.LittleEndian.PutUint64(buf, key)
		hash.Write(buf)
	}
	rng := rand.New(rand.NewSource(s.seed ^ hash.Sum64()))
	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}
