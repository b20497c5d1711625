package game

import (
	"fmt"
	"sort"
)

// The benchmark catalogue: fixed boards for tests, experiments and the CLI.
// Everything except classic is small enough to exhaust in well under a
// second; classic is a full reference 10x10 meant for the score-chasing mode.
type benchmarkBoard struct {
	width  int
	height int
	text   string
}

var benchmarks = map[string]benchmarkBoard{
	// One move, one clearance.
	"pair": {width: 2, height: 1, text: "aa"},
	// Two groups, solvable in either order.
	"tiny": {width: 3, height: 3, text: "" +
		"aab\n" +
		"aab\n" +
		"bbb"},
	// No two same-type blocks touch: dead on arrival.
	"checker": {width: 3, height: 3, text: "" +
		"aba\n" +
		"bab\n" +
		"aba"},
	// Column stripes, always clearable.
	"stripes": {width: 4, height: 4, text: "" +
		"abba\n" +
		"abba\n" +
		"abba\n" +
		"abba"},
	// Three types, mixed clusters, some lines dead-end.
	"quad": {width: 5, height: 5, text: "" +
		"aabba\n" +
		"ccbba\n" +
		"aacba\n" +
		"bbcaa\n" +
		"bbcaa"},
	// The reference 10x10 with five types.
	"classic": {width: 10, height: 10, text: "" +
		"aabbbccdde\n" +
		"aabcccddee\n" +
		"babbcdddee\n" +
		"bbaacddcee\n" +
		"cbaacccdde\n" +
		"ccabbbddaa\n" +
		"ccabbeddaa\n" +
		"ddeebbeeaa\n" +
		"ddeeebeecc\n" +
		"ddeeebeccc"},
}

// BenchmarkNames lists the catalogue in stable alphabetical order.
func BenchmarkNames() []string {
	names := make([]string, 0, len(benchmarks))
	for name := range benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadBenchmark builds the named catalogue board.
func LoadBenchmark(name string) (Board, error) {
	bm, ok := benchmarks[name]
	if !ok {
		return Board{}, fmt.Errorf("unknown benchmark board %q (have %v)", name, BenchmarkNames())
	}
	return MustParse(bm.text, bm.width, bm.height), nil
}
