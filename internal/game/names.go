package game

import (
	"fmt"
	"math/rand"
)

// nameGenerator hands out unique planet display names by pairing a root with
// a suffix from the configured pools. When the pools run dry it falls back to
// numbered roots so any requested map size still gets distinct names.
type nameGenerator struct {
	rng      *rand.Rand
	roots    []string
	suffixes []string
	used     map[string]bool
}

func newNameGenerator(rng *rand.Rand, roots, suffixes []string) *nameGenerator {
	return &nameGenerator{
		rng:      rng,
		roots:    roots,
		suffixes: suffixes,
		used:     make(map[string]bool),
	}
}

func (g *nameGenerator) Next() string {
	for attempt := 0; attempt < 64; attempt++ {
		root := g.roots[g.rng.Intn(len(g.roots))]
		suffix := g.suffixes[g.rng.Intn(len(g.suffixes))]
		name := root + " " + suffix
		if !g.used[name] {
			g.used[name] = true
			return name
		}
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s %d", g.roots[g.rng.Intn(len(g.roots))], i)
		if !g.used[name] {
			g.used[name] = true
			return name
		}
	}
}
