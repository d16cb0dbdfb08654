package perftcache

import (
	"log"

	"github.com/reynagenesisti-create/goattea/internal/board"
)

// Perft counts leaf nodes reached from pos after depth plies, checking
// cache first and writing the result back on a miss. A nil cache degrades
// to plain uncached recursion, so callers never need a hard dependency on
// Badger to run a perft. Cache read and write failures are logged and
// treated as misses.
func Perft(pos *board.Position, depth int, cache *Cache) (nodes int64, cached bool) {
	fen := pos.ToFEN()

	if cache != nil {
		n, ok, err := cache.Get(fen, depth)
		if err != nil {
			log.Printf("perftcache: read failed: %v", err)
		} else if ok {
			return n, true
		}
	}

	nodes = walk(pos, depth)

	if cache != nil {
		if err := cache.Set(fen, depth, nodes); err != nil {
			log.Printf("perftcache: write failed: %v", err)
		}
	}

	return nodes, false
}

// walk counts leaf nodes via the standard recursive make/unmake perft walk.
func walk(p *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		p.Make(m)
		nodes += walk(p, depth-1)
		p.Unmake()
	}
	return nodes
}
