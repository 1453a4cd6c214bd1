package game

// Zobrist keys for position hashing, generated from a fixed seed so hashes
// are stable across runs.
var (
	zobristCell       [NumVertices][numCells]StateHash
	zobristSideToMove StateHash // XOR when BLACK is to move
)

func init() {
	rng := prng{state: 0x7A4A71C0B5E1D2F3}
	for v := 0; v < NumVertices; v++ {
		for c := whiteCob; c < numCells; c++ {
			zobristCell[v][c] = StateHash(rng.next())
		}
	}
	zobristSideToMove = StateHash(rng.next())
}

// prng is xorshift64*.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func hashCells(cells *[NumVertices]cell, turn Color) StateHash {
	var h StateHash
	for v, c := range cells {
		if c != empty {
			h ^= zobristCell[v][c]
		}
	}
	if turn == Black {
		h ^= zobristSideToMove
	}
	return h
}
