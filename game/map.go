package game

import (
	"fmt"
	"slices"
)

// Vertex is a node of the fixed Tarati board, indexed in label order:
// A1, B1..B6, C1..C12, D1..D4.
type Vertex uint8

// NumVertices is the size of the vertex set.
const NumVertices = 23

const (
	A1 Vertex = iota
	B1
	B2
	B3
	B4
	B5
	B6
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	C9
	C10
	C11
	C12
	D1
	D2
	D3
	D4
)

// Region classifies a vertex by its ring on the board.
type Region uint8

const (
	Center Region = iota
	Bridge
	Circumference
	Home
)

func (r Region) String() string {
	switch r {
	case Center:
		return "center"
	case Bridge:
		return "bridge"
	case Circumference:
		return "circumference"
	case Home:
		return "home"
	default:
		return "unknown"
	}
}

// castle is a leap of a home cob over a friendly cob onto the bridge.
type castle struct {
	color Color
	from  Vertex
	over  Vertex
	to    Vertex
}

// topology holds the static lookup tables. Built once at init, read-only after.
type topology struct {
	labels    [NumVertices]string
	index     map[string]Vertex
	adjacency [NumVertices][]Vertex
	neighbors [NumVertices]uint32 // bitmask of adjacency
	region    [NumVertices]Region
	home      [NumColors][]Vertex
	homeMask  [NumColors]uint32
	rank      [NumColors][NumVertices]int
	rotation  [NumVertices]Vertex
	castles   [NumVertices]*castle // indexed by castle.from
}

var board = newTopology()

func newTopology() *topology {
	t := &topology{index: make(map[string]Vertex, NumVertices)}

	t.label(A1, "A1", Center)
	for i := 0; i < 6; i++ {
		t.label(B1+Vertex(i), fmt.Sprintf("B%d", i+1), Bridge)
	}
	for i := 0; i < 12; i++ {
		t.label(C1+Vertex(i), fmt.Sprintf("C%d", i+1), Circumference)
	}
	for i := 0; i < 4; i++ {
		t.label(D1+Vertex(i), fmt.Sprintf("D%d", i+1), Home)
	}

	for i := 0; i < 6; i++ {
		b := B1 + Vertex(i)
		t.addBorder(A1, b)
		t.addBorder(b, B1+Vertex((i+1)%6))
		t.addBorder(b, C1+Vertex(2*i))
		t.addBorder(b, C1+Vertex(2*i+1))
	}
	for i := 0; i < 12; i++ {
		t.addBorder(C1+Vertex(i), C1+Vertex((i+1)%12))
	}
	t.addBorder(D1, C1)
	t.addBorder(D2, C2)
	t.addBorder(D1, D2)
	t.addBorder(D3, C7)
	t.addBorder(D4, C8)
	t.addBorder(D3, D4)

	t.home[White] = []Vertex{C1, C2, D1, D2}
	t.home[Black] = []Vertex{C7, C8, D3, D4}
	for c := White; c <= Black; c++ {
		for _, v := range t.home[c] {
			t.homeMask[c] |= 1 << v
		}
	}

	// Forward rank: distance to the nearest vertex of the opponent's home base.
	for c := White; c <= Black; c++ {
		t.rank[c] = t.distances(t.home[c.Opponent()])
	}

	t.rotation[A1] = A1
	for i := 0; i < 6; i++ {
		t.rotation[B1+Vertex(i)] = B1 + Vertex((i+3)%6)
	}
	for i := 0; i < 12; i++ {
		t.rotation[C1+Vertex(i)] = C1 + Vertex((i+6)%12)
	}
	t.rotation[D1], t.rotation[D3] = D3, D1
	t.rotation[D2], t.rotation[D4] = D4, D2

	for _, c := range []castle{
		{color: White, from: D1, over: C1, to: B1},
		{color: White, from: D2, over: C2, to: B1},
		{color: Black, from: D3, over: C7, to: B4},
		{color: Black, from: D4, over: C8, to: B4},
	} {
		t.castles[c.from] = &c
	}

	return t
}

func (t *topology) label(v Vertex, label string, r Region) {
	t.labels[v] = label
	t.index[label] = v
	t.region[v] = r
}

// addBorder adds a bidirectional edge between two vertices.
func (t *topology) addBorder(a, b Vertex) {
	if !slices.Contains(t.adjacency[a], b) {
		t.adjacency[a] = append(t.adjacency[a], b)
		t.neighbors[a] |= 1 << b
	}
	if !slices.Contains(t.adjacency[b], a) {
		t.adjacency[b] = append(t.adjacency[b], a)
		t.neighbors[b] |= 1 << a
	}
}

// distances runs a breadth-first search from the given sources.
func (t *topology) distances(sources []Vertex) [NumVertices]int {
	var dist [NumVertices]int
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]Vertex, 0, NumVertices)
	for _, s := range sources {
		dist[s] = 0
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range t.adjacency[v] {
			if dist[n] < 0 {
				dist[n] = dist[v] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

func (v Vertex) String() string {
	if int(v) >= NumVertices {
		return fmt.Sprintf("Vertex(%d)", uint8(v))
	}
	return board.labels[v]
}

// ParseVertex resolves a case-sensitive label such as "C1".
func ParseVertex(label string) (Vertex, error) {
	v, ok := board.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, label)
	}
	return v, nil
}

// MustVertex is ParseVertex for labels known at compile time. It panics on
// an unknown label.
func MustVertex(label string) Vertex {
	v, err := ParseVertex(label)
	if err != nil {
		panic(err)
	}
	return v
}

// Vertices returns every vertex in index order.
func Vertices() []Vertex {
	vs := make([]Vertex, NumVertices)
	for i := range vs {
		vs[i] = Vertex(i)
	}
	return vs
}

// Neighbors returns the vertices adjacent to v.
func Neighbors(v Vertex) []Vertex {
	return slices.Clone(board.adjacency[v])
}

// AreAdjacent reports whether a and b share an edge.
func AreAdjacent(a, b Vertex) bool {
	return board.neighbors[a]&(1<<b) != 0
}

// RegionOf returns the ring v belongs to.
func RegionOf(v Vertex) Region {
	return board.region[v]
}

// HomeBase returns the four vertices of c's home base.
func HomeBase(c Color) []Vertex {
	return slices.Clone(board.home[c])
}

// InHomeBase reports whether v belongs to c's home base.
func InHomeBase(c Color, v Vertex) bool {
	return board.homeMask[c]&(1<<v) != 0
}

// Rank is the distance from v to the nearest vertex of c's opponent home base.
// Moving a cob of color c to a higher rank is a retreat.
func Rank(c Color, v Vertex) int {
	return board.rank[c][v]
}

// IsRetreat reports whether a step from -> to moves a cob of color c away
// from the opponent's home base.
func IsRetreat(c Color, from, to Vertex) bool {
	return board.rank[c][to] > board.rank[c][from]
}

// Rotate maps v onto its image under the half-turn symmetry of the board,
// which swaps the two home bases.
func Rotate(v Vertex) Vertex {
	return board.rotation[v]
}
