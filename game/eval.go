package game

// Evaluate scores gs from WHITE's perspective: positive favors WHITE,
// negative favors BLACK. Each term is the WHITE minus BLACK difference of a
// per-side tally, scaled by its weight. The side to move does not matter.
//
// Mobility counts the single-edge steps of every piece. Castling leaps are
// left out because they exist only for the side to move.
func Evaluate(gs *GameState, w Weights) float64 {
	var t tallies
	t.collect(gs)

	score := t.material(w)
	score += w.CenterControl * t.diff(t.center)
	score += w.Mobility * t.diff(t.mobility)
	score += w.HomeBaseControl * t.diff(t.homeControl)
	score += w.OpponentBasePressure * t.diff(t.pressure)
	score += w.UpgradeOpportunity * t.diff(t.opportunity)
	return score
}

// QuickEvaluate is the material-only tier used to order moves.
func QuickEvaluate(gs *GameState, w Weights) float64 {
	var t tallies
	for _, c := range gs.cells {
		if c == empty {
			continue
		}
		if c.upgraded() {
			t.rocs[c.color()]++
		} else {
			t.cobs[c.color()]++
		}
	}
	return t.material(w)
}

// tallies holds per-side counts, indexed by Color.
type tallies struct {
	cobs        [NumColors]float64
	rocs        [NumColors]float64
	center      [NumColors]float64
	mobility    [NumColors]float64
	homeControl [NumColors]float64
	pressure    [NumColors]float64
	opportunity [NumColors]float64
}

func (t *tallies) collect(gs *GameState) {
	for i, c := range gs.cells {
		if c == empty {
			continue
		}
		v := Vertex(i)
		color := c.color()

		if c.upgraded() {
			t.rocs[color]++
		} else {
			t.cobs[color]++
		}

		// The center region covers the absolute center and the bridge ring.
		if r := board.region[v]; r == Center || r == Bridge {
			t.center[color]++
		}

		if InHomeBase(color, v) {
			t.homeControl[color]++
		}
		enemyBase := InHomeBase(color.Opponent(), v)
		if enemyBase {
			t.pressure[color]++
		}

		nearEnemyBase := false
		for _, n := range board.adjacency[v] {
			if canStep(gs, c, v, n) {
				t.mobility[color]++
			}
			if InHomeBase(color.Opponent(), n) {
				nearEnemyBase = true
			}
		}
		if !c.upgraded() && !enemyBase && nearEnemyBase {
			t.opportunity[color]++
		}
	}
}

func (t *tallies) material(w Weights) float64 {
	white := t.cobs[White]*w.NormalPieceValue + t.rocs[White]*w.UpgradedPieceValue
	black := t.cobs[Black]*w.NormalPieceValue + t.rocs[Black]*w.UpgradedPieceValue
	return white - black
}

func (t *tallies) diff(term [NumColors]float64) float64 {
	return term[White] - term[Black]
}
