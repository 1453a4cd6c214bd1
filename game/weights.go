package game

import (
	"fmt"
	"sync"
)

// Weights configures the evaluator and the search. A Weights value is
// copied into each search and never mutated while one runs.
type Weights struct {
	Name string

	NormalPieceValue     float64
	UpgradedPieceValue   float64
	CaptureBonus         float64 // per converted cob, move ordering only
	UpgradedCaptureBonus float64 // per converted roc, move ordering only
	CenterControl        float64
	Mobility             float64
	HomeBaseControl      float64
	OpponentBasePressure float64
	UpgradeOpportunity   float64

	// WinningScoreThreshold stops deepening below a node whose static score
	// magnitude reaches it. It is a tuning heuristic: a lopsided position can
	// still flip through conversions, so a high threshold prunes less and
	// misjudges less. Zero disables.
	WinningScoreThreshold float64
	// WinningPositionThreshold skips the remaining root moves once one
	// reaches it for the mover. Zero disables.
	WinningPositionThreshold float64

	SearchDepth int
}

// DefaultWeights is the baseline configuration.
func DefaultWeights() Weights {
	return Weights{
		Name:                     "default",
		NormalPieceValue:         100,
		UpgradedPieceValue:       160,
		CaptureBonus:             40,
		UpgradedCaptureBonus:     70,
		CenterControl:            12,
		Mobility:                 3,
		HomeBaseControl:          6,
		OpponentBasePressure:     18,
		UpgradeOpportunity:       10,
		WinningScoreThreshold:    700,
		WinningPositionThreshold: 500_000,
		SearchDepth:              4,
	}
}

// Presets returns the named configurations in a fixed order.
func Presets() []Weights {
	def := DefaultWeights()

	aggressive := def
	aggressive.Name = "aggressive"
	aggressive.CaptureBonus = 80
	aggressive.UpgradedCaptureBonus = 120
	aggressive.OpponentBasePressure = 30
	aggressive.UpgradeOpportunity = 16
	aggressive.HomeBaseControl = 0

	defensive := def
	defensive.Name = "defensive"
	defensive.HomeBaseControl = 20
	defensive.OpponentBasePressure = 6
	defensive.CaptureBonus = 25
	defensive.Mobility = 5

	material := def
	material.Name = "material"
	material.CenterControl = 0
	material.Mobility = 0
	material.HomeBaseControl = 0
	material.OpponentBasePressure = 0
	material.UpgradeOpportunity = 0

	positional := def
	positional.Name = "positional"
	positional.CenterControl = 25
	positional.Mobility = 6
	positional.UpgradeOpportunity = 15
	positional.CaptureBonus = 20

	balanced := def
	balanced.Name = "balanced"
	balanced.CenterControl = 15
	balanced.Mobility = 4
	balanced.HomeBaseControl = 10
	balanced.OpponentBasePressure = 15
	balanced.UpgradeOpportunity = 12

	return []Weights{def, aggressive, defensive, material, positional, balanced}
}

// Preset looks up a configuration by name.
func Preset(name string) (Weights, error) {
	for _, w := range Presets() {
		if w.Name == name {
			return w, nil
		}
	}
	return Weights{}, fmt.Errorf("unknown weight preset %q", name)
}

var (
	weightsMu sync.RWMutex
	current   = DefaultWeights()
)

// SetEvaluationWeights replaces the process-wide default configuration. It is
// read when a search is built without explicit weights.
func SetEvaluationWeights(w Weights) {
	weightsMu.Lock()
	defer weightsMu.Unlock()
	current = w
}

// EvaluationWeights returns the process-wide default configuration.
func EvaluationWeights() Weights {
	weightsMu.RLock()
	defer weightsMu.RUnlock()
	return current
}
