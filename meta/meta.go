// meta/meta.go
package meta

import "time"

// MAX_TURNS caps the number of plies of a self-play game.
const MAX_TURNS = 300

// DEFAULT_DEPTH is the base search depth used when none is configured.
const DEFAULT_DEPTH = 4

// NUM_GAMES is the number of games per match up in a tournament.
const NUM_GAMES = 20

// OPENING_PLIES is the number of random plies played before the agents take over.
const OPENING_PLIES = 2

// TIME_BUDGET bounds a single move search in a tournament. Zero disables.
const TIME_BUDGET = 0 * time.Millisecond
