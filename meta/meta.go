// meta/meta.go
package meta

// HEAP defines the number of stones a game starts with.
const HEAP = 21

// MAX_TAKE defines the most stones a move can take.
const MAX_TAKE = 3

// HORIZON defines how many moves deep agents grow their trees.
const HORIZON = 4

// GAMES defines the number of games per matchup.
const GAMES = 30

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments"
