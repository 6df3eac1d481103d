// meta/meta.go
package meta

// MAX_TURNS caps the number of actions in a driven game.
const MAX_TURNS = 1000

// GAMES defines the default number of games per experiment run.
const GAMES = 10

// SEED defines the default seed for random setups and random players.
const SEED = 1

// RESULTS_DIR is where experiment CSV files are written.
const RESULTS_DIR = "results"
