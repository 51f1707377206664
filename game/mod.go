package game

// Move is the payload of a decision. Implementations must be comparable so
// agents can match moves played by their opponents.
type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Winner() string // "" while the game is running
}
