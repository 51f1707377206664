package game

import "fmt"

// Take removes N stones from the heap.
type Take struct {
	N int
}

func (t Take) String() string {
	return fmt.Sprintf("take %d", t.N)
}

// Nim is a single heap subtraction game: players alternately take between 1
// and MaxTake stones and whoever takes the last stone wins.
type Nim struct {
	Heap    int
	MaxTake int
	Players [2]string
	Turn    int // Index into Players of the player to move
}

func NewNim(heap, maxTake int, players [2]string) Nim {
	if heap < 0 || maxTake < 1 {
		panic(fmt.Sprintf("invalid nim heap %d with max take %d", heap, maxTake))
	}
	return Nim{Heap: heap, MaxTake: maxTake, Players: players}
}

func (n Nim) Player() string {
	return n.Players[n.Turn]
}

func (n Nim) LegalMoves() []Move {
	count := min(n.Heap, n.MaxTake)
	moves := make([]Move, 0, count)
	for i := 1; i <= count; i++ {
		moves = append(moves, Take{N: i})
	}
	return moves
}

func (n Nim) Play(move Move) State {
	take, ok := move.(Take)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	if take.N < 1 || take.N > min(n.Heap, n.MaxTake) {
		panic(fmt.Sprintf("illegal move %v on heap %d", take, n.Heap))
	}
	n.Heap -= take.N
	n.Turn = 1 - n.Turn
	return n
}

func (n Nim) Winner() string {
	if n.Heap > 0 {
		return ""
	}
	// The previous player took the last stone
	return n.Players[1-n.Turn]
}
