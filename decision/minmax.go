package decision

import "fmt"

// Role tells whether a ranked decision belongs to the maximising agent or to
// its opponent.
type Role int

const (
	Min Role = iota
	Max
)

func (r Role) String() string {
	switch r {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Opponent returns the other role.
func (r Role) Opponent() Role {
	if r == Max {
		return Min
	}
	return Max
}

// MinMax is a Move annotated with a rank and a role for an external search
// algorithm. The tree never reads either field.
type MinMax[M comparable] struct {
	Move[M]
	rank int
	role Role
}

func NewMinMax[M comparable](impl M, role Role) *MinMax[M] {
	return NewRankedMinMax(impl, role, 0)
}

func NewRankedMinMax[M comparable](impl M, role Role, rank int) *MinMax[M] {
	return &MinMax[M]{Move: New(impl), rank: rank, role: role}
}

func (m *MinMax[M]) Rank() int {
	return m.rank
}

func (m *MinMax[M]) SetRank(rank int) {
	m.rank = rank
}

func (m *MinMax[M]) Role() Role {
	return m.role
}

func (m *MinMax[M]) String() string {
	return fmt.Sprintf("%v(%s:%d)", m.impl, m.role, m.rank)
}
