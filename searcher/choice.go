package searcher

import "strconv"

// Choice is the optional index of the child committed at a node. The zero
// value means no decision has been made there.
type Choice struct {
	index int
	made  bool
}

func Chosen(index int) Choice {
	return Choice{index: index, made: true}
}

func (c Choice) Index() (int, bool) {
	return c.index, c.made
}

func (c Choice) Made() bool {
	return c.made
}

func (c Choice) String() string {
	if !c.made {
		return "none"
	}
	return strconv.Itoa(c.index)
}
