package game

import "fmt"

// Stack is the ordered pile of camels occupying a single spot, bottom to
// top. Camels never move individually once stacked: the only relocation
// primitive is detaching a contiguous chain and splicing it onto another
// stack, which preserves relative order by construction.
type Stack []Color

// DetachFrom splits the stack at color: the chain containing color and
// everything above it is removed and returned, everything below stays.
// Panics if color is not in the stack; callers track camel positions, so a
// miss is a programming error rather than a game-rule violation.
func (s *Stack) DetachFrom(color Color) Stack {
	for i, c := range *s {
		if c == color {
			chain := make(Stack, len(*s)-i)
			copy(chain, (*s)[i:])
			*s = (*s)[:i]
			return chain
		}
	}
	panic(fmt.Sprintf("camel %s not in stack %v", color, *s))
}

// AppendChain places chain on top of all current occupants. Used for
// forward moves landing on an occupied spot.
func (s *Stack) AppendChain(chain Stack) {
	*s = append(*s, chain...)
}

// PrependChain places chain below all current occupants. Used for backward
// moves.
func (s *Stack) PrependChain(chain Stack) {
	merged := make(Stack, 0, len(chain)+len(*s))
	merged = append(merged, chain...)
	merged = append(merged, *s...)
	*s = merged
}

// Top returns the topmost camel, if any.
func (s Stack) Top() (Color, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

func (s Stack) copy() Stack {
	if s == nil {
		return nil
	}
	dup := make(Stack, len(s))
	copy(dup, s)
	return dup
}
