package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackDetachFrom(t *testing.T) {
	t.Run("detaching a middle camel takes everything above it", func(t *testing.T) {
		stack := Stack{Blue, Green, Orange}

		chain := stack.DetachFrom(Green)

		require.Equal(t, Stack{Green, Orange}, chain, "Chain should hold the camel and everything above it in order")
		require.Equal(t, Stack{Blue}, stack, "Everything below the detached camel should stay")
	})

	t.Run("detaching the bottom camel empties the stack", func(t *testing.T) {
		stack := Stack{Blue, Green, Orange}

		chain := stack.DetachFrom(Blue)

		require.Equal(t, Stack{Blue, Green, Orange}, chain, "Chain should hold the whole stack")
		require.Empty(t, stack, "Nothing should remain below the bottom camel")
	})

	t.Run("detaching the top camel moves it alone", func(t *testing.T) {
		stack := Stack{Blue, Green, Orange}

		chain := stack.DetachFrom(Orange)

		require.Equal(t, Stack{Orange}, chain, "Chain should hold only the top camel")
		require.Equal(t, Stack{Blue, Green}, stack, "The rest of the stack should stay")
	})

	t.Run("detaching an absent camel panics", func(t *testing.T) {
		stack := Stack{Blue, Green}

		require.Panics(t, func() { stack.DetachFrom(White) },
			"Detaching a camel that is not in the stack is a programming error")
	})
}

func TestStackAppendChain(t *testing.T) {
	t.Run("chain lands on top of existing occupants", func(t *testing.T) {
		stack := Stack{Blue}

		stack.AppendChain(Stack{Green, Orange})

		require.Equal(t, Stack{Blue, Green, Orange}, stack, "Appended chain should sit above all existing camels in order")
	})

	t.Run("chain lands on an empty spot", func(t *testing.T) {
		var stack Stack

		stack.AppendChain(Stack{Green, Orange})

		require.Equal(t, Stack{Green, Orange}, stack)
	})
}

func TestStackPrependChain(t *testing.T) {
	t.Run("chain slides under existing occupants", func(t *testing.T) {
		stack := Stack{Blue}

		stack.PrependChain(Stack{Green, Orange})

		require.Equal(t, Stack{Green, Orange, Blue}, stack, "Prepended chain should sit below all existing camels in order")
	})

	t.Run("chain lands on an empty spot", func(t *testing.T) {
		var stack Stack

		stack.PrependChain(Stack{Green, Orange})

		require.Equal(t, Stack{Green, Orange}, stack)
	})
}

func TestStackTop(t *testing.T) {
	stack := Stack{Blue, Green}

	top, ok := stack.Top()

	require.True(t, ok)
	require.Equal(t, Green, top, "Top should be the last camel in the stack")

	_, ok = Stack{}.Top()
	require.False(t, ok, "An empty stack has no top camel")
}
