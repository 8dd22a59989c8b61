package bounceback

import (
	"fmt"
	"os"
)

// debugNodeName returns the attached node's name for log lines.
func debugNodeName(b *BounceBack) string {
	if b.node != nil {
		return b.node.Name
	}
	return "<detached>"
}

// debugLogTransition prints a state transition to stderr. Only called when
// debug mode is on.
func debugLogTransition(b *BounceBack, from, to State) {
	_, _ = fmt.Fprintf(os.Stderr, "[bounceback] %q: %s -> %s (gen %d)\n",
		debugNodeName(b), from, to, b.generation)
}

// debugLogEvent prints a lifecycle event forwarded to the entity store.
func debugLogEvent(event EventType, n *Node, selectorID int) {
	name := "<nil>"
	if n != nil {
		name = n.Name
	}
	_, _ = fmt.Fprintf(os.Stderr, "[bounceback] event %s on %q (selector %d)\n",
		event, name, selectorID)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("bounceback debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[bounceback] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
