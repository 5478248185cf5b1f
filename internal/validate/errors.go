package validate

import "fmt"

// Kind identifies which structural rule a config violated.
type Kind int

const (
	// InvalidQuantity flags a node, publisher, or subscriber quantity below 1.
	InvalidQuantity Kind = iota

	// InsufficientPublisherParameters flags a publisher with fewer than two
	// of the three traffic characterization fields set.
	InsufficientPublisherParameters

	// ConflictingNodeRole flags a node marked both root and terminal.
	ConflictingNodeRole

	// RootNodeHasSubscribers flags a root node that declares subscribers.
	RootNodeHasSubscribers

	// TerminalNodeHasPublishers flags a terminal node that declares publishers.
	TerminalNodeHasPublishers
)

// Error reports the first structural rule violation found in a config,
// identifying the offending entities by name. Publisher and Subscriber are
// empty for node-level violations.
type Error struct {
	Kind       Kind
	Node       string
	Publisher  string
	Subscriber string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidQuantity:
		switch {
		case e.Publisher != "":
			return fmt.Sprintf("invalid publisher quantity for publisher %q in node %q", e.Publisher, e.Node)
		case e.Subscriber != "":
			return fmt.Sprintf("invalid subscriber quantity for subscriber %q in node %q", e.Subscriber, e.Node)
		default:
			return fmt.Sprintf("invalid node quantity for node %q", e.Node)
		}
	case InsufficientPublisherParameters:
		return fmt.Sprintf("publisher %q in node %q must have at least two of the following parameters: bandwidth, msg_size, msg_frequency",
			e.Publisher, e.Node)
	case ConflictingNodeRole:
		return fmt.Sprintf("node %q cannot be both a root node and a terminal node", e.Node)
	case RootNodeHasSubscribers:
		return fmt.Sprintf("root node %q cannot have subscribers", e.Node)
	case TerminalNodeHasPublishers:
		return fmt.Sprintf("terminal node %q cannot have publishers", e.Node)
	default:
		return fmt.Sprintf("invalid config involving node %q", e.Node)
	}
}
