package validate

import "github.com/BonsaiRobotics/ros2-fabric/internal/config"

// Validated wraps a config that has passed every structural check. The zero
// value is unusable; the only way to obtain one is a successful Config call,
// which is what lets the expander skip re-checking.
type Validated struct {
	cfg *config.Config
}

// Config runs every structural rule over the whole fleet definition and
// returns a Validated wrapper on success. Checking walks in document order
// (environments, then nodes, then publishers, then subscribers) and stops at
// the first violation, returning a *Error describing it.
func Config(cfg *config.Config) (Validated, error) {
	for _, env := range cfg.Environments {
		for i := range env.Nodes {
			if err := checkNode(&env.Nodes[i]); err != nil {
				return Validated{}, err
			}
		}
	}
	return Validated{cfg: cfg}, nil
}

// Config returns the wrapped, fully validated config.
func (v Validated) Config() *config.Config {
	return v.cfg
}

func checkNode(node *config.NodeSpec) error {
	if node.Qty < 1 {
		return &Error{Kind: InvalidQuantity, Node: node.Name}
	}
	if node.RootNode && node.TerminalNode {
		return &Error{Kind: ConflictingNodeRole, Node: node.Name}
	}
	if node.RootNode && len(node.Subscribers) > 0 {
		return &Error{Kind: RootNodeHasSubscribers, Node: node.Name}
	}
	if node.TerminalNode && len(node.Publishers) > 0 {
		return &Error{Kind: TerminalNodeHasPublishers, Node: node.Name}
	}

	for i := range node.Publishers {
		pub := &node.Publishers[i]
		if pub.Qty < 1 {
			return &Error{Kind: InvalidQuantity, Node: node.Name, Publisher: pub.Name}
		}
		if pub.CharacterizationCount() < 2 {
			return &Error{Kind: InsufficientPublisherParameters, Node: node.Name, Publisher: pub.Name}
		}
	}

	for i := range node.Subscribers {
		sub := &node.Subscribers[i]
		if sub.Qty < 1 {
			return &Error{Kind: InvalidQuantity, Node: node.Name, Subscriber: sub.Name}
		}
	}

	return nil
}
