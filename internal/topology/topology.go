package topology

import (
	"fmt"

	"github.com/BonsaiRobotics/ros2-fabric/internal/config"
	"github.com/BonsaiRobotics/ros2-fabric/internal/expand"
	"github.com/BonsaiRobotics/ros2-fabric/internal/validate"
)

// Kind identifies which connectivity rule a config violated.
type Kind int

const (
	// IsolatedNode flags an intermediate node missing publishers or subscribers.
	IsolatedNode Kind = iota

	// UnconnectedPublisher flags a published topic with no matching subscriber.
	UnconnectedPublisher

	// UnconnectedSubscriber flags a subscribed topic matching no publisher.
	UnconnectedSubscriber
)

// Error reports the first connectivity violation found, in document order.
type Error struct {
	Kind  Kind
	Node  string
	Topic string
}

func (e *Error) Error() string {
	switch e.Kind {
	case IsolatedNode:
		return fmt.Sprintf("node %q must declare both publishers and subscribers since it is neither a root nor a terminal node", e.Node)
	case UnconnectedPublisher:
		return fmt.Sprintf("publisher %q in node %q has no matching subscriber", e.Topic, e.Node)
	case UnconnectedSubscriber:
		return fmt.Sprintf("subscriber %q in node %q matches no publisher", e.Topic, e.Node)
	default:
		return fmt.Sprintf("invalid topology involving node %q", e.Node)
	}
}

// endpoint is one replicated end of a pub/sub link: the instance name of the
// node publishing (or expected to publish) a topic, the replicated topic
// name, and the template name that declared it, for reporting.
type endpoint struct {
	node  string
	topic string
	owner string
}

// graph holds the replicated link sets of one environment.
type graph struct {
	pubs   []endpoint
	subs   []endpoint
	pubSet map[[2]string]struct{}
	subSet map[[2]string]struct{}
}

// Check lints every environment of a validated fleet definition and returns
// the first violation found. Environments are independent scenarios, so
// links never match across environment boundaries.
func Check(v validate.Validated) error {
	for _, env := range v.Config().Environments {
		for i := range env.Nodes {
			node := &env.Nodes[i]
			if !node.RootNode && !node.TerminalNode &&
				(len(node.Publishers) == 0 || len(node.Subscribers) == 0) {
				return &Error{Kind: IsolatedNode, Node: node.Name}
			}
		}

		g := buildGraph(&env)
		for _, pub := range g.pubs {
			if _, ok := g.subSet[[2]string{pub.node, pub.topic}]; !ok {
				return &Error{Kind: UnconnectedPublisher, Node: pub.owner, Topic: pub.topic}
			}
		}
		for _, sub := range g.subs {
			if _, ok := g.pubSet[[2]string{sub.node, sub.topic}]; !ok {
				return &Error{Kind: UnconnectedSubscriber, Node: sub.owner, Topic: sub.topic}
			}
		}
	}
	return nil
}

// buildGraph replicates every publisher and subscriber declaration of one
// environment into concrete links. A subscribing node's replica k is paired
// with replica k of its source node: replicated consumers each attach to
// their own copy of the producer.
func buildGraph(env *config.Environment) *graph {
	g := &graph{
		pubSet: make(map[[2]string]struct{}),
		subSet: make(map[[2]string]struct{}),
	}

	for i := range env.Nodes {
		node := &env.Nodes[i]
		instances := expand.ReplicaNames(node.Name, node.Qty)

		for _, pub := range node.Publishers {
			for _, instance := range instances {
				for _, topic := range expand.ReplicaNames(pub.Name, pub.Qty) {
					g.pubs = append(g.pubs, endpoint{node: instance, topic: topic, owner: node.Name})
					g.pubSet[[2]string{instance, topic}] = struct{}{}
				}
			}
		}

		for _, sub := range node.Subscribers {
			sources := expand.ReplicaNames(sub.Node, node.Qty)
			for _, source := range sources {
				for _, topic := range expand.ReplicaNames(sub.Name, sub.Qty) {
					g.subs = append(g.subs, endpoint{node: source, topic: topic, owner: node.Name})
					g.subSet[[2]string{source, topic}] = struct{}{}
				}
			}
		}
	}

	return g
}
