package expand

import (
	"maps"

	"github.com/BonsaiRobotics/ros2-fabric/internal/config"
	"github.com/BonsaiRobotics/ros2-fabric/internal/launch"
	"github.com/BonsaiRobotics/ros2-fabric/internal/validate"
)

// Environment expands the named environment of a validated fleet definition
// into node descriptors. Descriptors appear in node declaration order, with
// a node's replicas in increasing index. A name matching no environment
// yields an empty list; callers who care can check for the environment
// up front.
func Environment(v validate.Validated, name string) []launch.NodeDescriptor {
	descriptors := []launch.NodeDescriptor{}
	for _, env := range v.Config().Environments {
		if env.Name != name {
			continue
		}
		for i := range env.Nodes {
			descriptors = append(descriptors, expandNode(&env.Nodes[i])...)
		}
	}
	return descriptors
}

// expandNode replicates one node template into its descriptor instances.
// The topic maps are computed once per template: topic names derive from
// publisher and subscriber quantities only, so every replica carries an
// identical copy.
func expandNode(node *config.NodeSpec) []launch.NodeDescriptor {
	publishTopics := make(map[string]launch.PublishProfile, len(node.Publishers))
	for _, pub := range node.Publishers {
		profile := launch.PublishProfile{
			MsgSize:      pub.MsgSize,
			Bandwidth:    pub.Bandwidth,
			MsgFrequency: pub.MsgFrequency,
		}
		for _, topic := range ReplicaNames(pub.Name, pub.Qty) {
			publishTopics[topic] = profile
		}
	}

	subscribeTopics := make(map[string]launch.SubscribeRef, len(node.Subscribers))
	for _, sub := range node.Subscribers {
		for _, topic := range ReplicaNames(sub.Name, sub.Qty) {
			subscribeTopics[topic] = launch.SubscribeRef{Node: sub.Node}
		}
	}

	instances := ReplicaNames(node.Name, node.Qty)
	descriptors := make([]launch.NodeDescriptor, 0, len(instances))
	for _, instance := range instances {
		descriptors = append(descriptors, launch.NodeDescriptor{
			Name:            instance,
			RootNode:        node.RootNode,
			TerminalNode:    node.TerminalNode,
			PublishTopics:   maps.Clone(publishTopics),
			SubscribeTopics: maps.Clone(subscribeTopics),
		})
	}
	return descriptors
}

// HasEnvironment reports whether the definition declares an environment with
// the given name. Expansion itself treats an unknown name as empty; this
// lets the caller tell "unknown environment" apart from "environment with no
// nodes" when reporting.
func HasEnvironment(cfg *config.Config, name string) bool {
	for _, env := range cfg.Environments {
		if env.Name == name {
			return true
		}
	}
	return false
}
