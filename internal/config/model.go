package config

// Config is the unified, format-agnostic representation of an entire fleet
// definition: every environment and every node template within it. It is
// built once by a Loader and never mutated afterwards.
type Config struct {
	Environments []Environment
}

// Environment is a named group of node templates representing one
// deployable scenario. Node order is declaration order and is preserved
// through expansion.
type Environment struct {
	Name  string
	Nodes []NodeSpec
}

// NodeSpec is the template for a node before quantity replication. A root
// node only publishes, a terminal node only subscribes; a node can be
// neither but never both.
type NodeSpec struct {
	Name         string
	Qty          int
	RootNode     bool
	TerminalNode bool
	Publishers   []PublisherSpec
	Subscribers  []SubscriberSpec
}

// PublisherSpec describes one published topic template and its traffic
// profile. The three characterization fields are optional individually, but
// at least two must be set; the third is derivable from the other two.
// Pointer fields distinguish "absent" from an explicit zero.
type PublisherSpec struct {
	Name         string
	Qty          int
	Bandwidth    *float64
	MsgSize      *float64
	MsgFrequency *float64
}

// CharacterizationCount reports how many of the three traffic
// characterization fields are set.
func (p *PublisherSpec) CharacterizationCount() int {
	count := 0
	for _, f := range []*float64{p.Bandwidth, p.MsgSize, p.MsgFrequency} {
		if f != nil {
			count++
		}
	}
	return count
}

// SubscriberSpec describes one subscribed topic template. Node names the
// publishing node the topic originates from; it is carried through to the
// descriptor as an opaque label and is not resolved against declared nodes.
type SubscriberSpec struct {
	Name string
	Node string
	Qty  int
}
