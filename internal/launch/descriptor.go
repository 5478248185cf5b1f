package launch

// NodeDescriptor is the fully resolved, launch-ready description of one node
// instance. Topic names already carry their replica suffixes; all replicas
// of the same node template share an identical topic name set.
type NodeDescriptor struct {
	Name            string                    `json:"name"`
	RootNode        bool                      `json:"root_node"`
	TerminalNode    bool                      `json:"terminal_node"`
	PublishTopics   map[string]PublishProfile `json:"publish_topics"`
	SubscribeTopics map[string]SubscribeRef   `json:"subscribe_topics"`
}

// PublishProfile is the traffic characterization of one published topic.
// Only the fields present in the source publisher spec are set; at least
// two are guaranteed by validation.
type PublishProfile struct {
	MsgSize      *float64 `json:"msg_size,omitempty"`
	Bandwidth    *float64 `json:"bandwidth,omitempty"`
	MsgFrequency *float64 `json:"msg_frequency,omitempty"`
}

// SubscribeRef names the node a subscribed topic originates from.
type SubscribeRef struct {
	Node string `json:"node"`
}
