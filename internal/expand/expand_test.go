package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BonsaiRobotics/ros2-fabric/internal/config"
	"github.com/BonsaiRobotics/ros2-fabric/internal/launch"
	"github.com/BonsaiRobotics/ros2-fabric/internal/validate"
)

func f64(v float64) *float64 { return &v }

func mustValidate(t *testing.T, cfg *config.Config) validate.Validated {
	t.Helper()
	validated, err := validate.Config(cfg)
	require.NoError(t, err)
	return validated
}

// The worked sensor/consumer pair: one root publisher, one terminal
// subscriber, everything at quantity 1.
func TestEnvironment_SensorConsumerPair(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Environments: []config.Environment{{
		Name: "env1",
		Nodes: []config.NodeSpec{
			{
				Name: "sensor", Qty: 1, RootNode: true,
				Publishers: []config.PublisherSpec{
					{Name: "img", Qty: 1, MsgSize: f64(100), Bandwidth: f64(50)},
				},
			},
			{
				Name: "consumer", Qty: 1, TerminalNode: true,
				Subscribers: []config.SubscriberSpec{
					{Name: "img", Node: "sensor", Qty: 1},
				},
			},
		},
	}}}

	descriptors := Environment(mustValidate(t, cfg), "env1")
	require.Len(t, descriptors, 2)

	assert.Equal(t, launch.NodeDescriptor{
		Name:     "sensor",
		RootNode: true,
		PublishTopics: map[string]launch.PublishProfile{
			"img": {MsgSize: f64(100), Bandwidth: f64(50)},
		},
		SubscribeTopics: map[string]launch.SubscribeRef{},
	}, descriptors[0])

	assert.Equal(t, launch.NodeDescriptor{
		Name:          "consumer",
		TerminalNode:  true,
		PublishTopics: map[string]launch.PublishProfile{},
		SubscribeTopics: map[string]launch.SubscribeRef{
			"img": {Node: "sensor"},
		},
	}, descriptors[1])
}

func TestEnvironment_NodeReplication(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Environments: []config.Environment{{
		Name: "env1",
		Nodes: []config.NodeSpec{{
			Name: "worker", Qty: 3, RootNode: true,
			Publishers: []config.PublisherSpec{
				{Name: "out", Qty: 1, Bandwidth: f64(10), MsgFrequency: f64(5)},
			},
		}},
	}}}

	descriptors := Environment(mustValidate(t, cfg), "env1")
	require.Len(t, descriptors, 3)

	names := []string{descriptors[0].Name, descriptors[1].Name, descriptors[2].Name}
	assert.Equal(t, []string{"worker_1", "worker_2", "worker_3"}, names)

	// Topic names derive from the publisher qty, not the node qty: every
	// replica shares the same topic map.
	for _, d := range descriptors {
		assert.Equal(t, descriptors[0].PublishTopics, d.PublishTopics)
		assert.Contains(t, d.PublishTopics, "out")
	}

	// The shared maps must still be independent copies.
	descriptors[0].PublishTopics["extra"] = launch.PublishProfile{}
	assert.NotContains(t, descriptors[1].PublishTopics, "extra")
}

func TestEnvironment_TopicReplication(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Environments: []config.Environment{{
		Name: "env1",
		Nodes: []config.NodeSpec{{
			Name: "sensor", Qty: 1, RootNode: true,
			Publishers: []config.PublisherSpec{
				{Name: "cam", Qty: 2, MsgSize: f64(100), Bandwidth: f64(50)},
			},
		}},
	}}}

	descriptors := Environment(mustValidate(t, cfg), "env1")
	require.Len(t, descriptors, 1)

	topics := descriptors[0].PublishTopics
	require.Len(t, topics, 2)
	want := launch.PublishProfile{MsgSize: f64(100), Bandwidth: f64(50)}
	assert.Equal(t, want, topics["cam_1"])
	assert.Equal(t, want, topics["cam_2"])
}

func TestEnvironment_SubscriberReplication(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Environments: []config.Environment{{
		Name: "env1",
		Nodes: []config.NodeSpec{{
			Name: "sink", Qty: 1, TerminalNode: true,
			Subscribers: []config.SubscriberSpec{
				{Name: "cam", Node: "sensor", Qty: 2},
			},
		}},
	}}}

	descriptors := Environment(mustValidate(t, cfg), "env1")
	require.Len(t, descriptors, 1)

	topics := descriptors[0].SubscribeTopics
	require.Len(t, topics, 2)
	assert.Equal(t, launch.SubscribeRef{Node: "sensor"}, topics["cam_1"])
	assert.Equal(t, launch.SubscribeRef{Node: "sensor"}, topics["cam_2"])
}

func TestEnvironment_UnknownName(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Environments: []config.Environment{{
		Name: "env1",
		Nodes: []config.NodeSpec{{
			Name: "sensor", Qty: 1, RootNode: true,
			Publishers: []config.PublisherSpec{
				{Name: "img", Qty: 1, MsgSize: f64(1), Bandwidth: f64(1)},
			},
		}},
	}}}
	validated := mustValidate(t, cfg)

	descriptors := Environment(validated, "no_such_env")
	assert.Empty(t, descriptors)

	assert.True(t, HasEnvironment(cfg, "env1"))
	assert.False(t, HasEnvironment(cfg, "no_such_env"))
}

func TestEnvironment_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Environments: []config.Environment{{
		Name: "env1",
		Nodes: []config.NodeSpec{
			{
				Name: "a", Qty: 2, RootNode: true,
				Publishers: []config.PublisherSpec{
					{Name: "x", Qty: 3, MsgSize: f64(8), MsgFrequency: f64(100)},
				},
			},
			{
				Name: "b", Qty: 1, TerminalNode: true,
				Subscribers: []config.SubscriberSpec{
					{Name: "x", Node: "a", Qty: 3},
				},
			},
		},
	}}}
	validated := mustValidate(t, cfg)

	first := Environment(validated, "env1")
	second := Environment(validated, "env1")
	assert.Equal(t, first, second)
}
