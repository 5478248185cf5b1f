package yaml

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BonsaiRobotics/ros2-fabric/internal/config"
	"github.com/BonsaiRobotics/ros2-fabric/internal/ctxlog"
)

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// yamlDocument mirrors the top-level structure of a fleet definition file.
// Quantities are pointers so that an absent qty (default 1) is
// distinguishable from an explicit qty of 0, which must survive to the
// validator.
type yamlDocument struct {
	Environments []yamlEnvironment `yaml:"environments"`
}

type yamlEnvironment struct {
	Name  string     `yaml:"name"`
	Nodes []yamlNode `yaml:"nodes"`
}

type yamlNode struct {
	Name         string           `yaml:"name"`
	RootNode     bool             `yaml:"root_node"`
	TerminalNode bool             `yaml:"terminal_node"`
	Qty          *int             `yaml:"qty"`
	Publishers   []yamlPublisher  `yaml:"publishers"`
	Subscribers  []yamlSubscriber `yaml:"subscribers"`
}

type yamlPublisher struct {
	Name         string   `yaml:"name"`
	Qty          *int     `yaml:"qty"`
	Bandwidth    *float64 `yaml:"bandwidth"`
	MsgSize      *float64 `yaml:"msg_size"`
	MsgFrequency *float64 `yaml:"msg_frequency"`
}

type yamlSubscriber struct {
	Name string `yaml:"name"`
	Node string `yaml:"node"`
	Qty  *int   `yaml:"qty"`
}

// Load reads and decodes a YAML fleet definition into the config model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML fleet definition.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc yamlDocument
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	cfg, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	logger.Debug("YAML fleet definition loaded.", "environments", len(cfg.Environments))
	return cfg, nil
}

// toModel translates the decoded document into the config model, applying
// the default quantity of 1 and rejecting entities without names.
func (d *yamlDocument) toModel() (*config.Config, error) {
	cfg := &config.Config{
		Environments: make([]config.Environment, 0, len(d.Environments)),
	}

	envNames := make(map[string]struct{}, len(d.Environments))
	for i, env := range d.Environments {
		if env.Name == "" {
			return nil, fmt.Errorf("environment %d has no name", i)
		}
		if _, dup := envNames[env.Name]; dup {
			return nil, fmt.Errorf("duplicate environment name %q", env.Name)
		}
		envNames[env.Name] = struct{}{}

		modelEnv := config.Environment{
			Name:  env.Name,
			Nodes: make([]config.NodeSpec, 0, len(env.Nodes)),
		}

		nodeNames := make(map[string]struct{}, len(env.Nodes))
		for j, node := range env.Nodes {
			if node.Name == "" {
				return nil, fmt.Errorf("node %d in environment %q has no name", j, env.Name)
			}
			if _, dup := nodeNames[node.Name]; dup {
				return nil, fmt.Errorf("duplicate node name %q in environment %q", node.Name, env.Name)
			}
			nodeNames[node.Name] = struct{}{}

			modelNode := config.NodeSpec{
				Name:         node.Name,
				Qty:          defaultQty(node.Qty),
				RootNode:     node.RootNode,
				TerminalNode: node.TerminalNode,
			}

			for _, pub := range node.Publishers {
				if pub.Name == "" {
					return nil, fmt.Errorf("node %q has a publisher with no name", node.Name)
				}
				modelNode.Publishers = append(modelNode.Publishers, config.PublisherSpec{
					Name:         pub.Name,
					Qty:          defaultQty(pub.Qty),
					Bandwidth:    pub.Bandwidth,
					MsgSize:      pub.MsgSize,
					MsgFrequency: pub.MsgFrequency,
				})
			}

			for _, sub := range node.Subscribers {
				if sub.Name == "" {
					return nil, fmt.Errorf("node %q has a subscriber with no name", node.Name)
				}
				if sub.Node == "" {
					return nil, fmt.Errorf("subscriber %q in node %q has no source node", sub.Name, node.Name)
				}
				modelNode.Subscribers = append(modelNode.Subscribers, config.SubscriberSpec{
					Name: sub.Name,
					Node: sub.Node,
					Qty:  defaultQty(sub.Qty),
				})
			}

			modelEnv.Nodes = append(modelEnv.Nodes, modelNode)
		}

		cfg.Environments = append(cfg.Environments, modelEnv)
	}

	return cfg, nil
}

// defaultQty applies the implicit quantity of 1 for absent qty fields. An
// explicit value is passed through unchanged, including out-of-range ones.
func defaultQty(qty *int) int {
	if qty == nil {
		return 1
	}
	return *qty
}
