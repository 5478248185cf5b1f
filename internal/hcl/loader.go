package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/BonsaiRobotics/ros2-fabric/internal/config"
	"github.com/BonsaiRobotics/ros2-fabric/internal/ctxlog"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// hclDocument represents the top-level structure of a fleet definition file
// for decoding.
type hclDocument struct {
	Environments []*hclEnvironment `hcl:"environment,block"`
}

type hclEnvironment struct {
	Name  string     `hcl:"name,label"`
	Nodes []*hclNode `hcl:"node,block"`
}

type hclNode struct {
	Name         string           `hcl:"name,label"`
	RootNode     bool             `hcl:"root_node,optional"`
	TerminalNode bool             `hcl:"terminal_node,optional"`
	Qty          hcl.Expression   `hcl:"qty,optional"`
	Publishers   []*hclPublisher  `hcl:"publisher,block"`
	Subscribers  []*hclSubscriber `hcl:"subscriber,block"`
}

type hclPublisher struct {
	Name         string         `hcl:"name,label"`
	Qty          hcl.Expression `hcl:"qty,optional"`
	Bandwidth    hcl.Expression `hcl:"bandwidth,optional"`
	MsgSize      hcl.Expression `hcl:"msg_size,optional"`
	MsgFrequency hcl.Expression `hcl:"msg_frequency,optional"`
}

type hclSubscriber struct {
	Name string         `hcl:"name,label"`
	Node string         `hcl:"node"`
	Qty  hcl.Expression `hcl:"qty,optional"`
}

// Load parses and decodes an HCL fleet definition into the config model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL fleet definition.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	cfg, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	logger.Debug("HCL fleet definition loaded.", "environments", len(cfg.Environments))
	return cfg, nil
}

// toModel translates the decoded blocks into the config model, evaluating
// numeric attribute expressions along the way.
func (d *hclDocument) toModel() (*config.Config, error) {
	cfg := &config.Config{
		Environments: make([]config.Environment, 0, len(d.Environments)),
	}

	envNames := make(map[string]struct{}, len(d.Environments))
	for _, env := range d.Environments {
		if _, dup := envNames[env.Name]; dup {
			return nil, fmt.Errorf("duplicate environment name %q", env.Name)
		}
		envNames[env.Name] = struct{}{}

		modelEnv := config.Environment{
			Name:  env.Name,
			Nodes: make([]config.NodeSpec, 0, len(env.Nodes)),
		}

		nodeNames := make(map[string]struct{}, len(env.Nodes))
		for _, node := range env.Nodes {
			if _, dup := nodeNames[node.Name]; dup {
				return nil, fmt.Errorf("duplicate node name %q in environment %q", node.Name, env.Name)
			}
			nodeNames[node.Name] = struct{}{}

			qty, err := evalQty(node.Qty)
			if err != nil {
				return nil, fmt.Errorf("node %q: invalid qty: %w", node.Name, err)
			}

			modelNode := config.NodeSpec{
				Name:         node.Name,
				Qty:          qty,
				RootNode:     node.RootNode,
				TerminalNode: node.TerminalNode,
			}

			for _, pub := range node.Publishers {
				pubQty, err := evalQty(pub.Qty)
				if err != nil {
					return nil, fmt.Errorf("publisher %q in node %q: invalid qty: %w", pub.Name, node.Name, err)
				}
				spec := config.PublisherSpec{Name: pub.Name, Qty: pubQty}
				for _, attr := range []struct {
					name string
					expr hcl.Expression
					dst  **float64
				}{
					{"bandwidth", pub.Bandwidth, &spec.Bandwidth},
					{"msg_size", pub.MsgSize, &spec.MsgSize},
					{"msg_frequency", pub.MsgFrequency, &spec.MsgFrequency},
				} {
					value, err := evalOptionalNumber(attr.expr)
					if err != nil {
						return nil, fmt.Errorf("publisher %q in node %q: invalid %s: %w",
							pub.Name, node.Name, attr.name, err)
					}
					*attr.dst = value
				}
				modelNode.Publishers = append(modelNode.Publishers, spec)
			}

			for _, sub := range node.Subscribers {
				subQty, err := evalQty(sub.Qty)
				if err != nil {
					return nil, fmt.Errorf("subscriber %q in node %q: invalid qty: %w", sub.Name, node.Name, err)
				}
				modelNode.Subscribers = append(modelNode.Subscribers, config.SubscriberSpec{
					Name: sub.Name,
					Node: sub.Node,
					Qty:  subQty,
				})
			}

			modelEnv.Nodes = append(modelEnv.Nodes, modelNode)
		}

		cfg.Environments = append(cfg.Environments, modelEnv)
	}

	return cfg, nil
}
