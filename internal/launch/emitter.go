package launch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BonsaiRobotics/ros2-fabric/internal/ctxlog"
)

// Emitter consumes an ordered descriptor list and hands each descriptor to
// the external node runtime. The list order is meaningful: node templates in
// declaration order, replicas in increasing index.
type Emitter interface {
	Emit(ctx context.Context, descriptors []NodeDescriptor) error
}

// JSONEmitter writes the descriptor list as an indented JSON array. Map keys
// serialize in sorted order, so identical input produces byte-identical
// output.
type JSONEmitter struct {
	w io.Writer
}

// NewJSONEmitter creates an emitter writing to w.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{w: w}
}

// Emit encodes the full descriptor list to the underlying writer.
func (e *JSONEmitter) Emit(ctx context.Context, descriptors []NodeDescriptor) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Emitting node descriptors.", "count", len(descriptors))

	encoder := json.NewEncoder(e.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(descriptors); err != nil {
		return fmt.Errorf("failed to encode node descriptors: %w", err)
	}
	return nil
}
