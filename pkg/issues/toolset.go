// Package issues exposes the Linear issue tools: get, list, search,
// create and update. Each tool performs exactly one round trip against
// the injected client and returns a schema-validated JSON payload.
package issues

import (
	"context"

	"github.com/gtarraga/linear-mcp/pkg/linear"
)

// ClientFactory creates a Linear client for a single tool invocation, so
// per-request auth (header mode) and test injection both work.
type ClientFactory func(ctx context.Context) (linear.Client, error)

// Toolset bundles the issue tool handlers around a client factory.
type Toolset struct {
	clientFactory ClientFactory
}

func NewToolset(clientFactory ClientFactory) *Toolset {
	return &Toolset{clientFactory: clientFactory}
}
