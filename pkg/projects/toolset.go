// Package projects exposes the Linear project tools: get, list, search,
// create and update. The tool shapes mirror the issue toolset, with the
// project-specific behaviors: create returns the created object directly
// from the mutation payload, and update re-fetches the project after the
// mutation instead of reporting the raw success flag.
package projects

import (
	"context"

	"github.com/gtarraga/linear-mcp/pkg/linear"
)

// ClientFactory creates a Linear client for a single tool invocation.
type ClientFactory func(ctx context.Context) (linear.Client, error)

// Toolset bundles the project tool handlers around a client factory.
type Toolset struct {
	clientFactory ClientFactory
}

func NewToolset(clientFactory ClientFactory) *Toolset {
	return &Toolset{clientFactory: clientFactory}
}
