// Package mcp wires the tool set onto an MCP server over stdio.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/mcp/tools"
)

// Server wraps the MCP server with the menu management tool set.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps

	customRegistrations []func(*sdkmcp.Server)
}

// ServerOption is a functional option for configuring the Server.
type ServerOption func(*Server)

// WithCustomRegistration adds a registration callback. The callback
// receives the underlying MCP server and can register additional
// tools, prompts, or resources directly.
func WithCustomRegistration(fn func(*sdkmcp.Server)) ServerOption {
	return func(s *Server) {
		s.customRegistrations = append(s.customRegistrations, fn)
	}
}

// NewServer creates an MCP server exposing the menu tools.
func NewServer(deps *tools.Deps, opts ...ServerOption) (*Server, error) {
	if deps == nil || deps.Gateway == nil || deps.Config == nil {
		return nil, fmt.Errorf("deps with gateway and config are required")
	}

	s := &Server{deps: deps}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    "menucraft-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())

	tools.Register(s.mcpServer, deps)
	for _, fn := range s.customRegistrations {
		fn(s.mcpServer)
	}

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
