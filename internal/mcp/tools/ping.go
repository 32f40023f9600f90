package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// PingInput is the input for menu_ping.
type PingInput struct{}

// PingOutput is the output for menu_ping.
type PingOutput struct {
	Ok       bool   `json:"ok"`
	Endpoint string `json:"endpoint"`
}

// ToolPing runs a connectivity self-test against the upstream API.
func ToolPing(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input PingInput) (*sdkmcp.CallToolResult, PingOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input PingInput) (*sdkmcp.CallToolResult, PingOutput, error) {
		if err := d.Gateway.Ping(ctx); err != nil {
			return nil, PingOutput{}, WrapUpstreamError(err)
		}
		out := PingOutput{Ok: true, Endpoint: d.Config.GraphQLEndpoint}
		return textResult("upstream API reachable: " + d.Config.GraphQLEndpoint), out, nil
	}
}
