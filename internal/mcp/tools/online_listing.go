package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// OnlineListInput is the input for online_list_menu.
type OnlineListInput struct{}

// OnlineListOutput is the output for online_list_menu.
type OnlineListOutput struct {
	Categories []menuapi.OnlineCategory `json:"categories"`
}

// ToolOnlineList lists the delivery-platform menu projection with
// back-references to the source menu items.
func ToolOnlineList(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineListInput) (*sdkmcp.CallToolResult, OnlineListOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineListInput) (*sdkmcp.CallToolResult, OnlineListOutput, error) {
		categories, err := d.Gateway.ListOnlineCategories(ctx)
		if err != nil {
			return nil, OnlineListOutput{}, WrapUpstreamError(err)
		}

		output := OnlineListOutput{Categories: categories}
		return textResult(renderOnlineListing(categories)), output, nil
	}
}
