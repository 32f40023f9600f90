package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// OnlineStatusInput is the input for online_set_store_status.
type OnlineStatusInput struct {
	AcceptOrders bool `json:"acceptOrders" jsonschema:"required,true to accept online orders; false to switch the store to browse-only"`
}

// OnlineStatusOutput is the output for online_set_store_status.
type OnlineStatusOutput struct {
	OperationType string `json:"operationType"`
}

// ToolOnlineStatus toggles whether the online store accepts orders.
func ToolOnlineStatus(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineStatusInput) (*sdkmcp.CallToolResult, OnlineStatusOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineStatusInput) (*sdkmcp.CallToolResult, OnlineStatusOutput, error) {
		operation := menuapi.StoreOnlyBrowse
		if input.AcceptOrders {
			operation = menuapi.StoreTakeout
		}

		if err := d.Gateway.UpdateOnlineRestaurantInformation(ctx, operation); err != nil {
			return nil, OnlineStatusOutput{}, WrapUpstreamError(err)
		}

		output := OnlineStatusOutput{OperationType: string(operation)}
		state := "browse-only"
		if input.AcceptOrders {
			state = "accepting orders"
		}
		return textResult(fmt.Sprintf("online store is now %s (%s)\n", state, operation)), output, nil
	}
}
