package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/validate"
)

// OnlineBatchDeleteInput is the input for online_batch_delete_items.
type OnlineBatchDeleteInput struct {
	UUIDs []string `json:"uuids" jsonschema:"required,Online menu item UUIDs to remove, up to 50"`
}

// OnlineBatchDeleteOutput is the output for online_batch_delete_items.
type OnlineBatchDeleteOutput struct {
	Deleted []string `json:"deleted"`
}

// ToolOnlineBatchDelete removes items from the delivery-platform menu
// and reports the UUIDs the upstream confirmed.
func ToolOnlineBatchDelete(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineBatchDeleteInput) (*sdkmcp.CallToolResult, OnlineBatchDeleteOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineBatchDeleteInput) (*sdkmcp.CallToolResult, OnlineBatchDeleteOutput, error) {
		if res := validate.UUIDList("uuids", input.UUIDs, validate.MaxBatchDeletion); !res.Valid {
			return nil, OnlineBatchDeleteOutput{}, ErrValidation(res)
		}

		deleted, err := d.Gateway.BatchDeleteOnlineItems(ctx, input.UUIDs)
		if err != nil {
			return nil, OnlineBatchDeleteOutput{}, WrapUpstreamError(err)
		}

		output := OnlineBatchDeleteOutput{Deleted: deleted}
		var b strings.Builder
		fmt.Fprintf(&b, "deleted %d online menu items\n", len(deleted))
		for _, uuid := range deleted {
			fmt.Fprintf(&b, "  - %s\n", uuid)
		}
		return textResult(b.String()), output, nil
	}
}
