package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/validate"
)

// SoldOutInput is the input for menu_update_sold_out.
type SoldOutInput struct {
	Items []validate.SoldOutInput `json:"items" jsonschema:"required,Sold-out flags to apply, up to 50 items"`
}

// SoldOutOutput is the output for menu_update_sold_out.
type SoldOutOutput struct {
	Updated []SoldOutOutcome `json:"updated"`
}

// SoldOutOutcome is the confirmed state of one item after the update.
type SoldOutOutcome struct {
	UUID      string `json:"uuid"`
	IsSoldOut bool   `json:"isSoldOut"`
}

// ToolSoldOut flips sold-out flags for a batch of items in one
// mutation, reporting the upstream's confirmed state per item.
func ToolSoldOut(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SoldOutInput) (*sdkmcp.CallToolResult, SoldOutOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SoldOutInput) (*sdkmcp.CallToolResult, SoldOutOutput, error) {
		items, res := validate.SoldOutBatch(input.Items)
		if !res.Valid {
			return nil, SoldOutOutput{}, ErrValidation(res)
		}

		confirmed, err := d.Gateway.UpdateSoldOutItems(ctx, items)
		if err != nil {
			return nil, SoldOutOutput{}, WrapUpstreamError(err)
		}

		output := SoldOutOutput{Updated: make([]SoldOutOutcome, len(confirmed))}
		var b strings.Builder
		fmt.Fprintf(&b, "updated sold-out state for %d items\n", len(confirmed))
		for i, item := range confirmed {
			output.Updated[i] = SoldOutOutcome{UUID: item.UUID, IsSoldOut: item.IsSoldOut}
			state := "on sale"
			if item.IsSoldOut {
				state = "sold out"
			}
			fmt.Fprintf(&b, "  - %s: %s\n", item.UUID, state)
		}
		return textResult(b.String()), output, nil
	}
}
