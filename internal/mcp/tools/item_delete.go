package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/deletecheck"
	"github.com/menucraft/menucraft-mcp/internal/validate"
)

// DeleteItemInput is the input for menu_delete_item.
type DeleteItemInput struct {
	UUID string `json:"uuid" jsonschema:"required,UUID of the menu item to delete"`
}

// DeleteItemOutput is the output for menu_delete_item.
type DeleteItemOutput struct {
	UUID     string              `json:"uuid"`
	Deleted  bool                `json:"deleted"`
	Blocks   []deletecheck.Block `json:"blocks,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
}

// ToolDeleteItem deletes a menu item after a safe-delete check. The
// delete is refused while any combo structure or delivery listing
// still depends on the item; a failed check degrades to a warning and
// the delete proceeds.
func ToolDeleteItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteItemInput) (*sdkmcp.CallToolResult, DeleteItemOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DeleteItemInput) (*sdkmcp.CallToolResult, DeleteItemOutput, error) {
		if res := validate.UUIDField("uuid", input.UUID); !res.Valid {
			return nil, DeleteItemOutput{}, ErrValidation(res)
		}

		item, err := d.Gateway.GetMenuItem(ctx, input.UUID)
		if err != nil {
			return nil, DeleteItemOutput{}, WrapUpstreamError(err)
		}

		var report *deletecheck.Report
		categories, err := d.Gateway.ComboDependencyScan(ctx)
		if err != nil {
			slog.Warn("combo dependency scan failed, proceeding with delete",
				slog.String("uuid", input.UUID),
				slog.String("error", err.Error()),
			)
			report = deletecheck.Unverified(input.UUID, err)
		} else {
			report = deletecheck.Check(item, categories)
		}

		if report.Blocked() {
			output := DeleteItemOutput{
				UUID:   input.UUID,
				Blocks: report.Blocks,
			}
			return nil, output, ErrDependencyBlocked(renderBlocks(report.Blocks))
		}

		uuid, err := d.Gateway.DeleteMenuItem(ctx, input.UUID)
		if err != nil {
			return nil, DeleteItemOutput{}, WrapUpstreamError(err)
		}

		output := DeleteItemOutput{UUID: uuid, Deleted: true, Warnings: report.Warnings}
		var b strings.Builder
		fmt.Fprintf(&b, "deleted menu item %s\n", uuid)
		b.WriteString(renderItemDetail(item))
		renderWarnings(&b, report.Warnings)
		return textResult(b.String()), output, nil
	}
}
