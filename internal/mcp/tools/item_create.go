package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/validate"
)

// CreateItemOutput is the output for menu_create_item.
type CreateItemOutput struct {
	UUID     string   `json:"uuid"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Warnings []string `json:"warnings,omitempty"`
}

// ToolCreateItem validates, normalizes and creates a menu item.
func ToolCreateItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input validate.CreateItemInput) (*sdkmcp.CallToolResult, CreateItemOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input validate.CreateItemInput) (*sdkmcp.CallToolResult, CreateItemOutput, error) {
		payload, res := validate.CreateItem(input)
		if !res.Valid {
			return nil, CreateItemOutput{}, ErrValidation(res)
		}

		created, err := d.Gateway.CreateMenuItem(ctx, payload)
		if err != nil {
			return nil, CreateItemOutput{}, WrapUpstreamError(err)
		}

		output := CreateItemOutput{
			UUID:     created.UUID,
			Name:     created.Name,
			Type:     string(created.Type),
			Warnings: res.Warnings,
		}

		var b strings.Builder
		fmt.Fprintf(&b, "created %s item %q (%s)\n", created.Type, created.Name, created.UUID)
		if n := len(created.ComboItemCategories); n > 0 {
			fmt.Fprintf(&b, "with %d combo categories\n", n)
		}
		renderWarnings(&b, res.Warnings)
		return textResult(b.String()), output, nil
	}
}

// UpdateItemOutput is the output for menu_update_item.
type UpdateItemOutput struct {
	UUID     string   `json:"uuid"`
	Updated  bool     `json:"updated"`
	Warnings []string `json:"warnings,omitempty"`
}

// ToolUpdateItem applies a partial update to a menu item. An update
// naming no fields succeeds without touching the upstream.
func ToolUpdateItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input validate.UpdateItemInput) (*sdkmcp.CallToolResult, UpdateItemOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input validate.UpdateItemInput) (*sdkmcp.CallToolResult, UpdateItemOutput, error) {
		payload, res := validate.UpdateItem(input)
		if !res.Valid {
			return nil, UpdateItemOutput{}, ErrValidation(res)
		}

		if payload.IsEmpty() {
			output := UpdateItemOutput{UUID: input.UUID, Updated: false, Warnings: res.Warnings}
			var b strings.Builder
			fmt.Fprintf(&b, "nothing to update for %s\n", input.UUID)
			renderWarnings(&b, res.Warnings)
			return textResult(b.String()), output, nil
		}

		uuid, err := d.Gateway.UpdateMenuItem(ctx, input.UUID, payload)
		if err != nil {
			return nil, UpdateItemOutput{}, WrapUpstreamError(err)
		}

		output := UpdateItemOutput{UUID: uuid, Updated: true, Warnings: res.Warnings}
		var b strings.Builder
		fmt.Fprintf(&b, "updated menu item %s\n", uuid)
		renderWarnings(&b, res.Warnings)
		return textResult(b.String()), output, nil
	}
}
