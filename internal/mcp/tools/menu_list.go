package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/validate"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// MenuListInput is the input for menu_list_items.
type MenuListInput struct {
	CategoryUUID string `json:"categoryUuid,omitempty" jsonschema:"Restrict the listing to one category UUID"`
}

// MenuListOutput is the output for menu_list_items.
type MenuListOutput struct {
	Categories []CategorySummary `json:"categories"`
}

// CategorySummary is one category with its item summaries.
type CategorySummary struct {
	UUID         string        `json:"uuid"`
	Name         string        `json:"name"`
	SortingIndex int           `json:"sortingIndex"`
	Items        []ItemSummary `json:"items"`
}

// ItemSummary is the listing view of a menu item.
type ItemSummary struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// ToolMenuList lists menu categories and their items.
func ToolMenuList(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MenuListInput) (*sdkmcp.CallToolResult, MenuListOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MenuListInput) (*sdkmcp.CallToolResult, MenuListOutput, error) {
		if input.CategoryUUID != "" {
			if res := validate.UUIDField("categoryUuid", input.CategoryUUID); !res.Valid {
				return nil, MenuListOutput{}, ErrValidation(res)
			}
		}

		categories, err := d.Gateway.ListMenuCategories(ctx)
		if err != nil {
			return nil, MenuListOutput{}, WrapUpstreamError(err)
		}

		if input.CategoryUUID != "" {
			filtered := categories[:0]
			for _, c := range categories {
				if equalUUID(c.UUID, input.CategoryUUID) {
					filtered = append(filtered, c)
				}
			}
			if len(filtered) == 0 {
				return nil, MenuListOutput{}, ErrNotFoundf("menu category", input.CategoryUUID)
			}
			categories = filtered
		}

		output := MenuListOutput{Categories: make([]CategorySummary, len(categories))}
		for i, c := range categories {
			summary := CategorySummary{
				UUID:         c.UUID,
				Name:         c.Name,
				SortingIndex: c.SortingIndex,
				Items:        make([]ItemSummary, len(c.MenuItems)),
			}
			for j, item := range c.MenuItems {
				summary.Items[j] = ItemSummary{
					UUID:    item.UUID,
					Name:    item.Name,
					Price:   item.Price.String(),
					Type:    string(item.Type),
					Enabled: item.Enabled,
				}
			}
			output.Categories[i] = summary
		}

		return textResult(renderMenuListing(categories)), output, nil
	}
}

// GetItemInput is the input for menu_get_item.
type GetItemInput struct {
	UUID string `json:"uuid" jsonschema:"required,Menu item UUID"`
}

// GetItemOutput is the output for menu_get_item.
type GetItemOutput struct {
	Item *menuapi.MenuItem `json:"item"`
}

// ToolGetItem fetches one menu item with its full combo structure.
func ToolGetItem(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetItemInput) (*sdkmcp.CallToolResult, GetItemOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetItemInput) (*sdkmcp.CallToolResult, GetItemOutput, error) {
		if res := validate.UUIDField("uuid", input.UUID); !res.Valid {
			return nil, GetItemOutput{}, ErrValidation(res)
		}

		item, err := d.Gateway.GetMenuItem(ctx, input.UUID)
		if err != nil {
			return nil, GetItemOutput{}, WrapUpstreamError(err)
		}

		return textResult(renderItemDetail(item)), GetItemOutput{Item: item}, nil
	}
}
