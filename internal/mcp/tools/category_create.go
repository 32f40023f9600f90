package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/validate"
)

// CreateCategoryInput is the input for menu_create_category.
type CreateCategoryInput struct {
	Name         string `json:"name" jsonschema:"required,Category name (1-255 characters)"`
	SortingIndex *int   `json:"sortingIndex,omitempty" jsonschema:"Position of the category in the menu"`
}

// CreateCategoryOutput is the output for menu_create_category.
type CreateCategoryOutput struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// ToolCreateCategory creates a menu item category.
func ToolCreateCategory(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateCategoryInput) (*sdkmcp.CallToolResult, CreateCategoryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CreateCategoryInput) (*sdkmcp.CallToolResult, CreateCategoryOutput, error) {
		payload, res := validate.CreateCategory(input.Name, input.SortingIndex)
		if !res.Valid {
			return nil, CreateCategoryOutput{}, ErrValidation(res)
		}

		uuid, err := d.Gateway.CreateCategory(ctx, payload)
		if err != nil {
			return nil, CreateCategoryOutput{}, WrapUpstreamError(err)
		}

		output := CreateCategoryOutput{UUID: uuid, Name: payload.Name}
		text := fmt.Sprintf("created category %q (%s)\n", payload.Name, uuid)
		return textResult(text), output, nil
	}
}
