package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// ListTagsInput is the input for menu_list_tags.
type ListTagsInput struct{}

// ListTagsOutput is the output for menu_list_tags.
type ListTagsOutput struct {
	Tags      []menuapi.Tag      `json:"tags"`
	TagGroups []menuapi.TagGroup `json:"tagGroups"`
}

// ToolListTags lists the tag and tag-group catalog used as reference
// targets for item tag relationships.
func ToolListTags(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListTagsInput) (*sdkmcp.CallToolResult, ListTagsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListTagsInput) (*sdkmcp.CallToolResult, ListTagsOutput, error) {
		catalog, err := d.Gateway.ListTags(ctx)
		if err != nil {
			return nil, ListTagsOutput{}, WrapUpstreamError(err)
		}

		output := ListTagsOutput{
			Tags:      catalog.MenuItemTags,
			TagGroups: catalog.TagGroups,
		}
		return textResult(renderTagCatalog(catalog)), output, nil
	}
}
