package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_list_items",
		Description: "List menu categories and their items. Pass categoryUuid to restrict the listing to one category.",
	}, ToolMenuList(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_get_item",
		Description: "Get one menu item with its combo structure, tag relationships, tax override and delivery-channel listings.",
	}, ToolGetItem(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_create_item",
		Description: "Create a menu item. Use type COMBO_ITEM with comboItemCategories to build a combo; plain items must not carry combo data.",
	}, ToolCreateItem(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_update_item",
		Description: "Update a menu item. All fields except uuid are optional; an update naming no fields is a no-op with a warning.",
	}, ToolUpdateItem(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_delete_item",
		Description: "Delete a menu item after checking that no combo category or delivery-channel listing still depends on it. Blocked deletes report every conflict found.",
	}, ToolDeleteItem(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_update_sold_out",
		Description: "Mark up to 50 menu items sold out or back on sale in one call.",
	}, ToolSoldOut(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_list_tags",
		Description: "List the tag and tag-group catalog available for item tag relationships.",
	}, ToolListTags(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_create_category",
		Description: "Create a menu item category.",
	}, ToolCreateCategory(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "online_list_menu",
		Description: "List the online-ordering menu projection, including each online item's source menu item UUID.",
	}, ToolOnlineList(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "online_import_items",
		Description: "Import up to 50 menu items into an online category. Each item is checked first: disabled or missing items are reported, and items already on the online menu are skipped, not duplicated.",
	}, ToolOnlineImport(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "online_batch_delete_items",
		Description: "Remove up to 50 items from the online-ordering menu.",
	}, ToolOnlineBatchDelete(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "online_set_store_status",
		Description: "Toggle whether the online store accepts orders or is browse-only.",
	}, ToolOnlineStatus(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "menu_ping",
		Description: "Check connectivity and authentication against the upstream menu API.",
	}, ToolPing(d))
}
