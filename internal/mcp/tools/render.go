// Package tools contains the MCP tool implementations for the menu
// management server.
package tools

import (
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/deletecheck"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// textResult wraps a rendered summary in the transport's content
// envelope.
func textResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: text},
		},
	}
}

// renderMenuListing formats the category tree in upstream order.
func renderMenuListing(categories []menuapi.MenuCategory) string {
	var b strings.Builder
	total := 0
	for _, c := range categories {
		total += len(c.MenuItems)
	}
	fmt.Fprintf(&b, "%d categories, %d items\n", len(categories), total)
	for _, c := range categories {
		fmt.Fprintf(&b, "\n%s (%s), %d items\n", c.Name, c.UUID, len(c.MenuItems))
		for _, item := range c.MenuItems {
			marker := ""
			if item.Type == menuapi.ItemTypeCombo {
				marker = " [combo]"
			}
			if !item.Enabled {
				marker += " [disabled]"
			}
			fmt.Fprintf(&b, "  - %s (%s) %s%s\n", item.Name, item.UUID, item.Price.String(), marker)
		}
	}
	return b.String()
}

// renderItemDetail formats one item with its combo structure, tags and
// delivery-channel listings.
func renderItemDetail(item *menuapi.MenuItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", item.Name, item.UUID)
	fmt.Fprintf(&b, "type: %s, price: %s, enabled: %v, category: %s\n",
		item.Type, item.Price.String(), item.Enabled, item.MenuItemCategoryUUID)

	if item.CustomizedTaxEnabled != nil && *item.CustomizedTaxEnabled {
		rate := ""
		if item.CustomizedTaxRate != nil {
			rate = item.CustomizedTaxRate.String()
		}
		fmt.Fprintf(&b, "tax override: %s %s\n", item.CustomizedTaxType, rate)
	}

	if len(item.ComboItemCategories) > 0 {
		fmt.Fprintf(&b, "combo categories:\n")
		for _, cat := range item.ComboItemCategories {
			fmt.Fprintf(&b, "  %s (min %d, max %d, %d options)\n",
				cat.Name, cat.EffectiveMinimum(), cat.EffectiveMaximum(), len(cat.ComboMenuItems))
			for _, opt := range cat.ComboMenuItems {
				line := fmt.Sprintf("    - %s", opt.MenuItemUUID)
				if opt.Price != nil {
					line += fmt.Sprintf(" (+%s)", opt.Price.String())
				}
				b.WriteString(line + "\n")
			}
		}
	}

	if listings := item.ChannelListings(); len(listings) > 0 {
		names := make([]string, len(listings))
		for i, l := range listings {
			names[i] = l.Channel
		}
		fmt.Fprintf(&b, "published on: %s\n", strings.Join(names, ", "))
	}

	if len(item.ItemTagRelationshipList) > 0 {
		fmt.Fprintf(&b, "tag relationships: %d\n", len(item.ItemTagRelationshipList))
	}
	return b.String()
}

// renderTagCatalog formats tags and tag groups in upstream order.
func renderTagCatalog(catalog *menuapi.TagCatalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d tags, %d tag groups\n", len(catalog.MenuItemTags), len(catalog.TagGroups))
	for _, tag := range catalog.MenuItemTags {
		fmt.Fprintf(&b, "tag: %s (%s) %s\n", tag.Name, tag.UUID, tag.Price.String())
	}
	for _, group := range catalog.TagGroups {
		fmt.Fprintf(&b, "group: %s (%s), %d sub-tags\n", group.Name, group.UUID, len(group.SubTags))
		for _, sub := range group.SubTags {
			fmt.Fprintf(&b, "  - %s (%s)\n", sub.Name, sub.UUID)
		}
	}
	return b.String()
}

// renderOnlineListing formats the delivery-platform menu projection.
func renderOnlineListing(categories []menuapi.OnlineCategory) string {
	var b strings.Builder
	total := 0
	for _, c := range categories {
		total += len(c.MenuItems)
	}
	fmt.Fprintf(&b, "%d online categories, %d items\n", len(categories), total)
	for _, c := range categories {
		fmt.Fprintf(&b, "\n%s (%s), %d items\n", c.Name, c.UUID, len(c.MenuItems))
		for _, item := range c.MenuItems {
			name := item.OriginalName
			if item.CustomizedName != "" {
				name = item.CustomizedName
			}
			fmt.Fprintf(&b, "  - %s (%s, source %s)\n", name, item.UUID, item.IchefUUID)
		}
	}
	return b.String()
}

// renderBlocks formats per-block reasons in the order they were found.
func renderBlocks(blocks []deletecheck.Block) []string {
	out := make([]string, len(blocks))
	for i, block := range blocks {
		out[i] = fmt.Sprintf("[%s] %s", block.Severity, block.Reason)
	}
	return out
}

// renderWarnings appends warning lines to a summary, one per line.
func renderWarnings(b *strings.Builder, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(b, "warning: %s\n", w)
	}
}
