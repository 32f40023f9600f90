package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/menucraft/menucraft-mcp/internal/validate"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// OnlineImportInput is the input for online_import_items.
type OnlineImportInput struct {
	CategoryUUID  string   `json:"categoryUuid" jsonschema:"required,Online category UUID to import into"`
	MenuItemUUIDs []string `json:"menuItemUuids" jsonschema:"required,Source menu item UUIDs to import, up to 50"`
}

// ImportDisabledItem identifies a source item refused by the pre-check
// because it is disabled on the base menu.
type ImportDisabledItem struct {
	UUID string `json:"uuid"`
	Name string `json:"name,omitempty"`
}

// OnlineImportOutput is the output for online_import_items.
type OnlineImportOutput struct {
	CategoryUUID string               `json:"categoryUuid"`
	Imported     []string             `json:"imported"`
	Skipped      []string             `json:"skipped,omitempty"`
	Disabled     []ImportDisabledItem `json:"disabled,omitempty"`
	NotFound     []string             `json:"notFound,omitempty"`
}

// ToolOnlineImport imports menu items into an online category. Each
// source item is checked on the base menu before the import: disabled
// items and items that cannot be fetched are reported rather than
// imported, and items already projected anywhere on the online menu
// are skipped. Only items that pass every check go to the mutation.
func ToolOnlineImport(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineImportInput) (*sdkmcp.CallToolResult, OnlineImportOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input OnlineImportInput) (*sdkmcp.CallToolResult, OnlineImportOutput, error) {
		res := validate.UUIDField("categoryUuid", input.CategoryUUID)
		res.Merge(validate.UUIDList("menuItemUuids", input.MenuItemUUIDs, validate.MaxImportItems))
		if !res.Valid {
			return nil, OnlineImportOutput{}, ErrValidation(res)
		}

		existing, err := d.Gateway.ListOnlineCategories(ctx)
		if err != nil {
			return nil, OnlineImportOutput{}, WrapUpstreamError(err)
		}

		projected := make(map[string]bool)
		categoryKnown := false
		for _, category := range existing {
			if equalUUID(category.UUID, input.CategoryUUID) {
				categoryKnown = true
			}
			for _, item := range category.MenuItems {
				projected[strings.ToLower(item.IchefUUID)] = true
			}
		}
		if !categoryKnown {
			return nil, OnlineImportOutput{}, ErrNotFoundf("online category", input.CategoryUUID)
		}

		// Pre-check every source item in request order. A fetch
		// failure marks that item as not found and the rest of the
		// batch still proceeds.
		var (
			toImport []string
			skipped  []string
			disabled []ImportDisabledItem
			notFound []string
		)
		for _, uuid := range input.MenuItemUUIDs {
			item, err := d.Gateway.GetMenuItem(ctx, uuid)
			switch {
			case errors.Is(err, menuapi.ErrNotFound):
				notFound = append(notFound, uuid)
			case err != nil:
				slog.Warn("menu item status check failed",
					slog.String("uuid", uuid),
					slog.String("error", err.Error()),
				)
				notFound = append(notFound, uuid)
			case !item.Enabled:
				disabled = append(disabled, ImportDisabledItem{UUID: uuid, Name: item.Name})
			case projected[strings.ToLower(uuid)]:
				skipped = append(skipped, uuid)
			default:
				toImport = append(toImport, uuid)
			}
		}

		if len(toImport) > 0 {
			if _, err := d.Gateway.ImportMenuItemsToCategory(ctx, input.CategoryUUID, toImport); err != nil {
				return nil, OnlineImportOutput{}, WrapUpstreamError(err)
			}
		}

		output := OnlineImportOutput{
			CategoryUUID: input.CategoryUUID,
			Imported:     toImport,
			Skipped:      skipped,
			Disabled:     disabled,
			NotFound:     notFound,
		}

		var b strings.Builder
		fmt.Fprintf(&b, "imported %d of %d items into online category %s\n",
			len(toImport), len(input.MenuItemUUIDs), input.CategoryUUID)
		for _, uuid := range toImport {
			fmt.Fprintf(&b, "  - %s\n", uuid)
		}
		if len(skipped) > 0 {
			fmt.Fprintf(&b, "skipped %d items already on the online menu\n", len(skipped))
			for _, uuid := range skipped {
				fmt.Fprintf(&b, "  - %s\n", uuid)
			}
		}
		if len(disabled) > 0 {
			fmt.Fprintf(&b, "skipped %d disabled items\n", len(disabled))
			for _, item := range disabled {
				fmt.Fprintf(&b, "  - %s (%s)\n", item.Name, item.UUID)
			}
		}
		if len(notFound) > 0 {
			fmt.Fprintf(&b, "%d items not found\n", len(notFound))
			for _, uuid := range notFound {
				fmt.Fprintf(&b, "  - %s\n", uuid)
			}
		}
		return textResult(b.String()), output, nil
	}
}
