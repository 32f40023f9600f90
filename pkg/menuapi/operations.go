package menuapi

import (
	"context"
	"fmt"
)

// Response envelopes mirror the upstream's restaurant.settings.menu
// nesting. Every level is a pointer so a missing node is detectable and
// reported as an operation failure.

type menuEnvelope[T any] struct {
	Restaurant *struct {
		Settings *struct {
			Menu *T `json:"menu"`
		} `json:"settings"`
	} `json:"restaurant"`
}

func (e *menuEnvelope[T]) menu() (*T, error) {
	if e.Restaurant == nil || e.Restaurant.Settings == nil || e.Restaurant.Settings.Menu == nil {
		return nil, missingField("restaurant.settings.menu")
	}
	return e.Restaurant.Settings.Menu, nil
}

type uuidRef struct {
	UUID string `json:"uuid"`
}

// ListMenuCategories returns every menu category with its items.
func (c *Client) ListMenuCategories(ctx context.Context) ([]MenuCategory, error) {
	var resp menuEnvelope[struct {
		MenuItemCategories []MenuCategory `json:"menuItemCategories"`
	}]
	if err := c.execute(ctx, "menuItemListing", menuListingQuery, nil, &resp); err != nil {
		return nil, err
	}
	menu, err := resp.menu()
	if err != nil {
		return nil, err
	}
	if menu.MenuItemCategories == nil {
		return nil, missingField("restaurant.settings.menu.menuItemCategories")
	}
	return menu.MenuItemCategories, nil
}

// GetMenuItem fetches one item with its full combo and tag structure.
// Returns ErrNotFound when the upstream resolves the uuid to null.
func (c *Client) GetMenuItem(ctx context.Context, uuid string) (*MenuItem, error) {
	var resp menuEnvelope[struct {
		MenuItem *MenuItem `json:"menuItem"`
	}]
	vars := map[string]any{"uuid": uuid}
	if err := c.execute(ctx, "menuItemRecord", menuItemQuery, vars, &resp); err != nil {
		return nil, err
	}
	menu, err := resp.menu()
	if err != nil {
		return nil, err
	}
	if menu.MenuItem == nil {
		return nil, fmt.Errorf("menu item %s: %w", uuid, ErrNotFound)
	}
	return menu.MenuItem, nil
}

// ComboDependencyScan fetches the full category tree with combo
// structures, the input of the safe-delete dependency check.
func (c *Client) ComboDependencyScan(ctx context.Context) ([]MenuCategory, error) {
	var resp menuEnvelope[struct {
		MenuItemCategories []MenuCategory `json:"menuItemCategories"`
	}]
	if err := c.execute(ctx, "comboDependencyScan", comboDependencyScanQuery, nil, &resp); err != nil {
		return nil, err
	}
	menu, err := resp.menu()
	if err != nil {
		return nil, err
	}
	if menu.MenuItemCategories == nil {
		return nil, missingField("restaurant.settings.menu.menuItemCategories")
	}
	return menu.MenuItemCategories, nil
}

// CreateMenuItem creates an item and returns the upstream's echo of it.
func (c *Client) CreateMenuItem(ctx context.Context, payload CreateMenuItemPayload) (*CreatedMenuItem, error) {
	var resp menuEnvelope[struct {
		CreateMenuItem *CreatedMenuItem `json:"createMenuItem"`
	}]
	vars := map[string]any{"payload": payload}
	if err := c.execute(ctx, "menuItemCreate", createMenuItemMutation, vars, &resp); err != nil {
		return nil, err
	}
	menu, err := resp.menu()
	if err != nil {
		return nil, err
	}
	if menu.CreateMenuItem == nil || menu.CreateMenuItem.UUID == "" {
		return nil, missingField("restaurant.settings.menu.createMenuItem.uuid")
	}
	return menu.CreateMenuItem, nil
}

// UpdateMenuItem applies a partial update and returns the item uuid.
func (c *Client) UpdateMenuItem(ctx context.Context, uuid string, payload UpdateMenuItemPayload) (string, error) {
	var resp menuEnvelope[struct {
		UpdateMenuItem *uuidRef `json:"updateMenuItem"`
	}]
	vars := map[string]any{"uuid": uuid, "payload": payload}
	if err := c.execute(ctx, "menuItemUpdate", updateMenuItemMutation, vars, &resp); err != nil {
		return "", err
	}
	menu, err := resp.menu()
	if err != nil {
		return "", err
	}
	if menu.UpdateMenuItem == nil || menu.UpdateMenuItem.UUID == "" {
		return "", missingField("restaurant.settings.menu.updateMenuItem.uuid")
	}
	return menu.UpdateMenuItem.UUID, nil
}

// DeleteMenuItem deletes an item and returns the deleted uuid.
func (c *Client) DeleteMenuItem(ctx context.Context, uuid string) (string, error) {
	var resp menuEnvelope[struct {
		DeleteMenuItem *uuidRef `json:"deleteMenuItem"`
	}]
	vars := map[string]any{"uuid": uuid}
	if err := c.execute(ctx, "menuItemDelete", deleteMenuItemMutation, vars, &resp); err != nil {
		return "", err
	}
	menu, err := resp.menu()
	if err != nil {
		return "", err
	}
	if menu.DeleteMenuItem == nil || menu.DeleteMenuItem.UUID == "" {
		return "", missingField("restaurant.settings.menu.deleteMenuItem.uuid")
	}
	return menu.DeleteMenuItem.UUID, nil
}

// CreateCategory creates a menu item category and returns its uuid.
func (c *Client) CreateCategory(ctx context.Context, payload CreateCategoryPayload) (string, error) {
	var resp menuEnvelope[struct {
		CreateMenuItemCategory *uuidRef `json:"createMenuItemCategory"`
	}]
	vars := map[string]any{"payload": payload}
	if err := c.execute(ctx, "menuItemCategoryCreate", createCategoryMutation, vars, &resp); err != nil {
		return "", err
	}
	menu, err := resp.menu()
	if err != nil {
		return "", err
	}
	if menu.CreateMenuItemCategory == nil || menu.CreateMenuItemCategory.UUID == "" {
		return "", missingField("restaurant.settings.menu.createMenuItemCategory.uuid")
	}
	return menu.CreateMenuItemCategory.UUID, nil
}

// UpdateSoldOutItems flips sold-out flags for a batch of items in one
// mutation and returns the upstream's per-item confirmation.
func (c *Client) UpdateSoldOutItems(ctx context.Context, items []SoldOutUpdate) ([]SoldOutUpdate, error) {
	var resp menuEnvelope[struct {
		UpdateSoldOutItems *struct {
			UpdatedSoldOutMenuItems []SoldOutUpdate `json:"updatedSoldOutMenuItems"`
		} `json:"updateSoldOutItems"`
	}]
	vars := map[string]any{"soldOutMenuItems": items}
	if err := c.execute(ctx, "updateSoldOutItems", updateSoldOutItemsMutation, vars, &resp); err != nil {
		return nil, err
	}
	menu, err := resp.menu()
	if err != nil {
		return nil, err
	}
	if menu.UpdateSoldOutItems == nil {
		return nil, missingField("restaurant.settings.menu.updateSoldOutItems")
	}
	return menu.UpdateSoldOutItems.UpdatedSoldOutMenuItems, nil
}

// ListTags returns the tag and tag-group catalog.
func (c *Client) ListTags(ctx context.Context) (*TagCatalog, error) {
	var resp menuEnvelope[TagCatalog]
	if err := c.execute(ctx, "menuItemTagListing", tagListingQuery, nil, &resp); err != nil {
		return nil, err
	}
	menu, err := resp.menu()
	if err != nil {
		return nil, err
	}
	return menu, nil
}

type onlineIntegrationEnvelope[T any] struct {
	Restaurant *struct {
		Settings *struct {
			Menu *struct {
				Integration *struct {
					OnlineRestaurant *T `json:"onlineRestaurant"`
				} `json:"integration"`
			} `json:"menu"`
		} `json:"settings"`
	} `json:"restaurant"`
}

func (e *onlineIntegrationEnvelope[T]) onlineRestaurant() (*T, error) {
	if e.Restaurant == nil || e.Restaurant.Settings == nil ||
		e.Restaurant.Settings.Menu == nil ||
		e.Restaurant.Settings.Menu.Integration == nil ||
		e.Restaurant.Settings.Menu.Integration.OnlineRestaurant == nil {
		return nil, missingField("restaurant.settings.menu.integration.onlineRestaurant")
	}
	return e.Restaurant.Settings.Menu.Integration.OnlineRestaurant, nil
}

// ListOnlineCategories returns the delivery-platform menu projection.
func (c *Client) ListOnlineCategories(ctx context.Context) ([]OnlineCategory, error) {
	var resp onlineIntegrationEnvelope[struct {
		Categories []OnlineCategory `json:"categories"`
	}]
	if err := c.execute(ctx, "onlineMenuListing", onlineMenuListingQuery, nil, &resp); err != nil {
		return nil, err
	}
	online, err := resp.onlineRestaurant()
	if err != nil {
		return nil, err
	}
	if online.Categories == nil {
		return nil, missingField("restaurant.settings.menu.integration.onlineRestaurant.categories")
	}
	return online.Categories, nil
}

// ImportMenuItemsToCategory publishes menu items into an online
// category and returns the categories the upstream echoes back.
func (c *Client) ImportMenuItemsToCategory(ctx context.Context, categoryUUID string, itemUUIDs []string) ([]OnlineCategory, error) {
	var resp onlineIntegrationEnvelope[struct {
		ImportMenuItemToCategory []OnlineCategory `json:"importMenuItemToCategory"`
	}]
	vars := map[string]any{"categoryUuid": categoryUUID, "ichefMenuItemUuids": itemUUIDs}
	if err := c.execute(ctx, "onlineMenuItemImport", onlineImportMutation, vars, &resp); err != nil {
		return nil, err
	}
	online, err := resp.onlineRestaurant()
	if err != nil {
		return nil, err
	}
	if online.ImportMenuItemToCategory == nil {
		return nil, missingField("restaurant.settings.menu.integration.onlineRestaurant.importMenuItemToCategory")
	}
	return online.ImportMenuItemToCategory, nil
}

// BatchDeleteOnlineItems unpublishes online menu items and returns the
// uuids the upstream confirms as deleted.
func (c *Client) BatchDeleteOnlineItems(ctx context.Context, itemUUIDs []string) ([]string, error) {
	var resp onlineIntegrationEnvelope[struct {
		DeleteMenu *struct {
			DeletedMenuItemUuids []string `json:"deletedMenuItemUuids"`
		} `json:"deleteMenu"`
	}]
	vars := map[string]any{"menuItemUuids": itemUUIDs}
	if err := c.execute(ctx, "onlineMenuItemBatchDelete", onlineBatchDeleteMutation, vars, &resp); err != nil {
		return nil, err
	}
	online, err := resp.onlineRestaurant()
	if err != nil {
		return nil, err
	}
	if online.DeleteMenu == nil {
		return nil, missingField("restaurant.settings.menu.integration.onlineRestaurant.deleteMenu")
	}
	return online.DeleteMenu.DeletedMenuItemUuids, nil
}

// UpdateOnlineRestaurantInformation toggles the online storefront
// between browse-only and takeout.
func (c *Client) UpdateOnlineRestaurantInformation(ctx context.Context, operationType StoreOperationType) error {
	var resp struct {
		Restaurant *struct {
			Settings *struct {
				OnlineOrderingIntegration *struct {
					OnlineRestaurant *struct {
						UpdateOnlineRestaurantInformation *struct {
							Name string `json:"name"`
						} `json:"updateOnlineRestaurantInformation"`
					} `json:"onlineRestaurant"`
				} `json:"onlineOrderingIntegration"`
			} `json:"settings"`
		} `json:"restaurant"`
	}
	vars := map[string]any{"payload": map[string]any{"operationType": operationType}}
	if err := c.execute(ctx, "onlineInformationEdit", onlineInformationEditMutation, vars, &resp); err != nil {
		return err
	}
	if resp.Restaurant == nil || resp.Restaurant.Settings == nil ||
		resp.Restaurant.Settings.OnlineOrderingIntegration == nil ||
		resp.Restaurant.Settings.OnlineOrderingIntegration.OnlineRestaurant == nil ||
		resp.Restaurant.Settings.OnlineOrderingIntegration.OnlineRestaurant.UpdateOnlineRestaurantInformation == nil {
		return missingField("restaurant.settings.onlineOrderingIntegration.onlineRestaurant.updateOnlineRestaurantInformation")
	}
	return nil
}
