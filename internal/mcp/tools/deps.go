package tools

import (
	"context"

	"github.com/menucraft/menucraft-mcp/internal/config"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// Gateway is the upstream surface the tool handlers depend on. It is
// satisfied by *menuapi.Client; tests substitute a fake.
type Gateway interface {
	Ping(ctx context.Context) error
	ListMenuCategories(ctx context.Context) ([]menuapi.MenuCategory, error)
	GetMenuItem(ctx context.Context, uuid string) (*menuapi.MenuItem, error)
	ComboDependencyScan(ctx context.Context) ([]menuapi.MenuCategory, error)
	CreateMenuItem(ctx context.Context, payload menuapi.CreateMenuItemPayload) (*menuapi.CreatedMenuItem, error)
	UpdateMenuItem(ctx context.Context, uuid string, payload menuapi.UpdateMenuItemPayload) (string, error)
	DeleteMenuItem(ctx context.Context, uuid string) (string, error)
	CreateCategory(ctx context.Context, payload menuapi.CreateCategoryPayload) (string, error)
	UpdateSoldOutItems(ctx context.Context, items []menuapi.SoldOutUpdate) ([]menuapi.SoldOutUpdate, error)
	ListTags(ctx context.Context) (*menuapi.TagCatalog, error)
	ListOnlineCategories(ctx context.Context) ([]menuapi.OnlineCategory, error)
	ImportMenuItemsToCategory(ctx context.Context, categoryUUID string, itemUUIDs []string) ([]menuapi.OnlineCategory, error)
	BatchDeleteOnlineItems(ctx context.Context, itemUUIDs []string) ([]string, error)
	UpdateOnlineRestaurantInformation(ctx context.Context, operationType menuapi.StoreOperationType) error
}

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Gateway Gateway
	Config  *config.Config
}
