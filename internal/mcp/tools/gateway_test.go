package tools

import (
	"context"
	"errors"

	"github.com/menucraft/menucraft-mcp/internal/config"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// fakeGateway implements Gateway with per-method function hooks. An
// unhooked method fails the call so tests notice unexpected traffic.
type fakeGateway struct {
	pingFn           func(ctx context.Context) error
	listFn           func(ctx context.Context) ([]menuapi.MenuCategory, error)
	getItemFn        func(ctx context.Context, uuid string) (*menuapi.MenuItem, error)
	scanFn           func(ctx context.Context) ([]menuapi.MenuCategory, error)
	createItemFn     func(ctx context.Context, payload menuapi.CreateMenuItemPayload) (*menuapi.CreatedMenuItem, error)
	updateItemFn     func(ctx context.Context, uuid string, payload menuapi.UpdateMenuItemPayload) (string, error)
	deleteItemFn     func(ctx context.Context, uuid string) (string, error)
	createCategoryFn func(ctx context.Context, payload menuapi.CreateCategoryPayload) (string, error)
	soldOutFn        func(ctx context.Context, items []menuapi.SoldOutUpdate) ([]menuapi.SoldOutUpdate, error)
	listTagsFn       func(ctx context.Context) (*menuapi.TagCatalog, error)
	listOnlineFn     func(ctx context.Context) ([]menuapi.OnlineCategory, error)
	importFn         func(ctx context.Context, categoryUUID string, itemUUIDs []string) ([]menuapi.OnlineCategory, error)
	batchDeleteFn    func(ctx context.Context, itemUUIDs []string) ([]string, error)
	storeStatusFn    func(ctx context.Context, operationType menuapi.StoreOperationType) error

	calls []string
}

var errUnexpectedCall = errors.New("unexpected gateway call")

func (f *fakeGateway) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeGateway) Ping(ctx context.Context) error {
	f.record("Ping")
	if f.pingFn == nil {
		return errUnexpectedCall
	}
	return f.pingFn(ctx)
}

func (f *fakeGateway) ListMenuCategories(ctx context.Context) ([]menuapi.MenuCategory, error) {
	f.record("ListMenuCategories")
	if f.listFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listFn(ctx)
}

func (f *fakeGateway) GetMenuItem(ctx context.Context, uuid string) (*menuapi.MenuItem, error) {
	f.record("GetMenuItem")
	if f.getItemFn == nil {
		return nil, errUnexpectedCall
	}
	return f.getItemFn(ctx, uuid)
}

func (f *fakeGateway) ComboDependencyScan(ctx context.Context) ([]menuapi.MenuCategory, error) {
	f.record("ComboDependencyScan")
	if f.scanFn == nil {
		return nil, errUnexpectedCall
	}
	return f.scanFn(ctx)
}

func (f *fakeGateway) CreateMenuItem(ctx context.Context, payload menuapi.CreateMenuItemPayload) (*menuapi.CreatedMenuItem, error) {
	f.record("CreateMenuItem")
	if f.createItemFn == nil {
		return nil, errUnexpectedCall
	}
	return f.createItemFn(ctx, payload)
}

func (f *fakeGateway) UpdateMenuItem(ctx context.Context, uuid string, payload menuapi.UpdateMenuItemPayload) (string, error) {
	f.record("UpdateMenuItem")
	if f.updateItemFn == nil {
		return "", errUnexpectedCall
	}
	return f.updateItemFn(ctx, uuid, payload)
}

func (f *fakeGateway) DeleteMenuItem(ctx context.Context, uuid string) (string, error) {
	f.record("DeleteMenuItem")
	if f.deleteItemFn == nil {
		return "", errUnexpectedCall
	}
	return f.deleteItemFn(ctx, uuid)
}

func (f *fakeGateway) CreateCategory(ctx context.Context, payload menuapi.CreateCategoryPayload) (string, error) {
	f.record("CreateCategory")
	if f.createCategoryFn == nil {
		return "", errUnexpectedCall
	}
	return f.createCategoryFn(ctx, payload)
}

func (f *fakeGateway) UpdateSoldOutItems(ctx context.Context, items []menuapi.SoldOutUpdate) ([]menuapi.SoldOutUpdate, error) {
	f.record("UpdateSoldOutItems")
	if f.soldOutFn == nil {
		return nil, errUnexpectedCall
	}
	return f.soldOutFn(ctx, items)
}

func (f *fakeGateway) ListTags(ctx context.Context) (*menuapi.TagCatalog, error) {
	f.record("ListTags")
	if f.listTagsFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listTagsFn(ctx)
}

func (f *fakeGateway) ListOnlineCategories(ctx context.Context) ([]menuapi.OnlineCategory, error) {
	f.record("ListOnlineCategories")
	if f.listOnlineFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listOnlineFn(ctx)
}

func (f *fakeGateway) ImportMenuItemsToCategory(ctx context.Context, categoryUUID string, itemUUIDs []string) ([]menuapi.OnlineCategory, error) {
	f.record("ImportMenuItemsToCategory")
	if f.importFn == nil {
		return nil, errUnexpectedCall
	}
	return f.importFn(ctx, categoryUUID, itemUUIDs)
}

func (f *fakeGateway) BatchDeleteOnlineItems(ctx context.Context, itemUUIDs []string) ([]string, error) {
	f.record("BatchDeleteOnlineItems")
	if f.batchDeleteFn == nil {
		return nil, errUnexpectedCall
	}
	return f.batchDeleteFn(ctx, itemUUIDs)
}

func (f *fakeGateway) UpdateOnlineRestaurantInformation(ctx context.Context, operationType menuapi.StoreOperationType) error {
	f.record("UpdateOnlineRestaurantInformation")
	if f.storeStatusFn == nil {
		return errUnexpectedCall
	}
	return f.storeStatusFn(ctx, operationType)
}

func testDeps(g *fakeGateway) *Deps {
	return &Deps{
		Gateway: g,
		Config: &config.Config{
			GraphQLEndpoint: menuapi.DefaultEndpoint,
			GraphQLToken:    "abcdef0123456789",
		},
	}
}
