package tools

import (
	"context"
	"errors"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menucraft/menucraft-mcp/internal/validate"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

const (
	itemUUID     = "aaaaaaaa-0000-0000-0000-000000000001"
	partnerUUID  = "aaaaaaaa-0000-0000-0000-000000000002"
	categoryUUID = "11111111-1111-1111-1111-111111111111"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	return coded.Code
}

func TestCreateItem_InvalidInputNeverReachesGateway(t *testing.T) {
	g := &fakeGateway{}
	handler := ToolCreateItem(testDeps(g))

	_, _, err := handler(context.Background(), nil, validate.CreateItemInput{
		Name:         "Burger",
		Price:        99.999,
		CategoryUUID: categoryUUID,
	})
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
	assert.Empty(t, g.calls, "validation failure must not issue network calls")
}

func TestCreateItem_PassesNormalizedPayload(t *testing.T) {
	var got menuapi.CreateMenuItemPayload
	g := &fakeGateway{
		createItemFn: func(ctx context.Context, payload menuapi.CreateMenuItemPayload) (*menuapi.CreatedMenuItem, error) {
			got = payload
			return &menuapi.CreatedMenuItem{UUID: itemUUID, Name: payload.Name, Type: payload.Type}, nil
		},
	}
	handler := ToolCreateItem(testDeps(g))

	result, output, err := handler(context.Background(), nil, validate.CreateItemInput{
		Name:         "  Burger  ",
		Price:        120,
		CategoryUUID: categoryUUID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Burger", got.Name)
	assert.Equal(t, menuapi.ItemTypeSingle, got.Type)
	assert.True(t, got.Enabled)
	assert.Equal(t, itemUUID, output.UUID)
	require.NotNil(t, result)
}

func TestUpdateItem_EmptyUpdateSkipsUpstream(t *testing.T) {
	g := &fakeGateway{}
	handler := ToolUpdateItem(testDeps(g))

	_, output, err := handler(context.Background(), nil, validate.UpdateItemInput{UUID: itemUUID})
	require.NoError(t, err)
	assert.False(t, output.Updated)
	assert.Contains(t, output.Warnings, "no fields to update")
	assert.Empty(t, g.calls)
}

func TestUpdateItem_CallsUpstreamWithFields(t *testing.T) {
	name := "Ramen"
	g := &fakeGateway{
		updateItemFn: func(ctx context.Context, uuid string, payload menuapi.UpdateMenuItemPayload) (string, error) {
			assert.Equal(t, itemUUID, uuid)
			require.NotNil(t, payload.Name)
			assert.Equal(t, "Ramen", *payload.Name)
			return uuid, nil
		},
	}
	handler := ToolUpdateItem(testDeps(g))

	_, output, err := handler(context.Background(), nil, validate.UpdateItemInput{UUID: itemUUID, Name: &name})
	require.NoError(t, err)
	assert.True(t, output.Updated)
	assert.Equal(t, itemUUID, output.UUID)
}

func TestDeleteItem_BlockedDeleteNeverMutates(t *testing.T) {
	minOne := 1
	g := &fakeGateway{
		getItemFn: func(ctx context.Context, uuid string) (*menuapi.MenuItem, error) {
			return &menuapi.MenuItem{UUID: itemUUID, Name: "Fries"}, nil
		},
		scanFn: func(ctx context.Context) ([]menuapi.MenuCategory, error) {
			return []menuapi.MenuCategory{{
				Name: "Mains",
				MenuItems: []menuapi.MenuItem{{
					UUID: partnerUUID,
					Name: "Lunch Set",
					Type: menuapi.ItemTypeCombo,
					ComboItemCategories: []menuapi.ComboItemCategory{{
						Name:             "Side",
						MinimumSelection: &minOne,
						ComboMenuItems:   []menuapi.ComboMenuItem{{MenuItemUUID: itemUUID}},
					}},
				}},
			}}, nil
		},
	}
	handler := ToolDeleteItem(testDeps(g))

	_, output, err := handler(context.Background(), nil, DeleteItemInput{UUID: itemUUID})
	require.Error(t, err)
	assert.Equal(t, ErrCodeDependencyBlocked, codeOf(t, err))
	assert.Contains(t, err.Error(), "sole required option")
	require.Len(t, output.Blocks, 1)
	assert.NotContains(t, g.calls, "DeleteMenuItem")
}

func TestDeleteItem_ScanFailureWarnsAndProceeds(t *testing.T) {
	g := &fakeGateway{
		getItemFn: func(ctx context.Context, uuid string) (*menuapi.MenuItem, error) {
			return &menuapi.MenuItem{UUID: itemUUID}, nil
		},
		scanFn: func(ctx context.Context) ([]menuapi.MenuCategory, error) {
			return nil, errors.New("connection refused")
		},
		deleteItemFn: func(ctx context.Context, uuid string) (string, error) {
			return uuid, nil
		},
	}
	handler := ToolDeleteItem(testDeps(g))

	_, output, err := handler(context.Background(), nil, DeleteItemInput{UUID: itemUUID})
	require.NoError(t, err)
	assert.True(t, output.Deleted)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "could not be completed")
	assert.Contains(t, g.calls, "DeleteMenuItem")
}

func TestDeleteItem_UnblockedDeleteSucceeds(t *testing.T) {
	g := &fakeGateway{
		getItemFn: func(ctx context.Context, uuid string) (*menuapi.MenuItem, error) {
			return &menuapi.MenuItem{
				UUID:                 itemUUID,
				Name:                 "Lunch Set",
				Price:                decimal.NewFromInt(180),
				Type:                 menuapi.ItemTypeCombo,
				MenuItemCategoryUUID: categoryUUID,
				ComboItemCategories: []menuapi.ComboItemCategory{{
					UUID: "cccccccc-0000-0000-0000-000000000001",
					Name: "Main",
					ComboMenuItems: []menuapi.ComboMenuItem{{
						UUID:         "dddddddd-0000-0000-0000-000000000001",
						MenuItemUUID: partnerUUID,
					}},
				}},
			}, nil
		},
		scanFn: func(ctx context.Context) ([]menuapi.MenuCategory, error) {
			return nil, nil
		},
		deleteItemFn: func(ctx context.Context, uuid string) (string, error) {
			return uuid, nil
		},
	}
	handler := ToolDeleteItem(testDeps(g))

	result, output, err := handler(context.Background(), nil, DeleteItemInput{UUID: itemUUID})
	require.NoError(t, err)
	assert.True(t, output.Deleted)
	assert.Empty(t, output.Warnings)

	text := result.Content[0].(*sdkmcp.TextContent).Text
	assert.Contains(t, text, "deleted menu item "+itemUUID)
	assert.Contains(t, text, "Lunch Set")
	assert.Contains(t, text, "price: 180")
	assert.Contains(t, text, "combo categories:")
	assert.Contains(t, text, "Main (min 1, max 1, 1 options)")
	assert.Contains(t, text, partnerUUID)
}

func TestDeleteItem_InvalidUUIDRejected(t *testing.T) {
	g := &fakeGateway{}
	handler := ToolDeleteItem(testDeps(g))

	_, _, err := handler(context.Background(), nil, DeleteItemInput{UUID: "nope"})
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
	assert.Empty(t, g.calls)
}

func TestDeleteItem_MissingItemIsNotFound(t *testing.T) {
	g := &fakeGateway{
		getItemFn: func(ctx context.Context, uuid string) (*menuapi.MenuItem, error) {
			return nil, menuapi.ErrNotFound
		},
	}
	handler := ToolDeleteItem(testDeps(g))

	_, _, err := handler(context.Background(), nil, DeleteItemInput{UUID: itemUUID})
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotFound, codeOf(t, err))
}
