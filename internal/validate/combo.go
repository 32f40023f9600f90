package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// ComboMenuItemInput is one selectable option inside a combo category.
type ComboMenuItemInput struct {
	UUID         string `json:"uuid,omitempty" jsonschema:"Existing combo option UUID (update only)"`
	MenuItemUUID string `json:"menuItemUuid" jsonschema:"required,UUID of the referenced menu item"`
	Price        string `json:"price,omitempty" jsonschema:"Optional non-negative upcharge as a decimal string"`
}

// ComboCategoryInput is one selection group of a combo item.
type ComboCategoryInput struct {
	UUID                     string               `json:"uuid,omitempty" jsonschema:"Existing combo category UUID (update only)"`
	Name                     string               `json:"name" jsonschema:"required,Category name (1-255 characters)"`
	AllowRepeatableSelection bool                 `json:"allowRepeatableSelection" jsonschema:"Whether one option may be picked multiple times"`
	MinimumSelection         *int                 `json:"minimumSelection,omitempty" jsonschema:"Minimum selections (default: 1)"`
	MaximumSelection         *int                 `json:"maximumSelection,omitempty" jsonschema:"Maximum selections (default: 1); must be >= minimum"`
	SortingType              string               `json:"comboMenuItemSortingType,omitempty" jsonschema:"Option ordering: MANUAL or ALPHABETICAL"`
	ComboMenuItems           []ComboMenuItemInput `json:"comboMenuItems,omitempty" jsonschema:"Selectable options"`
}

// comboCategories validates every combo selection group and produces
// the normalized payload slice. Selection bounds are compared on their
// effective values: an absent minimum or maximum defaults to 1.
func comboCategories(in []ComboCategoryInput, res *Result) []menuapi.ComboCategoryPayload {
	if len(in) == 0 {
		return nil
	}
	out := make([]menuapi.ComboCategoryPayload, 0, len(in))
	for i, cat := range in {
		where := fmt.Sprintf("comboItemCategories[%d]", i)

		name := strings.TrimSpace(cat.Name)
		switch {
		case name == "":
			res.errorf("%s.name is required and must be non-empty", where)
		case len(name) > maxNameLength:
			res.errorf("%s.name must not exceed %d characters", where, maxNameLength)
		}

		if cat.UUID != "" && !IsUUID(cat.UUID) {
			res.errorf("%s.uuid is not a valid UUID: %s", where, cat.UUID)
		}

		minSel, maxSel := 1, 1
		if cat.MinimumSelection != nil {
			minSel = *cat.MinimumSelection
			if minSel < 0 {
				res.errorf("%s.minimumSelection must not be negative", where)
			}
		}
		if cat.MaximumSelection != nil {
			maxSel = *cat.MaximumSelection
			if maxSel < 0 {
				res.errorf("%s.maximumSelection must not be negative", where)
			}
		}
		if minSel > maxSel {
			res.errorf("%s.minimumSelection (%d) must not exceed maximumSelection (%d)", where, minSel, maxSel)
		}

		sorting := menuapi.SortingType("")
		if cat.SortingType != "" {
			switch menuapi.SortingType(cat.SortingType) {
			case menuapi.SortingManual, menuapi.SortingAlphabetical:
				sorting = menuapi.SortingType(cat.SortingType)
			default:
				res.errorf("%s.comboMenuItemSortingType must be one of: MANUAL, ALPHABETICAL", where)
			}
		}

		out = append(out, menuapi.ComboCategoryPayload{
			UUID:                     cat.UUID,
			Name:                     name,
			AllowRepeatableSelection: cat.AllowRepeatableSelection,
			MinimumSelection:         minSel,
			MaximumSelection:         maxSel,
			ComboMenuItemSortingType: sorting,
			ComboMenuItems:           comboMenuItems(where, cat.ComboMenuItems, res),
		})
	}
	return out
}

func comboMenuItems(parent string, in []ComboMenuItemInput, res *Result) []menuapi.ComboMenuItemPayload {
	if len(in) == 0 {
		return nil
	}
	out := make([]menuapi.ComboMenuItemPayload, 0, len(in))
	for i, item := range in {
		where := fmt.Sprintf("%s.comboMenuItems[%d]", parent, i)

		if !IsUUID(item.MenuItemUUID) {
			res.errorf("%s.menuItemUuid is not a valid UUID: %s", where, item.MenuItemUUID)
		}
		if item.UUID != "" && !IsUUID(item.UUID) {
			res.errorf("%s.uuid is not a valid UUID: %s", where, item.UUID)
		}

		payload := menuapi.ComboMenuItemPayload{
			UUID:         item.UUID,
			MenuItemUUID: item.MenuItemUUID,
		}
		if item.Price != "" {
			price, err := decimal.NewFromString(item.Price)
			switch {
			case err != nil:
				res.errorf("%s.price is not a valid decimal: %s", where, item.Price)
			case price.IsNegative():
				res.errorf("%s.price must not be negative", where)
			case price.Exponent() < -2:
				res.errorf("%s.price must have at most two decimal places", where)
			default:
				payload.Price = &price
			}
		}
		out = append(out, payload)
	}
	return out
}
