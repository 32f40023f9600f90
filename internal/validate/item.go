package validate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

const (
	maxNameLength = 255
	maxPrice      = 999999
)

// CreateItemInput is the raw argument set for creating a menu item.
type CreateItemInput struct {
	Name                 string   `json:"name" jsonschema:"required,Item name (1-255 characters)"`
	Price                float64  `json:"price" jsonschema:"required,Item price; positive with at most two decimal places"`
	CategoryUUID         string   `json:"menuItemCategoryUuid" jsonschema:"required,Menu category UUID"`
	Type                 string   `json:"type,omitempty" jsonschema:"Item type: ITEM or COMBO_ITEM (default: ITEM)"`
	Enabled              *bool    `json:"enabled,omitempty" jsonschema:"Whether the item is enabled (default: true)"`
	SortingIndex         *int     `json:"sortingIndex,omitempty" jsonschema:"Sorting index within the category"`
	Picture              string   `json:"picture,omitempty" jsonschema:"Picture URL"`
	ExternalID           string   `json:"externalId,omitempty" jsonschema:"External system identifier"`
	CustomizedTaxEnabled *bool    `json:"customizedTaxEnabled,omitempty" jsonschema:"Enable a per-item tax override"`
	CustomizedTaxType    string   `json:"customizedTaxType,omitempty" jsonschema:"Tax override type: PERCENTAGE or FIXED"`
	CustomizedTaxRate    *float64 `json:"customizedTaxRate,omitempty" jsonschema:"Tax override rate (0-100)"`

	TagRelationships []TagRelationshipInput `json:"itemTagRelationshipList,omitempty" jsonschema:"Tag or tag-group attachments"`
	ComboCategories  []ComboCategoryInput   `json:"comboItemCategories,omitempty" jsonschema:"Combo selection groups (COMBO_ITEM only)"`
}

// UpdateItemInput is the raw argument set for a partial item update.
// Every field except the uuid is optional, but at least one must be set
// for the update to do anything.
type UpdateItemInput struct {
	UUID                 string   `json:"uuid" jsonschema:"required,UUID of the item to update"`
	Name                 *string  `json:"name,omitempty" jsonschema:"New item name (1-255 characters)"`
	Price                *float64 `json:"price,omitempty" jsonschema:"New price; positive with at most two decimal places"`
	CategoryUUID         *string  `json:"menuItemCategoryUuid,omitempty" jsonschema:"Move the item to this category UUID"`
	Type                 *string  `json:"type,omitempty" jsonschema:"Item type: ITEM or COMBO_ITEM"`
	Enabled              *bool    `json:"enabled,omitempty" jsonschema:"Enable or disable the item (distinct from sold-out)"`
	SortingIndex         *int     `json:"sortingIndex,omitempty" jsonschema:"Sorting index within the category"`
	Picture              *string  `json:"picture,omitempty" jsonschema:"Picture URL"`
	ExternalID           *string  `json:"externalId,omitempty" jsonschema:"External system identifier"`
	CustomizedTaxEnabled *bool    `json:"customizedTaxEnabled,omitempty" jsonschema:"Enable a per-item tax override"`
	CustomizedTaxType    *string  `json:"customizedTaxType,omitempty" jsonschema:"Tax override type: PERCENTAGE or FIXED"`
	CustomizedTaxRate    *float64 `json:"customizedTaxRate,omitempty" jsonschema:"Tax override rate (0-100)"`

	TagRelationships []TagRelationshipInput `json:"itemTagRelationshipList,omitempty" jsonschema:"Replace the item's tag attachments"`
	ComboCategories  []ComboCategoryInput   `json:"comboItemCategories,omitempty" jsonschema:"Replace the combo selection groups (COMBO_ITEM only)"`
}

// CreateItem validates and normalizes a create request. The returned
// payload is only meaningful when the result is valid.
func CreateItem(in CreateItemInput) (menuapi.CreateMenuItemPayload, *Result) {
	res := newResult()
	var payload menuapi.CreateMenuItemPayload

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		res.errorf("name is required and must be non-empty")
	case len(name) > maxNameLength:
		res.errorf("name must not exceed %d characters", maxNameLength)
	}
	payload.Name = name

	if price, ok := checkPrice("price", in.Price, true, res); ok {
		payload.Price = price
	}

	res.Merge(UUIDField("menuItemCategoryUuid", in.CategoryUUID))
	payload.MenuItemCategoryUUID = in.CategoryUUID

	itemType := menuapi.ItemTypeSingle
	if in.Type != "" {
		t, ok := checkItemType("type", in.Type, res)
		if ok {
			itemType = t
		}
	}
	payload.Type = itemType

	// Combo data on a plain item is an error, not a silent drop.
	if len(in.ComboCategories) > 0 && itemType != menuapi.ItemTypeCombo {
		res.errorf("comboItemCategories requires type COMBO_ITEM")
	}
	payload.ComboItemCategories = comboCategories(in.ComboCategories, res)

	payload.Enabled = in.Enabled == nil || *in.Enabled

	if in.SortingIndex != nil {
		if *in.SortingIndex < 0 {
			res.errorf("sortingIndex must not be negative")
		}
		payload.SortingIndex = in.SortingIndex
	}
	payload.Picture = strings.TrimSpace(in.Picture)
	payload.ExternalID = strings.TrimSpace(in.ExternalID)

	applyTaxFields(in.CustomizedTaxEnabled, in.CustomizedTaxType, in.CustomizedTaxRate, res,
		func(enabled *bool, taxType menuapi.TaxType, rate *decimal.Decimal) {
			payload.CustomizedTaxEnabled = enabled
			payload.CustomizedTaxType = taxType
			payload.CustomizedTaxRate = rate
		})

	payload.ItemTagRelationshipList = TagRelationships(in.TagRelationships, res)

	return payload, res
}

// UpdateItem validates and normalizes a partial update. An update that
// names no field stays valid but carries a warning; callers should skip
// the upstream mutation in that case.
func UpdateItem(in UpdateItemInput) (menuapi.UpdateMenuItemPayload, *Result) {
	res := newResult()
	var payload menuapi.UpdateMenuItemPayload

	res.Merge(UUIDField("uuid", in.UUID))

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		switch {
		case name == "":
			res.errorf("name must be non-empty")
		case len(name) > maxNameLength:
			res.errorf("name must not exceed %d characters", maxNameLength)
		default:
			payload.Name = &name
		}
	}

	if in.Price != nil {
		if price, ok := checkPrice("price", *in.Price, true, res); ok {
			payload.Price = &price
		}
	}

	if in.CategoryUUID != nil {
		res.Merge(UUIDField("menuItemCategoryUuid", *in.CategoryUUID))
		payload.MenuItemCategoryUUID = in.CategoryUUID
	}

	var itemType *menuapi.ItemType
	if in.Type != nil {
		if t, ok := checkItemType("type", *in.Type, res); ok {
			itemType = &t
			payload.Type = &t
		}
	}
	if len(in.ComboCategories) > 0 && itemType != nil && *itemType != menuapi.ItemTypeCombo {
		res.errorf("comboItemCategories requires type COMBO_ITEM")
	}
	if in.ComboCategories != nil {
		payload.ComboItemCategories = comboCategories(in.ComboCategories, res)
	}

	payload.Enabled = in.Enabled

	if in.SortingIndex != nil {
		if *in.SortingIndex < 0 {
			res.errorf("sortingIndex must not be negative")
		}
		payload.SortingIndex = in.SortingIndex
	}
	if in.Picture != nil {
		trimmed := strings.TrimSpace(*in.Picture)
		payload.Picture = &trimmed
	}
	if in.ExternalID != nil {
		trimmed := strings.TrimSpace(*in.ExternalID)
		payload.ExternalID = &trimmed
	}

	applyTaxFields(in.CustomizedTaxEnabled, taxTypeOrEmpty(in.CustomizedTaxType), in.CustomizedTaxRate, res,
		func(enabled *bool, taxType menuapi.TaxType, rate *decimal.Decimal) {
			payload.CustomizedTaxEnabled = enabled
			if taxType != "" {
				payload.CustomizedTaxType = &taxType
			}
			payload.CustomizedTaxRate = rate
		})

	if in.TagRelationships != nil {
		payload.ItemTagRelationshipList = TagRelationships(in.TagRelationships, res)
	}

	if payload.IsEmpty() && res.Valid {
		res.warnf("no fields to update")
	}

	return payload, res
}

func taxTypeOrEmpty(t *string) string {
	if t == nil {
		return ""
	}
	return *t
}

// checkPrice validates a money amount and converts it to a decimal.
// Prices are capped at two decimal places and 999999.
func checkPrice(field string, v float64, requirePositive bool, res *Result) (decimal.Decimal, bool) {
	d := decimal.NewFromFloat(v)
	switch {
	case requirePositive && !d.IsPositive():
		res.errorf("%s must be greater than 0", field)
		return decimal.Decimal{}, false
	case d.IsNegative():
		res.errorf("%s must not be negative", field)
		return decimal.Decimal{}, false
	}
	if d.GreaterThan(decimal.NewFromInt(maxPrice)) {
		res.errorf("%s must not exceed %d", field, maxPrice)
		return decimal.Decimal{}, false
	}
	if d.Exponent() < -2 {
		res.errorf("%s must have at most two decimal places", field)
		return decimal.Decimal{}, false
	}
	return d, true
}

func checkItemType(field, value string, res *Result) (menuapi.ItemType, bool) {
	switch menuapi.ItemType(value) {
	case menuapi.ItemTypeSingle, menuapi.ItemTypeCombo:
		return menuapi.ItemType(value), true
	}
	res.errorf("%s must be one of: ITEM, COMBO_ITEM", field)
	return "", false
}

// applyTaxFields validates the tax-override trio. Rates outside [0,100]
// are clamped into range with a warning rather than rejected.
func applyTaxFields(enabled *bool, taxType string, rate *float64, res *Result, set func(*bool, menuapi.TaxType, *decimal.Decimal)) {
	var normalizedType menuapi.TaxType
	if taxType != "" {
		switch menuapi.TaxType(taxType) {
		case menuapi.TaxTypePercentage, menuapi.TaxTypeFixed:
			normalizedType = menuapi.TaxType(taxType)
		default:
			res.errorf("customizedTaxType must be one of: PERCENTAGE, FIXED")
		}
	}

	var normalizedRate *decimal.Decimal
	if rate != nil {
		d := decimal.NewFromFloat(*rate)
		if d.IsNegative() {
			res.warnf("customizedTaxRate below 0 clamped to 0")
			d = decimal.Zero
		} else if d.GreaterThan(decimal.NewFromInt(100)) {
			res.warnf("customizedTaxRate above 100 clamped to 100")
			d = decimal.NewFromInt(100)
		}
		normalizedRate = &d
	}

	set(enabled, normalizedType, normalizedRate)
}
