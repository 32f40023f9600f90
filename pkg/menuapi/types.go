package menuapi

import "github.com/shopspring/decimal"

// ItemType is the menu item kind.
type ItemType string

const (
	ItemTypeSingle ItemType = "ITEM"
	ItemTypeCombo  ItemType = "COMBO_ITEM"
)

// TaxType is the customized tax override kind.
type TaxType string

const (
	TaxTypePercentage TaxType = "PERCENTAGE"
	TaxTypeFixed      TaxType = "FIXED"
)

// SortingType orders a combo category's selectable items.
type SortingType string

const (
	SortingManual       SortingType = "MANUAL"
	SortingAlphabetical SortingType = "ALPHABETICAL"
)

// StoreOperationType toggles the online-ordering storefront.
type StoreOperationType string

const (
	StoreOnlyBrowse StoreOperationType = "ONLY_BROWSE"
	StoreTakeout    StoreOperationType = "TAKEOUT"
)

// ChannelListing is a delivery-platform projection stub attached to a
// menu item. A non-nil listing means the item is published on that
// channel.
type ChannelListing struct {
	UUID    string `json:"uuid"`
	Visible *bool  `json:"visible,omitempty"`
}

// ComboMenuItem is one selectable option inside a combo category.
type ComboMenuItem struct {
	UUID         string           `json:"uuid"`
	MenuItemUUID string           `json:"menuItemUuid"`
	Name         string           `json:"name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

// ComboItemCategory is one selection group inside a combo item.
// Minimum and Maximum are pointers because the upstream omits them for
// legacy rows; both default to 1.
type ComboItemCategory struct {
	UUID                     string          `json:"uuid"`
	Name                     string          `json:"name"`
	AllowRepeatableSelection bool            `json:"allowRepeatableSelection"`
	MinimumSelection         *int            `json:"minimumSelection"`
	MaximumSelection         *int            `json:"maximumSelection"`
	ComboMenuItemSortingType SortingType     `json:"comboMenuItemSortingType,omitempty"`
	ComboMenuItems           []ComboMenuItem `json:"comboMenuItems"`
}

// EffectiveMinimum returns the category's minimum selection, defaulting
// to 1 when the upstream omitted it.
func (c *ComboItemCategory) EffectiveMinimum() int {
	if c.MinimumSelection == nil {
		return 1
	}
	return *c.MinimumSelection
}

// EffectiveMaximum returns the category's maximum selection, defaulting
// to 1 when the upstream omitted it.
func (c *ComboItemCategory) EffectiveMaximum() int {
	if c.MaximumSelection == nil {
		return 1
	}
	return *c.MaximumSelection
}

// TagRef is a tag-like reference inside an item's tag relationship; the
// upstream models it as a union of a direct tag and a tag group.
type TagRef struct {
	Typename        string         `json:"__typename"`
	MenuItemTagUUID string         `json:"menuItemTagUuid,omitempty"`
	TagGroupUUID    string         `json:"tagGroupUuid,omitempty"`
	SubTagInItems   []SubTagInItem `json:"subTagInItems,omitempty"`
}

// SubTagInItem is one sub-tag choice inside a tag-group reference.
type SubTagInItem struct {
	SubTagUUID         string `json:"subTagUuid"`
	EnabledInformation *struct {
		SubTagInItemEnabled bool `json:"subTagInItemEnabled"`
	} `json:"enabledInformation,omitempty"`
}

// ItemTagRelationship links a menu item to a tag or a tag group.
type ItemTagRelationship struct {
	FollowingSeparatorCount *int    `json:"followingSeparatorCount,omitempty"`
	TagLikeObject           *TagRef `json:"tagLikeObject,omitempty"`
}

// MenuItem is a menu item as returned by the upstream.
type MenuItem struct {
	UUID                 string           `json:"uuid"`
	Name                 string           `json:"name"`
	Price                decimal.Decimal  `json:"price"`
	Type                 ItemType         `json:"type"`
	SortingIndex         int              `json:"sortingIndex"`
	Enabled              bool             `json:"enabled"`
	IsIncomplete         bool             `json:"isIncomplete"`
	MenuItemCategoryUUID string           `json:"menuItemCategoryUuid"`
	IsFromHQ             bool             `json:"isFromHq"`
	Picture              string           `json:"picture,omitempty"`
	ExternalID           string           `json:"externalId,omitempty"`
	CustomizedTaxEnabled *bool            `json:"customizedTaxEnabled,omitempty"`
	CustomizedTaxType    TaxType          `json:"customizedTaxType,omitempty"`
	CustomizedTaxRate    *decimal.Decimal `json:"customizedTaxRate,omitempty"`

	ComboItemCategories []ComboItemCategory `json:"comboItemCategories,omitempty"`

	OnlineRestaurantMenuItem *ChannelListing `json:"onlineRestaurantMenuItem,omitempty"`
	GrabfoodMenuItem         *ChannelListing `json:"grabfoodMenuItem,omitempty"`
	UbereatsMenuItem         *ChannelListing `json:"ubereatsMenuItem,omitempty"`
	UbereatsV2MenuItem       *ChannelListing `json:"ubereatsV2MenuItem,omitempty"`
	FoodpandaMenuItem        *ChannelListing `json:"foodpandaMenuItem,omitempty"`

	ItemTagRelationshipList []ItemTagRelationship `json:"itemTagRelationshipList,omitempty"`
}

// ChannelListings returns the item's non-nil delivery-channel
// projections keyed by channel name, in a fixed order.
func (m *MenuItem) ChannelListings() []NamedChannelListing {
	var out []NamedChannelListing
	add := func(name string, l *ChannelListing) {
		if l != nil {
			out = append(out, NamedChannelListing{Channel: name, Listing: *l})
		}
	}
	add("online-restaurant", m.OnlineRestaurantMenuItem)
	add("grabfood", m.GrabfoodMenuItem)
	add("ubereats", m.UbereatsMenuItem)
	add("ubereats-v2", m.UbereatsV2MenuItem)
	add("foodpanda", m.FoodpandaMenuItem)
	return out
}

// NamedChannelListing pairs a delivery channel name with its projection.
type NamedChannelListing struct {
	Channel string
	Listing ChannelListing
}

// MenuCategory is a menu item category with its items.
type MenuCategory struct {
	UUID         string     `json:"uuid"`
	Name         string     `json:"name"`
	SortingIndex int        `json:"sortingIndex"`
	IsFromHQ     bool       `json:"isFromHq"`
	MenuItems    []MenuItem `json:"menuItems"`
}

// Tag is a menu item tag, either standalone or a sub-tag of a group.
type Tag struct {
	UUID         string          `json:"uuid"`
	Name         string          `json:"name"`
	Type         string          `json:"type,omitempty"`
	Enabled      bool            `json:"enabled"`
	Price        decimal.Decimal `json:"price"`
	SortingIndex int             `json:"sortingIndex"`
}

// TagGroup bundles alternative sub-tags.
type TagGroup struct {
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	Enabled      bool   `json:"enabled"`
	SortingIndex int    `json:"sortingIndex"`
	SubTags      []Tag  `json:"subTags"`
}

// TagCatalog is the full tag and tag-group listing.
type TagCatalog struct {
	MenuItemTags []Tag      `json:"menuItemTags"`
	TagGroups    []TagGroup `json:"tagGroups"`
}

// OnlineMenuItem is a delivery-platform projection of a menu item,
// back-referencing its source item via IchefUUID.
type OnlineMenuItem struct {
	UUID            string           `json:"uuid"`
	IchefUUID       string           `json:"ichefUuid"`
	OriginalName    string           `json:"originalName"`
	CustomizedName  string           `json:"customizedName,omitempty"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice,omitempty"`
	MenuItemType    string           `json:"menuItemType,omitempty"`
	PictureFilename string           `json:"pictureFilename,omitempty"`
	SortingIndex    int              `json:"sortingIndex"`
}

// OnlineCategory is a delivery-platform menu category.
type OnlineCategory struct {
	UUID         string           `json:"uuid"`
	Name         string           `json:"name"`
	SortingIndex int              `json:"sortingIndex"`
	MenuItems    []OnlineMenuItem `json:"menuItems"`
}

// SoldOutUpdate flags one item as sold out or back on sale.
type SoldOutUpdate struct {
	UUID      string `json:"uuid"`
	IsSoldOut bool   `json:"isSoldOut"`
}

// SubTagPayload enables or disables one sub-tag in a tag-group
// relationship payload.
type SubTagPayload struct {
	SubTagUUID string `json:"subTagUuid"`
	Enabled    bool   `json:"enabled"`
}

// TagRelationshipPayload attaches a tag or a tag group to an item.
// Exactly one of MenuItemTagUUID and TagGroupUUID must be set.
type TagRelationshipPayload struct {
	FollowingSeparatorCount *int            `json:"followingSeparatorCount,omitempty"`
	MenuItemTagUUID         string          `json:"menuItemTagUuid,omitempty"`
	TagGroupUUID            string          `json:"tagGroupUuid,omitempty"`
	SubTagList              []SubTagPayload `json:"subTagList,omitempty"`
}

// ComboMenuItemPayload is one selectable option in a combo category
// payload. Price is an optional non-negative upcharge; decimals are
// serialized as strings on the wire.
type ComboMenuItemPayload struct {
	UUID         string           `json:"uuid,omitempty"`
	MenuItemUUID string           `json:"menuItemUuid"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

// ComboCategoryPayload creates or replaces one combo selection group.
type ComboCategoryPayload struct {
	UUID                     string                 `json:"uuid,omitempty"`
	Name                     string                 `json:"name"`
	AllowRepeatableSelection bool                   `json:"allowRepeatableSelection"`
	MinimumSelection         int                    `json:"minimumSelection"`
	MaximumSelection         int                    `json:"maximumSelection"`
	ComboMenuItemSortingType SortingType            `json:"comboMenuItemSortingType,omitempty"`
	ComboMenuItems           []ComboMenuItemPayload `json:"comboMenuItems,omitempty"`
}

// CreateMenuItemPayload is the normalized create-item mutation payload.
type CreateMenuItemPayload struct {
	Name                 string           `json:"name"`
	Price                decimal.Decimal  `json:"price"`
	Type                 ItemType         `json:"type"`
	MenuItemCategoryUUID string           `json:"menuItemCategoryUuid"`
	Enabled              bool             `json:"enabled"`
	SortingIndex         *int             `json:"sortingIndex,omitempty"`
	Picture              string           `json:"picture,omitempty"`
	ExternalID           string           `json:"externalId,omitempty"`
	CustomizedTaxEnabled *bool            `json:"customizedTaxEnabled,omitempty"`
	CustomizedTaxType    TaxType          `json:"customizedTaxType,omitempty"`
	CustomizedTaxRate    *decimal.Decimal `json:"customizedTaxRate,omitempty"`

	ItemTagRelationshipList []TagRelationshipPayload `json:"itemTagRelationshipList,omitempty"`
	ComboItemCategories     []ComboCategoryPayload   `json:"comboItemCategories,omitempty"`
}

// UpdateMenuItemPayload is the normalized partial-update payload; only
// set fields are sent upstream.
type UpdateMenuItemPayload struct {
	Name                 *string          `json:"name,omitempty"`
	Price                *decimal.Decimal `json:"price,omitempty"`
	Type                 *ItemType        `json:"type,omitempty"`
	MenuItemCategoryUUID *string          `json:"menuItemCategoryUuid,omitempty"`
	Enabled              *bool            `json:"enabled,omitempty"`
	SortingIndex         *int             `json:"sortingIndex,omitempty"`
	Picture              *string          `json:"picture,omitempty"`
	ExternalID           *string          `json:"externalId,omitempty"`
	CustomizedTaxEnabled *bool            `json:"customizedTaxEnabled,omitempty"`
	CustomizedTaxType    *TaxType         `json:"customizedTaxType,omitempty"`
	CustomizedTaxRate    *decimal.Decimal `json:"customizedTaxRate,omitempty"`

	ItemTagRelationshipList []TagRelationshipPayload `json:"itemTagRelationshipList,omitempty"`
	ComboItemCategories     []ComboCategoryPayload   `json:"comboItemCategories,omitempty"`
}

// IsEmpty reports whether the payload carries no field to update.
func (p *UpdateMenuItemPayload) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Type == nil &&
		p.MenuItemCategoryUUID == nil && p.Enabled == nil &&
		p.SortingIndex == nil && p.Picture == nil && p.ExternalID == nil &&
		p.CustomizedTaxEnabled == nil && p.CustomizedTaxType == nil &&
		p.CustomizedTaxRate == nil && p.ItemTagRelationshipList == nil &&
		p.ComboItemCategories == nil
}

// CreateCategoryPayload creates a menu item category.
type CreateCategoryPayload struct {
	Name         string `json:"name"`
	SortingIndex *int   `json:"sortingIndex,omitempty"`
}

// CreatedMenuItem is the create mutation's echo of the new item.
type CreatedMenuItem struct {
	UUID                string              `json:"uuid"`
	Name                string              `json:"name"`
	Type                ItemType            `json:"type"`
	ComboItemCategories []ComboItemCategory `json:"comboItemCategories,omitempty"`
}
