// Package deletecheck decides whether a menu item can be deleted
// without breaking combo structures or published delivery listings.
// The check is a pure scan over upstream state fetched by the caller;
// it issues no network calls of its own.
package deletecheck

import (
	"fmt"
	"strings"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// Severity ranks how a block was triggered. Both severities stop the
// delete; the distinction only matters for messaging.
type Severity string

const (
	// HardBlock marks structural conflicts the user must resolve by
	// editing the combo or unpublishing the item.
	HardBlock Severity = "HARD_BLOCK"
	// SoftBlock marks selection-count conflicts that editing the
	// category's minimum would also resolve.
	SoftBlock Severity = "SOFT_BLOCK"
)

// Block is one reason the delete cannot proceed.
type Block struct {
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason"`

	// Combo context, empty for channel blocks.
	ComboItemUUID string `json:"comboItemUuid,omitempty"`
	ComboItemName string `json:"comboItemName,omitempty"`
	CategoryUUID  string `json:"categoryUuid,omitempty"`
	CategoryName  string `json:"categoryName,omitempty"`

	// Channel context, empty for combo blocks.
	Channel string `json:"channel,omitempty"`
}

// Report is the full outcome of a safe-delete check. Every block found
// is collected; the first match never short-circuits the scan.
type Report struct {
	TargetUUID string   `json:"targetUuid"`
	Blocks     []Block  `json:"blocks,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Blocked reports whether any block of either severity was found.
func (r *Report) Blocked() bool {
	return len(r.Blocks) > 0
}

// Unverified builds the report used when the dependency scan itself
// failed. The delete is allowed to proceed, with a warning recommending
// manual verification.
func Unverified(targetUUID string, err error) *Report {
	return &Report{
		TargetUUID: targetUUID,
		Warnings: []string{
			fmt.Sprintf("dependency check could not be completed (%v); verify combo usage and delivery listings manually before relying on this delete", err),
		},
	}
}

// Check scans the item's delivery-channel listings and the full
// category tree for references that make deleting the item unsafe.
// The target item's own combo structure is not a conflict; only other
// items' combo categories referencing it count.
func Check(target *menuapi.MenuItem, categories []menuapi.MenuCategory) *Report {
	report := &Report{TargetUUID: target.UUID}

	for _, listing := range target.ChannelListings() {
		report.Blocks = append(report.Blocks, Block{
			Severity: HardBlock,
			Channel:  listing.Channel,
			Reason:   fmt.Sprintf("published on %s; unpublish it from the delivery channel first", listing.Channel),
		})
	}

	for _, category := range categories {
		for _, item := range category.MenuItems {
			if item.Type != menuapi.ItemTypeCombo || strings.EqualFold(item.UUID, target.UUID) {
				continue
			}
			for _, comboCat := range item.ComboItemCategories {
				if block, found := classify(target.UUID, &item, &comboCat); found {
					report.Blocks = append(report.Blocks, block)
				}
			}
		}
	}
	return report
}

// classify tests one combo category for a reference to the target and
// ranks the impact of removing it.
func classify(targetUUID string, owner *menuapi.MenuItem, category *menuapi.ComboItemCategory) (Block, bool) {
	referenced := false
	for _, option := range category.ComboMenuItems {
		if strings.EqualFold(option.MenuItemUUID, targetUUID) {
			referenced = true
			break
		}
	}
	if !referenced {
		return Block{}, false
	}

	count := len(category.ComboMenuItems)
	minimum := category.EffectiveMinimum()

	switch {
	case count == 1 && minimum >= 1:
		return Block{
			Severity:      HardBlock,
			ComboItemUUID: owner.UUID,
			ComboItemName: owner.Name,
			CategoryUUID:  category.UUID,
			CategoryName:  category.Name,
			Reason: fmt.Sprintf("sole required option in category %q of combo %q",
				category.Name, owner.Name),
		}, true
	case count-1 < minimum:
		return Block{
			Severity:      SoftBlock,
			ComboItemUUID: owner.UUID,
			ComboItemName: owner.Name,
			CategoryUUID:  category.UUID,
			CategoryName:  category.Name,
			Reason: fmt.Sprintf("removing it would leave %d options in category %q of combo %q, below the minimum selection of %d",
				count-1, category.Name, owner.Name, minimum),
		}, true
	}
	return Block{}, false
}
