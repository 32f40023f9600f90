package validate

import (
	"fmt"
	"strings"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// Batch size caps, matching the upstream's per-mutation limits.
const (
	MaxSoldOutItems  = 50
	MaxImportItems   = 50
	MaxBatchDeletion = 50
)

// SoldOutInput flags one item as sold out or back on sale.
type SoldOutInput struct {
	UUID      string `json:"uuid" jsonschema:"required,Menu item UUID"`
	IsSoldOut *bool  `json:"isSoldOut" jsonschema:"required,true to mark sold out; false to resume sale"`
}

// SoldOutBatch validates a sold-out update batch and produces the
// normalized mutation input in the original order.
func SoldOutBatch(in []SoldOutInput) ([]menuapi.SoldOutUpdate, *Result) {
	res := newResult()
	if len(in) == 0 {
		res.errorf("items must contain at least one entry")
		return nil, res
	}
	if len(in) > MaxSoldOutItems {
		res.errorf("items must not contain more than %d entries", MaxSoldOutItems)
	}

	seen := make(map[string]bool, len(in))
	out := make([]menuapi.SoldOutUpdate, 0, len(in))
	for i, item := range in {
		where := fmt.Sprintf("items[%d]", i)
		if !IsUUID(item.UUID) {
			res.errorf("%s.uuid is not a valid UUID: %s", where, item.UUID)
			continue
		}
		key := lowerASCII(item.UUID)
		if seen[key] {
			res.errorf("items contains duplicate UUID: %s", item.UUID)
			continue
		}
		seen[key] = true
		if item.IsSoldOut == nil {
			res.errorf("%s.isSoldOut is required", where)
			continue
		}
		out = append(out, menuapi.SoldOutUpdate{UUID: item.UUID, IsSoldOut: *item.IsSoldOut})
	}
	return out, res
}

// CreateCategory validates a new menu category.
func CreateCategory(name string, sortingIndex *int) (menuapi.CreateCategoryPayload, *Result) {
	res := newResult()
	var payload menuapi.CreateCategoryPayload

	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		res.errorf("name is required and must be non-empty")
	case len(trimmed) > maxNameLength:
		res.errorf("name must not exceed %d characters", maxNameLength)
	}
	payload.Name = trimmed

	if sortingIndex != nil {
		if *sortingIndex < 0 {
			res.errorf("sortingIndex must not be negative")
		}
		payload.SortingIndex = sortingIndex
	}
	return payload, res
}
