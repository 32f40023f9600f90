package validate

import (
	"fmt"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// SubTagInput enables or disables one sub-tag of a tag-group
// attachment. Enabled is a pointer so an omitted value is rejected
// instead of silently defaulting to false.
type SubTagInput struct {
	SubTagUUID string `json:"subTagUuid" jsonschema:"required,Sub-tag UUID"`
	Enabled    *bool  `json:"enabled" jsonschema:"required,Whether this sub-tag is enabled"`
}

// TagRelationshipInput attaches a tag or a tag group to an item.
type TagRelationshipInput struct {
	FollowingSeparatorCount *int          `json:"followingSeparatorCount,omitempty" jsonschema:"Separator count after this entry"`
	MenuItemTagUUID         string        `json:"menuItemTagUuid,omitempty" jsonschema:"Direct tag UUID (mutually exclusive with tagGroupUuid)"`
	TagGroupUUID            string        `json:"tagGroupUuid,omitempty" jsonschema:"Tag group UUID (mutually exclusive with menuItemTagUuid)"`
	SubTagList              []SubTagInput `json:"subTagList,omitempty" jsonschema:"Sub-tag choices (tag group only)"`
}

// TagRelationships validates tag attachments: each entry references
// exactly one of a direct tag or a tag group, never both, never
// neither.
func TagRelationships(in []TagRelationshipInput, res *Result) []menuapi.TagRelationshipPayload {
	if len(in) == 0 {
		return nil
	}
	out := make([]menuapi.TagRelationshipPayload, 0, len(in))
	for i, rel := range in {
		where := fmt.Sprintf("itemTagRelationshipList[%d]", i)

		hasTag := rel.MenuItemTagUUID != ""
		hasGroup := rel.TagGroupUUID != ""
		switch {
		case hasTag && hasGroup:
			res.errorf("%s must not set both menuItemTagUuid and tagGroupUuid", where)
		case !hasTag && !hasGroup:
			res.errorf("%s must set either menuItemTagUuid or tagGroupUuid", where)
		}

		if hasTag && !IsUUID(rel.MenuItemTagUUID) {
			res.errorf("%s.menuItemTagUuid is not a valid UUID: %s", where, rel.MenuItemTagUUID)
		}
		if hasGroup && !IsUUID(rel.TagGroupUUID) {
			res.errorf("%s.tagGroupUuid is not a valid UUID: %s", where, rel.TagGroupUUID)
		}
		if rel.FollowingSeparatorCount != nil && *rel.FollowingSeparatorCount < 0 {
			res.errorf("%s.followingSeparatorCount must not be negative", where)
		}
		if len(rel.SubTagList) > 0 && !hasGroup {
			res.errorf("%s.subTagList requires tagGroupUuid", where)
		}

		payload := menuapi.TagRelationshipPayload{
			FollowingSeparatorCount: rel.FollowingSeparatorCount,
			MenuItemTagUUID:         rel.MenuItemTagUUID,
			TagGroupUUID:            rel.TagGroupUUID,
		}
		for j, sub := range rel.SubTagList {
			subWhere := fmt.Sprintf("%s.subTagList[%d]", where, j)
			if !IsUUID(sub.SubTagUUID) {
				res.errorf("%s.subTagUuid is not a valid UUID: %s", subWhere, sub.SubTagUUID)
			}
			if sub.Enabled == nil {
				res.errorf("%s.enabled is required", subWhere)
				continue
			}
			payload.SubTagList = append(payload.SubTagList, menuapi.SubTagPayload{
				SubTagUUID: sub.SubTagUUID,
				Enabled:    *sub.Enabled,
			})
		}
		out = append(out, payload)
	}
	return out
}
