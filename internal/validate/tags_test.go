package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tagUUID    = "44444444-4444-4444-4444-444444444444"
	groupUUID  = "55555555-5555-5555-5555-555555555555"
	subTagUUID = "66666666-6666-6666-6666-666666666666"
)

func TestTagRelationships_ExactlyOneReference(t *testing.T) {
	res := newResult()
	TagRelationships([]TagRelationshipInput{
		{MenuItemTagUUID: tagUUID, TagGroupUUID: groupUUID},
	}, res)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors[0], "must not set both menuItemTagUuid and tagGroupUuid")

	res = newResult()
	TagRelationships([]TagRelationshipInput{{}}, res)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors[0], "must set either menuItemTagUuid or tagGroupUuid")
}

func TestTagRelationships_DirectTag(t *testing.T) {
	sep := 2
	res := newResult()
	out := TagRelationships([]TagRelationshipInput{
		{MenuItemTagUUID: tagUUID, FollowingSeparatorCount: &sep},
	}, res)
	require.True(t, res.Valid, "errors: %v", res.Errors)
	require.Len(t, out, 1)
	assert.Equal(t, tagUUID, out[0].MenuItemTagUUID)
	assert.Empty(t, out[0].TagGroupUUID)
	require.NotNil(t, out[0].FollowingSeparatorCount)
	assert.Equal(t, 2, *out[0].FollowingSeparatorCount)
}

func TestTagRelationships_TagGroupWithSubTags(t *testing.T) {
	on := true
	res := newResult()
	out := TagRelationships([]TagRelationshipInput{{
		TagGroupUUID: groupUUID,
		SubTagList:   []SubTagInput{{SubTagUUID: subTagUUID, Enabled: &on}},
	}}, res)
	require.True(t, res.Valid, "errors: %v", res.Errors)
	require.Len(t, out[0].SubTagList, 1)
	assert.Equal(t, subTagUUID, out[0].SubTagList[0].SubTagUUID)
	assert.True(t, out[0].SubTagList[0].Enabled)
}

func TestTagRelationships_SubTagRules(t *testing.T) {
	on := true

	// Sub-tags only make sense on a tag-group attachment.
	res := newResult()
	TagRelationships([]TagRelationshipInput{{
		MenuItemTagUUID: tagUUID,
		SubTagList:      []SubTagInput{{SubTagUUID: subTagUUID, Enabled: &on}},
	}}, res)
	assert.False(t, res.Valid)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "subTagList requires tagGroupUuid")

	// An omitted enabled flag is an error, not an implicit false.
	res = newResult()
	TagRelationships([]TagRelationshipInput{{
		TagGroupUUID: groupUUID,
		SubTagList:   []SubTagInput{{SubTagUUID: subTagUUID}},
	}}, res)
	assert.False(t, res.Valid)
	assert.Contains(t, strings.Join(res.Errors, "\n"), "subTagList[0].enabled is required")
}

func TestTagRelationships_BadUUIDsCarryIndex(t *testing.T) {
	neg := -1
	res := newResult()
	TagRelationships([]TagRelationshipInput{
		{MenuItemTagUUID: tagUUID},
		{TagGroupUUID: "bogus", FollowingSeparatorCount: &neg},
	}, res)
	assert.False(t, res.Valid)
	joined := strings.Join(res.Errors, "\n")
	assert.Contains(t, joined, "itemTagRelationshipList[1].tagGroupUuid is not a valid UUID")
	assert.Contains(t, joined, "itemTagRelationshipList[1].followingSeparatorCount must not be negative")
}
