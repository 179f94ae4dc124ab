package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_InverseLaw(t *testing.T) {
	states := []State{
		{
			Keyword:     "한옥",
			RegionCode:  "31",
			CategoryIDs: []string{"12", "39"},
			PetFriendly: true,
			PetSize:     PetSizeSmall,
			SortOrder:   SortName,
			Page:        4,
		},
		{
			RegionCode: "1",
			SortOrder:  SortLatest,
			Page:       1,
		},
		{
			Keyword:     "시장",
			CategoryIDs: []string{"38"},
			SortOrder:   SortLatest,
			Page:        2,
		},
	}

	for _, state := range states {
		encoded := state.Encode()
		values, err := url.ParseQuery(encoded)
		require.NoError(t, err)

		parsed := Parse(values)
		assert.Equal(t, state, parsed, "round-trip mismatch for %q", encoded)
	}
}

func TestCodec_DefaultsProduceEmptyString(t *testing.T) {
	state := State{SortOrder: SortLatest, Page: 1}
	assert.Equal(t, "", state.Encode())
}

func TestCodec_DefaultsFilledOnParse(t *testing.T) {
	state := Parse(url.Values{})
	assert.Equal(t, SortLatest, state.SortOrder)
	assert.Equal(t, 1, state.Page)
	assert.Empty(t, state.CategoryIDs)
}

func TestCodec_PageClampedToOne(t *testing.T) {
	for _, raw := range []string{"0", "-3", "abc", ""} {
		values := url.Values{}
		if raw != "" {
			values.Set("page", raw)
		}
		state := Parse(values)
		assert.Equal(t, 1, state.Page, "page=%q", raw)
	}
}

func TestCodec_CategoriesCommaJoined(t *testing.T) {
	state := State{CategoryIDs: []string{"12", "14", "39"}, SortOrder: SortLatest, Page: 1}
	encoded := state.Encode()
	assert.Equal(t, "categories=12%2C14%2C39", encoded)

	values, err := url.ParseQuery(encoded)
	require.NoError(t, err)
	parsed := Parse(values)
	assert.Equal(t, []string{"12", "14", "39"}, parsed.CategoryIDs)
}

func TestCodec_PetSizeIgnoredWithoutPetFlag(t *testing.T) {
	values := url.Values{}
	values.Set("petSize", "small")

	state := Parse(values)
	assert.False(t, state.PetFriendly)
	assert.Empty(t, state.PetSize)
}

func TestCodec_Arrange(t *testing.T) {
	assert.Equal(t, "C", State{SortOrder: SortLatest}.Arrange())
	assert.Equal(t, "A", State{SortOrder: SortName}.Arrange())
}
