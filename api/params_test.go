package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvValues(t *testing.T) {
	values := url.Values{"category": {"Frontend, Backend", "Tools", " , "}}
	assert.Equal(t, []string{"Frontend", "Backend", "Tools"}, csvValues(values, "category"))
	assert.Nil(t, csvValues(values, "missing"))
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"React", "Node.js"}, uniqueStrings([]string{"React", "Node.js", "React"}))
	assert.Nil(t, uniqueStrings(nil))
}

func TestIntParam(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"abc"}}
	assert.Equal(t, 3, intParam(values, "page", 1))
	assert.Equal(t, 6, intParam(values, "limit", 6))
	assert.Equal(t, 1, intParam(values, "missing", 1))
}

func TestYearParams(t *testing.T) {
	values := url.Values{"year": {"2023,2024", "banana", "99"}}
	assert.Equal(t, []int{2023, 2024}, yearParams(values))
}

func TestFeaturedParam(t *testing.T) {
	assert.Nil(t, featuredParam(url.Values{}))
	assert.Nil(t, featuredParam(url.Values{"featured": {"maybe"}}))

	got := featuredParam(url.Values{"featured": {"true"}})
	require.NotNil(t, got)
	assert.True(t, *got)

	got = featuredParam(url.Values{"favoritesOrFeatured": {"Sí"}})
	require.NotNil(t, got)
	assert.True(t, *got)

	got = featuredParam(url.Values{"favoritesOrFeatured": {"No"}})
	require.NotNil(t, got)
	assert.False(t, *got)
}

func TestSortParam_PrefersSortOverOrderBy(t *testing.T) {
	values := url.Values{"sort": {"name_asc"}, "orderBy": {"oldest"}}
	assert.Equal(t, "name_asc", sortParam(values))
	assert.Equal(t, "oldest", sortParam(url.Values{"orderBy": {"oldest"}}))
	assert.Equal(t, "", sortParam(url.Values{}))
}
