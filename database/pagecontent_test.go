package database_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"edusphere/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, database.InitPageContent(path))
	return path
}

func TestInitPageContentSeedsDefaults(t *testing.T) {
	path := initStore(t)

	doc, err := database.PageContent.GetAll()
	require.NoError(t, err)

	for _, page := range []string{"home", "about", "contact", "features", "testimonials"} {
		require.Contains(t, doc, page)
		assert.NotEmpty(t, doc[page]["title"])
		assert.NotEmpty(t, doc[page]["description"])
	}

	// Seed must land on disk, not just in memory.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, doc, onDisk)
}

func TestInitPageContentKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"home":{"title":"Custom"}}`), 0644))

	require.NoError(t, database.InitPageContent(path))

	doc, err := database.PageContent.GetAll()
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "Custom", doc["home"]["title"])
}

func TestPageContentUpdateMerges(t *testing.T) {
	initStore(t)

	updated, err := database.PageContent.Update("home", map[string]interface{}{
		"title": "New Title",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated["title"])
	// Untouched keys survive the merge.
	assert.NotEmpty(t, updated["description"])
	assert.NotEmpty(t, updated["image"])

	doc, err := database.PageContent.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "New Title", doc["home"]["title"])
}

func TestPageContentUpdateUnknownPage(t *testing.T) {
	initStore(t)

	_, err := database.PageContent.Update("pricing", map[string]interface{}{"title": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid page")
}

func TestPageContentNestedValuesReplaceWholesale(t *testing.T) {
	initStore(t)

	items := []interface{}{
		map[string]interface{}{"quote": "Great platform", "author": "Jane"},
	}
	updated, err := database.PageContent.Update("testimonials", map[string]interface{}{
		"items": items,
	})
	require.NoError(t, err)
	assert.Equal(t, items, updated["items"])

	replacement := []interface{}{
		map[string]interface{}{"quote": "Even better now", "author": "Sam"},
	}
	updated, err = database.PageContent.Update("testimonials", map[string]interface{}{
		"items": replacement,
	})
	require.NoError(t, err)
	assert.Equal(t, replacement, updated["items"])
}
