package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/models"
)

func titledColumn(titles ...string) *models.Column {
	col := &models.Column{ID: "A", Name: "A"}
	for i, title := range titles {
		col.Items = append(col.Items, &models.Item{ID: string(rune('a' + i)), Title: title})
	}
	return col
}

func entryTitles(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Item.Title
	}
	return out
}

func TestFilterColumn_MatchesCaseInsensitively(t *testing.T) {
	col := titledColumn("Maria Souza", "João Lima", "Ana Maria", "Pedro")

	entries := FilterColumn(col, "MARIA")

	assert.Equal(t, []string{"Maria Souza", "Ana Maria"}, entryTitles(entries))
	assert.Equal(t, 0, entries[0].Index)
	assert.Equal(t, 2, entries[1].Index, "entries carry the stored index")
}

func TestFilterColumn_NeverChangesStoredOrder(t *testing.T) {
	col := titledColumn("Zeca", "Ana", "Bruno", "Alice")
	before := col.Clone()

	_ = FilterColumn(col, "a")
	_ = FilterColumn(col, "nothing matches")

	if diff := cmp.Diff(before, col); diff != "" {
		t.Errorf("column changed (-before +after):\n%s", diff)
	}
}

func TestFilterColumn_ClearingRestoresFullList(t *testing.T) {
	col := titledColumn("Zeca", "Ana", "Bruno")

	filtered := FilterColumn(col, "bru")
	require.Len(t, filtered, 1)

	for _, term := range []string{"", "   "} {
		all := FilterColumn(col, term)
		assert.Equal(t, []string{"Zeca", "Ana", "Bruno"}, entryTitles(all))
		for i, e := range all {
			assert.Equal(t, i, e.Index)
		}
	}
}

func TestFilterColumn_NilColumn(t *testing.T) {
	assert.Nil(t, FilterColumn(nil, "x"))
}
