package epaper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

func buildSection(t *testing.T) (epaper.Section, []string) {
	t.Helper()

	sec := epaper.NewSection("main-news", "Top Stories")
	blocks := []epaper.Block{
		epaper.NewArticleBlock("Alice"),
		epaper.NewImageBlock(),
		epaper.NewAdBlock(),
	}
	var ids []string
	for _, b := range blocks {
		sec = sec.WithBlockAdded(b)
		ids = append(ids, b.BlockID())
	}
	require.Len(t, sec.Blocks, 3)
	return sec, ids
}

func blockIDs(sec epaper.Section) []string {
	ids := make([]string, len(sec.Blocks))
	for i, b := range sec.Blocks {
		ids[i] = b.BlockID()
	}
	return ids
}

func TestSectionAddRemoveRoundTrip(t *testing.T) {
	sec, ids := buildSection(t)

	extra := epaper.NewImageBlock()
	added := sec.WithBlockAdded(extra)
	assert.Len(t, added.Blocks, 4)
	assert.Len(t, sec.Blocks, 3, "receiver must not change")

	removed := added.WithBlockRemoved(extra.BlockID())
	assert.Equal(t, sec, removed, "add then remove restores the original value")
	assert.Equal(t, ids, blockIDs(removed))
}

func TestSectionUpdateBlock(t *testing.T) {
	sec, ids := buildSection(t)

	headline := "Breaking: Monsoon Arrives Early"
	width := "w-1/2"
	updated := sec.WithBlockUpdated(ids[0], epaper.BlockPatch{
		Headline: &headline,
		Width:    &width,
	})

	article, ok := updated.Blocks[0].(epaper.ArticleBlock)
	require.True(t, ok)
	assert.Equal(t, headline, article.Headline)
	assert.Equal(t, width, article.Width)
	assert.Equal(t, ids[0], article.ID, "patch must not change the ID")
	assert.Equal(t, epaper.KindArticle, article.Type, "patch must not change the kind")

	// The original section is untouched.
	original, ok := sec.Blocks[0].(epaper.ArticleBlock)
	require.True(t, ok)
	assert.Equal(t, "New Article Headline", original.Headline)
}

func TestSectionUpdateBlockIgnoresForeignFields(t *testing.T) {
	sec, ids := buildSection(t)

	caption := "should not land on an article"
	updated := sec.WithBlockUpdated(ids[0], epaper.BlockPatch{Caption: &caption})

	article, ok := updated.Blocks[0].(epaper.ArticleBlock)
	require.True(t, ok)
	assert.Equal(t, sec.Blocks[0], epaper.Block(article), "image fields are ignored on article blocks")
}

func TestSectionUpdateUnknownBlockIsNoop(t *testing.T) {
	sec, _ := buildSection(t)

	headline := "nobody home"
	updated := sec.WithBlockUpdated("missing-id", epaper.BlockPatch{Headline: &headline})
	assert.Equal(t, sec, updated)
}

func TestSectionMoveBlock(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		direction epaper.MoveDirection
		want      []int // expected permutation of original indexes
	}{
		{name: "move middle up", index: 1, direction: epaper.MoveUp, want: []int{1, 0, 2}},
		{name: "move middle down", index: 1, direction: epaper.MoveDown, want: []int{0, 2, 1}},
		{name: "move first up is a no-op", index: 0, direction: epaper.MoveUp, want: []int{0, 1, 2}},
		{name: "move last down is a no-op", index: 2, direction: epaper.MoveDown, want: []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, ids := buildSection(t)

			moved := sec.WithBlockMoved(ids[tt.index], tt.direction)

			want := make([]string, len(tt.want))
			for i, idx := range tt.want {
				want[i] = ids[idx]
			}
			assert.Equal(t, want, blockIDs(moved))
			assert.Equal(t, ids, blockIDs(sec), "receiver must not change")
		})
	}
}

func TestSectionMoveUnknownBlockIsNoop(t *testing.T) {
	sec, _ := buildSection(t)

	moved := sec.WithBlockMoved("missing-id", epaper.MoveDown)
	assert.Equal(t, sec, moved)
}

func TestSectionRemoveUnknownBlockIsNoop(t *testing.T) {
	sec, ids := buildSection(t)

	removed := sec.WithBlockRemoved("missing-id")
	assert.Equal(t, ids, blockIDs(removed))
}
