package epaper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

func buildEdition(t *testing.T, pages int) epaper.Edition {
	t.Helper()

	e := epaper.NewEdition("Morning Edition", epaper.LanguageEnglish, "Alice", time.Now().UTC())
	for len(e.Pages) < pages {
		e, _ = e.WithPageAdded()
	}
	require.Len(t, e.Pages, pages)
	return e
}

// requirePageNumbersSequential asserts the core page invariant: page numbers
// always equal position+1.
func requirePageNumbersSequential(t *testing.T, e epaper.Edition) {
	t.Helper()
	for i, p := range e.Pages {
		require.Equal(t, i+1, p.PageNumber, "page at index %d", i)
	}
}

func pageIDs(e epaper.Edition) []string {
	ids := make([]string, len(e.Pages))
	for i, p := range e.Pages {
		ids[i] = p.ID
	}
	return ids
}

func TestNewEditionStartsAsDraftWithOnePage(t *testing.T) {
	now := time.Date(2024, 4, 23, 10, 0, 0, 0, time.UTC)
	e := epaper.NewEdition("Morning Edition", epaper.LanguageTelugu, "Alice", now)

	assert.Equal(t, epaper.StatusDraft, e.Status)
	assert.Equal(t, epaper.LanguageTelugu, e.Language)
	assert.Equal(t, "Alice", e.CreatedBy)
	assert.Equal(t, now, e.LastModified)
	require.Len(t, e.Pages, 1)
	assert.Equal(t, 1, e.Pages[0].PageNumber)
	assert.Empty(t, e.Pages[0].Sections)
}

func TestWithPageAddedAppendsAndNumbers(t *testing.T) {
	e := buildEdition(t, 1)

	e2, page := e.WithPageAdded()
	assert.Len(t, e2.Pages, 2)
	assert.Len(t, e.Pages, 1, "receiver must not change")
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, page.ID, e2.Pages[1].ID)
	requirePageNumbersSequential(t, e2)
}

func TestWithPageDeletedRenumbers(t *testing.T) {
	e := buildEdition(t, 3)
	ids := pageIDs(e)

	e2 := e.WithPageDeleted(ids[0])
	require.Len(t, e2.Pages, 2)
	assert.Equal(t, []string{ids[1], ids[2]}, pageIDs(e2))
	requirePageNumbersSequential(t, e2)
}

func TestWithPageDeletedUnknownIDKeepsPages(t *testing.T) {
	e := buildEdition(t, 2)

	e2 := e.WithPageDeleted("missing-id")
	assert.Equal(t, pageIDs(e), pageIDs(e2))
	requirePageNumbersSequential(t, e2)
}

func TestWithPageDuplicatedGeneratesFreshIDs(t *testing.T) {
	e := buildEdition(t, 2)

	// Give the first page content so the copy has sections and blocks.
	sec := epaper.NewSection("sports", "Cricket")
	block := epaper.NewArticleBlock("Alice")
	sec = sec.WithBlockAdded(block)
	e = e.WithSectionAdded(e.Pages[0].ID, sec)

	e2 := e.WithPageDuplicated(e.Pages[0].ID)
	require.Len(t, e2.Pages, 3)
	requirePageNumbersSequential(t, e2)

	src := e2.Pages[0]
	dup := e2.Pages[2]
	assert.NotEqual(t, src.ID, dup.ID)
	require.Len(t, dup.Sections, 1)
	assert.NotEqual(t, src.Sections[0].ID, dup.Sections[0].ID)
	require.Len(t, dup.Sections[0].Blocks, 1)
	assert.NotEqual(t, src.Sections[0].Blocks[0].BlockID(), dup.Sections[0].Blocks[0].BlockID())

	// Content is copied verbatim.
	srcArticle := src.Sections[0].Blocks[0].(epaper.ArticleBlock)
	dupArticle := dup.Sections[0].Blocks[0].(epaper.ArticleBlock)
	assert.Equal(t, srcArticle.Headline, dupArticle.Headline)
	assert.Equal(t, srcArticle.Byline, dupArticle.Byline)
}

func TestWithPagesReordered(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		direction epaper.MoveDirection
		want      []int
	}{
		{name: "move middle up", index: 1, direction: epaper.MoveUp, want: []int{1, 0, 2}},
		{name: "move middle down", index: 1, direction: epaper.MoveDown, want: []int{0, 2, 1}},
		{name: "move first up is a no-op", index: 0, direction: epaper.MoveUp, want: []int{0, 1, 2}},
		{name: "move last down is a no-op", index: 2, direction: epaper.MoveDown, want: []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := buildEdition(t, 3)
			ids := pageIDs(e)

			e2 := e.WithPagesReordered(ids[tt.index], tt.direction)

			want := make([]string, len(tt.want))
			for i, idx := range tt.want {
				want[i] = ids[idx]
			}
			assert.Equal(t, want, pageIDs(e2))
			requirePageNumbersSequential(t, e2)
			assert.Equal(t, ids, pageIDs(e), "receiver must not change")
		})
	}
}

func TestEditionCloneIsDeep(t *testing.T) {
	e := buildEdition(t, 1)
	sec := epaper.NewSection("sports", "Cricket").WithBlockAdded(epaper.NewArticleBlock("Alice"))
	e = e.WithSectionAdded(e.Pages[0].ID, sec)

	clone := e.Clone()
	require.Equal(t, e, clone)

	headline := "mutated"
	clone.Pages[0].Sections[0] = clone.Pages[0].Sections[0].WithBlockUpdated(
		clone.Pages[0].Sections[0].Blocks[0].BlockID(), epaper.BlockPatch{Headline: &headline})

	original := e.Pages[0].Sections[0].Blocks[0].(epaper.ArticleBlock)
	assert.Equal(t, "New Article Headline", original.Headline, "clone mutation must not leak back")
}

func TestWithSectionRemoved(t *testing.T) {
	e := buildEdition(t, 1)
	sec := epaper.NewSection("sports", "Cricket")
	e = e.WithSectionAdded(e.Pages[0].ID, sec)
	require.Len(t, e.Pages[0].Sections, 1)

	e2 := e.WithSectionRemoved(e.Pages[0].ID, sec.ID)
	assert.Empty(t, e2.Pages[0].Sections)
}
