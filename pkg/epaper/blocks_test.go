package epaper_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

func TestNewBlockDefaults(t *testing.T) {
	article := epaper.NewArticleBlock("Alice")
	assert.NotEmpty(t, article.ID)
	assert.Equal(t, epaper.KindArticle, article.Type)
	assert.Equal(t, "By Alice", article.Byline)
	assert.Equal(t, epaper.AlignLeft, article.TextAlignment)
	assert.Equal(t, "w-full", article.Width)

	anon := epaper.NewArticleBlock("")
	assert.Equal(t, "By Editor", anon.Byline)

	img := epaper.NewImageBlock()
	assert.Equal(t, epaper.KindImage, img.Type)
	assert.NotEmpty(t, img.ImageURL)

	ad := epaper.NewAdBlock()
	assert.Equal(t, epaper.KindAd, ad.Type)
	assert.NotEmpty(t, ad.AdContent)
}

func TestNewBlockRejectsUnknownKind(t *testing.T) {
	block, err := epaper.NewBlock(epaper.BlockKind("video"), "Alice")
	assert.Nil(t, block)
	assert.ErrorIs(t, err, epaper.ErrInvalidBlockKind)
}

func TestUnmarshalBlockDispatchesOnType(t *testing.T) {
	data := []byte(`{"id":"b1","type":"article","headline":"Hello","byline":"By Alice","width":"w-1/2"}`)

	block, err := epaper.UnmarshalBlock(data)
	require.NoError(t, err)

	article, ok := block.(epaper.ArticleBlock)
	require.True(t, ok)
	assert.Equal(t, "b1", article.ID)
	assert.Equal(t, "Hello", article.Headline)
	assert.Equal(t, "w-1/2", article.Width)
}

func TestUnmarshalBlockUnknownType(t *testing.T) {
	_, err := epaper.UnmarshalBlock([]byte(`{"id":"b1","type":"video"}`))
	assert.ErrorIs(t, err, epaper.ErrInvalidBlockKind)
}

func TestSectionJSONRoundTrip(t *testing.T) {
	sec := epaper.NewSection("main-news", "Top Stories")
	sec = sec.WithBlockAdded(epaper.NewArticleBlock("Alice"))
	sec = sec.WithBlockAdded(epaper.NewImageBlock())
	sec = sec.WithBlockAdded(epaper.NewAdBlock())

	data, err := json.Marshal(sec)
	require.NoError(t, err)

	var decoded epaper.Section
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, sec, decoded)
	require.Len(t, decoded.Blocks, 3)
	assert.IsType(t, epaper.ArticleBlock{}, decoded.Blocks[0])
	assert.IsType(t, epaper.ImageBlock{}, decoded.Blocks[1])
	assert.IsType(t, epaper.AdBlock{}, decoded.Blocks[2])
}

func TestEditionJSONRoundTrip(t *testing.T) {
	e := buildEdition(t, 2)
	sec := epaper.NewSection("sports", "Cricket").WithBlockAdded(epaper.NewArticleBlock("Alice"))
	e = e.WithSectionAdded(e.Pages[0].ID, sec)

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded epaper.Edition
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, e.ID, decoded.ID)
	assert.Equal(t, e.Status, decoded.Status)
	require.Len(t, decoded.Pages, 2)
	require.Len(t, decoded.Pages[0].Sections, 1)
	assert.IsType(t, epaper.ArticleBlock{}, decoded.Pages[0].Sections[0].Blocks[0])
}
