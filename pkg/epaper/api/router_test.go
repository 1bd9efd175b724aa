package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presslayer/epaper-studio/pkg/epaper"
	memoryrepo "github.com/presslayer/epaper-studio/pkg/epaper/repo/memory"
	memorystorage "github.com/presslayer/epaper-studio/pkg/epaper/storage/memory"
)

var (
	adminToken  = epaper.MintToken("alice@example.com", epaper.RoleAdmin)
	editorToken = epaper.MintToken("bob@example.com", epaper.RoleEditor)
)

type stubTextGenerator struct {
	text string
}

func (g stubTextGenerator) GenerateText(ctx context.Context, prompt string, cfg epaper.GenerationConfig) (string, error) {
	return g.text, nil
}

func setupTestRouter(t *testing.T, extra ...epaper.Option) (http.Handler, epaper.Service) {
	t.Helper()

	options := []epaper.Option{
		epaper.WithRepository(memoryrepo.New()),
		epaper.WithAssetStore(memorystorage.New()),
		epaper.WithEventSink(epaper.NewNoopEventSink()),
	}
	options = append(options, extra...)

	svc, err := epaper.New(options...)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Service:     svc,
		Assets:      memorystorage.New(),
		Environment: "testing",
	})
	return router, svc
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEdition(t *testing.T, rec *httptest.ResponseRecorder) epaper.Edition {
	t.Helper()
	var e epaper.Edition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func createEditionOverHTTP(t *testing.T, handler http.Handler, token string) epaper.Edition {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/editions", token,
		epaper.CreateEditionRequest{Title: "Morning Edition", Language: epaper.LanguageEnglish})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeEdition(t, rec)
}

func TestHealthEndpoint(t *testing.T) {
	handler, _ := setupTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestLoginFlow(t *testing.T) {
	handler, _ := setupTestRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "",
		epaper.LoginRequest{Email: "alice@example.com", Role: epaper.RoleAdmin})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session epaper.EditSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, adminToken, session.Token)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/auth/me", session.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/auth/logout", session.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/auth/me", session.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadRequest(t *testing.T) {
	handler, _ := setupTestRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", "",
		epaper.LoginRequest{Email: "", Role: epaper.RoleAdmin})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireUser(t *testing.T) {
	handler, _ := setupTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/editions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/editions", "not-a-session-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEditionLifecycleOverHTTP(t *testing.T) {
	handler, _ := setupTestRouter(t)

	edition := createEditionOverHTTP(t, handler, adminToken)
	assert.Equal(t, epaper.StatusDraft, edition.Status)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/editions", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []epaper.Edition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	title := "Evening Edition"
	rec = doJSON(t, handler, http.MethodPatch, "/api/v1/editions/"+edition.ID, adminToken,
		epaper.UpdateEditionRequest{Title: &title})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, title, decodeEdition(t, rec).Title)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/editions/"+edition.ID+"/publish", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var published struct {
		Edition epaper.Edition `json:"edition"`
		Message string         `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &published))
	assert.Equal(t, epaper.StatusPublished, published.Edition.Status)
	assert.Contains(t, published.Message, "published!")

	rec = doJSON(t, handler, http.MethodDelete, "/api/v1/editions/"+edition.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/editions/"+edition.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduledPublishOverHTTP(t *testing.T) {
	handler, _ := setupTestRouter(t)
	edition := createEditionOverHTTP(t, handler, editorToken)

	future := time.Now().UTC().Add(24 * time.Hour)
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/editions/"+edition.ID+"/publish", editorToken,
		epaper.PublishEditionRequest{ScheduledPublishDate: &future})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var published struct {
		Edition epaper.Edition `json:"edition"`
		Message string         `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &published))
	assert.Equal(t, epaper.StatusScheduled, published.Edition.Status)
	assert.Contains(t, published.Message, "scheduled for publication")
}

func TestPublishWithChunkedBody(t *testing.T) {
	handler, _ := setupTestRouter(t)
	edition := createEditionOverHTTP(t, handler, editorToken)

	future := time.Now().UTC().Add(24 * time.Hour)
	data, err := json.Marshal(epaper.PublishEditionRequest{ScheduledPublishDate: &future})
	require.NoError(t, err)

	// A bare io.Reader leaves ContentLength at -1, as with chunked transfer
	// encoding. The schedule in the body must still be honored.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/editions/"+edition.ID+"/publish",
		struct{ io.Reader }{bytes.NewReader(data)})
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+editorToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var published struct {
		Edition epaper.Edition `json:"edition"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &published))
	assert.Equal(t, epaper.StatusScheduled, published.Edition.Status)
}

func TestApproveStatusMapping(t *testing.T) {
	handler, _ := setupTestRouter(t)
	edition := createEditionOverHTTP(t, handler, editorToken)

	// Approving a draft conflicts with the workflow.
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/editions/"+edition.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/editions/"+edition.ID+"/publish", editorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Editors may not approve.
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/editions/"+edition.ID+"/approve", editorToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/editions/"+edition.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, epaper.StatusPublished, decodeEdition(t, rec).Status)
}

func TestPageAndBlockRoutes(t *testing.T) {
	handler, _ := setupTestRouter(t)
	edition := createEditionOverHTTP(t, handler, editorToken)
	base := "/api/v1/editions/" + edition.ID

	rec := doJSON(t, handler, http.MethodPost, base+"/pages", editorToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	updated := decodeEdition(t, rec)
	require.Len(t, updated.Pages, 2)
	pageID := updated.Pages[0].ID

	rec = doJSON(t, handler, http.MethodPost, base+"/pages/"+pageID+"/sections", editorToken,
		epaper.AddSectionRequest{Type: "main-news", Title: "Top Stories"})
	require.Equal(t, http.StatusCreated, rec.Code)
	updated = decodeEdition(t, rec)
	sectionID := updated.Pages[0].Sections[0].ID

	rec = doJSON(t, handler, http.MethodPost, base+"/pages/"+pageID+"/sections/"+sectionID+"/blocks", editorToken,
		epaper.AddBlockRequest{Kind: epaper.KindArticle})
	require.Equal(t, http.StatusCreated, rec.Code)
	updated = decodeEdition(t, rec)
	blockID := updated.Pages[0].Sections[0].Blocks[0].BlockID()

	headline := "Monsoon Arrives Early"
	rec = doJSON(t, handler, http.MethodPatch,
		base+"/pages/"+pageID+"/sections/"+sectionID+"/blocks/"+blockID, editorToken,
		epaper.BlockPatch{Headline: &headline})
	require.Equal(t, http.StatusOK, rec.Code)
	article := decodeEdition(t, rec).Pages[0].Sections[0].Blocks[0].(epaper.ArticleBlock)
	assert.Equal(t, headline, article.Headline)

	rec = doJSON(t, handler, http.MethodPost, base+"/pages/"+pageID+"/reorder", editorToken,
		epaper.ReorderPagesRequest{Direction: epaper.MoveDirection("sideways")})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, base+"/pages/missing", editorToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateEndpoints(t *testing.T) {
	handler, svc := setupTestRouter(t, epaper.WithTextGenerator(stubTextGenerator{text: "Flood Waters Recede"}))
	ctx := context.Background()

	edition, err := svc.CreateEdition(ctx, epaper.User{Name: "bob", Role: epaper.RoleEditor},
		epaper.CreateEditionRequest{Title: "Morning Edition"})
	require.NoError(t, err)
	pageID := edition.Pages[0].ID

	withSection, err := svc.AddSection(ctx, edition.ID, pageID, epaper.AddSectionRequest{Type: "main-news", Title: "Top"})
	require.NoError(t, err)
	sectionID := withSection.Pages[0].Sections[0].ID

	withBlock, err := svc.AddBlock(ctx, edition.ID, pageID, sectionID, epaper.KindArticle, epaper.User{Name: "bob"})
	require.NoError(t, err)
	blockID := withBlock.Pages[0].Sections[0].Blocks[0].BlockID()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/generate/headline", editorToken, epaper.GenerateTextRequest{
		EditionID: edition.ID,
		PageID:    pageID,
		SectionID: sectionID,
		BlockID:   blockID,
		Content:   "The river returned to normal levels overnight.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Flood Waters Recede")

	// No image generator is configured.
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/generate/image", editorToken, epaper.GenerateImageRequest{
		EditionID: edition.ID,
		Prompt:    "a cricket stadium",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPlaceholderEndpoint(t *testing.T) {
	handler, _ := setupTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/images/placeholder?width=200&height=100", editorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlaceholderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.DataURL, "data:image/png"))
}

func TestCompressEndpoint(t *testing.T) {
	handler, _ := setupTestRouter(t)

	img := image.NewRGBA(image.Rect(0, 0, 1200, 600))
	for y := 0; y < 600; y++ {
		for x := 0; x < 1200; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(pngBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("maxWidth", "600"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/compress", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+editorToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp CompressImageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.DataURL, "data:image/jpeg"))
	assert.NotEmpty(t, resp.AssetKey)

	// The compressed image is retrievable from the asset store.
	assetRec := doJSON(t, handler, http.MethodGet, "/api/v1/images/assets/"+resp.AssetKey, editorToken, nil)
	assert.Equal(t, http.StatusOK, assetRec.Code)
	assert.Equal(t, "image/jpeg", assetRec.Header().Get("Content-Type"))
}

func TestOptionsEndpoint(t *testing.T) {
	handler, _ := setupTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/options", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SectionTypes)
	assert.NotEmpty(t, resp.TextModels)
	assert.Equal(t, epaper.DefaultGenerationConfig(), resp.DefaultConfig)
}
