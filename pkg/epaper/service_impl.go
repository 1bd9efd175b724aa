package epaper

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vincent-petithory/dataurl"

	"github.com/presslayer/epaper-studio/pkg/epaper/imaging"
)

// service implements the Service interface
type service struct {
	repository Repository
	assets     AssetStore
	textGen    TextGenerator
	imageGen   ImageGenerator
	eventSink  EventSink
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*EditSession
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithAssetStore sets the asset store for the service
func WithAssetStore(store AssetStore) Option {
	return func(s *service) {
		s.assets = store
	}
}

// WithTextGenerator sets the text generator for the service
func WithTextGenerator(gen TextGenerator) Option {
	return func(s *service) {
		s.textGen = gen
	}
}

// WithImageGenerator sets the image generator for the service
func WithImageGenerator(gen ImageGenerator) Option {
	return func(s *service) {
		s.imageGen = gen
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// WithClock overrides the service's time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		now:      time.Now,
		sessions: make(map[string]*EditSession),
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

// Session operations

func (s *service) Login(ctx context.Context, req LoginRequest) (*EditSession, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrLoginFailed)
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrLoginFailed, req.Role)
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	session := &EditSession{
		Token: MintToken(email, req.Role),
		User:  User{ID: email, Name: name, Role: req.Role},
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	out := *session
	return &out, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func (s *service) CurrentSession(ctx context.Context, token string) (*EditSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := *session
	return &out, nil
}

func (s *service) OpenEdition(ctx context.Context, token, editionID string) (*EditSession, error) {
	edition, err := s.repository.GetEdition(ctx, editionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.EditionID = edition.ID
	session.PageID = ""
	if len(edition.Pages) > 0 {
		session.PageID = edition.Pages[0].ID
	}
	out := *session
	return &out, nil
}

func (s *service) SelectPage(ctx context.Context, token, pageID string) (*EditSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	var editionID string
	if ok {
		editionID = session.EditionID
	}
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if editionID == "" {
		return nil, fmt.Errorf("%w: no edition open in session", ErrEditionNotFound)
	}

	edition, err := s.repository.GetEdition(ctx, editionID)
	if err != nil {
		return nil, err
	}
	if _, found := edition.Page(pageID); !found {
		return nil, ErrPageNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok = s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.PageID = pageID
	out := *session
	return &out, nil
}

// refreshSessions re-points sessions whose selected page vanished from the
// edition. The first remaining page wins; an empty edition clears the
// selection.
func (s *service) refreshSessions(edition *Edition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		if session.EditionID != edition.ID {
			continue
		}
		if _, ok := edition.Page(session.PageID); ok {
			continue
		}
		session.PageID = ""
		if len(edition.Pages) > 0 {
			session.PageID = edition.Pages[0].ID
		}
	}
}

func (s *service) dropEditionFromSessions(editionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		if session.EditionID == editionID {
			session.EditionID = ""
			session.PageID = ""
		}
	}
}

// Edition operations

func (s *service) CreateEdition(ctx context.Context, user User, req CreateEditionRequest) (*Edition, error) {
	if req.Language != "" && !req.Language.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, req.Language)
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled Edition"
	}

	edition := NewEdition(title, req.Language, user.Name, s.now().UTC())
	if err := s.repository.CreateEdition(ctx, &edition); err != nil {
		return nil, &EditionError{EditionID: edition.ID, Op: "create", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.EditionCreated(ctx, &edition)
	}

	return &edition, nil
}

func (s *service) GetEdition(ctx context.Context, id string) (*Edition, error) {
	return s.repository.GetEdition(ctx, id)
}

func (s *service) ListEditions(ctx context.Context) ([]*Edition, error) {
	return s.repository.ListEditions(ctx)
}

func (s *service) UpdateEdition(ctx context.Context, id string, req UpdateEditionRequest) (*Edition, error) {
	if req.Language != nil && !req.Language.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, *req.Language)
	}
	return s.mutateEdition(ctx, id, "update", func(e Edition) (Edition, error) {
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.Language != nil {
			e.Language = *req.Language
		}
		if req.ClearSchedule {
			e.ScheduledPublishDate = nil
		} else if req.ScheduledPublishDate != nil {
			t := req.ScheduledPublishDate.UTC()
			e.ScheduledPublishDate = &t
		}
		return e, nil
	})
}

func (s *service) DeleteEdition(ctx context.Context, id string) error {
	if _, err := s.repository.GetEdition(ctx, id); err != nil {
		return err
	}
	if err := s.repository.DeleteEdition(ctx, id); err != nil {
		return &EditionError{EditionID: id, Op: "delete", Err: err}
	}

	s.dropEditionFromSessions(id)

	if s.eventSink != nil {
		_ = s.eventSink.EditionDeleted(ctx, id)
	}
	return nil
}

// Publish workflow

func (s *service) PublishEdition(ctx context.Context, id string, user User, req PublishEditionRequest) (*Edition, string, error) {
	var message string
	edition, err := s.mutateEdition(ctx, id, "publish", func(e Edition) (Edition, error) {
		if req.ScheduledPublishDate != nil {
			t := req.ScheduledPublishDate.UTC()
			e.ScheduledPublishDate = &t
		}
		var status EditionStatus
		status, message = DecidePublishOutcome(e, user, s.now().UTC())
		e.Status = status
		return e, nil
	})
	if err != nil {
		return nil, "", err
	}

	if s.eventSink != nil {
		_ = s.eventSink.EditionPublished(ctx, edition)
	}
	return edition, message, nil
}

func (s *service) ApproveEdition(ctx context.Context, id string, user User) (*Edition, error) {
	edition, err := s.mutateEdition(ctx, id, "approve", func(e Edition) (Edition, error) {
		if _, err := canApproveEdition(e.Status, user.Role); err != nil {
			return e, err
		}
		e.Status = StatusPublished
		return e, nil
	})
	if err != nil {
		return nil, err
	}

	if s.eventSink != nil {
		_ = s.eventSink.EditionApproved(ctx, edition)
	}
	return edition, nil
}

// Page operations

func (s *service) AddPage(ctx context.Context, editionID string) (*Edition, *Page, error) {
	var page Page
	edition, err := s.mutateEdition(ctx, editionID, "add_page", func(e Edition) (Edition, error) {
		var out Edition
		out, page = e.WithPageAdded()
		return out, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return edition, &page, nil
}

func (s *service) DeletePage(ctx context.Context, editionID, pageID string) (*Edition, error) {
	return s.mutateEdition(ctx, editionID, "delete_page", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithPageDeleted(pageID), nil
	})
}

func (s *service) DuplicatePage(ctx context.Context, editionID, pageID string) (*Edition, error) {
	return s.mutateEdition(ctx, editionID, "duplicate_page", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithPageDuplicated(pageID), nil
	})
}

func (s *service) ReorderPages(ctx context.Context, editionID, pageID string, direction MoveDirection) (*Edition, error) {
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid move direction %q", direction)
	}
	return s.mutateEdition(ctx, editionID, "reorder_pages", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithPagesReordered(pageID, direction), nil
	})
}

func (s *service) SetPageThumbnail(ctx context.Context, editionID, pageID, thumbnail string) (*Edition, error) {
	edition, err := s.mutateEdition(ctx, editionID, "set_thumbnail", func(e Edition) (Edition, error) {
		page, ok := e.Page(pageID)
		if !ok {
			return e, ErrPageNotFound
		}
		page.Thumbnail = thumbnail
		return e.WithPageUpdated(page), nil
	})
	if err != nil {
		return nil, err
	}

	s.storeDataURL(ctx, fmt.Sprintf("thumbnails/%s/%s", editionID, pageID), thumbnail)
	return edition, nil
}

func (s *service) AddUploadedPage(ctx context.Context, editionID, pageImage string) (*Edition, *Page, error) {
	var page Page
	edition, err := s.mutateEdition(ctx, editionID, "add_uploaded_page", func(e Edition) (Edition, error) {
		var out Edition
		out, page = e.WithPageAdded()
		page.Thumbnail = pageImage
		page.IsUploadedPDFPage = true
		return out.WithPageUpdated(page), nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.storeDataURL(ctx, fmt.Sprintf("uploads/%s/%s", editionID, page.ID), pageImage)
	return edition, &page, nil
}

// storeDataURL persists the payload of a data URL into the asset store.
// Missing store and non-data-URL payloads are skipped silently; asset
// persistence is best effort and never fails the edition mutation.
func (s *service) storeDataURL(ctx context.Context, key, value string) {
	if s.assets == nil || !strings.HasPrefix(value, "data:") {
		return
	}
	du, err := dataurl.DecodeString(value)
	if err != nil {
		return
	}
	_ = s.assets.UploadWithParams(ctx, bytes.NewReader(du.Data), UploadParams{
		Key:      key,
		MimeType: du.ContentType(),
	})
}

// Section operations

func (s *service) AddSection(ctx context.Context, editionID, pageID string, req AddSectionRequest) (*Edition, error) {
	return s.mutateEdition(ctx, editionID, "add_section", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithSectionAdded(pageID, NewSection(req.Type, req.Title)), nil
	})
}

func (s *service) RemoveSection(ctx context.Context, editionID, pageID, sectionID string) (*Edition, error) {
	return s.mutateEdition(ctx, editionID, "remove_section", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithSectionRemoved(pageID, sectionID), nil
	})
}

// Block operations

func (s *service) AddBlock(ctx context.Context, editionID, pageID, sectionID string, kind BlockKind, user User) (*Edition, error) {
	block, err := NewBlock(kind, user.Name)
	if err != nil {
		return nil, err
	}
	return s.mutateEdition(ctx, editionID, "add_block", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithSectionMutated(pageID, sectionID, func(sec Section) Section {
			return sec.WithBlockAdded(block)
		}), nil
	})
}

func (s *service) UpdateBlock(ctx context.Context, editionID, pageID, sectionID, blockID string, patch BlockPatch) (*Edition, error) {
	return s.mutateEdition(ctx, editionID, "update_block", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithSectionMutated(pageID, sectionID, func(sec Section) Section {
			return sec.WithBlockUpdated(blockID, patch)
		}), nil
	})
}

func (s *service) RemoveBlock(ctx context.Context, editionID, pageID, sectionID, blockID string) (*Edition, error) {
	return s.mutateEdition(ctx, editionID, "remove_block", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithSectionMutated(pageID, sectionID, func(sec Section) Section {
			return sec.WithBlockRemoved(blockID)
		}), nil
	})
}

func (s *service) MoveBlock(ctx context.Context, editionID, pageID, sectionID, blockID string, direction MoveDirection) (*Edition, error) {
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid move direction %q", direction)
	}
	return s.mutateEdition(ctx, editionID, "move_block", func(e Edition) (Edition, error) {
		if _, ok := e.Page(pageID); !ok {
			return e, ErrPageNotFound
		}
		return e.WithSectionMutated(pageID, sectionID, func(sec Section) Section {
			return sec.WithBlockMoved(blockID, direction)
		}), nil
	})
}

// Generation operations

func (s *service) GenerateHeadline(ctx context.Context, req GenerateTextRequest) (*Edition, string, error) {
	return s.generateText(ctx, req, "generate_headline", HeadlinePrompt, "Generated Headline",
		func(text string) BlockPatch { return BlockPatch{Headline: &text} })
}

func (s *service) GenerateSummary(ctx context.Context, req GenerateTextRequest) (*Edition, string, error) {
	return s.generateText(ctx, req, "generate_summary", SummaryPrompt, "Generated Summary",
		func(text string) BlockPatch { return BlockPatch{Content: &text} })
}

func (s *service) generateText(ctx context.Context, req GenerateTextRequest, op string,
	buildPrompt func(Language, string) string, fallback string,
	buildPatch func(string) BlockPatch) (*Edition, string, error) {

	if s.textGen == nil {
		return nil, "", ErrNoGenerator
	}
	edition, err := s.repository.GetEdition(ctx, req.EditionID)
	if err != nil {
		return nil, "", err
	}

	cfg := DefaultGenerationConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	text, err := s.textGen.GenerateText(ctx, buildPrompt(edition.Language, req.Content), cfg)
	if err != nil {
		return nil, "", &EditionError{EditionID: req.EditionID, Op: op, Err: fmt.Errorf("%w: %v", ErrGenerationFailed, err)}
	}
	if text == "" {
		text = fallback
	}

	updated, err := s.UpdateBlock(ctx, req.EditionID, req.PageID, req.SectionID, req.BlockID, buildPatch(text))
	if err != nil {
		return nil, "", err
	}
	return updated, text, nil
}

func (s *service) GenerateBlockImage(ctx context.Context, req GenerateImageRequest) (*Edition, string, error) {
	if s.imageGen == nil {
		return nil, "", ErrNoGenerator
	}
	edition, err := s.repository.GetEdition(ctx, req.EditionID)
	if err != nil {
		return nil, "", err
	}

	cfg := DefaultGenerationConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	imageURL, err := s.imageGen.GenerateImage(ctx, ImagePrompt(edition.Language, req.Prompt), cfg)
	if err != nil {
		return nil, "", &EditionError{EditionID: req.EditionID, Op: "generate_image", Err: fmt.Errorf("%w: %v", ErrGenerationFailed, err)}
	}
	if imageURL == "" {
		// The model produced no image part. Leave the edition untouched.
		return edition, "", nil
	}

	patch := BlockPatch{ImageURL: &imageURL, ArticleImageURL: &imageURL}
	updated, err := s.UpdateBlock(ctx, req.EditionID, req.PageID, req.SectionID, req.BlockID, patch)
	if err != nil {
		return nil, "", err
	}

	s.storeDataURL(ctx, fmt.Sprintf("generated/%s/%s", req.EditionID, uuid.New().String()), imageURL)
	return updated, imageURL, nil
}

// Export operations

func (s *service) ExportEditionImages(ctx context.Context, editionID string) ([]string, error) {
	if s.assets == nil {
		return nil, ErrNoAssetStore
	}
	edition, err := s.repository.GetEdition(ctx, editionID)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, page := range edition.Pages {
		render := page.Thumbnail
		if !strings.HasPrefix(render, "data:") {
			// Pages without a captured thumbnail export as a labeled
			// placeholder render.
			render, err = imaging.Placeholder(1920, 1080, fmt.Sprintf("Page %d", page.PageNumber))
			if err != nil {
				return nil, &EditionError{EditionID: editionID, Op: "export_images", Err: err}
			}
		}
		du, err := dataurl.DecodeString(render)
		if err != nil {
			continue
		}
		key := fmt.Sprintf("exports/%s/page-%d", editionID, page.PageNumber)
		if err := s.assets.UploadWithParams(ctx, bytes.NewReader(du.Data), UploadParams{
			Key:      key,
			MimeType: du.ContentType(),
		}); err != nil {
			return nil, &EditionError{EditionID: editionID, Op: "export_images", Err: err}
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// mutateEdition loads an edition, applies fn to a deep copy, stamps
// LastModified and writes the result back. Sessions pointing at pages that
// the mutation removed are re-pointed afterward.
func (s *service) mutateEdition(ctx context.Context, id, op string, fn func(Edition) (Edition, error)) (*Edition, error) {
	current, err := s.repository.GetEdition(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := fn(current.Clone())
	if err != nil {
		return nil, &EditionError{EditionID: id, Op: op, Err: err}
	}
	next.LastModified = s.now().UTC()

	if err := s.repository.UpdateEdition(ctx, &next); err != nil {
		return nil, &EditionError{EditionID: id, Op: op, Err: err}
	}

	s.refreshSessions(&next)

	if s.eventSink != nil {
		_ = s.eventSink.EditionUpdated(ctx, &next)
	}
	return &next, nil
}
