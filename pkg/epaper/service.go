package epaper

import (
	"context"
)

// Service defines the main interface for the e-paper editorial library
type Service interface {
	// Session operations
	Login(ctx context.Context, req LoginRequest) (*EditSession, error)
	Logout(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, token string) (*EditSession, error)
	OpenEdition(ctx context.Context, token, editionID string) (*EditSession, error)
	SelectPage(ctx context.Context, token, pageID string) (*EditSession, error)

	// Edition operations
	CreateEdition(ctx context.Context, user User, req CreateEditionRequest) (*Edition, error)
	GetEdition(ctx context.Context, id string) (*Edition, error)
	ListEditions(ctx context.Context) ([]*Edition, error)
	UpdateEdition(ctx context.Context, id string, req UpdateEditionRequest) (*Edition, error)
	DeleteEdition(ctx context.Context, id string) error

	// Publish workflow
	PublishEdition(ctx context.Context, id string, user User, req PublishEditionRequest) (*Edition, string, error)
	ApproveEdition(ctx context.Context, id string, user User) (*Edition, error)

	// Page operations
	AddPage(ctx context.Context, editionID string) (*Edition, *Page, error)
	DeletePage(ctx context.Context, editionID, pageID string) (*Edition, error)
	DuplicatePage(ctx context.Context, editionID, pageID string) (*Edition, error)
	ReorderPages(ctx context.Context, editionID, pageID string, direction MoveDirection) (*Edition, error)
	SetPageThumbnail(ctx context.Context, editionID, pageID, thumbnail string) (*Edition, error)
	AddUploadedPage(ctx context.Context, editionID, pageImage string) (*Edition, *Page, error)

	// Section operations
	AddSection(ctx context.Context, editionID, pageID string, req AddSectionRequest) (*Edition, error)
	RemoveSection(ctx context.Context, editionID, pageID, sectionID string) (*Edition, error)

	// Block operations
	AddBlock(ctx context.Context, editionID, pageID, sectionID string, kind BlockKind, user User) (*Edition, error)
	UpdateBlock(ctx context.Context, editionID, pageID, sectionID, blockID string, patch BlockPatch) (*Edition, error)
	RemoveBlock(ctx context.Context, editionID, pageID, sectionID, blockID string) (*Edition, error)
	MoveBlock(ctx context.Context, editionID, pageID, sectionID, blockID string, direction MoveDirection) (*Edition, error)

	// Generation operations
	GenerateHeadline(ctx context.Context, req GenerateTextRequest) (*Edition, string, error)
	GenerateSummary(ctx context.Context, req GenerateTextRequest) (*Edition, string, error)
	GenerateBlockImage(ctx context.Context, req GenerateImageRequest) (*Edition, string, error)

	// Export operations
	ExportEditionImages(ctx context.Context, editionID string) ([]string, error)
}
