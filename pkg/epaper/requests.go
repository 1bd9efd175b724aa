package epaper

import "time"

// Request DTOs

// LoginRequest contains the credentials for the mock sign-in flow.
type LoginRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CreateEditionRequest contains parameters for creating a new edition
type CreateEditionRequest struct {
	Title    string   `json:"title"`
	Language Language `json:"language"`
}

// UpdateEditionRequest contains the edition-level fields that can be changed
// directly. Nil pointers leave the field alone; ClearSchedule drops the
// scheduled date entirely.
type UpdateEditionRequest struct {
	Title                *string    `json:"title,omitempty"`
	Language             *Language  `json:"language,omitempty"`
	ScheduledPublishDate *time.Time `json:"scheduledPublishDate,omitempty"`
	ClearSchedule        bool       `json:"clearSchedule,omitempty"`
}

// AddSectionRequest contains parameters for adding a section to a page
type AddSectionRequest struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

// AddBlockRequest contains parameters for adding a block to a section
type AddBlockRequest struct {
	Kind BlockKind `json:"kind"`
}

// MoveBlockRequest contains parameters for moving a block within its section
type MoveBlockRequest struct {
	Direction MoveDirection `json:"direction"`
}

// ReorderPagesRequest contains parameters for moving a page within an edition
type ReorderPagesRequest struct {
	Direction MoveDirection `json:"direction"`
}

// PublishEditionRequest carries the optional schedule set at publish time.
type PublishEditionRequest struct {
	ScheduledPublishDate *time.Time `json:"scheduledPublishDate,omitempty"`
}

// GenerateTextRequest contains parameters for AI text generation against a
// specific article block.
type GenerateTextRequest struct {
	EditionID string            `json:"editionId"`
	PageID    string            `json:"pageId"`
	SectionID string            `json:"sectionId"`
	BlockID   string            `json:"blockId"`
	Content   string            `json:"content"`
	Config    *GenerationConfig `json:"config,omitempty"`
}

// GenerateImageRequest contains parameters for AI image generation against a
// specific block.
type GenerateImageRequest struct {
	EditionID string            `json:"editionId"`
	PageID    string            `json:"pageId"`
	SectionID string            `json:"sectionId"`
	BlockID   string            `json:"blockId"`
	Prompt    string            `json:"prompt"`
	Config    *GenerationConfig `json:"config,omitempty"`
}
