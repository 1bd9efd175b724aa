package epaper

import (
	"time"
)

// EditionStatus is the domain type for edition lifecycle states.
type EditionStatus string

// Edition status constants (typed).
const (
	StatusDraft           EditionStatus = "Draft"
	StatusPendingApproval EditionStatus = "Pending Approval"
	StatusPublished       EditionStatus = "Published"
	StatusScheduled       EditionStatus = "Scheduled"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s EditionStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusPublished, StatusScheduled:
		return true
	default:
		return false
	}
}

// Language is a supported publication language code.
type Language string

// Publication language constants.
const (
	LanguageEnglish Language = "en"
	LanguageTelugu  Language = "te"
	LanguageHindi   Language = "hi"
)

// IsValid reports whether the language is supported.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageTelugu, LanguageHindi:
		return true
	default:
		return false
	}
}

// DisplayName returns the English name of the language, used when building
// generation prompts.
func (l Language) DisplayName() string {
	switch l {
	case LanguageTelugu:
		return "Telugu"
	case LanguageHindi:
		return "Hindi"
	default:
		return "English"
	}
}

// Role is the access level of a user.
type Role string

// User role constants.
const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
)

// IsValid reports whether the role is known.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User identifies an acting editor or administrator. Identity is
// trust-on-assertion for the lifetime of a session; there are no verified
// credentials behind it.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// MoveDirection selects which neighbor a page or block is moved toward.
type MoveDirection string

// Move direction constants.
const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// IsValid reports whether the direction is "up" or "down".
func (d MoveDirection) IsValid() bool {
	return d == MoveUp || d == MoveDown
}

// Section is a titled, typed grouping of blocks within a page. Block order is
// display order; only block IDs are unique within a section.
type Section struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Page is one page of an edition. PageNumber is assigned by position in the
// owning edition's page list (1-based) and is recomputed after every
// structural change; it is never authoritative on its own.
type Page struct {
	ID                string    `json:"id"`
	PageNumber        int       `json:"pageNumber"`
	Sections          []Section `json:"sections"`
	Thumbnail         string    `json:"thumbnail,omitempty"`
	IsUploadedPDFPage bool      `json:"isUploadedPdfPage,omitempty"`
}

// Edition is a named publication instance composed of ordered pages, the
// top-level unit of the publish workflow.
type Edition struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Pages                []Page        `json:"pages"`
	Language             Language      `json:"language"`
	ScheduledPublishDate *time.Time    `json:"scheduledPublishDate"`
	Status               EditionStatus `json:"status"`
	CreatedBy            string        `json:"createdBy"`
	LastModified         time.Time     `json:"lastModified"`
}

// GenerationConfig carries the tunables for AI text and image generation.
type GenerationConfig struct {
	TextModel   string  `json:"modelName"`
	ImageModel  string  `json:"imageModelName"`
	Temperature float32 `json:"temperature"`
	TopK        int32   `json:"topK"`
	TopP        float32 `json:"topP"`
}
