package epaper

// EditSession tracks which edition and page a signed-in user is working on.
// Sessions live in process memory only and disappear with the server.
type EditSession struct {
	Token     string `json:"token"`
	User      User   `json:"user"`
	EditionID string `json:"editionId,omitempty"`
	PageID    string `json:"pageId,omitempty"`
}
