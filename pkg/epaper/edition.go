package epaper

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Page/edition mutation helpers. Same discipline as the section helpers:
// every method returns a new value, never mutates the receiver, and treats a
// vanished page ID as a no-op. Callers (the service layer) are responsible
// for bumping LastModified and writing the result back into the repository.

// NewPage creates an empty page. The page number is provisional; renumbering
// by position is the authority.
func NewPage(pageNumber int) Page {
	return Page{
		ID:         uuid.New().String(),
		PageNumber: pageNumber,
	}
}

// NewEdition creates a draft edition with a single empty page.
func NewEdition(title string, language Language, createdBy string, now time.Time) Edition {
	if language == "" {
		language = DefaultLanguage
	}
	return Edition{
		ID:           uuid.New().String(),
		Title:        title,
		Pages:        []Page{NewPage(1)},
		Language:     language,
		Status:       StatusDraft,
		CreatedBy:    createdBy,
		LastModified: now,
	}
}

// clone returns a deep copy of the page, keeping every identifier.
func (p Page) clone() Page {
	out := p
	if p.Sections != nil {
		out.Sections = make([]Section, len(p.Sections))
		for i, sec := range p.Sections {
			out.Sections[i] = sec.clone()
		}
	}
	return out
}

// duplicate returns a deep copy of the page with freshly generated
// identifiers for the page, every section and every block. Content values
// are copied verbatim; identifiers are never reused.
func (p Page) duplicate() Page {
	out := p.clone()
	out.ID = uuid.New().String()
	for i := range out.Sections {
		out.Sections[i].ID = uuid.New().String()
		for j, b := range out.Sections[i].Blocks {
			out.Sections[i].Blocks[j] = b.withID(uuid.New().String())
		}
	}
	return out
}

// Clone returns a deep copy of the edition, keeping every identifier.
func (e Edition) Clone() Edition {
	out := e
	if e.Pages != nil {
		out.Pages = make([]Page, len(e.Pages))
		for i, p := range e.Pages {
			out.Pages[i] = p.clone()
		}
	}
	if e.ScheduledPublishDate != nil {
		t := *e.ScheduledPublishDate
		out.ScheduledPublishDate = &t
	}
	return out
}

// Page returns the page matching pageID, if present.
func (e Edition) Page(pageID string) (Page, bool) {
	for _, p := range e.Pages {
		if p.ID == pageID {
			return p.clone(), true
		}
	}
	return Page{}, false
}

// renumberPages reassigns page numbers by position, 1-based. Every
// structural change to the page list funnels through this so that
// pages[i].PageNumber == i+1 always holds afterward.
func renumberPages(pages []Page) []Page {
	for i := range pages {
		pages[i].PageNumber = i + 1
	}
	return pages
}

func (e Edition) clonePages() []Page {
	pages := make([]Page, len(e.Pages))
	for i, p := range e.Pages {
		pages[i] = p.clone()
	}
	return pages
}

// WithPageAdded returns an edition with a new empty page appended, plus the
// page itself. The provisional number len+1 is already correct because the
// page lands at the end.
func (e Edition) WithPageAdded() (Edition, Page) {
	page := NewPage(len(e.Pages) + 1)
	out := e
	out.Pages = append(e.clonePages(), page)
	return out, page
}

// WithPageUpdated returns an edition in which the page matching the given
// page's ID is replaced. Unknown IDs leave the edition value-equal.
func (e Edition) WithPageUpdated(page Page) Edition {
	out := e
	out.Pages = e.clonePages()
	for i, p := range out.Pages {
		if p.ID == page.ID {
			out.Pages[i] = page.clone()
		}
	}
	return out
}

// WithPageDeleted returns an edition without the page matching pageID, with
// the remaining pages renumbered by position.
func (e Edition) WithPageDeleted(pageID string) Edition {
	out := e
	out.Pages = make([]Page, 0, len(e.Pages))
	for _, p := range e.Pages {
		if p.ID != pageID {
			out.Pages = append(out.Pages, p.clone())
		}
	}
	out.Pages = renumberPages(out.Pages)
	return out
}

// WithPageDuplicated returns an edition with a deep clone of the target page
// appended under fresh identifiers. The page list is stable-sorted by the
// pre-renumber page numbers (ties keep insertion order), then renumbered.
func (e Edition) WithPageDuplicated(pageID string) Edition {
	src, ok := e.Page(pageID)
	if !ok {
		return e.Clone()
	}

	dup := src.duplicate()
	dup.PageNumber = len(e.Pages) + 1

	out := e
	out.Pages = append(e.clonePages(), dup)
	sort.SliceStable(out.Pages, func(i, j int) bool {
		return out.Pages[i].PageNumber < out.Pages[j].PageNumber
	})
	out.Pages = renumberPages(out.Pages)
	return out
}

// WithPagesReordered returns an edition with the target page swapped one
// position toward the front (up) or the back (down), then renumbered.
// Reordering past either boundary re-inserts the page at the same index.
func (e Edition) WithPagesReordered(pageID string, direction MoveDirection) Edition {
	idx := -1
	for i, p := range e.Pages {
		if p.ID == pageID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return e.Clone()
	}

	pages := e.clonePages()
	moved := pages[idx]
	pages = append(pages[:idx], pages[idx+1:]...)

	target := idx
	switch {
	case direction == MoveUp && idx > 0:
		target = idx - 1
	case direction == MoveDown && idx < len(pages):
		target = idx + 1
	}

	pages = append(pages, Page{})
	copy(pages[target+1:], pages[target:])
	pages[target] = moved

	out := e
	out.Pages = renumberPages(pages)
	return out
}

// WithSectionAdded returns an edition with the section appended to the page
// matching pageID.
func (e Edition) WithSectionAdded(pageID string, section Section) Edition {
	page, ok := e.Page(pageID)
	if !ok {
		return e.Clone()
	}
	page.Sections = append(page.Sections, section)
	return e.WithPageUpdated(page)
}

// WithSectionRemoved returns an edition without the section matching
// sectionID on the page matching pageID.
func (e Edition) WithSectionRemoved(pageID, sectionID string) Edition {
	page, ok := e.Page(pageID)
	if !ok {
		return e.Clone()
	}
	sections := make([]Section, 0, len(page.Sections))
	for _, sec := range page.Sections {
		if sec.ID != sectionID {
			sections = append(sections, sec)
		}
	}
	page.Sections = sections
	return e.WithPageUpdated(page)
}

// WithSectionMutated returns an edition in which the section matching
// sectionID on the page matching pageID is replaced by fn's result. Section
// level block operations (update/add/remove/move) thread through here.
func (e Edition) WithSectionMutated(pageID, sectionID string, fn func(Section) Section) Edition {
	page, ok := e.Page(pageID)
	if !ok {
		return e.Clone()
	}
	for i, sec := range page.Sections {
		if sec.ID == sectionID {
			page.Sections[i] = fn(sec)
		}
	}
	return e.WithPageUpdated(page)
}
